package handlers

import (
	"log/slog"

	"github.com/patrickmn/go-cache"

	"github.com/castilho/resumobot/internal/config"
	"github.com/castilho/resumobot/internal/database"
	"github.com/castilho/resumobot/internal/summary"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Store     database.Store
	Generator *summary.Generator
	Cache     *cache.Cache
}
