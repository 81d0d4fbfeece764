// Package tasks implements scheduled tasks for the summarizer bot.
package tasks

import (
	"log/slog"

	"github.com/castilho/resumobot/internal/config"
	"github.com/castilho/resumobot/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
