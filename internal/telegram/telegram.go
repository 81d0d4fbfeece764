// Package telegram provides construction and handler registration helpers
// for the go-telegram bot client.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/castilho/resumobot/internal/bot/handlers"
)

// NewTelegramBot creates a new Telegram bot client with the given token
// and options.
func NewTelegramBot(token string, log *slog.Logger, opts ...tgbot.Option) (*tgbot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	b, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot client created")
	return b, nil
}

// RegisterHandlers registers all command handlers with the bot, wrapping
// each one in its declared middleware, and publishes the command list to
// Telegram so clients can offer command completion.
func RegisterHandlers(ctx context.Context, b *tgbot.Bot, log *slog.Logger, cmdHandlers map[string]handlers.RegisteredHandler) error {
	commands := make([]models.BotCommand, 0, len(cmdHandlers))

	for name, h := range cmdHandlers {
		fn := h.Handler
		for i := len(h.Middleware) - 1; i >= 0; i-- {
			fn = h.Middleware[i](fn)
		}
		b.RegisterHandler(h.HandlerType, h.Pattern, h.MatchType, fn)
		log.Debug("Registered handler", "command", name)

		if h.Description != "" {
			commands = append(commands, models.BotCommand{Command: h.Pattern, Description: h.Description})
		}
	}

	sort.Slice(commands, func(i, j int) bool { return commands[i].Command < commands[j].Command })

	if _, err := b.SetMyCommands(ctx, &tgbot.SetMyCommandsParams{Commands: commands}); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	log.Info("Registered Telegram handlers", "count", len(cmdHandlers))
	return nil
}
