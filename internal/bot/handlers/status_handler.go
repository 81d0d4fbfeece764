package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStatusHandler returns a handler for the admin-only /status command.
// It reports database health and ledger counters without modifying data.
func NewStatusHandler(deps HandlerDeps) bot.HandlerFunc {
	return statusHandler{deps}.Handle
}

type statusHandler struct {
	deps HandlerDeps
}

func (h statusHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "status")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Status handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /status command", "chat_id", chatID, "user_id", update.Message.From.ID)

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	dbState := "healthy"
	if err := h.deps.Store.Ping(dbCtx); err != nil {
		log.ErrorContext(ctx, "Database ping failed", "error", err)
		dbState = "degraded"
	}

	groups, err := h.deps.Store.CountGroups(dbCtx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to count groups", "error", err)
	}
	messages, err := h.deps.Store.CountMessages(dbCtx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to count messages", "error", err)
	}

	text := fmt.Sprintf(
		"Bot Status\n\nDatabase: %s\nGroups: %d\nMessages stored: %d\nTime: %s",
		dbState, groups, messages, time.Now().UTC().Format("2006-01-02 15:04 UTC"),
	)

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send status message", "error", err, "chat_id", chatID)
	}
}
