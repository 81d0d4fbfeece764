package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/castilho/resumobot/internal/database"
)

// NewMessageHandler returns the default handler that records ordinary
// group messages in the ledger. Commands and empty messages are skipped.
// Persistence failures are logged only; the chat never sees an error for
// a message it did not ask the bot to process.
func NewMessageHandler(deps HandlerDeps) bot.HandlerFunc {
	return messageHandler{deps}.Handle
}

type messageHandler struct {
	deps HandlerDeps
}

func (h messageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" || strings.HasPrefix(msg.Text, "/") {
		return
	}

	log := h.deps.Logger.With("handler", "message")

	username := msg.From.Username
	if username == "" {
		username = msg.From.FirstName
	}
	if username == "" {
		username = "Unknown"
	}

	title := msg.Chat.Title
	if title == "" {
		title = "Unknown Group"
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	if err := h.deps.Store.EnsureGroup(dbCtx, msg.Chat.ID, title); err != nil {
		log.ErrorContext(ctx, "Failed to ensure group record", "error", err, "chat_id", msg.Chat.ID)
		return
	}

	record := &database.Message{
		ChatID:            msg.Chat.ID,
		TelegramMessageID: int64(msg.ID),
		UserID:            msg.From.ID,
		Username:          username,
		Content:           msg.Text,
		Timestamp:         time.Unix(int64(msg.Date), 0).UTC(),
	}

	if err := h.deps.Store.SaveMessage(dbCtx, record); err != nil {
		log.ErrorContext(ctx, "Failed to save message", "error", err, "chat_id", msg.Chat.ID)
		return
	}

	log.DebugContext(ctx, "Message recorded", "chat_id", msg.Chat.ID, "user_id", msg.From.ID)
}
