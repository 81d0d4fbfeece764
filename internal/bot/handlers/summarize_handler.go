package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/patrickmn/go-cache"

	"github.com/castilho/resumobot/internal/summary"
)

const dbOperationTimeout = 15 * time.Second

// NewSummarizeHandler returns a handler that produces a bullet-point
// summary for the given timeframe kind. The same handler backs
// /summarize, /summarize_day and /summarize_week.
func NewSummarizeHandler(deps HandlerDeps, kind summary.Kind) bot.HandlerFunc {
	return summarizeHandler{deps: deps, kind: kind}.Handle
}

type summarizeHandler struct {
	deps HandlerDeps
	kind summary.Kind
}

func (h summarizeHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "summarize", "kind", string(h.kind))

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Summarize handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	win := summary.SelectWindow(h.kind, time.Now())

	log.InfoContext(ctx, "Handling summarize command", "chat_id", chatID, "user_id", update.Message.From.ID)

	cacheKey := fmt.Sprintf("summary:%d:%s", chatID, win.Kind)
	if cached, found := h.deps.Cache.Get(cacheKey); found {
		if text, ok := cached.(string); ok {
			log.DebugContext(ctx, "Serving summary from cache", "chat_id", chatID)
			h.send(ctx, b, chatID, text, models.ParseModeHTML)
			return
		}
	}

	_, err := b.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})
	if err != nil {
		log.WarnContext(ctx, "Failed to send typing action", "error", err, "chat_id", chatID)
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	messages, err := h.deps.Store.GetRecentMessages(dbCtx, chatID, win.Limit, win.Since)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch messages", "error", err, "chat_id", chatID)
		h.send(ctx, b, chatID, h.deps.Config.Messages.GeneralError, "")
		return
	}

	if len(messages) == 0 {
		h.send(ctx, b, chatID, fmt.Sprintf(h.deps.Config.Messages.NothingToSummarize, win.Label()), "")
		return
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		username := msg.Username
		if username == "" {
			username = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", username, msg.Content))
	}

	aiCtx, cancel := context.WithTimeout(ctx, h.deps.Config.Gemini.Timeout)
	digest, err := h.deps.Generator.Summarize(aiCtx, lines)
	cancel()
	if err != nil {
		if errors.Is(err, summary.ErrNoMessages) {
			h.send(ctx, b, chatID, fmt.Sprintf(h.deps.Config.Messages.NothingToSummarize, win.Label()), "")
			return
		}
		log.ErrorContext(ctx, "Failed to generate summary", "error", err, "chat_id", chatID)
		h.send(ctx, b, chatID, h.deps.Config.Messages.SummaryError, "")
		return
	}

	formatted := summary.Format(digest, win.Label(), time.Now())
	h.deps.Cache.Set(cacheKey, formatted, cache.DefaultExpiration)

	h.send(ctx, b, chatID, formatted, models.ParseModeHTML)
	log.InfoContext(ctx, "Summary delivered", "chat_id", chatID, "message_count", len(messages))
}

func (h summarizeHandler) send(ctx context.Context, b *bot.Bot, chatID int64, text string, parseMode models.ParseMode) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send summary reply", "error", err, "chat_id", chatID)
	}
}
