package handlers

import (
	tgbot "github.com/go-telegram/bot"

	"github.com/castilho/resumobot/internal/summary"
)

// RegisteredHandler represents a command handler with its description and
// middleware. It encapsulates all information needed to register and
// document a command.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Description string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllCommands initializes and returns a map of all available bot
// commands. It configures each command with appropriate handlers and
// middleware.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	handlers["/start"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "start",
		Description: "Start the bot and show welcome message",
		Handler:     NewStartHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}
	handlers["/help"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "help",
		Description: "Show available commands and usage",
		Handler:     NewHelpHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}

	handlers["/summarize"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "summarize",
		Description: "Summarize the last 20 messages",
		Handler:     NewSummarizeHandler(deps, summary.KindRecent),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}
	handlers["/summarize_day"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "summarize_day",
		Description: "Summarize all messages from today",
		Handler:     NewSummarizeHandler(deps, summary.KindDay),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}
	handlers["/summarize_week"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "summarize_week",
		Description: "Summarize all messages from the last 7 days",
		Handler:     NewSummarizeHandler(deps, summary.KindWeek),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}

	adminMiddleware := []tgbot.Middleware{AdminOnly(deps)}

	handlers["/status"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "status",
		Description: "Show bot status (admin only)",
		Handler:     NewStatusHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}

	return handlers
}
