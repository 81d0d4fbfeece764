package config

import "time"

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	DefaultDBPath = "storage.db"

	DefaultGeminiModel = "gemini-2.0-flash"
	// Decoding parameters for summary generation: moderately low
	// temperature for deterministic-biased output, a hard output ceiling,
	// and mild repetition suppression to avoid degenerate repeated bullets.
	DefaultGeminiTemperature      = 0.7
	DefaultGeminiMaxOutputTokens  = 500
	DefaultGeminiFrequencyPenalty = 0.5
	DefaultGeminiPresencePenalty  = 0.2
	DefaultGeminiTimeout          = 2 * time.Minute

	DefaultSummaryCacheTTL = time.Hour

	// 04:00 UTC daily VACUUM.
	DefaultMaintenanceSchedule = "0 4 * * *"
)

// DefaultMessages holds the default user-facing bot message texts.
var DefaultMessages = MessagesConfig{
	Welcome: `👋 Hello! I'm your group chat summarizer bot.

I keep track of conversations and provide AI-powered summaries on demand:

/summarize - Summarize the last 20 messages
/summarize_day - Summarize today's messages
/summarize_week - Summarize the last 7 days
/help - Show this help message

Add me to a group, let some messages flow, then ask for a summary!`,
	Help: `Available commands:
/summarize - Summarize the last 20 messages
/summarize_day - Summarize all messages sent since UTC midnight today
/summarize_week - Summarize all messages from the last 7 days
/help - Show this help message`,
	NothingToSummarize: "No messages to summarize for %s! Send some messages first.",
	SummaryError:       "Sorry, I couldn't generate a summary at this time. Please try again later.",
	GeneralError:       "An error occurred. Please try again later.",
	NotAuthorized:      "You are not authorized to use this command.",
}
