package database

import "time"

// ChatGroup represents a group conversation the bot participates in.
// A row is created lazily, on the first observed message for that chat,
// and owns all Message rows sharing its chat ID.
type ChatGroup struct {
	ChatID   int64     `db:"chat_id"`
	Title    string    `db:"title"`
	JoinedAt time.Time `db:"joined_at"`
	IsActive bool      `db:"is_active"`
}

// Message represents a single captured group-chat utterance. Rows are
// append-only: never updated, never deleted. Timestamp is the
// platform-supplied origin time of the message, not the ingestion time.
type Message struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	ChatID            int64     `db:"chat_id"`
	TelegramMessageID int64     `db:"telegram_message_id"`
	UserID            int64     `db:"user_id"`
	Username          string    `db:"username"`
	Content           string    `db:"content"`
	Timestamp         time.Time `db:"timestamp"`
}
