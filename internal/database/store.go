package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for ledger operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// EnsureGroup creates the chat group row if it does not exist yet.
	// It is idempotent and must be called before the first message for a
	// chat is saved.
	EnsureGroup(ctx context.Context, chatID int64, title string) error

	// SaveMessage appends a new message record to the ledger.
	SaveMessage(ctx context.Context, message *Message) error

	// GetRecentMessages retrieves up to 'limit' messages for a chat,
	// newest first. If since is non-nil, only messages with
	// timestamp >= since (inclusive) are returned.
	GetRecentMessages(ctx context.Context, chatID int64, limit int, since *time.Time) ([]Message, error)

	// CountMessages returns the total number of stored messages.
	CountMessages(ctx context.Context) (int64, error)

	// CountGroups returns the number of known chat groups.
	CountGroups(ctx context.Context) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// maxFetchLimit caps ledger reads to prevent excessive queries.
const maxFetchLimit = 100

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureGroup creates the chat group row if absent. Existing rows are left
// untouched, including their title and is_active flag.
func (s *sqlxStore) EnsureGroup(ctx context.Context, chatID int64, title string) error {
	if chatID == 0 {
		return fmt.Errorf("chat_id cannot be zero")
	}

	query := `
        INSERT INTO chat_groups (chat_id, title, joined_at, is_active)
        VALUES (?, ?, ?, 1)
        ON CONFLICT (chat_id) DO NOTHING;
    `

	_, err := s.db.ExecContext(ctx, query, chatID, title, time.Now().UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "Error ensuring chat group", "chat_id", chatID, "error", err)
		return fmt.Errorf("failed to ensure chat group %d: %w", chatID, err)
	}

	s.logger.DebugContext(ctx, "Chat group ensured", "chat_id", chatID)
	return nil
}

// SaveMessage appends a new message record.
func (s *sqlxStore) SaveMessage(ctx context.Context, message *Message) error {
	if message == nil {
		return fmt.Errorf("cannot save nil message")
	}
	if message.ChatID == 0 {
		return fmt.Errorf("message must have a non-zero chat_id")
	}
	if message.Content == "" {
		return fmt.Errorf("message must have non-empty content")
	}
	if message.Timestamp.IsZero() {
		return fmt.Errorf("message must have a non-zero timestamp")
	}

	message.CreatedAt = time.Now().UTC()

	query := `
        INSERT INTO messages (chat_id, telegram_message_id, user_id, username, content, timestamp, created_at)
        VALUES (:chat_id, :telegram_message_id, :user_id, :username, :content, :timestamp, :created_at);
    `

	result, err := s.db.NamedExecContext(ctx, query, message)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving message", "chat_id", message.ChatID, "user_id", message.UserID, "error", err)
		return fmt.Errorf("failed to save message (chat %d, user %d): %w", message.ChatID, message.UserID, err)
	}

	if id, err := result.LastInsertId(); err == nil {
		//nolint:gosec // integer overflow conversion is acceptable here
		message.ID = uint(id)
	} else {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID after saving message",
			"chat_id", message.ChatID, "user_id", message.UserID, "error", err)
	}

	s.logger.DebugContext(ctx, "Message saved successfully",
		"chat_id", message.ChatID, "user_id", message.UserID, "message_id", message.ID)
	return nil
}

// GetRecentMessages retrieves up to 'limit' messages for the given chat,
// ordered by timestamp descending (ID descending as a tie-break). The
// optional since bound is inclusive. An empty result is valid and means
// there is nothing to summarize.
func (s *sqlxStore) GetRecentMessages(ctx context.Context, chatID int64, limit int, since *time.Time) ([]Message, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat_id cannot be zero")
	}

	if limit <= 0 {
		limit = 20
		s.logger.DebugContext(ctx, "Invalid limit provided, using default", "chat_id", chatID, "default_limit", limit)
	} else if limit > maxFetchLimit {
		limit = maxFetchLimit
		s.logger.DebugContext(ctx, "Limit exceeded maximum value, capping", "chat_id", chatID, "capped_limit", limit)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	messages := []Message{}
	var err error

	if since != nil {
		query := `
            SELECT id, chat_id, telegram_message_id, user_id, username, content, timestamp, created_at
            FROM messages
            WHERE chat_id = ? AND timestamp >= ?
            ORDER BY timestamp DESC, id DESC
            LIMIT ?;
        `
		s.logger.DebugContext(ctx, "Fetching recent messages", "chat_id", chatID, "limit", limit, "since", since.UTC())
		err = s.db.SelectContext(ctx, &messages, query, chatID, since.UTC(), limit)
	} else {
		query := `
            SELECT id, chat_id, telegram_message_id, user_id, username, content, timestamp, created_at
            FROM messages
            WHERE chat_id = ?
            ORDER BY timestamp DESC, id DESC
            LIMIT ?;
        `
		s.logger.DebugContext(ctx, "Fetching recent messages", "chat_id", chatID, "limit", limit)
		err = s.db.SelectContext(ctx, &messages, query, chatID, limit)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		s.logger.WarnContext(ctx, "Context timeout or cancellation while fetching messages",
			"chat_id", chatID, "error", err)
		return nil, err
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Error getting recent messages", "chat_id", chatID, "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to get recent messages for chat %d: %w", chatID, err)
	}

	s.logger.DebugContext(ctx, "Fetched recent messages successfully", "chat_id", chatID, "count", len(messages))
	return messages, nil
}

// CountMessages returns the total number of stored messages.
func (s *sqlxStore) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM messages`); err != nil {
		s.logger.ErrorContext(ctx, "Error counting messages", "error", err)
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

// CountGroups returns the number of known chat groups.
func (s *sqlxStore) CountGroups(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM chat_groups`); err != nil {
		s.logger.ErrorContext(ctx, "Error counting chat groups", "error", err)
		return 0, fmt.Errorf("failed to count chat groups: %w", err)
	}
	return count, nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite.
	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)

	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)

	default:
		s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	}

	return nil
}
