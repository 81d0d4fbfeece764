package summary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// summaryPromptHeader is the user instruction embedding the conversation
// lines. The assistant role itself is established by the system
// instruction configured on the text client.
const summaryPromptHeader = "Please summarize this Telegram conversation. " +
	"Focus on key topics, decisions, and important points. Format as bullet points:\n\n"

// TextClient is the outbound seam to the text-generation API. The gemini
// package provides the production implementation; tests use fakes.
type TextClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Generator produces natural-language digests from ordered message lines.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	client TextClient
	logger *slog.Logger
}

// NewGenerator creates a Generator backed by the given text client.
func NewGenerator(client TextClient, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		client: client,
		logger: logger.With("component", "summary_generator"),
	}
}

// Summarize sends the given message lines to the text-generation API and
// returns the raw digest. Lines arrive most-recent-first, as returned by
// the ledger, and are reversed to chronological order before prompt
// construction so the model sees the conversation as it happened.
//
// An empty input fails with ErrNoMessages before any outbound call.
// Upstream failures and empty candidates are reported as ErrUpstream; no
// retry is performed here.
func (g *Generator) Summarize(ctx context.Context, lines []string) (string, error) {
	if len(lines) == 0 {
		return "", ErrNoMessages
	}

	ordered := make([]string, len(lines))
	for i, line := range lines {
		ordered[len(lines)-1-i] = line
	}

	g.logger.DebugContext(ctx, "Generating summary", "line_count", len(ordered))

	prompt := summaryPromptHeader + strings.Join(ordered, "\n")

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.ErrorContext(ctx, "Summary generation failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		g.logger.WarnContext(ctx, "Summary generation returned empty text")
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}

	g.logger.DebugContext(ctx, "Summary generated successfully", "length", len(text))
	return text, nil
}
