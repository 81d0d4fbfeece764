package summary

import (
	"strings"
	"time"
)

const (
	formatHeader      = "📝 <b>Conversation Summary</b>"
	formatAttribution = "Generated by AI Summary Bot"
	formatTimeLayout  = "2006-01-02 15:04 UTC"
)

// Format converts a raw digest into a display-ready bulleted message with
// a fixed header/footer envelope. It is pure: the rendered timestamp comes
// from the caller-supplied now.
//
// Each non-blank input line becomes exactly one bullet. A line already
// starting with a bullet glyph has that glyph stripped before the
// canonical prefix is applied, so re-formatting already-bulleted text does
// not double-prefix. A line consisting only of a bullet glyph reduces to
// blank and is dropped, so no bullet line is ever empty.
func Format(rawSummary, timeframeLabel string, now time.Time) string {
	var bullets []string
	for _, line := range strings.Split(rawSummary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "•") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "•"))
		} else if strings.HasPrefix(line, "-") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		}
		if line == "" {
			continue
		}

		bullets = append(bullets, "• "+line)
	}

	header := formatHeader
	if timeframeLabel != "" {
		header += " (" + timeframeLabel + ")"
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(bullets, "\n"))
	sb.WriteString("\n\n<i>")
	sb.WriteString(formatAttribution)
	sb.WriteString(" · ")
	sb.WriteString(now.UTC().Format(formatTimeLayout))
	sb.WriteString("</i>")

	return sb.String()
}
