// Package summary implements the message-retrieval-and-summarization
// pipeline: window selection, digest generation, and display formatting.
package summary

import "time"

// Kind identifies a summarization time window.
type Kind string

const (
	// KindRecent selects the most recent messages with no time bound.
	KindRecent Kind = "recent"
	// KindDay selects messages since the start of the current UTC day.
	KindDay Kind = "day"
	// KindWeek selects messages from a rolling 7-day window anchored to
	// UTC midnight, not a sliding 168-hour window from now.
	KindWeek Kind = "week"
)

// Window limits per kind.
const (
	recentLimit = 20
	rangeLimit  = 100
)

// Request describes which messages qualify for a summary: a row limit and
// an optional inclusive lower timestamp bound.
type Request struct {
	Kind  Kind
	Limit int
	Since *time.Time
}

// Label returns the human-readable timeframe for the request, used in the
// formatted summary header and the nothing-to-summarize notice.
func (r Request) Label() string {
	switch r.Kind {
	case KindDay:
		return "Today's Messages"
	case KindWeek:
		return "Last 7 Days"
	default:
		return "Last 20 Messages"
	}
}

// SelectWindow maps a window kind and a reference instant to a concrete
// query shape. It is pure and total: an unrecognized kind behaves as
// KindRecent.
func SelectWindow(kind Kind, now time.Time) Request {
	switch kind {
	case KindDay:
		midnight := startOfUTCDay(now)
		return Request{Kind: KindDay, Limit: rangeLimit, Since: &midnight}
	case KindWeek:
		since := startOfUTCDay(now).AddDate(0, 0, -7)
		return Request{Kind: KindWeek, Limit: rangeLimit, Since: &since}
	default:
		return Request{Kind: KindRecent, Limit: recentLimit}
	}
}

func startOfUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
