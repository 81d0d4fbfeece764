// Package summary_test tests the summary package.
package summary_test

import (
	"testing"
	"time"

	"github.com/castilho/resumobot/internal/summary"
)

// TestSelectWindow verifies the query shape produced for each window kind.
func TestSelectWindow(t *testing.T) {
	t.Parallel()

	// 17:42 in a UTC+3 zone, so 14:42 UTC on the same calendar day.
	now := time.Date(2025, 3, 15, 17, 42, 10, 0, time.FixedZone("UTC+3", 3*3600))
	midnight := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	weekAgo := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		kind      summary.Kind
		wantKind  summary.Kind
		wantLimit int
		wantSince *time.Time
	}{
		{
			name:      "recent has no time bound",
			kind:      summary.KindRecent,
			wantKind:  summary.KindRecent,
			wantLimit: 20,
			wantSince: nil,
		},
		{
			name:      "day starts at UTC midnight",
			kind:      summary.KindDay,
			wantKind:  summary.KindDay,
			wantLimit: 100,
			wantSince: &midnight,
		},
		{
			name:      "week starts seven days before UTC midnight",
			kind:      summary.KindWeek,
			wantKind:  summary.KindWeek,
			wantLimit: 100,
			wantSince: &weekAgo,
		},
		{
			name:      "unrecognized kind behaves as recent",
			kind:      summary.Kind("fortnight"),
			wantKind:  summary.KindRecent,
			wantLimit: 20,
			wantSince: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := summary.SelectWindow(tc.kind, now)

			if got.Kind != tc.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tc.wantKind)
			}
			if got.Limit != tc.wantLimit {
				t.Errorf("Limit = %d, want %d", got.Limit, tc.wantLimit)
			}
			if tc.wantSince == nil {
				if got.Since != nil {
					t.Errorf("Since = %v, want nil", got.Since)
				}
			} else {
				if got.Since == nil {
					t.Fatalf("Since = nil, want %v", tc.wantSince)
				}
				if !got.Since.Equal(*tc.wantSince) {
					t.Errorf("Since = %v, want %v", got.Since, tc.wantSince)
				}
			}
		})
	}
}

// TestSelectWindowDayBoundary verifies that a reference instant just after
// midnight UTC still anchors the day window to that midnight.
func TestSelectWindowDayBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 0, 0, 0, 1, time.UTC)
	got := summary.SelectWindow(summary.KindDay, now)

	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if got.Since == nil || !got.Since.Equal(want) {
		t.Errorf("Since = %v, want %v", got.Since, want)
	}
}

// TestRequestLabel verifies the human-readable timeframe labels.
func TestRequestLabel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		kind summary.Kind
		want string
	}{
		{name: "recent", kind: summary.KindRecent, want: "Last 20 Messages"},
		{name: "day", kind: summary.KindDay, want: "Today's Messages"},
		{name: "week", kind: summary.KindWeek, want: "Last 7 Days"},
		{name: "unrecognized falls back to recent", kind: summary.Kind("x"), want: "Last 20 Messages"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := summary.Request{Kind: tc.kind}.Label()
			if got != tc.want {
				t.Errorf("Label() = %q, want %q", got, tc.want)
			}
		})
	}
}
