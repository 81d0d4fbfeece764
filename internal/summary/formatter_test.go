package summary_test

import (
	"strings"
	"testing"
	"time"

	"github.com/castilho/resumobot/internal/summary"
)

// TestFormat verifies bullet normalization and the header/footer envelope.
func TestFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 14, 42, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		raw         string
		label       string
		wantBullets []string
	}{
		{
			name:        "mixed prefixes and blank line",
			raw:         "- first point\nsecond point\n\nthird",
			label:       "Last 20 Messages",
			wantBullets: []string{"• first point", "• second point", "• third"},
		},
		{
			name:        "already bulleted lines are not double-prefixed",
			raw:         "• alpha\n• beta",
			label:       "",
			wantBullets: []string{"• alpha", "• beta"},
		},
		{
			name:        "glyph-only lines are dropped",
			raw:         "•\n-\nreal content",
			label:       "",
			wantBullets: []string{"• real content"},
		},
		{
			name:        "surrounding whitespace is trimmed",
			raw:         "  -   padded point  \n\t plain \t",
			label:       "Today's Messages",
			wantBullets: []string{"• padded point", "• plain"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := summary.Format(tc.raw, tc.label, now)
			lines := strings.Split(got, "\n")

			wantHeader := "📝 <b>Conversation Summary</b>"
			if tc.label != "" {
				wantHeader += " (" + tc.label + ")"
			}
			if lines[0] != wantHeader {
				t.Errorf("header = %q, want %q", lines[0], wantHeader)
			}

			var bullets []string
			for _, line := range lines {
				if strings.HasPrefix(line, "• ") {
					bullets = append(bullets, line)
				}
			}
			if len(bullets) != len(tc.wantBullets) {
				t.Fatalf("got %d bullets %v, want %d %v", len(bullets), bullets, len(tc.wantBullets), tc.wantBullets)
			}
			for i, want := range tc.wantBullets {
				if bullets[i] != want {
					t.Errorf("bullet %d = %q, want %q", i, bullets[i], want)
				}
			}

			wantFooter := "<i>Generated by AI Summary Bot · 2025-03-15 14:42 UTC</i>"
			if lines[len(lines)-1] != wantFooter {
				t.Errorf("footer = %q, want %q", lines[len(lines)-1], wantFooter)
			}

			if strings.Contains(got, "• •") || strings.Contains(got, "• -") {
				t.Errorf("output contains a double bullet prefix: %q", got)
			}
		})
	}
}

// TestFormatBulletIdempotence verifies that feeding already-normalized
// bullet lines back through Format reproduces the same bullet lines.
func TestFormatBulletIdempotence(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 14, 42, 0, 0, time.UTC)

	first := summary.Format("- one\n- two\n- three", "Last 7 Days", now)

	var bullets []string
	for _, line := range strings.Split(first, "\n") {
		if strings.HasPrefix(line, "• ") {
			bullets = append(bullets, line)
		}
	}

	second := summary.Format(strings.Join(bullets, "\n"), "Last 7 Days", now)

	var again []string
	for _, line := range strings.Split(second, "\n") {
		if strings.HasPrefix(line, "• ") {
			again = append(again, line)
		}
	}

	if strings.Join(again, "\n") != strings.Join(bullets, "\n") {
		t.Errorf("re-formatting changed bullets:\nfirst:  %v\nsecond: %v", bullets, again)
	}
}
