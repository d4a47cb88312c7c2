package widgets

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func dotsRow(count int, position float64) string {
	return ansi.Strip(Dots{
		Count:    count,
		Position: position,
		Active:   "#cba6f7",
		Inactive: "#585b70",
	}.Render(0))
}

func TestDotsFollowFractionalPosition(t *testing.T) {
	cases := []struct {
		position float64
		want     string
	}{
		{0, "● ○ ○"},
		{0.4, "● ○ ○"},
		{0.6, "○ ● ○"},
		{1.0, "○ ● ○"},
		{1.6, "○ ○ ●"},
	}
	for _, tc := range cases {
		if got := dotsRow(3, tc.position); got != tc.want {
			t.Fatalf("position %v: got %q want %q", tc.position, got, tc.want)
		}
	}
}

func TestDotsClampPositionToSequence(t *testing.T) {
	if got := dotsRow(3, 9.5); got != "○ ○ ●" {
		t.Fatalf("overshoot should clamp to last dot: %q", got)
	}
	if got := dotsRow(3, -2); got != "● ○ ○" {
		t.Fatalf("undershoot should clamp to first dot: %q", got)
	}
}

func TestDotsEmptySequence(t *testing.T) {
	if got := (Dots{Count: 0}).Render(20); got != "" {
		t.Fatalf("no panes should render nothing: %q", got)
	}
}
