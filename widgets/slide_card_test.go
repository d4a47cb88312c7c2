package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSlideCardFillsRequestedBox(t *testing.T) {
	out := SlideCard{Title: "Intro", Body: "hello"}.Render(24, 8)
	if got := lipgloss.Width(out); got != 24 {
		t.Fatalf("width mismatch: %d", got)
	}
	if got := lipgloss.Height(out); got != 8 {
		t.Fatalf("height mismatch: %d", got)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Intro") || !strings.Contains(plain, "hello") {
		t.Fatalf("card content missing: %q", plain)
	}
}

func TestSlideCardDegenerateSizes(t *testing.T) {
	if (SlideCard{Title: "x"}).Render(0, 5) != "" {
		t.Fatalf("zero width should render nothing")
	}
	if (SlideCard{Title: "x"}).Render(5, 0) != "" {
		t.Fatalf("zero height should render nothing")
	}
}
