package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Housing", "$1,200.00"},
			{"---"},
			{"Food", "$3.00"},
		},
		Align: []Align{AlignLeft, AlignRight},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	w := lipgloss.Width(lines[0])
	for i, l := range lines {
		if lipgloss.Width(l) != w {
			t.Fatalf("line %d width %d, want %d", i, lipgloss.Width(l), w)
		}
	}
	if !strings.Contains(lines[5], "    $3.00 ") {
		t.Fatalf("amount not right-aligned: %q", lines[5])
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Fatalf("empty table rendered %q", out)
	}
}

func TestRenderGoalBarClampsFill(t *testing.T) {
	over := RenderGoalBar(350, 10)
	if !strings.Contains(over, strings.Repeat("█", 10)) || !strings.Contains(over, "350.0%") {
		t.Fatalf("over-goal bar = %q", over)
	}
	under := RenderGoalBar(-50, 10)
	if strings.Contains(under, "█") || !strings.Contains(under, "-50.0%") {
		t.Fatalf("negative bar = %q", under)
	}
}
