package sidebar

import (
	"strings"
	"testing"

	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/ui/testutil"
)

func entries() []Entry {
	return []Entry{
		{ID: "dashboard", Label: "Dashboard", Key: "alt+1"},
		{ID: "markets", Label: "Markets", Key: "alt+2"},
		{ID: "log", Label: "Log"},
	}
}

func TestRender_Expanded(t *testing.T) {
	icons.Init("none")
	out := testutil.StripANSI(Render(entries(), "markets", 24, 10, false))
	lines := strings.Split(out, "\n")

	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	for i, l := range lines {
		if w := testutil.MeasureWidth(l); w != 24 {
			t.Errorf("line %d width = %d, want 24", i, w)
		}
		if !strings.HasSuffix(l, "│") {
			t.Errorf("line %d missing border: %q", i, l)
		}
	}
	if !strings.Contains(lines[0], "SECTIONS") {
		t.Errorf("missing heading: %q", lines[0])
	}
	active := testutil.FindLine(out, "Markets")
	if !strings.HasPrefix(active, "▌ ") {
		t.Errorf("active entry not marked: %q", active)
	}
	if !strings.Contains(active, "alt+2") {
		t.Errorf("jump key not shown: %q", active)
	}
	if line := testutil.FindLine(out, "Dashboard"); strings.HasPrefix(line, "▌") {
		t.Errorf("inactive entry marked: %q", line)
	}
}

func TestRender_CollapsedFallsBackToInitial(t *testing.T) {
	icons.Init("none")
	out := testutil.StripANSI(Render(entries(), "log", 6, 5, true))

	if strings.Contains(out, "Markets") {
		t.Errorf("collapsed rail shows labels:\n%s", out)
	}
	if !testutil.ContainsLine(out, "▌ L") {
		t.Errorf("active initial missing:\n%s", out)
	}
	if !testutil.ContainsLine(out, "  M") {
		t.Errorf("inactive initial missing:\n%s", out)
	}
}

func TestRender_ZeroSize(t *testing.T) {
	if got := Render(entries(), "", 0, 10, false); got != "" {
		t.Errorf("zero width = %q", got)
	}
}
