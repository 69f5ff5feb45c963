package paletteview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/palette"
	"github.com/dirkx/dirkx/internal/ui/testutil"
)

func commands(n int) []palette.Command {
	names := []string{"Dashboard", "Markets", "Console", "Networks", "Log", "Status", "About", "Toggle Sidebar", "Refresh Markets", "Help"}
	cmds := make([]palette.Command, 0, n)
	for i := range n {
		cmds = append(cmds, palette.Command{
			ID:          strings.ToLower(names[i]),
			Name:        names[i],
			Description: "Open " + names[i],
			Shortcut:    "alt+" + string(rune('1'+i%9)),
			Action:      func() tea.Cmd { return nil },
		})
	}
	return cmds
}

func TestRender_ClosedIsEmpty(t *testing.T) {
	c := palette.New(commands(3), nil)
	if got := New().Render(c, 100, 40); got != "" {
		t.Errorf("closed palette rendered %q", got)
	}
}

func TestRender_ListsCommandsWithSelection(t *testing.T) {
	icons.Init("none")
	c := palette.New(commands(3), nil)
	c.Open()
	c.MoveSelection(1)

	out := testutil.StripANSI(New().Render(c, 100, 40))

	for _, want := range []string{"Dashboard", "Markets", "Console", "alt+2", "esc close", "> "} {
		if !strings.Contains(out, want) {
			t.Errorf("palette missing %q:\n%s", want, out)
		}
	}
	if line := testutil.FindLine(out, "Markets"); !strings.Contains(line, "▌ Markets") {
		t.Errorf("selection marker missing: %q", line)
	}
	if line := testutil.FindLine(out, "Dashboard"); strings.Contains(line, "▌") {
		t.Errorf("unselected row marked: %q", line)
	}

	// Positioned below the top edge.
	lines := strings.Split(out, "\n")
	if strings.TrimSpace(lines[0]) != "" {
		t.Errorf("palette should not start on the first line: %q", lines[0])
	}
}

func TestRender_ShowsQuery(t *testing.T) {
	c := palette.New(commands(3), nil)
	c.Open()
	c.SetQuery("mark")

	out := testutil.StripANSI(New().Render(c, 100, 40))
	if !strings.Contains(out, "mark") {
		t.Errorf("query not shown:\n%s", out)
	}
	if strings.Contains(out, "Console") {
		t.Errorf("filtered command still listed:\n%s", out)
	}
}

func TestRender_EmptyShowsSuggestion(t *testing.T) {
	c := palette.New(commands(3), nil)
	c.Open()
	c.SetQuery("markts")

	out := testutil.StripANSI(New().Render(c, 100, 40))
	if !strings.Contains(out, "No commands found") {
		t.Errorf("empty state missing:\n%s", out)
	}
	if !strings.Contains(out, "Did you mean Markets?") {
		t.Errorf("suggestion missing:\n%s", out)
	}
}

func TestRender_WindowFollowsSelection(t *testing.T) {
	c := palette.New(commands(10), nil)
	c.Open()
	c.MoveSelection(9)

	v := New()
	out := testutil.StripANSI(v.Render(c, 100, 40))

	if !strings.Contains(out, "▌ Help") {
		t.Errorf("last command not visible:\n%s", out)
	}
	if strings.Contains(out, "Dashboard") {
		t.Errorf("first command should have scrolled out:\n%s", out)
	}

	c.Close()
	if v.Render(c, 100, 40) != "" {
		t.Error("closed palette should render nothing")
	}
	c.Open()
	out = testutil.StripANSI(v.Render(c, 100, 40))
	if !strings.Contains(out, "▌ Dashboard") {
		t.Errorf("reopened palette should start at the top:\n%s", out)
	}
}

func TestRender_TooNarrow(t *testing.T) {
	c := palette.New(commands(3), nil)
	c.Open()
	if got := New().Render(c, 20, 40); got != "" {
		t.Errorf("narrow palette rendered %q", got)
	}
}
