package tickerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/dirkx/dirkx/internal/market"
	"github.com/dirkx/dirkx/internal/ui/testutil"
)

func assets() []market.Asset {
	return []market.Asset{
		{Symbol: "BTC", Price: 67000, Change24h: 2.5},
		{Symbol: "ETH", Price: 3500, Change24h: -1.25},
		{Symbol: "SOL", Price: 150, Change24h: 0},
	}
}

func TestHeight(t *testing.T) {
	if got := Height(State{}); got != 0 {
		t.Errorf("Height(empty) = %d, want 0", got)
	}
	if got := Height(State{Assets: assets()}); got != 3 {
		t.Errorf("Height() = %d, want 3", got)
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(State{}, 80); got != "" {
		t.Errorf("Render(empty) = %q, want empty", got)
	}
}

func TestRender_ShowsEntries(t *testing.T) {
	out := testutil.StripANSI(Render(State{Assets: assets()}, 100))

	for _, want := range []string{"BTC $67,000", "+2.50%", "ETH $3,500", "-1.25%", "SOL"} {
		if !strings.Contains(out, want) {
			t.Errorf("ticker missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 100 {
			t.Errorf("line %d width = %d, want 100", i, w)
		}
	}
}

func TestAdvance_Rotates(t *testing.T) {
	s := State{Assets: assets()}
	s = s.Advance()
	out := testutil.StripANSI(Render(s, 100))
	if strings.Index(out, "ETH") > strings.Index(out, "BTC") {
		t.Errorf("ETH should lead after one advance:\n%s", out)
	}

	s = s.Advance().Advance()
	if s.Offset != 0 {
		t.Errorf("Offset = %d, want wrap to 0", s.Offset)
	}
	if got := (State{}).Advance().Offset; got != 0 {
		t.Errorf("empty Advance offset = %d", got)
	}
}
