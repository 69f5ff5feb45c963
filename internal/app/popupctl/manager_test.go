package popupctl

import (
	"testing"

	"github.com/dirkx/dirkx/internal/ui/about"
	"github.com/dirkx/dirkx/internal/ui/action"
	"github.com/dirkx/dirkx/internal/ui/helpbindings"
	"github.com/dirkx/dirkx/internal/ui/testutil"
)

func newManager() *Manager {
	m := New()
	m.SetSize(100, 40)
	return m
}

func TestActivePopup_Priority(t *testing.T) {
	m := newManager()
	if got := m.ActivePopup(); got != None {
		t.Fatalf("ActivePopup() = %v, want None", got)
	}

	m.ShowAbout(about.Info{NodeName: "DIRKX"})
	if got := m.ActivePopup(); got != About {
		t.Errorf("ActivePopup() = %v, want About", got)
	}

	m.ShowHelp([]string{"global"})
	if got := m.ActivePopup(); got != Help {
		t.Errorf("ActivePopup() = %v, want Help over About", got)
	}

	m.ShowError("boom")
	if got := m.ActivePopup(); got != Error {
		t.Errorf("ActivePopup() = %v, want Error over everything", got)
	}
}

func TestHandleKey_ErrorDismissedByAnyKey(t *testing.T) {
	m := newManager()
	m.ShowError("boom")

	handled, cmd := m.HandleKey(testutil.Key("x"))
	if !handled || cmd != nil {
		t.Errorf("HandleKey() = %v, %v, want handled without command", handled, cmd != nil)
	}
	if m.ErrorMsg() != "" {
		t.Errorf("ErrorMsg() = %q, want empty", m.ErrorMsg())
	}
}

func TestHandleKey_RoutesToActivePopup(t *testing.T) {
	m := newManager()
	m.ShowHelp([]string{"global", "page"})

	handled, cmd := m.HandleKey(testutil.Key("esc"))
	if !handled {
		t.Fatal("help popup should consume esc")
	}
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	if !ok {
		t.Fatal("expected action.Msg from help popup")
	}
	if _, ok := msg.Action.(helpbindings.Close); !ok {
		t.Errorf("Action = %T, want helpbindings.Close", msg.Action)
	}
}

func TestHandleKey_NothingVisible(t *testing.T) {
	m := newManager()
	if handled, _ := m.HandleKey(testutil.Key("q")); handled {
		t.Error("no popup should leave keys unhandled")
	}
}

func TestHide(t *testing.T) {
	m := newManager()
	m.ShowAbout(about.Info{NodeName: "DIRKX"})
	m.ShowError("boom")

	m.Hide(Error)
	if m.IsVisible(Error) {
		t.Error("error still visible")
	}
	m.Hide(About)
	if m.IsVisible(About) {
		t.Error("about still visible")
	}
	m.Hide(None)
}

func TestRenderOverlay(t *testing.T) {
	m := newManager()
	base := ""
	for range 40 {
		base += "\n"
	}

	if got := m.RenderOverlay(base); got != base {
		t.Error("overlay without popups should return base unchanged")
	}

	m.ShowAbout(about.Info{NodeName: "DIRKX"})
	out := m.RenderOverlay(base)
	if msg := testutil.AssertContains(out, "PERSONAL NODE"); msg != "" {
		t.Error(msg)
	}

	m.ShowError("Failed to fetch market data: timeout")
	out = m.RenderOverlay(base)
	if msg := testutil.AssertContains(out, "Press any key to dismiss"); msg != "" {
		t.Error(msg)
	}
}

func TestAboutWidthCapped(t *testing.T) {
	m := newManager()
	m.ShowAbout(about.Info{NodeName: "DIRKX"})
	for _, line := range testutil.SplitLines(m.RenderOverlay("")) {
		if w := testutil.MeasureWidth(line); w > 100 {
			t.Errorf("line width %d exceeds screen", w)
		}
	}
}
