package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirkx/dirkx/internal/ui/popup"
)

type dismissedMsg struct{ key string }

// stubDialog closes on esc or q, like the help and about popups.
type stubDialog struct {
	width, height int
}

var _ popup.Popup = (*stubDialog)(nil)

func (d *stubDialog) Init() tea.Cmd { return nil }

func (d *stubDialog) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch key.String() {
	case "esc", "q":
		k := key.String()
		return d, func() tea.Msg { return dismissedMsg{key: k} }
	}
	return d, nil
}

func (d *stubDialog) View() string {
	return "\x1b[1mNODE\x1b[0m // ABOUT"
}

func (d *stubDialog) SetSize(width, height int) {
	d.width, d.height = width, height
}

func TestPopupHarness_SizeAndView(t *testing.T) {
	d := &stubDialog{}
	h := NewPopupHarness(d)
	h.SetSize(72, 20)

	if d.width != 72 || d.height != 20 {
		t.Errorf("SetSize not propagated: got %dx%d", d.width, d.height)
	}
	if h.Popup() != d {
		t.Error("Popup() should return the wrapped popup")
	}
	if msg := h.AssertViewContains("NODE // ABOUT"); msg != "" {
		t.Error(msg)
	}
	if msg := h.AssertViewContains("SETTINGS"); msg == "" {
		t.Error("AssertViewContains should report a missing string")
	}
}

func TestPopupHarness_CloseKeys(t *testing.T) {
	tests := []struct {
		name string
		send func(h *PopupHarness) tea.Cmd
		want string
	}{
		{"escape", (*PopupHarness).SendEscape, "esc"},
		{"q", func(h *PopupHarness) tea.Cmd { return h.SendKey("q") }, "q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPopupHarness(&stubDialog{})
			if h.LastCommand() != nil {
				t.Fatal("nil Init command should not be recorded")
			}

			cmd := tt.send(h)
			if cmd == nil || h.LastCommand() == nil {
				t.Fatal("expected a close command")
			}
			msg, ok := ExecuteCmd(cmd).(dismissedMsg)
			if !ok || msg.key != tt.want {
				t.Errorf("ExecuteCmd() = %#v, want dismissedMsg{%q}", msg, tt.want)
			}
		})
	}
}

func TestPopupHarness_IgnoredKeyRecordsNothing(t *testing.T) {
	h := NewPopupHarness(&stubDialog{})
	if cmd := h.SendKey("j"); cmd != nil {
		t.Error("unhandled key returned a command")
	}
	if h.LastCommand() != nil {
		t.Error("nil command should not be recorded")
	}
}

func TestExecuteCmd_Nil(t *testing.T) {
	if ExecuteCmd(nil) != nil {
		t.Error("ExecuteCmd(nil) should return nil")
	}
}
