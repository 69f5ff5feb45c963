package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"truecolor", "\x1b[38;2;0;255;156mneon\x1b[0m", "neon"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLine(t *testing.T) {
	output := "header\nBTC 67,000\nETH 3,400"

	if got := FindLine(output, "ETH"); got != "ETH 3,400" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(output, "SOL"); got != "" {
		t.Errorf("FindLine missing = %q", got)
	}
	if !ContainsLine(output, "BTC") || ContainsLine(output, "DOGE") {
		t.Error("ContainsLine mismatch")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines = %q", got)
	}
}

func TestAssertContains(t *testing.T) {
	if msg := AssertContains("\x1b[1mDIRKX\x1b[0m", "DIRKX"); msg != "" {
		t.Error(msg)
	}
	if msg := AssertContains("DIRKX", "NODE"); msg == "" {
		t.Error("expected failure message")
	}
}

func TestAssertNotContains(t *testing.T) {
	if msg := AssertNotContains("DIRKX", "NODE"); msg != "" {
		t.Error(msg)
	}
	if msg := AssertNotContains("DIRKX", "DIR"); msg == "" {
		t.Error("expected failure message")
	}
}

func TestKey(t *testing.T) {
	tests := []string{"q", "G", "?", "enter", "esc", "ctrl+k", "ctrl+c", "alt+1", "shift+tab", " ", "pgdown", "backspace"}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			if got := Key(key).String(); got != key {
				t.Errorf("Key(%q).String() = %q", key, got)
			}
		})
	}

	if Key("alt+1").Type != tea.KeyRunes || !Key("alt+1").Alt {
		t.Error("alt+1 should be an alt-modified rune")
	}
}
