package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 5, ""},
		{"control characters removed", "Bit\x07coin", 10, "Bitcoin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"tab\tkept", "tab\tkept"},
		{"nbsp\u00a0space", "nbsp space"},
		{"bad\xffbyte", "badbyte"},
		{"line\nbreak", "linebreak"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.input); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"BTC", 6, "BTC   "},
		{"Ethereum", 6, "Eth..."},
		{"", 3, "   "},
	}
	for _, tt := range tests {
		if got := TruncateAndPad(tt.input, tt.width); got != tt.want {
			t.Errorf("TruncateAndPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("markets")

	got := Fit(styled, 4)
	if ansi.StringWidth(got) != 4 || ansi.Strip(got) != "mark" {
		t.Errorf("Fit cut = %q", ansi.Strip(got))
	}

	got = Fit(styled, 10)
	if ansi.StringWidth(got) != 10 || ansi.Strip(got) != "markets   " {
		t.Errorf("Fit pad = %q", ansi.Strip(got))
	}

	if Fit("x", 0) != "" {
		t.Error("Fit to zero width should be empty")
	}
}

func TestFitLines(t *testing.T) {
	got := FitLines([]string{"a", "bbbbbb"}, 3, 4)
	want := []string{"a  ", "bbb", "   ", "   "}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("FitLines = %q, want %q", got, want)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("abc", 6); got != " abc  " {
		t.Errorf("Center odd = %q", got)
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 15)
	if got != "left      right" {
		t.Errorf("Row = %q", got)
	}
	got = Row("left", "right", 5)
	if got != "left right" {
		t.Errorf("Row minimum gap = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 8); got != "▁▂▃▄▅▆▇█" {
		t.Errorf("Sparkline = %q", got)
	}
	if got := Sparkline([]float64{5, 5, 5}, 10); got != "▅▅▅" {
		t.Errorf("flat Sparkline = %q", got)
	}
	if got := []rune(Sparkline(make([]float64, 100), 20)); len(got) != 20 {
		t.Errorf("resampled length = %d, want 20", len(got))
	}
	if Sparkline(nil, 10) != "" {
		t.Error("empty series should render nothing")
	}
}

func TestMeter(t *testing.T) {
	if got := Meter(0.5, 4); got != "██░░" {
		t.Errorf("Meter(0.5) = %q", got)
	}
	if got := Meter(2, 3); got != "███" {
		t.Errorf("Meter clamps = %q", got)
	}
}
