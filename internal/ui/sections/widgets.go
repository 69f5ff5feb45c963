package sections

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

// heading renders "02 // MARKETS" with a gradient, a subtitle and a rule.
func heading(index int, title, subtitle string, width int) []string {
	t := styles.T()
	label := styles.ApplyBoldGradient(fmt.Sprintf("%02d // %s", index, title), t.Primary, t.Secondary)
	lines := []string{"", label}
	if subtitle != "" {
		lines = append(lines, t.S().Muted.Render(subtitle))
	}
	return append(lines, t.S().Subtle.Render(render.Separator(width)), "")
}

// subheading renders a muted uppercase label.
func subheading(text string) string {
	return styles.T().S().Key.Render(strings.ToUpper(text))
}

// panel wraps body lines in a titled border of the given outer width.
func panel(title string, body []string, width int) []string {
	inner := max(width-2, 1)
	lines := make([]string, 0, len(body)+1)
	if title != "" {
		lines = append(lines, styles.T().S().Muted.Render(render.Fit(strings.ToUpper(title), inner)))
	}
	for _, l := range body {
		lines = append(lines, render.Fit(l, inner))
	}
	box := styles.PanelStyle(false).Width(inner).Render(strings.Join(lines, "\n"))
	return strings.Split(box, "\n")
}

// columns splits width into n columns separated by gap.
func columns(width, n, gap int) []int {
	n = max(n, 1)
	w := max((width-gap*(n-1))/n, 1)
	out := make([]int, n)
	for i := range out {
		out[i] = w
	}
	return out
}

// perRow returns how many cards fit side by side.
func perRow(width, want, minCard int) int {
	return max(min(want, width/minCard), 1)
}

// grid lays cards out row by row, cols per row, separated by one space.
func grid(cards [][]string, cols int) []string {
	var out []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		blocks := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				blocks = append(blocks, " ")
			}
			blocks = append(blocks, strings.Join(cards[i], "\n"))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
		out = append(out, strings.Split(row, "\n")...)
	}
	return out
}

// gauge renders a gradient bar for ratio in [0,1].
func gauge(ratio float64, width int, from, to lipgloss.Color) string {
	bar := progress.New(
		progress.WithGradient(string(from), string(to)),
		progress.WithWidth(max(width, 1)),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(max(0, min(1, ratio)))
}

// alignRight pads s on the left to width.
func alignRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// wrap word-wraps plain text to width.
func wrap(text string, width int) []string {
	wrapped := lipgloss.NewStyle().Width(max(width, 1)).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}
