package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dirkx/dirkx/internal/boot"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

const bootCardWidth = 60

// hintCutoff hides the scroll hint once the exit animation is underway.
const hintCutoff = 0.7

// renderBoot draws the completed boot card. As the pin progresses the card
// shrinks and fades into the background and a scanline sweeps across.
func renderBoot(d Data, width, height int, progress float64) []string {
	f := boot.Exit(progress)
	t := styles.T()

	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}

	if f.CardOpacity > 0.05 {
		card := bootCard(d, int(float64(min(bootCardWidth, width-2))*f.CardScale), f.CardOpacity)
		top := max((height-len(card))/2, 0)
		for i, l := range card {
			if top+i < height {
				lines[top+i] = render.Center(l, width)
			}
		}
	}

	if progress < hintCutoff && height > 0 {
		hint := lipgloss.NewStyle().Foreground(t.FgSubtle).Render("scroll ↓")
		lines[height-1] = render.Center(hint, width)
	}

	if f.ScanlineOpacity > 0 {
		col := int((f.ScanlineX + 1.1) / 2.2 * float64(width))
		if col >= 0 && col < width {
			glyph := lipgloss.NewStyle().Foreground(styles.Fade(t.Primary, f.ScanlineOpacity/0.35)).Render("┃")
			for i := range lines {
				lines[i] = overlayColumn(lines[i], col, glyph)
			}
		}
	}
	return lines
}

func bootCard(d Data, width int, opacity float64) []string {
	if width < 10 {
		return nil
	}
	t := styles.T()
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(styles.Fade(c, opacity))
	}
	inner := width - 4

	body := []string{
		fg(t.Primary).Bold(true).Render(d.NodeName + " SYSTEM NODE"),
		fg(t.FgMuted).Render("boot sequence complete"),
		"",
	}
	for _, l := range d.Content.Boot {
		body = append(body, fg(t.FgBase).Render(render.Truncate(l, inner)))
	}
	body = append(body,
		"",
		fg(t.Border).Render(render.Separator(inner)),
		fg(t.Primary).Render(render.Meter(1, inner-5))+fg(t.FgMuted).Render(" 100%"),
		fg(t.Up).Bold(true).Render("SYSTEM READY"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.Fade(t.BorderFocus, opacity)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(body, "\n"))
	return strings.Split(box, "\n")
}

// overlayColumn replaces the cell at col with glyph, preserving styles on
// both sides.
func overlayColumn(line string, col int, glyph string) string {
	return ansi.Truncate(line, col, "") + glyph + ansi.TruncateLeft(line, col+1, "")
}
