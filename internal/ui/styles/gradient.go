package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Grapheme clusters keep box-drawing and emoji intact
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	style := lipgloss.NewStyle().Bold(bold)
	if len(clusters) == 1 {
		return style.Foreground(from).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		if strings.TrimSpace(cluster) == "" {
			b.WriteString(cluster)
			continue
		}
		b.WriteString(style.Foreground(colors[i]).Render(cluster))
	}

	return b.String()
}

// Blend returns the color at position t in [0,1] between from and to,
// interpolated in HCL space.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	t = max(0, min(1, t))
	c1 := toColorful(from)
	c2 := toColorful(to)
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// Fade blends c toward the theme background. opacity 1 is c itself,
// opacity 0 is the background.
func Fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	return Blend(T().BgBase, c, opacity)
}

func blendColors(size int, from, to lipgloss.Color) []lipgloss.Color {
	colors := make([]lipgloss.Color, size)
	for i := range size {
		colors[i] = Blend(from, to, float64(i)/float64(size-1))
	}
	return colors
}

func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	// ANSI palette indexes have no fixed RGB value; use neutral gray
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}
