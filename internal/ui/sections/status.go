package sections

import (
	"fmt"

	"github.com/dirkx/dirkx/internal/telemetry"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

const labelWidth = 20

func renderStatus(d Data, width int) []string {
	t := styles.T()
	s := t.S()
	tel := d.Telemetry

	lines := heading(6, "NODE STATUS", "node "+d.NodeName, width)

	for _, m := range tel.Metrics() {
		value := s.Title
		switch m.Trend {
		case telemetry.TrendRising:
			value = s.Up
		case telemetry.TrendCritical:
			value = s.Down
		}
		lines = append(lines, s.Muted.Render(render.Pad(m.Label, labelWidth))+value.Render(m.Value))
	}

	barW := max(min(width-labelWidth-8, 40), 4)
	integrity := (tel.NetworkIntegrity - telemetry.MinIntegrity) / (telemetry.MaxIntegrity - telemetry.MinIntegrity)
	temp := (tel.SystemTemp - telemetry.MinTemp) / (telemetry.MaxTemp - telemetry.MinTemp)
	lines = append(lines,
		"",
		s.Muted.Render(render.Pad("Integrity", labelWidth))+gauge(integrity, barW, t.Down, t.Up)+
			s.Subtle.Render(fmt.Sprintf(" %3.0f%%", integrity*100)),
		s.Muted.Render(render.Pad("Thermal Load", labelWidth))+gauge(temp, barW, t.Up, t.Down)+
			s.Subtle.Render(fmt.Sprintf(" %3.0f%%", temp*100)),
		"",
		subheading("Services"),
	)
	lines = append(lines, serviceRows(telemetry.Services(), width)...)

	stamp := d.Now.UTC().Format("2006-01-02 15:04:05 UTC")
	lines = append(lines, "", s.Subtle.Render(render.Separator(width)),
		render.Center(s.Subtle.Render(d.NodeName+" // "+stamp), width), "")
	return lines
}
