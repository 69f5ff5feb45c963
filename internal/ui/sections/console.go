package sections

import (
	"fmt"
	"strings"

	"github.com/dirkx/dirkx/internal/icons"
	"github.com/dirkx/dirkx/internal/telemetry"
	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

func renderConsole(d Data, width int) []string {
	s := styles.T().S()

	lines := heading(3, "SYSTEM CONSOLE", "utilities and service health", width)

	prompt := s.Up.Render("root@"+strings.ToLower(d.NodeName)) + s.Muted.Render(":~$ ") + s.Base.Render("ls /opt/tools")
	lines = append(lines, prompt)

	nameW := 0
	for _, tool := range d.Content.Tools {
		nameW = max(nameW, len(tool.Name))
	}
	for _, tool := range d.Content.Tools {
		lines = append(lines, s.Key.Render("▸ ")+s.Title.Render(render.Pad(tool.Name, nameW+2))+s.Muted.Render(tool.Description))
	}
	if len(d.Content.Tools) == 0 {
		lines = append(lines, s.Subtle.Render("no tools installed"))
	}

	lines = append(lines, "", subheading("Services"))
	lines = append(lines, serviceRows(telemetry.Services(), width)...)
	return lines
}

func serviceRows(services []telemetry.Service, width int) []string {
	s := styles.T().S()
	rows := make([]string, 0, len(services))
	for _, svc := range services {
		state := s.Up.Render(icons.Online() + " ONLINE")
		if !svc.Online {
			state = s.Down.Render(icons.Online() + " OFFLINE")
		}
		right := s.Muted.Render(fmt.Sprintf("%4dms  ", svc.Latency.Milliseconds())) + state
		rows = append(rows, render.Row(s.Base.Render(svc.Name), right, min(width, 60)))
	}
	return rows
}
