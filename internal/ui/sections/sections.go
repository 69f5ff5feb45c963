// Package sections renders the dashboard page sections.
//
// Every section renders to plain lines for a given width. Pinned sections
// fill exactly one viewport height and also receive their pin progress in
// [0,1]; flowing sections render at their natural height.
package sections

import (
	"time"

	"github.com/dirkx/dirkx/internal/content"
	"github.com/dirkx/dirkx/internal/market"
	"github.com/dirkx/dirkx/internal/telemetry"
	"github.com/dirkx/dirkx/internal/ui/render"
)

// Section IDs in document order.
const (
	Boot      = "boot"
	Dashboard = "dashboard"
	Markets   = "markets"
	Console   = "console"
	Networks  = "networks"
	Log       = "log"
	Status    = "status"
)

// Data is the read-only model every section renders from.
type Data struct {
	NodeName  string
	Now       time.Time
	Content   *content.Content
	Market    market.Snapshot
	Telemetry telemetry.State
}

type renderFunc func(d Data, width, height int, progress float64) []string

// Section is one block of the page.
type Section struct {
	ID     string
	Label  string
	Pinned bool
	render renderFunc
}

// Render draws the section. Pinned sections are fitted to exactly height
// lines; height and progress are ignored for flowing sections.
func (s Section) Render(d Data, width, height int, progress float64) []string {
	if width <= 0 {
		return nil
	}
	if d.Content == nil {
		d.Content = &content.Content{}
	}
	lines := s.render(d, width, height, progress)
	if s.Pinned {
		return render.FitLines(lines, width, max(height, 0))
	}
	for i := range lines {
		lines[i] = render.Fit(lines[i], width)
	}
	return lines
}

// All returns the page sections in document order.
func All() []Section {
	return []Section{
		{ID: Boot, Label: "Boot", Pinned: true, render: renderBoot},
		{ID: Dashboard, Label: "Dashboard", Pinned: true, render: renderDashboard},
		{ID: Markets, Label: "Markets", render: flowing(renderMarkets)},
		{ID: Console, Label: "Console", render: flowing(renderConsole)},
		{ID: Networks, Label: "Networks", render: flowing(renderNetworks)},
		{ID: Log, Label: "Log", render: flowing(renderLog)},
		{ID: Status, Label: "Status", render: flowing(renderStatus)},
	}
}

// Lookup finds a section by ID.
func Lookup(id string) (Section, bool) {
	for _, s := range All() {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func flowing(fn func(d Data, width int) []string) renderFunc {
	return func(d Data, width, _ int, _ float64) []string {
		return fn(d, width)
	}
}
