package sections

import (
	"fmt"
	"strings"

	"github.com/dirkx/dirkx/internal/ui/render"
	"github.com/dirkx/dirkx/internal/ui/styles"
)

func renderNetworks(d Data, width int) []string {
	s := styles.T().S()
	c := d.Content

	lines := heading(4, "OPEN NETWORKS", fmt.Sprintf("%d curated resources", len(c.Networks)), width)

	nameW := min(24, width/3)
	for i, cat := range c.Categories() {
		if i > 0 {
			lines = append(lines, "")
		}
		res := c.InCategory(cat)
		lines = append(lines, subheading(cat)+s.Subtle.Render(fmt.Sprintf(" (%d)", len(res))))
		for _, r := range res {
			lines = append(lines, s.Title.Render(render.TruncateAndPad(r.Name, nameW))+
				s.Muted.Render(render.Truncate(r.Description, max(width-nameW, 0))))
			link := strings.Repeat(" ", nameW) + s.Key.Render(r.URL)
			if len(r.Tags) > 0 {
				link += s.Subtle.Render("  #" + strings.Join(r.Tags, " #"))
			}
			lines = append(lines, link)
		}
	}
	return lines
}
