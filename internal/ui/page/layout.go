package page

import (
	"github.com/dirkx/dirkx/internal/scroll"
	"github.com/dirkx/dirkx/internal/ui/sections"
)

// slot is where one section sits in document space (lines) and in scroll
// space. A pinned section holds the document still for pinLen units of
// scroll before the page moves on.
type slot struct {
	id          string
	pinned      bool
	docStart    int
	docLen      int
	scrollStart float64
	pinLen      float64
}

// region returns the slot's extent in scroll space: the pin hold for pinned
// slots, the section's lines for flowing ones.
func (s slot) region() scroll.Region {
	end := s.scrollStart + float64(s.docLen)
	if s.pinned {
		end = s.scrollStart + s.pinLen
	}
	return scroll.Region{ID: s.id, Start: s.scrollStart, End: end, Pinned: s.pinned}
}

// plan lays sections out one after another. heights holds the rendered
// height of every flowing section; pinned sections take one viewport.
func plan(secs []sections.Section, heights []int, viewport, pinPct int) (slots []slot, docHeight int, distance float64) {
	pinLen := float64(viewport * pinPct / 100)

	var s float64
	var d int
	slots = make([]slot, len(secs))
	for i, sec := range secs {
		sl := slot{id: sec.ID, pinned: sec.Pinned, docStart: d, scrollStart: s}
		if sec.Pinned {
			sl.docLen = viewport
			sl.pinLen = pinLen
			s += pinLen
		} else {
			sl.docLen = heights[i]
		}
		s += float64(sl.docLen)
		d += sl.docLen
		slots[i] = sl
	}

	var holds float64
	for _, sl := range slots {
		holds += sl.pinLen
	}
	return slots, d, float64(max(d-viewport, 0)) + holds
}

// docOffset maps a scroll offset to the first visible document line.
// Scroll spent inside a pin hold does not move the document.
func docOffset(slots []slot, offset float64, maxDoc int) float64 {
	d := offset
	for _, sl := range slots {
		if sl.pinLen == 0 {
			continue
		}
		if offset <= sl.scrollStart {
			break
		}
		d -= min(offset-sl.scrollStart, sl.pinLen)
	}
	return max(0, min(d, float64(maxDoc)))
}

// pinProgress returns how far through its hold a pinned slot is, in [0,1].
func pinProgress(sl slot, offset float64) float64 {
	if sl.pinLen <= 0 {
		return 0
	}
	return max(0, min(1, (offset-sl.scrollStart)/sl.pinLen))
}

// activeAt returns the section whose top has passed the upper third of the
// viewport at document offset doc.
func activeAt(slots []slot, doc float64, viewport int) string {
	if len(slots) == 0 {
		return ""
	}
	probe := doc + float64(viewport)/3
	active := slots[0].id
	for _, sl := range slots {
		if float64(sl.docStart) > probe {
			break
		}
		active = sl.id
	}
	return active
}
