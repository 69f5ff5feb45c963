// Package popupctl tracks the modal popups layered over the dashboard.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dirkx/dirkx/internal/ui/about"
	"github.com/dirkx/dirkx/internal/ui/helpbindings"
	"github.com/dirkx/dirkx/internal/ui/popup"
)

// chrome is the border and padding width RenderBordered adds.
const chrome = 6

// Manager manages all modal popups.
type Manager struct {
	popups   map[Type]popup.Popup
	sizes    map[Type]popup.SizeConfig
	errorMsg string
	width    int
	height   int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Help:  popup.SizeAuto,
			About: popup.SizeAbout,
		},
	}
}

// SetSize updates the screen dimensions and resizes visible popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		w, h := p.contentSize(p.sizes[t])
		pop.SetSize(w, h)
	}
}

// IsVisible reports whether the popup type is showing.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Help, About:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns the popup that receives keys, or None.
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type, replacing any previous one.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	w, h := p.contentSize(p.sizes[t])
	pop.SetSize(w, h)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
	case Error:
		p.errorMsg = ""
	case Help, About:
		delete(p.popups, t)
	}
}

func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	}
	w := p.width
	if size.MaxWidth > 0 {
		w = min(w, size.MaxWidth-chrome)
	}
	return w, p.height
}

// ShowHelp displays the key bindings for the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowAbout displays the About dialog.
func (p *Manager) ShowAbout(info about.Info) tea.Cmd {
	m := about.New(info)
	return p.Show(About, &m)
}

// ShowError displays an error message until the next key press.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes a key to the active popup. It reports whether a popup
// consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	pop := p.popups[active]
	if pop == nil {
		return false, nil
	}
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay draws visible popups over base.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		if t == Error {
			base = popup.Compose(base, p.renderError(), p.width, p.height)
			continue
		}
		rendered := popup.RenderBordered(p.popups[t].View(), p.width, p.height, p.sizes[t])
		base = popup.Compose(base, rendered, p.width, p.height)
	}
	return base
}

func (p *Manager) renderError() string {
	d := popup.New()
	d.Title = "Error"
	d.Content = p.errorMsg
	d.Footer = "Press any key to dismiss"
	return d.Render(p.width, p.height)
}
