// Package palette implements the command palette state machine.
//
// The controller is closed until opened by its hotkey. While open it owns
// the keyboard: it filters a static command list by substring, moves a
// clamped selection and executes the selected command exactly once.
package palette

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Reserved keys.
const (
	KeyToggle = "ctrl+k"
	KeyClose  = "esc"
)

// Command is one palette entry. Action is supplied by the host and is never
// inspected by the controller.
type Command struct {
	ID          string
	Name        string
	Description string
	Keywords    []string
	Shortcut    string
	Action      func() tea.Cmd
}

// matches reports whether the lowercased query is a substring of the
// command's name or description.
func (c Command) matches(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Description), q)
}

// Controller holds the palette state. It is not safe for concurrent use.
type Controller struct {
	commands []Command
	log      *zap.Logger

	open     bool
	query    string
	filtered []Command
	selected int
}

// New creates a closed controller over a static command list.
func New(commands []Command, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	cmds := make([]Command, len(commands))
	copy(cmds, commands)
	return &Controller{
		commands: cmds,
		log:      log,
		filtered: cmds,
	}
}

// IsOpen reports whether the palette is open.
func (c *Controller) IsOpen() bool { return c.open }

// Query returns the current query.
func (c *Controller) Query() string { return c.query }

// SelectedIndex returns the index of the selection in Filtered.
func (c *Controller) SelectedIndex() int { return c.selected }

// Commands returns the full command list.
func (c *Controller) Commands() []Command { return c.commands }

// Filtered returns the commands matching the current query, in list order.
func (c *Controller) Filtered() []Command { return c.filtered }

// Selected returns the highlighted command, if any.
func (c *Controller) Selected() (Command, bool) {
	if c.selected < 0 || c.selected >= len(c.filtered) {
		return Command{}, false
	}
	return c.filtered[c.selected], true
}

// Open shows the palette with an empty query and the full list.
func (c *Controller) Open() {
	c.open = true
	c.query = ""
	c.filtered = c.commands
	c.selected = 0
}

// Close hides the palette and clears the query.
func (c *Controller) Close() {
	c.open = false
	c.query = ""
	c.filtered = c.commands
	c.selected = 0
}

// Toggle opens a closed palette or closes an open one.
func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

// SetQuery refilters the list and resets the selection.
func (c *Controller) SetQuery(q string) {
	c.query = q
	c.selected = 0

	lq := strings.ToLower(q)
	if lq == "" {
		c.filtered = c.commands
		return
	}
	out := make([]Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		if cmd.matches(lq) {
			out = append(out, cmd)
		}
	}
	c.filtered = out
}

// MoveSelection moves the selection by delta, clamped to the list.
func (c *Controller) MoveSelection(delta int) {
	if len(c.filtered) == 0 {
		return
	}
	c.selected = max(0, min(c.selected+delta, len(c.filtered)-1))
}

// Execute runs the selected command's action and closes the palette.
// With nothing selected it does nothing and the palette stays open.
func (c *Controller) Execute() tea.Cmd {
	cmd, ok := c.Selected()
	if !ok {
		return nil
	}
	c.log.Debug("palette execute", zap.String("command", cmd.ID))
	c.Close()
	if cmd.Action == nil {
		return nil
	}
	return cmd.Action()
}

// HandleKey applies a key event. consumed is true when the caller must not
// process the key any further: always while open, and only for the toggle
// key while closed.
func (c *Controller) HandleKey(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	key := msg.String()
	if !c.open {
		if key == KeyToggle {
			c.Open()
			return true, nil
		}
		return false, nil
	}

	switch key {
	case KeyToggle, KeyClose:
		c.Close()
	case "up", "ctrl+p", "shift+tab":
		c.MoveSelection(-1)
	case "down", "ctrl+n", "tab":
		c.MoveSelection(1)
	case "pgup":
		c.MoveSelection(-5)
	case "pgdown":
		c.MoveSelection(5)
	case "home":
		c.MoveSelection(-len(c.filtered))
	case "end":
		c.MoveSelection(len(c.filtered))
	case "enter":
		return true, c.Execute()
	case "backspace":
		if r := []rune(c.query); len(r) > 0 {
			c.SetQuery(string(r[:len(r)-1]))
		}
	case "ctrl+u":
		c.SetQuery("")
	default:
		if !msg.Alt && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) {
			c.SetQuery(c.query + printable(msg.Runes))
		}
	}
	return true, nil
}

// Suggest returns the name of the command closest to the query when nothing
// matches, or "" if the query is empty, something matches or nothing is close.
func (c *Controller) Suggest() string {
	q := strings.ToLower(strings.TrimSpace(c.query))
	if q == "" || len(c.filtered) > 0 {
		return ""
	}
	best, bestDist := "", len(q)/2+1
	for _, cmd := range c.commands {
		candidates := append([]string{strings.ToLower(cmd.Name)}, strings.Fields(strings.ToLower(cmd.Name))...)
		for _, cand := range candidates {
			if d := levenshtein.ComputeDistance(q, cand); d < bestDist {
				best, bestDist = cmd.Name, d
			}
		}
	}
	return best
}

func printable(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
