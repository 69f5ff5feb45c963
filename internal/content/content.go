// Package content loads the static text shown by the dashboard: boot lines,
// engineering log entries, curated network resources and console tools.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed data/content.yaml
var embedded []byte

// EntryType categorizes an engineering log entry.
type EntryType string

const (
	EntryExperiment  EntryType = "experiment"
	EntryObservation EntryType = "observation"
	EntryBuild       EntryType = "build"
	EntryThought     EntryType = "thought"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	switch t {
	case EntryExperiment, EntryObservation, EntryBuild, EntryThought:
		return true
	}
	return false
}

// LogEntry is one engineering log note.
type LogEntry struct {
	ID      string    `yaml:"id"`
	Date    time.Time `yaml:"date"`
	Title   string    `yaml:"title"`
	Content string    `yaml:"content"`
	Tags    []string  `yaml:"tags"`
	Type    EntryType `yaml:"type"`
}

// Resource is a curated public internet resource.
type Resource struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
}

// Tool is a console utility listing.
type Tool struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Content is the full static content set.
type Content struct {
	Boot     []string   `yaml:"boot"`
	Log      []LogEntry `yaml:"log"`
	Networks []Resource `yaml:"networks"`
	Tools    []Tool     `yaml:"tools"`
}

// ErrInvalidContent is returned when content fails validation.
var ErrInvalidContent = errors.New("invalid content")

// Load parses the embedded content.
func Load() (*Content, error) {
	return Parse(embedded)
}

// Parse decodes and validates a content document. Log entries without an ID
// get one derived from their title, so IDs are stable across runs.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	for i := range c.Log {
		e := &c.Log[i]
		if e.Title == "" {
			return nil, fmt.Errorf("%w: log entry %d has no title", ErrInvalidContent, i)
		}
		if !e.Type.Valid() {
			return nil, fmt.Errorf("%w: log entry %q has type %q", ErrInvalidContent, e.Title, e.Type)
		}
		if e.ID == "" {
			e.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(e.Title)).String()
		}
	}
	for i, r := range c.Networks {
		if r.Name == "" || r.URL == "" {
			return nil, fmt.Errorf("%w: network resource %d needs a name and url", ErrInvalidContent, i)
		}
	}

	// Newest first.
	slices.SortStableFunc(c.Log, func(a, b LogEntry) int {
		return b.Date.Compare(a.Date)
	})
	return &c, nil
}

// Categories returns the network categories in first-seen order.
func (c *Content) Categories() []string {
	var out []string
	for _, r := range c.Networks {
		if !slices.Contains(out, r.Category) {
			out = append(out, r.Category)
		}
	}
	return out
}

// InCategory returns the resources of one category.
func (c *Content) InCategory(category string) []Resource {
	var out []Resource
	for _, r := range c.Networks {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// CountByType tallies log entries per type.
func (c *Content) CountByType() map[EntryType]int {
	out := make(map[EntryType]int, 4)
	for _, e := range c.Log {
		out[e.Type]++
	}
	return out
}
