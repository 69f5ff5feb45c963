package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SavePrefs(p Prefs)
	GetPrefs() (*Prefs, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
