package state

// Mock is a test double for Manager.
type Mock struct {
	Prefs  *Prefs
	Saved  []Prefs
	Closed bool
	Err    error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SavePrefs(p Prefs) {
	m.Saved = append(m.Saved, p)
}

func (m *Mock) GetPrefs() (*Prefs, error) {
	return m.Prefs, m.Err
}

func (m *Mock) Close() error {
	m.Closed = true
	return nil
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
