package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "dirkx"
	dbFileName   = "dirkx.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	log       *zap.Logger
	debounce  time.Duration
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Prefs
	closed    bool
	writes    sync.WaitGroup // scheduled or running debounced writes
}

// Open opens the prefs database under the XDG data directory.
func Open(log *zap.Logger) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath, log)
}

// OpenPath opens (creating if needed) the prefs database at dbPath.
func OpenPath(dbPath string, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Manager{db: db, log: log, debounce: saveDebounce}, nil
}

// Close flushes any pending prefs, waits for a debounced write that is
// already running and closes the database. Saves after Close are dropped.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	m.closed = true
	m.stopTimer()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// A running write holds older prefs; let it land before the flush.
	m.writes.Wait()
	if pending != nil {
		m.write(*pending)
	}
	return m.db.Close()
}

func (m *Manager) GetPrefs() (*Prefs, error) {
	return getPrefs(m.db)
}

// SavePrefs schedules prefs to be written. Calls within the debounce window
// replace each other; only the last one is written.
func (m *Manager) SavePrefs(p Prefs) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.closed {
		return
	}
	m.pending = &p
	m.stopTimer()

	m.writes.Add(1)
	m.saveTimer = time.AfterFunc(m.debounce, func() {
		defer m.writes.Done()

		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			m.write(*pending)
		}
	})
}

// stopTimer cancels the scheduled write. A timer that already fired owns
// its own Done. Must be called with saveMu held.
func (m *Manager) stopTimer() {
	if m.saveTimer != nil && m.saveTimer.Stop() {
		m.writes.Done()
	}
	m.saveTimer = nil
}

func (m *Manager) write(p Prefs) {
	if err := savePrefs(m.db, p, time.Now()); err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
