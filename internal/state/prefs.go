package state

import (
	"database/sql"
	"errors"
	"time"
)

// Prefs are the UI settings that survive a restart.
type Prefs struct {
	ActiveSection    string
	SidebarCollapsed bool
	UpdatedAt        time.Time
}

func getPrefs(db *sql.DB) (*Prefs, error) {
	row := db.QueryRow(`
		SELECT active_section, sidebar_collapsed, updated_at
		FROM ui_prefs WHERE id = 1
	`)

	var activeSection sql.NullString
	var sidebarCollapsed sql.NullInt64
	var updatedAt int64

	err := row.Scan(&activeSection, &sidebarCollapsed, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved prefs is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &Prefs{
		ActiveSection:    nullString(activeSection),
		SidebarCollapsed: nullBool(sidebarCollapsed),
		UpdatedAt:        time.Unix(updatedAt, 0),
	}, nil
}

func savePrefs(db *sql.DB, p Prefs, now time.Time) error {
	_, err := db.Exec(`
		INSERT INTO ui_prefs (id, active_section, sidebar_collapsed, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			active_section = excluded.active_section,
			sidebar_collapsed = excluded.sidebar_collapsed,
			updated_at = excluded.updated_at
	`, p.ActiveSection, boolInt(p.SidebarCollapsed), now.Unix())

	return err
}
