package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const stateFileName = "state.sqlite"

// Store locates the on-disk state directory (default ~/.hackmatch). Only
// small UI state lives there; entity data is seeded fresh every session.
type Store struct {
	Dir string
}

// DefaultDir resolves the state directory: HACKMATCH_HOME if set,
// otherwise ~/.hackmatch.
func DefaultDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("HACKMATCH_HOME")); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hackmatch"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) statePath() string {
	return filepath.Join(s.Dir, stateFileName)
}

// UIState stores small, user-facing UI state for restoring the last screen
// on relaunch. It is intentionally "best effort": callers should tolerate
// missing/invalid data.
type UIState struct {
	Version int `json:"version"`

	// Screen is one of: chats|teams|discover|profile|settings
	Screen string `json:"screen,omitempty"`

	OpenConversationID string `json:"openConversationId,omitempty"`
	OpenTeamID         string `json:"openTeamId,omitempty"`
	OpenPersonID       string `json:"openPersonId,omitempty"`

	// DiscoverCategory is the last selected filter chip label.
	DiscoverCategory string `json:"discoverCategory,omitempty"`
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.statePath())
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage.
	// WAL enables one writer + many readers; busy_timeout helps avoid "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS ui_state (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// LoadUIState reads the persisted UI state. A blank Dir, missing database,
// or corrupted row all yield a fresh default state rather than an error.
func (s Store) LoadUIState(ctx context.Context) (*UIState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &UIState{Version: 1}, nil
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var js string
	err = db.QueryRowContext(ctx, `SELECT v FROM ui_state WHERE k = ?`, "ui").Scan(&js)
	if err != nil {
		return &UIState{Version: 1}, nil
	}
	var st UIState
	if err := json.Unmarshal([]byte(js), &st); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return &UIState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func (s Store) SaveUIState(ctx context.Context, st *UIState) error {
	if st == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO ui_state(k, v) VALUES(?, ?)`, "ui", string(b))
	return err
}
