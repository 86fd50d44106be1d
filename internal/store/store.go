// Package store keeps painted maps in a SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"biome-painter/internal/climate"
	"biome-painter/internal/core"
)

var (
	// ErrNotFound is returned when no map has the requested name.
	ErrNotFound = errors.New("store: map not found")
	// ErrEmptyName is returned when saving a map without a name.
	ErrEmptyName = errors.New("store: map name is empty")
	// ErrCorrupt is returned when a stored map fails validation.
	ErrCorrupt = errors.New("store: stored map is corrupt")
)

// Map is one saved painting together with the knobs it was classified with.
type Map struct {
	Name     string
	Size     core.Size
	Land     []uint8
	Mountain []uint8
	Knobs    climate.Knobs
	SavedAt  time.Time
}

// Summary describes a saved map without its masks.
type Summary struct {
	Name    string    `db:"name"`
	Width   int       `db:"width"`
	Height  int       `db:"height"`
	SavedAt time.Time `db:"-"`

	SavedAtMillis int64 `db:"saved_at"`
}

type mapRow struct {
	Name          string `db:"name"`
	Width         int    `db:"width"`
	Height        int    `db:"height"`
	Land          []byte `db:"land"`
	Mountain      []byte `db:"mountain"`
	KnobsJSON     string `db:"knobs_json"`
	SavedAtMillis int64  `db:"saved_at"`
}

// DB wraps a SQLite connection holding saved maps.
type DB struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn, now: time.Now}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		name TEXT PRIMARY KEY,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		land BLOB NOT NULL,
		mountain BLOB NOT NULL,
		knobs_json TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes the map, replacing any map with the same name. SavedAt is set
// to the current time.
func (db *DB) Save(m *Map) error {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return ErrEmptyName
	}
	in := climate.Input{Size: m.Size, Land: m.Land, Mountain: m.Mountain}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	knobsJSON, err := json.Marshal(m.Knobs)
	if err != nil {
		return fmt.Errorf("save %q: encode knobs: %w", name, err)
	}

	m.Name = name
	m.SavedAt = db.now().UTC().Truncate(time.Millisecond)
	_, err = db.conn.NamedExec(`INSERT OR REPLACE INTO maps
		(name, width, height, land, mountain, knobs_json, saved_at)
		VALUES (:name, :width, :height, :land, :mountain, :knobs_json, :saved_at)`,
		mapRow{
			Name:          name,
			Width:         m.Size.W,
			Height:        m.Size.H,
			Land:          m.Land,
			Mountain:      m.Mountain,
			KnobsJSON:     string(knobsJSON),
			SavedAtMillis: m.SavedAt.UnixMilli(),
		})
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}

// Load reads the named map. Unknown names return ErrNotFound.
func (db *DB) Load(name string) (*Map, error) {
	var row mapRow
	err := db.conn.Get(&row, "SELECT * FROM maps WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}

	m := &Map{
		Name:     row.Name,
		Size:     core.Size{W: row.Width, H: row.Height},
		Land:     row.Land,
		Mountain: row.Mountain,
		Knobs:    climate.DefaultKnobs(),
		SavedAt:  time.UnixMilli(row.SavedAtMillis).UTC(),
	}
	in := climate.Input{Size: m.Size, Land: m.Land, Mountain: m.Mountain}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("load %q: %w: %v", name, ErrCorrupt, err)
	}
	if err := json.Unmarshal([]byte(row.KnobsJSON), &m.Knobs); err != nil {
		return nil, fmt.Errorf("load %q: %w: knobs: %v", name, ErrCorrupt, err)
	}
	return m, nil
}

// List returns all saved maps ordered by name.
func (db *DB) List() ([]Summary, error) {
	var out []Summary
	err := db.conn.Select(&out, "SELECT name, width, height, saved_at FROM maps ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	for i := range out {
		out[i].SavedAt = time.UnixMilli(out[i].SavedAtMillis).UTC()
	}
	return out, nil
}

// Delete removes the named map. Unknown names return ErrNotFound.
func (db *DB) Delete(name string) error {
	res, err := db.conn.Exec("DELETE FROM maps WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	return nil
}
