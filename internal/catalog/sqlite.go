package catalog

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

// SQLiteStore backs the same three lookups as Store with an in-memory
// SQLite database instead of Go maps: a real indexed store for a catalog
// that, for a full item set, can run into the tens of thousands of rows.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore creates a fresh in-memory SQLite database, loads items
// into it, and builds indices on id, internal_name, and name.
func OpenSQLiteStore(items []ItemMeta) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory catalog database")
	}

	const schema = `
		CREATE TABLE items (
			id INTEGER PRIMARY KEY,
			internal_name TEXT NOT NULL,
			name TEXT NOT NULL,
			max_stack INTEGER NOT NULL
		);
		CREATE INDEX idx_items_internal_name ON items(internal_name);
		CREATE INDEX idx_items_name ON items(name);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating catalog schema")
	}

	stmt, err := db.Prepare(`INSERT INTO items(id, internal_name, name, max_stack) VALUES (?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "preparing catalog insert")
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.Exec(item.ID, item.InternalName, item.Name, item.MaxStack); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "inserting item %d", item.ID)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) IDByInternalName(name string) (int32, bool) {
	var id int32
	err := s.db.QueryRow(`SELECT id FROM items WHERE internal_name = ?`, name).Scan(&id)
	return id, err == nil
}

func (s *SQLiteStore) InternalNameByID(id int32) (string, bool) {
	var name string
	err := s.db.QueryRow(`SELECT internal_name FROM items WHERE id = ?`, id).Scan(&name)
	return name, err == nil
}

func (s *SQLiteStore) IDByDisplayName(name string) (int32, bool) {
	var id int32
	err := s.db.QueryRow(`SELECT id FROM items WHERE name = ?`, name).Scan(&id)
	return id, err == nil
}

func (s *SQLiteStore) DisplayNameByID(id int32) (string, bool) {
	var name string
	err := s.db.QueryRow(`SELECT name FROM items WHERE id = ?`, id).Scan(&name)
	return name, err == nil
}
