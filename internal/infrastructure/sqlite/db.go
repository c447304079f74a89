package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// The post store and the user store are separate physical databases on
// purpose: posts carry a denormalized author name instead of a cross-store
// foreign key, and neither store can corrupt the other.

const postSchema = `
CREATE TABLE IF NOT EXISTS post (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	subtitle TEXT NOT NULL,
	body TEXT NOT NULL,
	img_url TEXT NOT NULL,
	author_id INTEGER NOT NULL,
	author_name TEXT NOT NULL,
	date TEXT NOT NULL
);
`

const userSchema = `
CREATE TABLE IF NOT EXISTS user (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

type DB struct {
	*sqlx.DB
}

// NewPostDB opens (and if needed creates) the post store.
func NewPostDB(dbPath string) (*DB, error) {
	return open(dbPath, postSchema)
}

// NewUserDB opens (and if needed creates) the user store.
func NewUserDB(dbPath string) (*DB, error) {
	return open(dbPath, userSchema)
}

func open(dbPath, schema string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// WAL mode allows concurrent reads while a write is in flight
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
