// Package sqlite implements the storage contract on an embedded SQLite
// database via the pure-Go modernc.org/sqlite driver (no CGo, so the
// binary stays cross-compilable).
//
// The default data source is ":memory:", which keeps state volatile and
// process-lifetime-scoped — the same boundary the memory backend has. A
// file path makes state durable, which is opt-in only.
//
// Behavioral parity with the memory backend is deliberate: ids come from
// AUTOINCREMENT (monotonic, never reused), listings order by ascending id,
// and users carry no UNIQUE constraints because createUser performs no
// duplicate check in this system.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"

	"github.com/artifyai/storefront/internal/repository"
)

var _ repository.Storage = (*DB)(nil)

// DB wraps a sql.DB connection pool and implements repository.Storage.
type DB struct {
	conn   *sql.DB
	logger *slog.Logger
}

// New opens the database, runs migrations, and loads the seed gallery if
// the artworks table is empty.
//
// dataSource examples:
//   - ":memory:"           → volatile, the default
//   - "data/artify.db"     → file-backed, persistent
func New(dataSource string, logger *slog.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite", dataSource)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Surface a bad path or permissions problem now rather than on the
	// first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL allows concurrent reads during a write; a no-op for :memory:.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn, logger: logger}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	if err := db.seed(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: seeding gallery: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. For :memory: databases this discards
// all state.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS is idempotent, so
// reopening a file-backed database is safe.
//
// Note the absence of UNIQUE on users.username/users.email: uniqueness is
// a schema-level intent in this system that createUser deliberately does
// not enforce, and both backends must behave identically.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			username   TEXT NOT NULL,
			email      TEXT NOT NULL,
			password   TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS artworks (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			title          TEXT NOT NULL,
			description    TEXT NOT NULL,
			prompt         TEXT NOT NULL,
			image_url      TEXT NOT NULL,
			style_settings TEXT NOT NULL DEFAULT '{}',
			base_price     INTEGER NOT NULL,
			featured       INTEGER NOT NULL DEFAULT 0,
			style          TEXT NOT NULL DEFAULT '',
			created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_artworks_style ON artworks(style);

		CREATE TABLE IF NOT EXISTS favorites (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    INTEGER NOT NULL,
			artwork_id INTEGER NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_favorites_user_id ON favorites(user_id);

		CREATE TABLE IF NOT EXISTS orders (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    INTEGER NOT NULL,
			artwork_id INTEGER NOT NULL,
			size       TEXT NOT NULL,
			frame      TEXT NOT NULL DEFAULT '',
			price      INTEGER NOT NULL,
			status     TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// seed loads the initial gallery exactly once: only when the artworks
// table is empty, so reopening a file-backed database does not duplicate
// the seed set.
func (db *DB) seed() error {
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM artworks`).Scan(&count); err != nil {
		return fmt.Errorf("counting artworks: %w", err)
	}
	if count > 0 {
		return nil
	}

	ctx := context.Background()
	for _, in := range repository.SeedArtworks() {
		if _, err := db.CreateArtwork(ctx, in); err != nil {
			return err
		}
	}
	db.logger.Info("seeded gallery", slog.Int("artworks", len(repository.SeedArtworks())))
	return nil
}
