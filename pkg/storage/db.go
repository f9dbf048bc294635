package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

type DB struct {
	Conn *sql.DB
}

func NewDB(conn *sql.DB) *DB {
	return &DB{Conn: conn}
}

// EnsureSchema создаёт таблицы избранного, если их ещё нет.
// Ключи уникальности совпадают с ключами слияния пресетов: url и token.
func (db *DB) EnsureSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS saved_communities (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			url TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS saved_tokens (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			token TEXT NOT NULL UNIQUE
		)`,
	}
	for _, q := range queries {
		if _, err := db.Conn.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
