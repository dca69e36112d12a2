// Package store is the persistent key-value layer backing the hydration
// engine. It keeps one flat kv table in a local sqlite file, the single-user
// equivalent of the browser storage the app originally used. Every read falls
// back to a caller-supplied default on missing or unparseable data, and a
// store without a backing database degrades to in-memory defaults instead of
// erroring.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite file at path and bootstraps the
// kv table.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	kvTable := `
 CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
 );`
	if _, err := db.Exec(kvTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &Store{db: db}, nil
}

// Unavailable builds a store with no backing database. All reads return
// their defaults and all writes are silent no-ops.
func Unavailable() *Store {
	return &Store{}
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Ping() error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store unavailable")
	}
	return s.db.Ping()
}

func (s *Store) get(key string) (string, bool) {
	if s == nil || s.db == nil {
		return "", false
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// GetNumber returns the integer stored under key, or def when the key is
// missing or not numeric.
func (s *Store) GetNumber(key string, def int) int {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// GetString returns the string stored under key, or def when missing.
func (s *Store) GetString(key string, def string) string {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	return raw
}

// GetJSON decodes the JSON blob stored under key into a T, or returns def
// when the key is missing or holds invalid JSON.
func GetJSON[T any](s *Store, key string, def T) T {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("Store: discarding corrupt JSON under %s: %v", key, err)
		return def
	}
	return out
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(key, value string) {
	if s == nil || s.db == nil {
		return
	}
	_, err := s.db.Exec(`
 INSERT INTO kv (key, value) VALUES (?, ?)
 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		log.Printf("Store: failed to persist %s: %v", key, err)
	}
}

// SetNumber writes n under key in the same decimal form GetNumber reads.
func (s *Store) SetNumber(key string, n int) {
	s.Set(key, strconv.Itoa(n))
}

// SetJSON marshals v and writes it under key.
func (s *Store) SetJSON(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("Store: failed to encode %s: %v", key, err)
		return
	}
	s.Set(key, string(raw))
}
