// Package db stores emitted poems in a sqlite journal.
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed scripts/*.sql
var schema embed.FS

// Open opens the sqlite journal at path, creating it if needed, and applies
// every schema script in name order. Scripts are idempotent, so opening an
// existing journal leaves its rows alone.
func Open(path string) (*sql.DB, error) {
	names, err := fs.Glob(schema, "scripts/*.sql")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no schema scripts embedded")
	}

	DB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	for _, name := range names {
		script, err := schema.ReadFile(name)
		if err == nil {
			_, err = DB.Exec(string(script))
		}
		if err != nil {
			DB.Close()
			log.Printf("could not apply schema script %s, %v", name, err)
			return nil, fmt.Errorf("apply %s to journal %s: %w", name, path, err)
		}
	}
	log.Printf("opened journal %s", path)
	return DB, nil
}
