// Package gpkg is a minimal OGC GeoPackage feature store: enough of the
// container format to create a polygon feature class, append rows, and read
// them back. A GeoPackage is a SQLite database with well-known metadata
// tables and a binary geometry encoding.
package gpkg

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	_ "modernc.org/sqlite"
)

// Store is an open GeoPackage container.
type Store struct {
	*sql.DB
	path string
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validIdent reports whether name is safe to splice into SQL as an
// identifier (table or column name).
func validIdent(name string) bool {
	return identPattern.MatchString(name)
}

func openDB(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geopackage: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Create opens the GeoPackage at path, creating the file and the core
// metadata tables when missing. The parent directory must already exist;
// a missing parent is an invalid destination, not something to mkdir over.
func Create(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("invalid destination path %s: parent directory does not exist", path)
	}

	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	s := &Store{DB: sqlDB, path: path}
	if err := s.ensureBaseSchema(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to initialize geopackage: %w", err)
	}
	return s, nil
}

// Open opens an existing GeoPackage. Unlike Create it refuses to make a new
// file.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("geopackage not found: %s", path)
	}

	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	s := &Store{DB: sqlDB, path: path}
	if err := s.ensureBaseSchema(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to initialize geopackage: %w", err)
	}
	return s, nil
}

// ensureBaseSchema creates the gpkg core tables if this is a fresh file.
func (s *Store) ensureBaseSchema() error {
	var tableName string
	err := s.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='gpkg_contents'",
	).Scan(&tableName)

	if err == sql.ErrNoRows {
		_, err = s.Exec(baseSchema)
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	return nil
}

// Path returns the container file path.
func (s *Store) Path() string {
	return s.path
}
