// Package sqlite provides a SQLite-backed contact storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/contactbook/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/contactbook/internal/storage"
	"github.com/louisbranch/contactbook/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists contacts in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite contact store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateContact inserts one contact row and returns the assigned id.
//
// Field values are stored as submitted; the schema rejects empty or
// over-length values with storage.ErrConstraintViolation.
func (s *Store) CreateContact(ctx context.Context, contact storage.NewContact) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contacts (name, email, phone, address, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Address,
		toMillis(time.Now()),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, storage.ErrConstraintViolation
		}
		return 0, fmt.Errorf("create contact: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("contact insert id: %w", err)
	}
	return id, nil
}

// ListContacts returns every stored contact ordered by ascending id.
func (s *Store) ListContacts(ctx context.Context) ([]storage.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, phone, address, created_at
		   FROM contacts
		  ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]storage.Contact, 0)
	for rows.Next() {
		var contact storage.Contact
		var createdAt int64
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.Address,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("list contacts: %w", err)
		}
		contact.CreatedAt = fromMillis(createdAt)
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK, sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "constraint failed") &&
		strings.Contains(message, "contacts.")
}

var _ storage.ContactStore = (*Store)(nil)
