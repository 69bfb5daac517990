// Package storage defines persistence contracts for address-book state.
package storage

import (
	"context"
	"errors"
	"time"
)

// Field length caps enforced by the contacts schema.
const (
	MaxNameLen    = 100
	MaxEmailLen   = 100
	MaxPhoneLen   = 15
	MaxAddressLen = 255
)

// ErrConstraintViolation indicates a contact field broke a schema constraint:
// a length cap was exceeded or a required column was empty. No row is written
// when it is returned.
var ErrConstraintViolation = errors.New("contact constraint violation")

// Contact stores one persisted address-book entry.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

// NewContact carries the submitted fields for one contact insert.
//
// Values are opaque strings; emptiness and length caps are checked by the
// schema, not by callers.
type NewContact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ContactStore persists contact records.
type ContactStore interface {
	CreateContact(ctx context.Context, contact NewContact) (int64, error)
	ListContacts(ctx context.Context) ([]Contact, error)
	Close() error
}
