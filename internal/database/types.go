// Package database defines the durable domain types and store contracts for
// enrolled members and the access log.
package database

import (
	"errors"
	"time"
)

// ErrDuplicatePassport is returned by member stores when an insert collides
// with an already-enrolled passport. Detection happens via the store's own
// uniqueness constraint, never via a check-then-insert.
var ErrDuplicatePassport = errors.New("passport already registered")

// Member is an enrolled identity. Members are created once at enrollment and
// never updated or deleted.
type Member struct {
	ID        int64
	UID       string // public reference, assigned at enrollment
	Name      string
	Email     string // optional
	Passport  string // business key, unique across all members
	Expiry    time.Time
	Embedding []float32 // unit-normalized, fixed dimensionality
	CreatedAt time.Time
}

// Verdict values stored in the access log.
const (
	VerdictGranted = "GRANTED"
	VerdictDenied  = "DENIED"
)

// AccessLogEntry is one verification attempt. Entries are immutable once
// written; there is no update or delete operation.
type AccessLogEntry struct {
	ID         int64
	Name       string // matched member's name, or "UNKNOWN"
	Passport   string // matched member's passport, empty when no match
	Verdict    string // VerdictGranted or VerdictDenied
	Confidence float64 // best score as a 0-100 percentage
	CreatedAt  time.Time // server-assigned at write time
}
