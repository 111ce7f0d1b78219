package database

import "context"

// MemberStore provides access to enrolled members.
type MemberStore interface {
	// Insert persists a new member and returns its assigned ID.
	// Returns ErrDuplicatePassport when the passport is already enrolled;
	// the uniqueness check is atomic with the insert.
	Insert(ctx context.Context, member *Member) (int64, error)
	// ListAll returns every enrolled member in stable ID order,
	// embeddings included.
	ListAll(ctx context.Context) ([]Member, error)
	// Count returns the number of enrolled members.
	Count(ctx context.Context) (int, error)
}

// AccessLogStore is the append-only record of verification attempts.
type AccessLogStore interface {
	// Append writes one entry with a server-assigned timestamp and fills in
	// the entry's ID and CreatedAt.
	Append(ctx context.Context, entry *AccessLogEntry) error
	// ListAll returns all entries newest-first by ID.
	ListAll(ctx context.Context) ([]AccessLogEntry, error)
}
