// Package mock provides in-memory implementations of the store interfaces for testing.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/kozaktomas/aerogate/internal/database"
)

// MemberStore is an in-memory database.MemberStore. It enforces the passport
// uniqueness constraint the way the real store does: atomically at insert.
type MemberStore struct {
	mu      sync.RWMutex
	members []database.Member
	nextID  int64

	// Error injection
	InsertError error
	ListError   error
	CountError  error
}

// NewMemberStore creates a new empty in-memory member store.
func NewMemberStore() *MemberStore {
	return &MemberStore{nextID: 1}
}

// Insert persists a member, assigning an ID and creation timestamp.
func (m *MemberStore) Insert(ctx context.Context, member *database.Member) (int64, error) {
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.members {
		if m.members[i].Passport == member.Passport {
			return 0, database.ErrDuplicatePassport
		}
	}

	member.ID = m.nextID
	member.CreatedAt = time.Now()
	m.nextID++
	m.members = append(m.members, *member)
	return member.ID, nil
}

// ListAll returns all members in insertion (ID) order.
func (m *MemberStore) ListAll(ctx context.Context) ([]database.Member, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]database.Member, len(m.members))
	copy(out, m.members)
	return out, nil
}

// Count returns the number of stored members.
func (m *MemberStore) Count(ctx context.Context) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.members), nil
}

// LogStore is an in-memory database.AccessLogStore.
type LogStore struct {
	mu      sync.RWMutex
	entries []database.AccessLogEntry
	nextID  int64

	// Error injection
	AppendError error
	ListError   error
}

// NewLogStore creates a new empty in-memory log store.
func NewLogStore() *LogStore {
	return &LogStore{nextID: 1}
}

// Append writes one entry, assigning an ID and timestamp.
func (l *LogStore) Append(ctx context.Context, entry *database.AccessLogEntry) error {
	if l.AppendError != nil {
		return l.AppendError
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.ID = l.nextID
	entry.CreatedAt = time.Now()
	l.nextID++
	l.entries = append(l.entries, *entry)
	return nil
}

// ListAll returns entries newest-first by ID.
func (l *LogStore) ListAll(ctx context.Context) ([]database.AccessLogEntry, error) {
	if l.ListError != nil {
		return nil, l.ListError
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]database.AccessLogEntry, len(l.entries))
	for i := range l.entries {
		out[len(l.entries)-1-i] = l.entries[i]
	}
	return out, nil
}

// Len returns the number of stored entries.
func (l *LogStore) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
