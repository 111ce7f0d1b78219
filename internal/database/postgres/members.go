package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// MemberRepository provides PostgreSQL-backed member storage.
type MemberRepository struct {
	pool *Pool
}

// NewMemberRepository creates a new PostgreSQL member repository.
func NewMemberRepository(pool *Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// Insert persists a new member. The passport uniqueness constraint is
// enforced by the database atomically with the insert; a violation surfaces
// as database.ErrDuplicatePassport. A failed insert leaves no row behind.
func (r *MemberRepository) Insert(ctx context.Context, member *database.Member) (int64, error) {
	query := `
		INSERT INTO members (uid, name, email, passport, expiry, embedding)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		member.UID,
		member.Name,
		member.Email,
		member.Passport,
		member.Expiry,
		pgvector.NewVector(member.Embedding),
	).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, database.ErrDuplicatePassport
		}
		return 0, fmt.Errorf("insert member: %w", err)
	}

	return member.ID, nil
}

// ListAll returns every enrolled member in ID order, embeddings included.
func (r *MemberRepository) ListAll(ctx context.Context) ([]database.Member, error) {
	query := `
		SELECT id, uid, name, email, passport, expiry, embedding, created_at
		FROM members
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	var members []database.Member
	for rows.Next() {
		var m database.Member
		var vec pgvector.Vector
		if err := rows.Scan(&m.ID, &m.UID, &m.Name, &m.Email, &m.Passport, &m.Expiry, &vec, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.Embedding = vec.Slice()
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

// Count returns the total number of enrolled members.
func (r *MemberRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM members").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return count, nil
}
