package access

import (
	"context"
	"fmt"

	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/kozaktomas/aerogate/internal/recognition"
)

// Match is the best-scoring candidate for a query embedding.
type Match struct {
	Member database.Member
	Score  float64 // raw cosine similarity, unrounded
}

// Matcher finds the best-scoring enrolled member for a query embedding.
// Implementations must be deterministic for a fixed store snapshot and
// return ErrNoEnrolledMembers when the member set is empty.
type Matcher interface {
	BestMatch(ctx context.Context, query []float32) (*Match, error)
}

// MemberIndexer is implemented by matchers that maintain their own index and
// need to be told about newly enrolled members.
type MemberIndexer interface {
	Add(member *database.Member)
}

// LinearMatcher is the reference matcher: a brute-force scan over the full
// member set, recomputed on every call. O(n*d) per verification, which is
// fine at the member counts a single gate sees.
type LinearMatcher struct {
	members database.MemberStore
}

// NewLinearMatcher creates a matcher backed by the given member store.
func NewLinearMatcher(members database.MemberStore) *LinearMatcher {
	return &LinearMatcher{members: members}
}

// BestMatch scans every stored member and keeps the strictly best score.
// The strictly-greater comparison over the store's ID-ordered listing means
// the first-encountered candidate wins exact ties.
func (m *LinearMatcher) BestMatch(ctx context.Context, query []float32) (*Match, error) {
	members, err := m.members.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing members: %v", ErrStorage, err)
	}
	if len(members) == 0 {
		return nil, ErrNoEnrolledMembers
	}

	best := Match{Member: members[0], Score: recognition.CosineSimilarity(query, members[0].Embedding)}
	for _, member := range members[1:] {
		score := recognition.CosineSimilarity(query, member.Embedding)
		if score > best.Score {
			best = Match{Member: member, Score: score}
		}
	}

	return &best, nil
}
