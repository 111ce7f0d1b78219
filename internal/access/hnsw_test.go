package access

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kozaktomas/aerogate/internal/database"
)

func hnswMember(id int64, name string, embedding []float32) database.Member {
	return database.Member{
		ID:        id,
		UID:       name + "-uid",
		Name:      name,
		Passport:  name,
		Expiry:    time.Now().AddDate(1, 0, 0),
		Embedding: embedding,
	}
}

func TestHNSWMatcherEmpty(t *testing.T) {
	matcher := NewHNSWMatcher()
	_, err := matcher.BestMatch(context.Background(), []float32{1, 0})
	if !errors.Is(err, ErrNoEnrolledMembers) {
		t.Fatalf("expected ErrNoEnrolledMembers, got %v", err)
	}

	matcher.Build(nil)
	_, err = matcher.BestMatch(context.Background(), []float32{1, 0})
	if !errors.Is(err, ErrNoEnrolledMembers) {
		t.Fatalf("expected ErrNoEnrolledMembers after empty build, got %v", err)
	}
}

func TestHNSWMatcherFindsNearest(t *testing.T) {
	matcher := NewHNSWMatcher()
	matcher.Build([]database.Member{
		hnswMember(1, "A", []float32{0, 1, 0}),
		hnswMember(2, "B", []float32{0.8, 0.6, 0}),
		hnswMember(3, "C", []float32{1, 0, 0}),
	})

	match, err := matcher.BestMatch(context.Background(), []float32{1, 0, 0})
	if err != nil {
		t.Fatalf("BestMatch failed: %v", err)
	}
	if match.Member.Name != "C" {
		t.Errorf("expected nearest member 'C', got %q", match.Member.Name)
	}
	if math.Abs(match.Score-1.0) > 1e-6 {
		t.Errorf("expected exact cosine score 1.0, got %v", match.Score)
	}
}

func TestHNSWMatcherAdd(t *testing.T) {
	matcher := NewHNSWMatcher()
	matcher.Build([]database.Member{hnswMember(1, "A", []float32{0, 1, 0})})

	added := hnswMember(2, "B", []float32{1, 0, 0})
	matcher.Add(&added)

	if matcher.Count() != 2 {
		t.Fatalf("expected 2 indexed members, got %d", matcher.Count())
	}

	match, err := matcher.BestMatch(context.Background(), []float32{1, 0, 0})
	if err != nil {
		t.Fatalf("BestMatch failed: %v", err)
	}
	if match.Member.Name != "B" {
		t.Errorf("expected newly added member 'B' to match, got %q", match.Member.Name)
	}
}

func TestHNSWMatcherAgreesWithLinear(t *testing.T) {
	members := []database.Member{
		hnswMember(1, "A", []float32{0.9938838, 0.11043153, 0}),
		hnswMember(2, "B", []float32{0.70710677, 0.70710677, 0}),
		hnswMember(3, "C", []float32{0, 0.9486833, 0.31622776}),
		hnswMember(4, "D", []float32{0.26726124, 0.5345225, 0.8017837}),
	}

	hnswMatcher := NewHNSWMatcher()
	hnswMatcher.Build(members)

	queries := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.57735026, 0.57735026, 0.57735026},
	}

	for _, query := range queries {
		// Reference: exact scan over the same member set.
		var best *Match
		for i := range members {
			score := cosine(query, members[i].Embedding)
			if best == nil || score > best.Score {
				best = &Match{Member: members[i], Score: score}
			}
		}

		got, err := hnswMatcher.BestMatch(context.Background(), query)
		if err != nil {
			t.Fatalf("BestMatch failed: %v", err)
		}
		if got.Member.ID != best.Member.ID {
			t.Errorf("query %v: hnsw picked %q, linear scan picked %q",
				query, got.Member.Name, best.Member.Name)
		}
		if math.Abs(got.Score-best.Score) > 1e-6 {
			t.Errorf("query %v: score mismatch hnsw=%v linear=%v", query, got.Score, best.Score)
		}
	}
}

// cosine mirrors recognition.CosineSimilarity for the reference scan.
func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
