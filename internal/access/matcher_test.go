package access

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/kozaktomas/aerogate/internal/database/mock"
)

// enroll inserts a member with the given embedding directly into the store.
func enroll(t *testing.T, store *mock.MemberStore, name, passport string, embedding []float32) database.Member {
	t.Helper()
	member := database.Member{
		UID:       passport + "-uid",
		Name:      name,
		Passport:  passport,
		Expiry:    time.Now().AddDate(1, 0, 0),
		Embedding: embedding,
	}
	if _, err := store.Insert(context.Background(), &member); err != nil {
		t.Fatalf("failed to insert member %s: %v", name, err)
	}
	return member
}

func TestLinearMatcherEmptyStore(t *testing.T) {
	matcher := NewLinearMatcher(mock.NewMemberStore())
	_, err := matcher.BestMatch(context.Background(), []float32{1, 0})
	if !errors.Is(err, ErrNoEnrolledMembers) {
		t.Fatalf("expected ErrNoEnrolledMembers, got %v", err)
	}
}

func TestLinearMatcherPicksBest(t *testing.T) {
	store := mock.NewMemberStore()
	enroll(t, store, "Far", "P-1", []float32{0, 1})
	enroll(t, store, "Near", "P-2", []float32{0.8, 0.6})
	enroll(t, store, "Exact", "P-3", []float32{1, 0})

	match, err := NewLinearMatcher(store).BestMatch(context.Background(), []float32{1, 0})
	if err != nil {
		t.Fatalf("BestMatch failed: %v", err)
	}
	if match.Member.Name != "Exact" {
		t.Errorf("expected best match 'Exact', got %q", match.Member.Name)
	}
	if math.Abs(match.Score-1.0) > 1e-9 {
		t.Errorf("expected score 1.0, got %v", match.Score)
	}
}

func TestLinearMatcherTieBreakFirstWins(t *testing.T) {
	store := mock.NewMemberStore()
	enroll(t, store, "First", "P-1", []float32{1, 0})
	enroll(t, store, "Second", "P-2", []float32{1, 0})

	match, err := NewLinearMatcher(store).BestMatch(context.Background(), []float32{1, 0})
	if err != nil {
		t.Fatalf("BestMatch failed: %v", err)
	}
	if match.Member.Name != "First" {
		t.Errorf("first-encountered candidate must win exact ties, got %q", match.Member.Name)
	}
}

func TestLinearMatcherDeterministic(t *testing.T) {
	store := mock.NewMemberStore()
	enroll(t, store, "A", "P-1", []float32{0.6, 0.8})
	enroll(t, store, "B", "P-2", []float32{0.8, 0.6})
	matcher := NewLinearMatcher(store)
	query := []float32{0.7, 0.7}

	first, err := matcher.BestMatch(context.Background(), query)
	if err != nil {
		t.Fatalf("BestMatch failed: %v", err)
	}
	for range 10 {
		again, err := matcher.BestMatch(context.Background(), query)
		if err != nil {
			t.Fatalf("BestMatch failed: %v", err)
		}
		if again.Member.ID != first.Member.ID || again.Score != first.Score {
			t.Fatalf("matcher is not deterministic: got (%d, %v) then (%d, %v)",
				first.Member.ID, first.Score, again.Member.ID, again.Score)
		}
	}
}

func TestLinearMatcherRoundTripSelfSimilarity(t *testing.T) {
	// An embedding stored at enrollment, matched against itself, scores 1.0.
	store := mock.NewMemberStore()
	embedding := []float32{0.267261, 0.534522, 0.801784}
	enroll(t, store, "Self", "P-1", embedding)

	match, err := NewLinearMatcher(store).BestMatch(context.Background(), embedding)
	if err != nil {
		t.Fatalf("BestMatch failed: %v", err)
	}
	if math.Abs(match.Score-1.0) > 1e-6 {
		t.Errorf("expected self-similarity 1.0, got %v", match.Score)
	}
}

func TestLinearMatcherStoreError(t *testing.T) {
	store := mock.NewMemberStore()
	store.ListError = errors.New("connection refused")

	_, err := NewLinearMatcher(store).BestMatch(context.Background(), []float32{1, 0})
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
