package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/kozaktomas/aerogate/internal/recognition"
)

// Service wires the extractor, the stores, and the matcher into the two
// operations the gate exposes: enroll and verify. Each call is an
// independent unit of work; the store is the only shared mutable state.
type Service struct {
	extractor recognition.Extractor
	members   database.MemberStore
	logs      database.AccessLogStore
	matcher   Matcher
	threshold float64
	layouts   []string
	now       func() time.Time
}

// NewService creates the access service. The extractor is an injected
// dependency, never package-level state, so tests can swap in doubles.
func NewService(
	extractor recognition.Extractor,
	members database.MemberStore,
	logs database.AccessLogStore,
	matcher Matcher,
	threshold float64,
	dateLayouts []string,
) *Service {
	if len(dateLayouts) == 0 {
		dateLayouts = DefaultDateLayouts
	}
	return &Service{
		extractor: extractor,
		members:   members,
		logs:      logs,
		matcher:   matcher,
		threshold: threshold,
		layouts:   dateLayouts,
		now:       time.Now,
	}
}

// EnrollRequest carries the registration input.
type EnrollRequest struct {
	Name     string
	Email    string
	Passport string
	Expiry   string
	Image    []byte
}

// Enrollment is the result of a successful enrollment.
type Enrollment struct {
	MemberID  int64
	MemberUID string
}

// Enroll validates a registration and persists the new member. Steps run in
// a fixed order and the first failure wins: face extraction, expiry parsing,
// expiry-in-future, insert. Duplicate passports are detected by the store's
// uniqueness constraint during the insert, not by a pre-check, so two
// concurrent enrollments of the same passport cannot race past each other.
// A failed enrollment leaves no row behind.
func (s *Service) Enroll(ctx context.Context, req EnrollRequest) (*Enrollment, error) {
	embedding, err := s.extractor.Extract(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	expiry, err := ParseExpiryDate(req.Expiry, s.layouts)
	if err != nil {
		return nil, err
	}

	if dateOnly(expiry).Before(dateOnly(s.now())) {
		return nil, ErrAlreadyExpired
	}

	member := &database.Member{
		UID:       uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Passport:  database.NormalizePassport(req.Passport),
		Expiry:    expiry,
		Embedding: embedding,
	}

	id, err := s.members.Insert(ctx, member)
	if err != nil {
		if errors.Is(err, database.ErrDuplicatePassport) {
			return nil, ErrDuplicatePassport
		}
		return nil, fmt.Errorf("%w: inserting member: %v", ErrStorage, err)
	}

	// Keep index-maintaining matchers in sync with the store.
	if indexer, ok := s.matcher.(MemberIndexer); ok {
		indexer.Add(member)
	}

	return &Enrollment{MemberID: id, MemberUID: member.UID}, nil
}

// VerifyResult is the outcome of a verification that reached the matcher.
type VerifyResult struct {
	Verdict string           // database.VerdictGranted or database.VerdictDenied
	Member  *database.Member // best-scoring candidate, named in the log even on denial
	Score   float64          // raw cosine similarity, unrounded
}

// Verify matches the presented face against all enrolled members, decides,
// and appends exactly one audit entry. The best candidate's identity is
// logged even when the verdict is a denial, so near-misses stay auditable.
// Extraction failures and an empty member set return an error without
// writing a log entry; that policy lives here and nowhere else.
func (s *Service) Verify(ctx context.Context, image []byte) (*VerifyResult, error) {
	embedding, err := s.extractor.Extract(ctx, image)
	if err != nil {
		return nil, err
	}

	match, err := s.matcher.BestMatch(ctx, embedding)
	if err != nil {
		return nil, err
	}

	verdict := Decide(match, s.threshold, s.now())

	// BestMatch returned without error, so a candidate exists; its identity
	// goes into the log regardless of the verdict.
	entry := database.AccessLogEntry{
		Name:       match.Member.Name,
		Passport:   match.Member.Passport,
		Verdict:    verdict,
		Confidence: match.Score * 100,
	}
	if err := s.logs.Append(ctx, &entry); err != nil {
		return nil, fmt.Errorf("%w: appending access log: %v", ErrStorage, err)
	}

	return &VerifyResult{
		Verdict: verdict,
		Member:  &match.Member,
		Score:   match.Score,
	}, nil
}

// SetClock overrides the service's time source. Tests use it to pin "today"
// for expiry comparisons.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Threshold returns the similarity threshold the service decides with.
func (s *Service) Threshold() float64 {
	return s.threshold
}
