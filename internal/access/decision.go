package access

import (
	"time"

	"github.com/kozaktomas/aerogate/internal/database"
)

// Decide is the access decision engine: a pure function of the best match,
// the similarity threshold, and the current date. Access is granted iff a
// match exists AND its raw score is at or above the threshold AND the
// matched member's expiry is on or after today. A score of exactly the
// threshold grants; the caller must never round the score before this check.
func Decide(match *Match, threshold float64, now time.Time) string {
	if match == nil {
		return database.VerdictDenied
	}
	if match.Score < threshold {
		return database.VerdictDenied
	}
	if dateOnly(match.Member.Expiry).Before(dateOnly(now)) {
		return database.VerdictDenied
	}
	return database.VerdictGranted
}
