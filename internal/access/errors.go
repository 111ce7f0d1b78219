// Package access implements the enrollment and verification core: input
// validation, best-match search over the enrolled set, the grant/deny
// decision, and the audit trail of every attempt.
package access

import (
	"errors"

	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/kozaktomas/aerogate/internal/recognition"
)

// Failure taxonomy. Every enrollment or verification failure maps to exactly
// one of these and is recovered at the workflow boundary; none of them
// propagate to callers as unhandled faults.
var (
	// ErrNoFaceDetected: the extractor found no face in the image.
	ErrNoFaceDetected = recognition.ErrNoFaceDetected

	// ErrInvalidDateFormat: the expiry string matched none of the accepted layouts.
	ErrInvalidDateFormat = errors.New("invalid expiry date format")

	// ErrAlreadyExpired: the parsed expiry date is strictly before today.
	ErrAlreadyExpired = errors.New("membership already expired")

	// ErrDuplicatePassport: the store's uniqueness constraint rejected the insert.
	ErrDuplicatePassport = database.ErrDuplicatePassport

	// ErrStorage: any other persistence failure. Detail stays server-side.
	ErrStorage = errors.New("storage failure")

	// ErrNoEnrolledMembers: verification ran against an empty member set.
	ErrNoEnrolledMembers = errors.New("no members enrolled")
)
