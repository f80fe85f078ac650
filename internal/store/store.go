// Package store defines the Entity Store contract shared by the relational
// (gormstore) and document (mongostore) adapters. The check-in recorder and
// the reporting services are written once against this interface; uniqueness
// guarantees live in the store, not in application memory, so the system stays
// correct when several instances share one backend.
package store

import (
	"context"
	"errors"

	"github.com/clubops/checkin-api/internal/model"
)

var (
	// ErrNotFound is returned by point reads when no record matches.
	ErrNotFound = errors.New("store: record not found")

	// ErrAlreadyExists is returned by CreateCheckIn when a check-in for the
	// same (session, member) pair already exists. Both adapters detect it
	// atomically at insert time; callers never pre-query for existence.
	ErrAlreadyExists = errors.New("store: record already exists")

	ErrDuplicatePublicID     = errors.New("store: public id already in use")
	ErrDuplicateMemberNumber = errors.New("store: member number already in use")
)

// Store is the uniform persistence contract over both backends.
type Store interface {
	// Sessions
	GetSession(ctx context.Context, id string) (*model.Session, error)
	ListSessions(ctx context.Context) ([]model.Session, error) // occursOn descending
	CreateSession(ctx context.Context, s *model.Session) error
	UpdateSession(ctx context.Context, s *model.Session) error
	DeleteSession(ctx context.Context, id string) error

	// Members
	GetMember(ctx context.Context, id string) (*model.Member, error)
	// FindMemberByPublicID is an exact match on the unique public id. More
	// than one match is a data-integrity fault: adapters log a warning and
	// return the first match rather than failing the request.
	FindMemberByPublicID(ctx context.Context, publicID string) (*model.Member, error)
	ListMembers(ctx context.Context) ([]model.Member, error)
	CreateMember(ctx context.Context, m *model.Member) error
	UpdateMember(ctx context.Context, m *model.Member) error
	DeleteMember(ctx context.Context, id string) error

	// Check-ins
	// CreateCheckIn performs the atomic conditional create: it inserts the
	// record and reports ErrAlreadyExists when the uniqueness constraint (or
	// the deterministic document key) rejects the write.
	CreateCheckIn(ctx context.Context, c *model.CheckIn) error
	ListCheckIns(ctx context.Context, sessionID string) ([]model.CheckIn, error) // recordedAt descending

	HealthCheck(ctx context.Context) error
	Close() error
}

// CheckInKey derives the deterministic check-in identifier from the logical
// natural key. Both adapters use it as the record ID, which is what makes
// duplicate detection atomic on the constraint-free backend.
func CheckInKey(sessionID, memberID string) string {
	return sessionID + ":" + memberID
}
