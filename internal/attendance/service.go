package attendance

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/clubops/checkin-api/internal/checkin"
	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/roster"
	"github.com/clubops/checkin-api/internal/shared/logger"
	"github.com/clubops/checkin-api/internal/store"
)

// DateLayout is the display format for session dates.
const DateLayout = "2006/01/02"

// Report is the reconciled attendance for one session.
type Report struct {
	Session *model.Session
	Rows    []AttendanceRow
}

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Reconcile full-outer-joins the roster against the session's check-ins,
// biased toward the roster: every current member gets exactly one row, and a
// check-in whose member has since left the roster is silently dropped.
// The result is recomputed from store state on every call; check-ins arrive
// out-of-band between calls, so nothing is cached.
func (s *Service) Reconcile(ctx context.Context, sessionID string) (*Report, error) {
	log := logger.FromContext(ctx)

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, roster.ErrSessionNotFound)
		}
		log.Error("failed to resolve session", "operation", "reconcile", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	records, err := s.store.ListCheckIns(ctx, sessionID)
	if err != nil {
		log.Error("failed to load check-ins", "operation", "reconcile", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("load check-ins: %w", err)
	}

	// Index by public id, not internal id, so the join also works against
	// the denormalized document-store snapshots. Only one record can exist
	// per pair; keep the first seen if the store ever yields duplicates.
	byPublicID := make(map[string]*model.CheckIn, len(records))
	for i := range records {
		record := &records[i]
		if _, ok := byPublicID[record.PublicID]; !ok {
			byPublicID[record.PublicID] = record
		}
	}

	members, err := s.store.ListMembers(ctx)
	if err != nil {
		log.Error("failed to load roster", "operation", "reconcile", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("load roster: %w", err)
	}

	// Report ordering contract: member number ascending, numberless members
	// last in their original relative order
	model.SortRoster(members)

	rows := make([]AttendanceRow, 0, len(members))
	for _, member := range members {
		memberNumber := ""
		if member.MemberNumber != nil {
			memberNumber = strconv.Itoa(*member.MemberNumber)
		}

		row := AttendanceRow{
			MemberNumber: memberNumber,
			DisplayName:  member.DisplayName,
			PublicID:     member.PublicID,
			ContactEmail: member.ContactEmail,
		}

		if record, ok := byPublicID[member.PublicID]; ok {
			row.Present = true
			row.CheckedInAt = record.RecordedAt.Local().Format(checkin.TimeLayout)
		}

		rows = append(rows, row)
	}

	return &Report{Session: session, Rows: rows}, nil
}
