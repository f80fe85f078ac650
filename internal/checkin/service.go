package checkin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/roster"
	"github.com/clubops/checkin-api/internal/shared/logger"
	"github.com/clubops/checkin-api/internal/store"
)

// TimeLayout is the display format for check-in timestamps.
const TimeLayout = "2006/01/02 15:04:05"

// Recorder outcome statuses. These are business outcomes, not errors: the
// kiosk shows them to the person checking in, so they ride HTTP 200.
const (
	StatusSuccess          = "success"
	StatusNonMember        = "non_member"
	StatusAlreadyCheckedIn = "already_checked_in"
)

// RecordResult is the outcome of one check-in attempt.
type RecordResult struct {
	Status     string
	Session    *model.Session
	Member     *model.Member // nil for StatusNonMember
	PublicID   string        // trimmed input
	RecordedAt time.Time     // zero unless StatusSuccess
}

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// RecordCheckIn runs the recorder state machine: resolve session, resolve
// member, then attempt the conditional create. Existence of a prior check-in
// is established by the store's atomic insert, never by query-then-insert,
// so two concurrent attempts for the same pair yield exactly one success.
func (s *Service) RecordCheckIn(ctx context.Context, sessionID, publicID string) (*RecordResult, error) {
	log := logger.FromContext(ctx)
	publicID = strings.TrimSpace(publicID)

	session, err := s.store.GetSession(ctx, strings.TrimSpace(sessionID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, roster.ErrSessionNotFound)
		}
		log.Error("failed to resolve session", "operation", "record_checkin", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	member, err := s.store.FindMemberByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("check-in attempt by non-member", "public_id", publicID, "session_id", session.ID)
			return &RecordResult{
				Status:   StatusNonMember,
				Session:  session,
				PublicID: publicID,
			}, nil
		}
		log.Error("failed to resolve member", "operation", "record_checkin", "public_id", publicID, "error", err)
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	record := &model.CheckIn{
		SessionID:    session.ID,
		MemberID:     member.ID,
		PublicID:     member.PublicID,
		DisplayName:  member.DisplayName,
		MemberNumber: member.MemberNumber,
		ContactEmail: member.ContactEmail,
		RecordedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateCheckIn(ctx, record); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("duplicate check-in attempt",
				"public_id", member.PublicID, "session_id", session.ID)
			return &RecordResult{
				Status:   StatusAlreadyCheckedIn,
				Session:  session,
				Member:   member,
				PublicID: publicID,
			}, nil
		}
		log.Error("failed to create check-in",
			"operation", "record_checkin",
			"session_id", session.ID,
			"member_id", member.ID,
			"error", err)
		return nil, fmt.Errorf("create check-in: %w", err)
	}

	log.Info("check-in recorded",
		"public_id", member.PublicID,
		"session_id", session.ID,
		"member", member.DisplayName)

	return &RecordResult{
		Status:     StatusSuccess,
		Session:    session,
		Member:     member,
		PublicID:   publicID,
		RecordedAt: record.RecordedAt,
	}, nil
}

// ListCheckIns returns the session's check-ins most recent first, each row
// carrying its 1-based position in that order. This is the live "who just
// checked in" view; it reads only the denormalized snapshots, never the
// roster.
func (s *Service) ListCheckIns(ctx context.Context, sessionID string) ([]CheckInView, error) {
	if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, roster.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	records, err := s.store.ListCheckIns(ctx, sessionID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list check-ins",
			"operation", "list_checkins", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	views := make([]CheckInView, 0, len(records))
	for i, record := range records {
		memberNumber := ""
		if record.MemberNumber != nil {
			memberNumber = strconv.Itoa(*record.MemberNumber)
		}

		views = append(views, CheckInView{
			Index:        i + 1, // 1 = most recent
			MemberNumber: memberNumber,
			Name:         record.DisplayName,
			PublicID:     record.PublicID,
			CheckInTime:  record.RecordedAt.Local().Format(TimeLayout),
		})
	}

	return views, nil
}
