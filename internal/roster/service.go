// Package roster manages the member roster and the session calendar. All
// mutations are reserved for authenticated admins; reads back the public
// session list the kiosk picks from.
package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/shared/logger"
	"github.com/clubops/checkin-api/internal/store"
)

// SessionDateLayout is the wire format for session dates on create/update.
const SessionDateLayout = "2006-01-02"

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// ListMembers returns the roster in report order: member number ascending,
// numberless members last.
func (s *Service) ListMembers(ctx context.Context) ([]model.Member, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list members", "operation", "list_members", "error", err)
		return nil, fmt.Errorf("list members: %w", err)
	}

	model.SortRoster(members)
	return members, nil
}

func (s *Service) CreateMember(ctx context.Context, req *CreateMemberRequest) (*model.Member, error) {
	log := logger.FromContext(ctx)

	member := model.NewMember(
		strings.TrimSpace(req.PublicID),
		strings.TrimSpace(req.DisplayName),
		strings.TrimSpace(req.ContactEmail),
		req.MemberNumber,
	)

	if err := s.store.CreateMember(ctx, member); err != nil {
		if mapped := mapMemberStoreError(err); mapped != nil {
			log.Info("member create rejected", "public_id", member.PublicID, "reason", mapped.Error())
			return nil, mapped
		}
		log.Error("failed to create member", "operation", "create_member", "public_id", member.PublicID, "error", err)
		return nil, fmt.Errorf("create member: %w", err)
	}

	log.Info("member created",
		"member_id", member.ID,
		"public_id", member.PublicID,
		"contact_email", logger.MaskEmail(member.ContactEmail))
	return member, nil
}

func (s *Service) UpdateMember(ctx context.Context, id string, req *UpdateMemberRequest) (*model.Member, error) {
	log := logger.FromContext(ctx)

	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("member %s: %w", id, ErrMemberNotFound)
		}
		log.Error("failed to resolve member", "operation", "update_member", "member_id", id, "error", err)
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	member.PublicID = strings.TrimSpace(req.PublicID)
	member.DisplayName = strings.TrimSpace(req.DisplayName)
	member.ContactEmail = strings.TrimSpace(req.ContactEmail)
	member.MemberNumber = req.MemberNumber

	if err := s.store.UpdateMember(ctx, member); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("member %s: %w", id, ErrMemberNotFound)
		}
		if mapped := mapMemberStoreError(err); mapped != nil {
			log.Info("member update rejected", "member_id", id, "reason", mapped.Error())
			return nil, mapped
		}
		log.Error("failed to update member", "operation", "update_member", "member_id", id, "error", err)
		return nil, fmt.Errorf("update member: %w", err)
	}

	log.Info("member updated",
		"member_id", member.ID,
		"public_id", member.PublicID,
		"contact_email", logger.MaskEmail(member.ContactEmail))
	return member, nil
}

// DeleteMember removes a member from the roster. Historical check-ins keep
// their denormalized snapshot and stay readable in the chronological listing;
// the attendance report drops them because it is roster-biased.
func (s *Service) DeleteMember(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.store.DeleteMember(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("member %s: %w", id, ErrMemberNotFound)
		}
		log.Error("failed to delete member", "operation", "delete_member", "member_id", id, "error", err)
		return fmt.Errorf("delete member: %w", err)
	}

	log.Info("member deleted", "member_id", id)
	return nil
}

// ListSessions returns the calendar most recent first.
func (s *Service) ListSessions(ctx context.Context) ([]model.Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list sessions", "operation", "list_sessions", "error", err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *Service) CreateSession(ctx context.Context, req *CreateSessionRequest) (*model.Session, error) {
	log := logger.FromContext(ctx)

	occursOn, err := time.ParseInLocation(SessionDateLayout, req.Date, time.UTC)
	if err != nil {
		// Unreachable after binding validation; kept so the service is safe
		// to call directly.
		return nil, fmt.Errorf("parse session date: %w", err)
	}

	session := model.NewSession(strings.TrimSpace(req.Title), occursOn, strings.TrimSpace(req.Location))

	if err := s.store.CreateSession(ctx, session); err != nil {
		log.Error("failed to create session", "operation", "create_session", "title", session.Title, "error", err)
		return nil, fmt.Errorf("create session: %w", err)
	}

	log.Info("session created", "session_id", session.ID, "title", session.Title)
	return session, nil
}

func (s *Service) UpdateSession(ctx context.Context, id string, req *UpdateSessionRequest) (*model.Session, error) {
	log := logger.FromContext(ctx)

	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
		}
		log.Error("failed to resolve session", "operation", "update_session", "session_id", id, "error", err)
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	occursOn, err := time.ParseInLocation(SessionDateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse session date: %w", err)
	}

	session.Title = strings.TrimSpace(req.Title)
	session.OccursOn = occursOn
	session.Location = strings.TrimSpace(req.Location)

	if err := s.store.UpdateSession(ctx, session); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
		}
		log.Error("failed to update session", "operation", "update_session", "session_id", id, "error", err)
		return nil, fmt.Errorf("update session: %w", err)
	}

	log.Info("session updated", "session_id", session.ID, "title", session.Title)
	return session, nil
}

// DeleteSession removes a session. Its check-ins are not cascaded; they stay
// unreachable through the API but remain in the store for audit.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.store.DeleteSession(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
		}
		log.Error("failed to delete session", "operation", "delete_session", "session_id", id, "error", err)
		return fmt.Errorf("delete session: %w", err)
	}

	log.Info("session deleted", "session_id", id)
	return nil
}

// mapMemberStoreError translates store uniqueness failures into domain errors.
// Returns nil when the error is not a uniqueness failure.
func mapMemberStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicatePublicID):
		return ErrDuplicatePublicID
	case errors.Is(err, store.ErrDuplicateMemberNumber):
		return ErrDuplicateMemberNumber
	default:
		return nil
	}
}
