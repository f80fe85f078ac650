package gormstore

import (
	"context"
	"fmt"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/store"
)

// CreateCheckIn inserts the record directly and treats a unique-constraint
// violation as "already checked in". There is no query-then-insert window:
// two concurrent attempts for the same (session, member) pair race on the
// composite unique index and exactly one wins.
func (s *Store) CreateCheckIn(ctx context.Context, c *model.CheckIn) error {
	if c.ID == "" {
		c.ID = store.CheckInKey(c.SessionID, c.MemberID)
	}

	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		if isDuplicate(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("create check-in %s: %w", c.ID, err)
	}
	return nil
}

func (s *Store) ListCheckIns(ctx context.Context, sessionID string) ([]model.CheckIn, error) {
	var checkIns []model.CheckIn
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("recorded_at DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, fmt.Errorf("list check-ins for session %s: %w", sessionID, err)
	}
	return checkIns, nil
}
