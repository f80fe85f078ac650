package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) GetSession(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return &session, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	err := s.db.WithContext(ctx).
		Order("occurs_on DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *Store) CreateSession(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *Store) UpdateSession(ctx context.Context, session *model.Session) error {
	result := s.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", session.ID).
		Updates(map[string]interface{}{
			"title":     session.Title,
			"occurs_on": session.OccursOn,
			"location":  session.Location,
		})
	if result.Error != nil {
		return fmt.Errorf("update session %s: %w", session.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Session{})
	if result.Error != nil {
		return fmt.Errorf("delete session %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
