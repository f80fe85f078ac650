package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/shared/logger"
	"github.com/clubops/checkin-api/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) GetMember(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get member %s: %w", id, err)
	}
	return &member, nil
}

// FindMemberByPublicID is an exact match on the unique public id. The unique
// index makes a second match impossible in practice; if one ever appears the
// lookup logs a data-integrity warning and proceeds with the first match.
func (s *Store) FindMemberByPublicID(ctx context.Context, publicID string) (*model.Member, error) {
	var members []model.Member
	err := s.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Order("created_at ASC").
		Limit(2).
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("find member by public id: %w", err)
	}

	switch len(members) {
	case 0:
		return nil, store.ErrNotFound
	case 1:
		return &members[0], nil
	default:
		logger.FromContext(ctx).Warn("multiple members share one public id, using first match",
			"public_id", publicID)
		return &members[0], nil
	}
}

// ListMembers returns the roster in insertion order. Report ordering (member
// number ascending, numberless last) is applied by the caller via
// model.SortRoster, never by engine null-ordering.
func (s *Store) ListMembers(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (s *Store) CreateMember(ctx context.Context, member *model.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}

	return WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.checkMemberUniqueness(tx, member, ""); err != nil {
			return err
		}

		if err := tx.Create(member).Error; err != nil {
			if isDuplicate(err) {
				// Lost the race against a concurrent create
				return store.ErrDuplicatePublicID
			}
			return fmt.Errorf("create member: %w", err)
		}
		return nil
	})
}

func (s *Store) UpdateMember(ctx context.Context, member *model.Member) error {
	return WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.checkMemberUniqueness(tx, member, member.ID); err != nil {
			return err
		}

		result := tx.Model(&model.Member{}).
			Where("id = ?", member.ID).
			Updates(map[string]interface{}{
				"public_id":     member.PublicID,
				"display_name":  member.DisplayName,
				"contact_email": member.ContactEmail,
				"member_number": member.MemberNumber,
			})
		if result.Error != nil {
			if isDuplicate(result.Error) {
				return store.ErrDuplicatePublicID
			}
			return fmt.Errorf("update member %s: %w", member.ID, result.Error)
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

// DeleteMember removes the roster row only. Check-in history keeps its
// denormalized snapshot and is deliberately left untouched.
func (s *Store) DeleteMember(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Member{})
	if result.Error != nil {
		return fmt.Errorf("delete member %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// checkMemberUniqueness reports duplicate public ids and member numbers,
// excluding the member's own row on update.
func (s *Store) checkMemberUniqueness(tx *gorm.DB, member *model.Member, excludeID string) error {
	query := tx.Model(&model.Member{}).Where("public_id = ?", member.PublicID)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("check public id uniqueness: %w", err)
	}
	if count > 0 {
		return store.ErrDuplicatePublicID
	}

	if member.MemberNumber != nil {
		query = tx.Model(&model.Member{}).Where("member_number = ?", *member.MemberNumber)
		if excludeID != "" {
			query = query.Where("id <> ?", excludeID)
		}
		if err := query.Count(&count).Error; err != nil {
			return fmt.Errorf("check member number uniqueness: %w", err)
		}
		if count > 0 {
			return store.ErrDuplicateMemberNumber
		}
	}

	return nil
}
