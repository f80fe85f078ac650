package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/shared/logger"
	"github.com/clubops/checkin-api/internal/store"
	"github.com/google/uuid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) members() *mongo.Collection {
	return s.db.Collection(membersCollection)
}

func (s *Store) GetMember(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	err := s.members().FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get member %s: %w", id, err)
	}
	return &member, nil
}

// FindMemberByPublicID is an exact match on the unique public id. The unique
// index should make a second match impossible; if one appears anyway the
// lookup logs a data-integrity warning and proceeds with the first match.
func (s *Store) FindMemberByPublicID(ctx context.Context, publicID string) (*model.Member, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(2)

	cursor, err := s.members().Find(ctx, bson.M{"public_id": publicID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find member by public id: %w", err)
	}

	var members []model.Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
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

func (s *Store) ListMembers(ctx context.Context) ([]model.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.members().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	var members []model.Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	return members, nil
}

func (s *Store) CreateMember(ctx context.Context, member *model.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	if err := s.checkMemberUniqueness(ctx, member, ""); err != nil {
		return err
	}

	if _, err := s.members().InsertOne(ctx, member); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against a concurrent create
			return store.ErrDuplicatePublicID
		}
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (s *Store) UpdateMember(ctx context.Context, member *model.Member) error {
	if err := s.checkMemberUniqueness(ctx, member, member.ID); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"public_id":     member.PublicID,
		"display_name":  member.DisplayName,
		"contact_email": member.ContactEmail,
		"member_number": member.MemberNumber,
		"updated_at":    time.Now().UTC(),
	}}
	if member.MemberNumber == nil {
		// Keep the partial unique index effective: absent, not null
		update = bson.M{
			"$set": bson.M{
				"public_id":     member.PublicID,
				"display_name":  member.DisplayName,
				"contact_email": member.ContactEmail,
				"updated_at":    time.Now().UTC(),
			},
			"$unset": bson.M{"member_number": ""},
		}
	}

	result, err := s.members().UpdateByID(ctx, member.ID, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicatePublicID
		}
		return fmt.Errorf("update member %s: %w", member.ID, err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteMember removes the roster document only; check-in history keeps its
// denormalized snapshot.
func (s *Store) DeleteMember(ctx context.Context, id string) error {
	result, err := s.members().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete member %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) checkMemberUniqueness(ctx context.Context, member *model.Member, excludeID string) error {
	filter := bson.M{"public_id": member.PublicID}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := s.members().CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("check public id uniqueness: %w", err)
	}
	if count > 0 {
		return store.ErrDuplicatePublicID
	}

	if member.MemberNumber != nil {
		filter = bson.M{"member_number": *member.MemberNumber}
		if excludeID != "" {
			filter["_id"] = bson.M{"$ne": excludeID}
		}
		count, err = s.members().CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("check member number uniqueness: %w", err)
		}
		if count > 0 {
			return store.ErrDuplicateMemberNumber
		}
	}

	return nil
}
