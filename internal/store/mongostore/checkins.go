package mongostore

import (
	"context"
	"fmt"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) checkIns() *mongo.Collection {
	return s.db.Collection(checkInsCollection)
}

// CreateCheckIn performs a conditional create on the deterministic document
// key. Two concurrent attempts for the same (session, member) pair insert the
// same _id; the server accepts exactly one and the loser gets a duplicate-key
// error, which maps to ErrAlreadyExists. No existence pre-query is involved,
// so there is no lost-update window.
func (s *Store) CreateCheckIn(ctx context.Context, c *model.CheckIn) error {
	if c.ID == "" {
		c.ID = store.CheckInKey(c.SessionID, c.MemberID)
	}

	if _, err := s.checkIns().InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("create check-in %s: %w", c.ID, err)
	}
	return nil
}

func (s *Store) ListCheckIns(ctx context.Context, sessionID string) ([]model.CheckIn, error) {
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})

	cursor, err := s.checkIns().Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list check-ins for session %s: %w", sessionID, err)
	}

	var checkIns []model.CheckIn
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, fmt.Errorf("decode check-ins: %w", err)
	}
	return checkIns, nil
}
