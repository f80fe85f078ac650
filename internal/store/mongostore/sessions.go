package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/clubops/checkin-api/internal/store"
	"github.com/google/uuid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) sessions() *mongo.Collection {
	return s.db.Collection(sessionsCollection)
}

func (s *Store) GetSession(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := s.sessions().FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return &session, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]model.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "occurs_on", Value: -1}})

	cursor, err := s.sessions().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var sessions []model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}
	return sessions, nil
}

func (s *Store) CreateSession(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := s.sessions().InsertOne(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *Store) UpdateSession(ctx context.Context, session *model.Session) error {
	update := bson.M{"$set": bson.M{
		"title":      session.Title,
		"occurs_on":  session.OccursOn,
		"location":   session.Location,
		"updated_at": time.Now().UTC(),
	}}

	result, err := s.sessions().UpdateByID(ctx, session.ID, update)
	if err != nil {
		return fmt.Errorf("update session %s: %w", session.ID, err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	result, err := s.sessions().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
