// Package mongostore is the document Entity Store adapter.
//
// The collection layout mirrors the relational schema (members, sessions,
// checkins), but the store has no composite multi-field uniqueness primitive.
// The check-in invariant is therefore carried by the document key itself: the
// _id is derived deterministically from (session, member), and a concurrent
// duplicate insert fails atomically with a duplicate-key error.
package mongostore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clubops/checkin-api/internal/config"
	"github.com/clubops/checkin-api/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	membersCollection  = "members"
	sessionsCollection = "sessions"
	checkInsCollection = "checkins"
)

// Store wraps the mongo client and database handles
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// New connects to MongoDB, verifies the connection and ensures indexes.
// Like the relational adapter, the handle is built once at startup and
// injected; it is safe for concurrent use by all request handlers.
func New(cfg *config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	slog.Info("mongo connected", "database", cfg.Mongo.Database)

	return s, nil
}

// ensureIndexes creates the indexes the contract relies on. The partial
// filter on member_number keeps the unique index from rejecting members
// without a club number.
func (s *Store) ensureIndexes(ctx context.Context) error {
	memberIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "public_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "member_number", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{
					{Key: "member_number", Value: bson.D{{Key: "$exists", Value: true}}},
				}),
		},
	}
	if _, err := s.db.Collection(membersCollection).Indexes().CreateMany(ctx, memberIndexes); err != nil {
		return fmt.Errorf("create member indexes: %w", err)
	}

	checkInIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "recorded_at", Value: -1}},
		},
	}
	if _, err := s.db.Collection(checkInsCollection).Indexes().CreateMany(ctx, checkInIndexes); err != nil {
		return fmt.Errorf("create check-in indexes: %w", err)
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "occurs_on", Value: -1}},
		},
	}
	if _, err := s.db.Collection(sessionsCollection).Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("create session indexes: %w", err)
	}

	return nil
}

// Close disconnects the client
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}

	slog.Info("mongo connection closed")
	return nil
}

// HealthCheck pings the primary
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}
