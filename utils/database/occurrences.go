package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TristanFaureY/cath-ticket-bot/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrNotFound reports a delete that matched no occurrence. Handlers use
// it to tell a missing record apart from a transport failure.
var ErrNotFound = errors.New("occurrence not found")

const occurrencesCollection = "occurrences"

// OccurrenceStore persists occurrences in a mongo collection.
type OccurrenceStore struct {
	coll *mongo.Collection
}

var _ model.OccurrenceStore = (*OccurrenceStore)(nil)

// NewOccurrenceStore binds the collection and ensures the indexes backing
// the guild-scoped queries exist.
func NewOccurrenceStore(client *mongo.Client, dbName string) (*OccurrenceStore, error) {
	coll := client.Database(dbName).Collection(occurrencesCollection)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "guildID", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "guildID", Value: 1}, {Key: "userID", Value: 1}}},
		{Keys: bson.D{{Key: "guildID", Value: 1}, {Key: "username", Value: 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create occurrence indexes: %w", err)
	}

	return &OccurrenceStore{coll: coll}, nil
}

// Create inserts a new occurrence and returns its generated id.
func (s *OccurrenceStore) Create(ctx context.Context, occ *model.Occurrence) (string, error) {
	if occ.ID.IsZero() {
		occ.ID = bson.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, occ); err != nil {
		return "", fmt.Errorf("failed to insert occurrence for %s: %w", occ.Username, err)
	}
	return occ.ID.Hex(), nil
}

// ListByGuild returns the guild's occurrences with createdAt in [from, to).
func (s *OccurrenceStore) ListByGuild(ctx context.Context, guildID string, from, to time.Time) ([]model.Occurrence, error) {
	return s.find(ctx, bson.M{
		"guildID":   guildID,
		"createdAt": bson.M{"$gte": from, "$lt": to},
	})
}

// ListByUser returns one member's occurrences with createdAt in [from, to).
func (s *OccurrenceStore) ListByUser(ctx context.Context, guildID, userID string, from, to time.Time) ([]model.Occurrence, error) {
	return s.find(ctx, bson.M{
		"guildID":   guildID,
		"userID":    userID,
		"createdAt": bson.M{"$gte": from, "$lt": to},
	})
}

func (s *OccurrenceStore) find(ctx context.Context, filter bson.M) ([]model.Occurrence, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query occurrences: %w", err)
	}
	var occs []model.Occurrence
	if err := cur.All(ctx, &occs); err != nil {
		return nil, fmt.Errorf("failed to decode occurrences: %w", err)
	}
	return occs, nil
}

// DeleteByID removes a single occurrence by its hex id within the guild.
// A malformed id behaves like a missing record.
func (s *OccurrenceStore) DeleteByID(ctx context.Context, guildID, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: malformed id %q", ErrNotFound, id)
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid, "guildID": guildID})
	if err != nil {
		return fmt.Errorf("failed to delete occurrence %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByUsername removes every occurrence recorded under the display
// name within the guild.
func (s *OccurrenceStore) DeleteByUsername(ctx context.Context, guildID, username string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"guildID": guildID, "username": username})
	if err != nil {
		return 0, fmt.Errorf("failed to delete occurrences for %s: %w", username, err)
	}
	return res.DeletedCount, nil
}

// CountByGuild returns the guild's total number of records.
func (s *OccurrenceStore) CountByGuild(ctx context.Context, guildID string) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"guildID": guildID})
	if err != nil {
		return 0, fmt.Errorf("failed to count occurrences for guild %s: %w", guildID, err)
	}
	return n, nil
}
