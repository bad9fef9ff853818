package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guesthouse-ops-service/internal/domain/repository"
	"guesthouse-ops-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ledgerCollection = "send_ledgers"

type ledgerDocument struct {
	Key       string    `bson:"key"`
	Rooms     []int     `bson:"rooms"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoLedgerRepository stores one document per day key
type MongoLedgerRepository struct {
	collection *mongo.Collection
}

// NewMongoLedgerRepository creates a MongoDB backed ledger store
func NewMongoLedgerRepository(db *mongo.Database, logger logger.Logger) repository.LedgerRepository {
	collection := db.Collection(ledgerCollection)

	// Create unique index on key
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"key": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(context.Background(), indexModel); err != nil {
		logger.Error("Failed to create ledger index; duplicate day keys are possible", "collection", ledgerCollection, "error", err)
	}

	return &MongoLedgerRepository{collection: collection}
}

// Load reads the rooms stored under key; a missing document is an empty ledger
func (r *MongoLedgerRepository) Load(ctx context.Context, key string) ([]int, error) {
	var doc ledgerDocument
	err := r.collection.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger %s: %w", key, err)
	}
	return doc.Rooms, nil
}

// Save upserts the ledger document for key
func (r *MongoLedgerRepository) Save(ctx context.Context, key string, rooms []int) error {
	if rooms == nil {
		rooms = []int{}
	}
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"key": key},
		bson.M{"$set": bson.M{
			"rooms":     rooms,
			"updatedAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger %s: %w", key, err)
	}
	return nil
}
