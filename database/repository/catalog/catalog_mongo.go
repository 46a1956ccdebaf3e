package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/komo3344/airbnb-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoRepo implements Repository on one MongoDB collection.
type MongoRepo[T Entry] struct {
	coll *mongo.Collection
}

func NewMongoAmenityRepo(db *mongo.Database) AmenityRepository {
	return newMongoRepo[models.Amenity](db.Collection("amenities"))
}

func NewMongoPerkRepo(db *mongo.Database) PerkRepository {
	return newMongoRepo[models.Perk](db.Collection("perks"))
}

func newMongoRepo[T Entry](coll *mongo.Collection) *MongoRepo[T] {
	repo := &MongoRepo[T]{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create catalog indexes", zap.String("collection", coll.Name()), zap.Error(err))
	}
	return repo
}

func (r *MongoRepo[T]) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRepo[T]) Create(ctx context.Context, entry *T) error {
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create %s entry: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *MongoRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entry T
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s entry %s: %w", r.coll.Name(), id, err)
	}
	return &entry, nil
}

func (r *MongoRepo[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRepo[T]) GetMany(ctx context.Context, ids []string) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	found, err := r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]T, len(found))
	for _, entry := range found {
		byID[idOf(entry)] = entry
	}
	out := make([]T, 0, len(found))
	for _, id := range ids {
		if entry, ok := byID[id]; ok {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *MongoRepo[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.coll.Name(), err)
	}
	return out, nil
}

func (r *MongoRepo[T]) Update(ctx context.Context, entry *T) error {
	id := idOf(*entry)
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, entry)
	if err != nil {
		return fmt.Errorf("failed to update %s entry %s: %w", r.coll.Name(), id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo[T]) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s entry %s: %w", r.coll.Name(), id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
