package wishlistRepo

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

// MongoWishlistRepo implements WishlistRepository using MongoDB.
type MongoWishlistRepo struct {
	coll *mongo.Collection
}

func NewMongoWishlistRepo(db *mongo.Database) WishlistRepository {
	repo := &MongoWishlistRepo{coll: db.Collection("wishlists")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create wishlist indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoWishlistRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoWishlistRepo) Create(ctx context.Context, list *models.Wishlist) error {
	if _, err := r.coll.InsertOne(ctx, list); err != nil {
		return fmt.Errorf("failed to create wishlist: %w", err)
	}
	return nil
}

func (r *MongoWishlistRepo) GetByID(ctx context.Context, id string) (*models.Wishlist, error) {
	var list models.Wishlist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find wishlist %s: %w", id, err)
	}
	return &list, nil
}

func (r *MongoWishlistRepo) ListByUser(ctx context.Context, userID string) ([]models.Wishlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}
	defer cursor.Close(ctx)

	lists := []models.Wishlist{}
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, fmt.Errorf("failed to decode wishlists: %w", err)
	}
	return lists, nil
}

func (r *MongoWishlistRepo) Update(ctx context.Context, list *models.Wishlist) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": list.ID}, list)
	if err != nil {
		return fmt.Errorf("failed to update wishlist %s: %w", list.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoWishlistRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete wishlist %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
