package experienceRepo

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

// MongoExperienceRepo implements ExperienceRepository using MongoDB.
type MongoExperienceRepo struct {
	coll *mongo.Collection
}

// NewMongoExperienceRepo creates a new instance of ExperienceRepository using MongoDB.
func NewMongoExperienceRepo(db *mongo.Database) ExperienceRepository {
	repo := &MongoExperienceRepo{coll: db.Collection("experiences")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create experience indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoExperienceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_id", Value: 1}}},
		{Keys: bson.D{{Key: "country", Value: 1}, {Key: "city", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new experience document.
func (r *MongoExperienceRepo) Create(ctx context.Context, experience *models.Experience) error {
	if _, err := r.coll.InsertOne(ctx, experience); err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// GetByID retrieves an experience by ID.
func (r *MongoExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	var experience models.Experience
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&experience)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find experience %s: %w", id, err)
	}
	return &experience, nil
}

// GetAll lists experiences, newest first.
func (r *MongoExperienceRepo) GetAll(ctx context.Context) ([]models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer cursor.Close(ctx)

	experiences := []models.Experience{}
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, fmt.Errorf("failed to decode experiences: %w", err)
	}
	return experiences, nil
}

// Update replaces the stored experience document.
func (r *MongoExperienceRepo) Update(ctx context.Context, experience *models.Experience) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": experience.ID}, experience)
	if err != nil {
		return fmt.Errorf("failed to update experience %s: %w", experience.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an experience document by its ID.
func (r *MongoExperienceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete experience %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
