package userRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userIndexes backs the account lookups. Username and email clashes surface
// as duplicate-key errors, which Create and Update report as ErrDuplicate.
func userIndexes() []mongo.IndexModel {
	unique := func(name string) *options.IndexOptions {
		return options.Index().SetUnique(true).SetName(name)
	}
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique("users_id")},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique("users_username")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique("users_email")},
		// Hosts by signup date, for host directories and seeding checks.
		{Keys: bson.D{{Key: "is_host", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("users_hosts_recent")},
	}
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.coll.Indexes().CreateMany(ctx, userIndexes()); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	return nil
}
