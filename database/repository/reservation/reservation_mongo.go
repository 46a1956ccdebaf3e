package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/services/availability"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoReservationRepo stores reservations in MongoDB. Reserve needs a replica
// set or sharded cluster because it runs in a multi-document transaction.
type MongoReservationRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
	locks  *mongo.Collection
}

// NewMongoReservationRepo creates a repository on db and ensures its indexes.
func NewMongoReservationRepo(db *mongo.Database) *MongoReservationRepo {
	repo := &MongoReservationRepo{
		client: db.Client(),
		coll:   db.Collection("reservations"),
		locks:  db.Collection("reservation_locks"),
	}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create reservation indexes", zap.Error(err))
	}
	return repo
}

func (m *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "room_id", Value: 1}, {Key: "check_in", Value: 1}}},
		{
			Keys:    bson.D{{Key: "experience_id", Value: 1}, {Key: "experience_time", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{"kind": string(models.KindExperience)}),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	if _, err := m.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func subjectFilter(subject models.Subject) bson.M {
	if subject.Kind == models.KindExperience {
		return bson.M{"kind": string(models.KindExperience), "experience_id": subject.ID}
	}
	return bson.M{"kind": string(models.KindRoom), "room_id": subject.ID}
}

func (m *MongoReservationRepo) FetchReservations(ctx context.Context, subject models.Subject) ([]models.Reservation, error) {
	return m.find(ctx, subjectFilter(subject), nil)
}

func (m *MongoReservationRepo) InsertReservation(ctx context.Context, r *models.Reservation) error {
	prepare(r)
	if _, err := m.coll.InsertOne(ctx, r); err != nil {
		return mapMongoError(fmt.Errorf("insert reservation: %w", err))
	}
	return nil
}

// Reserve bumps the subject's lock document before reading, so two
// transactions on one subject always write-conflict. WithTransaction retries
// the loser from the top, and its check then sees the winner's reservation.
func (m *MongoReservationRepo) Reserve(ctx context.Context, r *models.Reservation, check CheckFunc) error {
	sess, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.EndSession(ctx)

	subject := r.Subject()
	prepare(r)
	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := m.locks.UpdateOne(sc,
			bson.M{"_id": subject.Key()},
			bson.M{"$inc": bson.M{"version": 1}, "$set": bson.M{"updated_at": time.Now().UTC()}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", subject.Key(), err)
		}

		existing, err := m.find(sc, subjectFilter(subject), nil)
		if err != nil {
			return nil, err
		}
		if err := check(existing); err != nil {
			return nil, err
		}

		if _, err := m.coll.InsertOne(sc, r); err != nil {
			return nil, fmt.Errorf("insert reservation: %w", err)
		}
		return nil, nil
	})
	return mapMongoError(err)
}

func (m *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var r models.Reservation
	err := m.coll.FindOne(ctx, bson.M{"id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation %s: %w", id, err)
	}
	return &r, nil
}

func (m *MongoReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return m.find(ctx, bson.M{"user_id": userID}, opts)
}

func (m *MongoReservationRepo) Delete(ctx context.Context, id string) error {
	result, err := m.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoReservationRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Reservation, error) {
	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Reservation{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

func prepare(r *models.Reservation) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}

// mapMongoError turns duplicate keys into availability.ErrConstraintViolation.
// Inside Reserve, write conflicts are retried by WithTransaction; one that is
// still there when the retries run out is reported the same way.
func mapMongoError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", availability.ErrConstraintViolation, err)
	}
	var se mongo.ServerError
	if errors.As(err, &se) && (se.HasErrorCode(112) || se.HasErrorLabel("TransientTransactionError")) {
		return fmt.Errorf("%w: %v", availability.ErrConstraintViolation, err)
	}
	return err
}
