package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

const reservationCollection = "reservations"

type MongoReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *MongoReservationRepository {
	return &MongoReservationRepository{coll: db.Collection(reservationCollection)}
}

type mongoReservation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Rank           int                `bson:"rank"`
	Status         string             `bson:"status"`
	Seats          int                `bson:"seats"`
	MovieUID       string             `bson:"movie_uid"`
	SeanceUID      string             `bson:"seance_uid"`
	IdempotencyKey string             `bson:"idempotency_key,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (r *MongoReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	doc := mongoReservation{
		Rank:           res.Rank,
		Status:         string(res.Status),
		Seats:          res.Seats,
		MovieUID:       res.MovieUID,
		SeanceUID:      res.SeanceUID,
		IdempotencyKey: res.IdempotencyKey,
		CreatedAt:      res.CreatedAt.Unix(),
		UpdatedAt:      res.UpdatedAt.Unix(),
	}

	out, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	created := *res
	if oid, ok := out.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	var mr mongoReservation
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return toReservation(&mr), nil
}

func (r *MongoReservationRepository) ListByMovie(ctx context.Context, movieUID string) ([]domain.Reservation, error) {
	cur, err := r.coll.Find(ctx, bson.M{"movie_uid": movieUID})
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Reservation
	for cur.Next(ctx) {
		var mr mongoReservation
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode reservation: %w", err)
		}
		out = append(out, *toReservation(&mr))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

func (r *MongoReservationRepository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(res.ID)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(res.Status),
		"seats":      res.Seats,
		"rank":       res.Rank,
		"updated_at": res.UpdatedAt.Unix(),
	}}

	out, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}
	if out.MatchedCount == 0 {
		return nil, domain.ErrReservationNotFound
	}
	return res, nil
}

// ExpireOpenBefore sweeps every open reservation created before the cutoff to
// expired in a single bulk update.
func (r *MongoReservationRepository) ExpireOpenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"status":     string(domain.ReservationOpen),
		"created_at": bson.M{"$lt": cutoff.Unix()},
	}
	update := bson.M{"$set": bson.M{
		"status":     string(domain.ReservationExpired),
		"updated_at": time.Now().UTC().Unix(),
	}}

	out, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("expire reservations: %w", err)
	}
	return out.ModifiedCount, nil
}

func toReservation(mr *mongoReservation) *domain.Reservation {
	return &domain.Reservation{
		ID:             mr.ID.Hex(),
		Rank:           mr.Rank,
		Status:         domain.ReservationStatus(mr.Status),
		Seats:          mr.Seats,
		MovieUID:       mr.MovieUID,
		SeanceUID:      mr.SeanceUID,
		IdempotencyKey: mr.IdempotencyKey,
		CreatedAt:      unixToTime(mr.CreatedAt),
		UpdatedAt:      unixToTime(mr.UpdatedAt),
	}
}
