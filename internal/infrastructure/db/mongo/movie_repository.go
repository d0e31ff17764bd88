package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

const movieCollection = "movies"

type MongoMovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MongoMovieRepository {
	return &MongoMovieRepository{coll: db.Collection(movieCollection)}
}

type mongoMovie struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty"`
	Name                     string             `bson:"name"`
	Description              string             `bson:"description"`
	Rate                     int                `bson:"rate"`
	Duration                 int                `bson:"duration"`
	HasReservationsAvailable bool               `bson:"has_reservations_available"`
	Categories               []string           `bson:"categories,omitempty"`
	CreatedAt                int64              `bson:"created_at"`
	UpdatedAt                int64              `bson:"updated_at"`
}

func (r *MongoMovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	doc := toMongoMovie(movie)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	created := *movie
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoMovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	var mm mongoMovie
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return toMovie(&mm), nil
}

func (r *MongoMovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Movie
	for cur.Next(ctx) {
		var mm mongoMovie
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		out = append(out, *toMovie(&mm))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return out, nil
}

func (r *MongoMovieRepository) Update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(movie.ID)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":                       movie.Name,
		"description":                movie.Description,
		"rate":                       movie.Rate,
		"duration":                   movie.Duration,
		"has_reservations_available": movie.HasReservationsAvailable,
		"categories":                 movie.Categories,
		"updated_at":                 movie.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMovieNotFound
	}
	return movie, nil
}

func (r *MongoMovieRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func toMongoMovie(m *domain.Movie) mongoMovie {
	return mongoMovie{
		Name:                     m.Name,
		Description:              m.Description,
		Rate:                     m.Rate,
		Duration:                 m.Duration,
		HasReservationsAvailable: m.HasReservationsAvailable,
		Categories:               m.Categories,
		CreatedAt:                m.CreatedAt.Unix(),
		UpdatedAt:                m.UpdatedAt.Unix(),
	}
}

func toMovie(mm *mongoMovie) *domain.Movie {
	return &domain.Movie{
		ID:                       mm.ID.Hex(),
		Name:                     mm.Name,
		Description:              mm.Description,
		Rate:                     mm.Rate,
		Duration:                 mm.Duration,
		HasReservationsAvailable: mm.HasReservationsAvailable,
		Categories:               mm.Categories,
		CreatedAt:                unixToTime(mm.CreatedAt),
		UpdatedAt:                unixToTime(mm.UpdatedAt),
	}
}
