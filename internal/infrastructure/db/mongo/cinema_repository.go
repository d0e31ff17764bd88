package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// Cinemas, rooms, and seances are addressed by a public uuid rather than the
// Mongo object id; the uid is assigned here on insert when absent.

const (
	cinemaCollection = "cinemas"
	roomCollection   = "rooms"
	seanceCollection = "seances"
)

type MongoCinemaRepository struct {
	coll *mongo.Collection
}

func NewCinemaRepository(db *mongo.Database) *MongoCinemaRepository {
	return &MongoCinemaRepository{coll: db.Collection(cinemaCollection)}
}

type mongoCinema struct {
	UID       string `bson:"uid"`
	Name      string `bson:"name"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *MongoCinemaRepository) Create(ctx context.Context, cinema *domain.Cinema) (*domain.Cinema, error) {
	created := *cinema
	if created.UID == "" {
		created.UID = uuid.NewString()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := mongoCinema{UID: created.UID, Name: created.Name, CreatedAt: now.Unix(), UpdatedAt: now.Unix()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert cinema: %w", err)
	}
	return &created, nil
}

func (r *MongoCinemaRepository) FindByUID(ctx context.Context, uid string) (*domain.Cinema, error) {
	var mc mongoCinema
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCinemaNotFound
		}
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	return &domain.Cinema{UID: mc.UID, Name: mc.Name, CreatedAt: unixToTime(mc.CreatedAt), UpdatedAt: unixToTime(mc.UpdatedAt)}, nil
}

func (r *MongoCinemaRepository) List(ctx context.Context) ([]domain.Cinema, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Cinema
	for cur.Next(ctx) {
		var mc mongoCinema
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode cinema: %w", err)
		}
		out = append(out, domain.Cinema{UID: mc.UID, Name: mc.Name, CreatedAt: unixToTime(mc.CreatedAt), UpdatedAt: unixToTime(mc.UpdatedAt)})
	}
	return out, cur.Err()
}

func (r *MongoCinemaRepository) Update(ctx context.Context, cinema *domain.Cinema) (*domain.Cinema, error) {
	cinema.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"uid": cinema.UID}, bson.M{"$set": bson.M{
		"name":       cinema.Name,
		"updated_at": cinema.UpdatedAt.Unix(),
	}})
	if err != nil {
		return nil, fmt.Errorf("update cinema: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCinemaNotFound
	}
	return cinema, nil
}

func (r *MongoCinemaRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return fmt.Errorf("delete cinema: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCinemaNotFound
	}
	return nil
}

// --- Rooms ---

type MongoRoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *MongoRoomRepository {
	return &MongoRoomRepository{coll: db.Collection(roomCollection)}
}

type mongoRoom struct {
	UID       string `bson:"uid"`
	Name      string `bson:"name"`
	Seats     int    `bson:"seats"`
	CinemaUID string `bson:"cinema_uid"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *MongoRoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	created := *room
	if created.UID == "" {
		created.UID = uuid.NewString()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := mongoRoom{
		UID:       created.UID,
		Name:      created.Name,
		Seats:     created.Seats,
		CinemaUID: created.CinemaUID,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return &created, nil
}

func (r *MongoRoomRepository) FindByUID(ctx context.Context, uid string) (*domain.Room, error) {
	var mr mongoRoom
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return toRoom(&mr), nil
}

func (r *MongoRoomRepository) ListByCinema(ctx context.Context, cinemaUID string) ([]domain.Room, error) {
	cur, err := r.coll.Find(ctx, bson.M{"cinema_uid": cinemaUID})
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Room
	for cur.Next(ctx) {
		var mr mongoRoom
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		out = append(out, *toRoom(&mr))
	}
	return out, cur.Err()
}

func (r *MongoRoomRepository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	room.UpdatedAt = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"uid": room.UID}, bson.M{"$set": bson.M{
		"name":       room.Name,
		"seats":      room.Seats,
		"updated_at": room.UpdatedAt.Unix(),
	}})
	if err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (r *MongoRoomRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func toRoom(mr *mongoRoom) *domain.Room {
	return &domain.Room{
		UID:       mr.UID,
		Name:      mr.Name,
		Seats:     mr.Seats,
		CinemaUID: mr.CinemaUID,
		CreatedAt: unixToTime(mr.CreatedAt),
		UpdatedAt: unixToTime(mr.UpdatedAt),
	}
}

// --- Seances ---

type MongoSeanceRepository struct {
	coll *mongo.Collection
}

func NewSeanceRepository(db *mongo.Database) *MongoSeanceRepository {
	return &MongoSeanceRepository{coll: db.Collection(seanceCollection)}
}

type mongoSeance struct {
	UID       string `bson:"uid"`
	MovieUID  string `bson:"movie_uid"`
	Date      int64  `bson:"date"`
	RoomUID   string `bson:"room_uid"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *MongoSeanceRepository) Create(ctx context.Context, seance *domain.Seance) (*domain.Seance, error) {
	created := *seance
	if created.UID == "" {
		created.UID = uuid.NewString()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	doc := mongoSeance{
		UID:       created.UID,
		MovieUID:  created.MovieUID,
		Date:      created.Date.Unix(),
		RoomUID:   created.RoomUID,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert seance: %w", err)
	}
	return &created, nil
}

func (r *MongoSeanceRepository) FindByUID(ctx context.Context, uid string) (*domain.Seance, error) {
	var ms mongoSeance
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSeanceNotFound
		}
		return nil, fmt.Errorf("find seance: %w", err)
	}
	return toSeance(&ms), nil
}

func (r *MongoSeanceRepository) ListByMovie(ctx context.Context, movieUID string) ([]domain.Seance, error) {
	cur, err := r.coll.Find(ctx, bson.M{"movie_uid": movieUID})
	if err != nil {
		return nil, fmt.Errorf("list seances: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Seance
	for cur.Next(ctx) {
		var ms mongoSeance
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode seance: %w", err)
		}
		out = append(out, *toSeance(&ms))
	}
	return out, cur.Err()
}

func (r *MongoSeanceRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return fmt.Errorf("delete seance: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSeanceNotFound
	}
	return nil
}

func toSeance(ms *mongoSeance) *domain.Seance {
	return &domain.Seance{
		UID:       ms.UID,
		MovieUID:  ms.MovieUID,
		Date:      unixToTime(ms.Date),
		RoomUID:   ms.RoomUID,
		CreatedAt: unixToTime(ms.CreatedAt),
		UpdatedAt: unixToTime(ms.UpdatedAt),
	}
}
