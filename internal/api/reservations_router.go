package api

import (
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinepass/cinema-platform/internal/api/handler"
	"github.com/cinepass/cinema-platform/internal/api/middleware"
	"github.com/cinepass/cinema-platform/internal/core/service"
	"github.com/cinepass/cinema-platform/internal/infrastructure/client"
	"github.com/cinepass/cinema-platform/internal/infrastructure/config"
	mongostore "github.com/cinepass/cinema-platform/internal/infrastructure/db/mongo"
	redisstore "github.com/cinepass/cinema-platform/internal/infrastructure/db/redis"
)

// NewReservationsRouter builds the reservation service: the booking workflow
// plus the cinema/room/seance persistence endpoints. This process holds no
// signing secret; its gate validates tokens through the identity service's
// network endpoint.
func NewReservationsRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	tokenValidator := client.NewAuthClient(cfg.AuthServiceURL, cfg.ClientTimeout, log)
	catalog := client.NewMovieClient(cfg.MovieServiceURL, cfg.ClientTimeout, log)

	reservationRepo := mongostore.NewReservationRepository(db)
	guard := redisstore.NewReplayGuard(rdb)
	reservationService := service.NewReservationService(reservationRepo, catalog, guard, log)

	cinemaRepo := mongostore.NewCinemaRepository(db)
	roomRepo := mongostore.NewRoomRepository(db)
	seanceRepo := mongostore.NewSeanceRepository(db)

	reservationHandler := handler.NewReservationHandler(reservationService)
	cinemaHandler := handler.NewCinemaHandler(cinemaRepo, roomRepo, seanceRepo)
	healthHandler := handler.NewHealthHandler(db, rdb)

	e := newEcho("reservations", log)
	authMW := middleware.Authenticate(tokenValidator)
	adminMW := middleware.RequireAdmin()

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	api := e.Group("/api")

	api.POST("/movie/:id/reservations", reservationHandler.Create, authMW)
	api.GET("/movie/:id/reservations", reservationHandler.ListByMovie, authMW)
	api.POST("/reservations/:id/confirm", reservationHandler.Confirm, authMW)
	api.GET("/reservations/:id", reservationHandler.Get, authMW)

	// Venue management is administrator-only; reads stay public.
	cinema := api.Group("/cinema")
	cinema.POST("", cinemaHandler.CreateCinema, authMW, adminMW)
	cinema.GET("", cinemaHandler.ListCinemas)
	cinema.GET("/:uid", cinemaHandler.GetCinema)
	cinema.PUT("/:uid", cinemaHandler.UpdateCinema, authMW, adminMW)
	cinema.DELETE("/:uid", cinemaHandler.DeleteCinema, authMW, adminMW)

	cinema.POST("/:cinemaUid/rooms", cinemaHandler.CreateRoom, authMW, adminMW)
	cinema.GET("/:cinemaUid/rooms", cinemaHandler.ListRooms)
	cinema.GET("/:cinemaUid/rooms/:uid", cinemaHandler.GetRoom)
	cinema.PUT("/:cinemaUid/rooms/:uid", cinemaHandler.UpdateRoom, authMW, adminMW)
	cinema.DELETE("/:cinemaUid/rooms/:uid", cinemaHandler.DeleteRoom, authMW, adminMW)

	cinema.POST("/:cinemaUid/rooms/:roomUid/sceances", cinemaHandler.CreateSeance, authMW, adminMW)
	cinema.GET("/:cinemaUid/rooms/:roomUid/sceances/:uid", cinemaHandler.GetSeance)
	cinema.DELETE("/:cinemaUid/rooms/:roomUid/sceances/:uid", cinemaHandler.DeleteSeance, authMW, adminMW)

	return e
}
