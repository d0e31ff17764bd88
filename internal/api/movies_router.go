package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinepass/cinema-platform/internal/api/handler"
	"github.com/cinepass/cinema-platform/internal/core/service"
	mongostore "github.com/cinepass/cinema-platform/internal/infrastructure/db/mongo"
)

// NewMoviesRouter builds the movie service: plain catalog CRUD. The routes
// are unauthenticated; the catalog is public read and its writes are managed
// upstream of this service.
func NewMoviesRouter(db *mongo.Database, log zerolog.Logger) *echo.Echo {
	movieRepo := mongostore.NewMovieRepository(db)
	movieService := service.NewMovieService(movieRepo, log)
	movieHandler := handler.NewMovieHandler(movieService)
	healthHandler := handler.NewHealthHandler(db, nil)

	e := newEcho("movies", log)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	e.GET("/movies", movieHandler.List)
	e.GET("/movies/:id", movieHandler.Get)
	e.POST("/movies", movieHandler.Create)
	e.PUT("/movies/:id", movieHandler.Update)
	e.DELETE("/movies/:id", movieHandler.Delete)

	return e
}
