package api

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinepass/cinema-platform/internal/api/handler"
	"github.com/cinepass/cinema-platform/internal/api/middleware"
	"github.com/cinepass/cinema-platform/internal/core/service"
	"github.com/cinepass/cinema-platform/internal/infrastructure/config"
	mongostore "github.com/cinepass/cinema-platform/internal/infrastructure/db/mongo"
)

// NewIdentityRouter builds the identity service: account management plus the
// token issue/validate/refresh endpoints. This is the only process holding
// the signing secrets; its gate validates in-process.
func NewIdentityRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	codec, err := service.NewTokenCodec(cfg.JWTSecret, cfg.JWTRefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("identity router: %w", err)
	}

	userRepo := mongostore.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, codec, log)

	accountHandler := handler.NewAccountHandler(authService)
	tokenHandler := handler.NewTokenHandler(authService)
	healthHandler := handler.NewHealthHandler(db, nil)

	e := newEcho("identity", log)
	authMW := middleware.Authenticate(authService)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	api := e.Group("/api")
	api.POST("/account", accountHandler.Register)
	api.GET("/account/:uid", accountHandler.Get, authMW)
	api.PUT("/account/:uid", accountHandler.Update, authMW)

	api.POST("/token", tokenHandler.Issue)
	// Unauthenticated by design: this is the validation primitive the other
	// services' gates call.
	api.GET("/validate/:accessToken", tokenHandler.Validate)
	api.POST("/refresh-token/:refreshToken/token", tokenHandler.Refresh)

	return e, nil
}
