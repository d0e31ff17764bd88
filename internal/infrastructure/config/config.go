package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration, loaded once at startup and
// passed explicitly at construction. All three services share the shape; each
// reads only the fields it needs.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Signing secrets for the two token classes. Only the identity service
	// needs them; the other services validate over the network.
	JWTSecret        string `env:"JWT_SECRET"`
	JWTRefreshSecret string `env:"JWT_REFRESH_SECRET"`

	// Peer service base URLs used by the reservation service.
	AuthServiceURL  string `env:"AUTH_SERVICE_URL,  default=http://authentication-service:4000/api"`
	MovieServiceURL string `env:"MOVIE_SERVICE_URL, default=http://movie-service:3000"`

	// ClientTimeout bounds every outbound cross-service call so a hung peer
	// cannot pin a request-handling slot indefinitely.
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT, default=5s"`

	// Open reservations older than ReservationTTL are swept to expired.
	ReservationTTL time.Duration `env:"RESERVATION_TTL,  default=30m"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL,   default=5m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cinema"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
