package app

import (
	"flag"
	"strconv"
	"strings"
	"time"

	"github.com/metinatakli/movieflix/internal/database"
)

type MongoConfig struct {
	URI            string
	DBName         string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
}

type JWTConfig struct {
	Secret     string
	SessionTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type Config struct {
	Port             int
	Env              string
	Mongo            MongoConfig
	JWT              JWTConfig
	CORS             CORSConfig
	OtelCollectorUrl string
}

type lookupEnv func(key string) (string, bool)

// parseConfig reads flags from args. Each flag defaults to its environment
// variable when one is set.
func parseConfig(args []string, env lookupEnv) (Config, bool, error) {
	var (
		cfg     Config
		origins string
	)

	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", envInt(env, "PORT", 3000), "server port")
	fs.StringVar(&cfg.Env, "env", envString(env, "APP_ENV", "dev"), "Environment (dev|staging|prod)")

	fs.StringVar(&cfg.Mongo.URI, "mongo-uri", envString(env, "MONGODB_URI", ""), "MongoDB connection string, empty serves the fallback dataset")
	fs.StringVar(&cfg.Mongo.DBName, "mongo-db", envString(env, "MONGODB_DB_NAME", database.DefaultName), "MongoDB database name")
	fs.Uint64Var(&cfg.Mongo.MaxPoolSize, "mongo-max-pool-size", 10, "MongoDB max connection pool size")
	fs.DurationVar(&cfg.Mongo.ConnectTimeout, "mongo-connect-timeout", 15*time.Second, "MongoDB connect and server selection timeout")
	fs.DurationVar(&cfg.Mongo.SocketTimeout, "mongo-socket-timeout", 45*time.Second, "MongoDB operation timeout")

	fs.StringVar(&cfg.JWT.Secret, "jwt-secret", envString(env, "JWT_SECRET", ""), "session token signing secret")
	fs.DurationVar(&cfg.JWT.SessionTTL, "session-ttl", 7*24*time.Hour, "session token lifetime")

	fs.StringVar(&origins, "cors-origins", envString(env, "CORS_ALLOWED_ORIGINS", ""), "comma separated list of allowed CORS origins")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString(env, "OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector endpoint")

	displayVersion := fs.Bool("version", false, "Display version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}

	cfg.CORS.AllowedOrigins = splitList(origins)

	return cfg, *displayVersion, nil
}

func envString(env lookupEnv, key, fallback string) string {
	if v, ok := env(key); ok && v != "" {
		return v
	}

	return fallback
}

func envInt(env lookupEnv, key string, fallback int) int {
	v, ok := env(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

const (
	minWriteTimeout    = 30 * time.Second
	writeTimeoutMargin = 10 * time.Second
)

// writeTimeout outlasts one store read (probe plus operation) so a slow
// store still ends in a fallback response instead of a dropped one.
func (cfg Config) writeTimeout() time.Duration {
	budget := cfg.Mongo.ConnectTimeout + cfg.Mongo.SocketTimeout + writeTimeoutMargin

	return max(budget, minWriteTimeout)
}
