package app

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		env         map[string]string
		want        Config
		wantVersion bool
	}{
		{
			name: "defaults",
			want: Config{
				Port: 3000,
				Env:  "dev",
				Mongo: MongoConfig{
					DBName:         "movieflix",
					MaxPoolSize:    10,
					ConnectTimeout: 15 * time.Second,
					SocketTimeout:  45 * time.Second,
				},
				JWT: JWTConfig{SessionTTL: 7 * 24 * time.Hour},
			},
		},
		{
			name: "environment",
			env: map[string]string{
				"PORT":                 "8080",
				"APP_ENV":              "prod",
				"MONGODB_URI":          "mongodb://localhost:27017",
				"MONGODB_DB_NAME":      "sample_mflix",
				"JWT_SECRET":           "secret",
				"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
				"OTEL_COLLECTOR_URL":   "otel:4317",
			},
			want: Config{
				Port: 8080,
				Env:  "prod",
				Mongo: MongoConfig{
					URI:            "mongodb://localhost:27017",
					DBName:         "sample_mflix",
					MaxPoolSize:    10,
					ConnectTimeout: 15 * time.Second,
					SocketTimeout:  45 * time.Second,
				},
				JWT:              JWTConfig{Secret: "secret", SessionTTL: 7 * 24 * time.Hour},
				CORS:             CORSConfig{AllowedOrigins: []string{"https://a.example", "https://b.example"}},
				OtelCollectorUrl: "otel:4317",
			},
		},
		{
			name: "flags win over environment",
			args: []string{"-port", "9000", "-mongo-db", "staging", "-session-ttl", "1h", "-mongo-connect-timeout", "10s"},
			env:  map[string]string{"PORT": "8080", "MONGODB_DB_NAME": "sample_mflix"},
			want: Config{
				Port: 9000,
				Env:  "dev",
				Mongo: MongoConfig{
					DBName:         "staging",
					MaxPoolSize:    10,
					ConnectTimeout: 10 * time.Second,
					SocketTimeout:  45 * time.Second,
				},
				JWT: JWTConfig{SessionTTL: time.Hour},
			},
		},
		{
			name: "bad port in environment keeps the default",
			env:  map[string]string{"PORT": "http"},
			want: Config{
				Port: 3000,
				Env:  "dev",
				Mongo: MongoConfig{
					DBName:         "movieflix",
					MaxPoolSize:    10,
					ConnectTimeout: 15 * time.Second,
					SocketTimeout:  45 * time.Second,
				},
				JWT: JWTConfig{SessionTTL: 7 * 24 * time.Hour},
			},
		},
		{
			name: "version",
			args: []string{"-version"},
			want: Config{
				Port: 3000,
				Env:  "dev",
				Mongo: MongoConfig{
					DBName:         "movieflix",
					MaxPoolSize:    10,
					ConnectTimeout: 15 * time.Second,
					SocketTimeout:  45 * time.Second,
				},
				JWT: JWTConfig{SessionTTL: 7 * 24 * time.Hour},
			},
			wantVersion: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}

			got, gotVersion, err := parseConfig(tt.args, env)
			if err != nil {
				t.Fatalf("parseConfig() error = %v", err)
			}

			if gotVersion != tt.wantVersion {
				t.Errorf("parseConfig() version = %v, want %v", gotVersion, tt.wantVersion)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfigRejectsUnknownFlags(t *testing.T) {
	_, _, err := parseConfig([]string{"-db-dsn", "postgres://"}, func(string) (string, bool) { return "", false })
	if err == nil {
		t.Errorf("parseConfig() error = nil, want an error")
	}
}

func TestWriteTimeout(t *testing.T) {
	tests := []struct {
		name  string
		mongo MongoConfig
		want  time.Duration
	}{
		{
			name:  "default store timeouts",
			mongo: MongoConfig{ConnectTimeout: 15 * time.Second, SocketTimeout: 45 * time.Second},
			want:  70 * time.Second,
		},
		{
			name:  "short store timeouts keep the floor",
			mongo: MongoConfig{ConnectTimeout: time.Second, SocketTimeout: 2 * time.Second},
			want:  30 * time.Second,
		},
		{
			name: "no store configured",
			want: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Mongo: tt.mongo}

			if got := cfg.writeTimeout(); got != tt.want {
				t.Errorf("writeTimeout() = %v, want %v", got, tt.want)
			}

			if budget := tt.mongo.ConnectTimeout + tt.mongo.SocketTimeout; cfg.writeTimeout() <= budget {
				t.Errorf("writeTimeout() = %v, want more than the store budget %v", cfg.writeTimeout(), budget)
			}
		})
	}
}
