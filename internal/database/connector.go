package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/metinatakli/movieflix/internal/metrics"
	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"
	"golang.org/x/sync/singleflight"
)

const DefaultName = "movieflix"

var ErrNotConfigured = errors.New("store connection string not configured")

type Config struct {
	URI            string
	Name           string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
	// BreakerTimeout is how long the probe stays short-circuited after
	// repeated failures before it is tried again.
	BreakerTimeout time.Duration
}

// Connector owns the process-wide store client. The client is created on
// first use, at most once, and every handle it gives out has just passed
// a liveness probe.
type Connector struct {
	cfg    Config
	logger *slog.Logger

	group   singleflight.Group
	mu      sync.Mutex
	client  *mongo.Client
	breaker *gobreaker.CircuitBreaker[[]string]

	connect func(*options.ClientOptions) (*mongo.Client, error)
}

func NewConnector(cfg Config, logger *slog.Logger) *Connector {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.MaxPoolSize == 0 {
		cfg.MaxPoolSize = 10
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 15 * time.Second
	}
	if cfg.SocketTimeout == 0 {
		cfg.SocketTimeout = 45 * time.Second
	}
	if cfg.BreakerTimeout == 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}

	c := &Connector{
		cfg:    cfg,
		logger: logger,
		connect: func(opts *options.ClientOptions) (*mongo.Client, error) {
			return mongo.Connect(opts)
		},
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]string](gobreaker.Settings{
		Name:        "primary-store",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// a caller that went away says nothing about the store
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.StoreBreakerState.Set(float64(to))
			logger.Warn("store circuit breaker changed state", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	if cfg.URI == "" {
		logger.Warn("store connection string not configured, serving fallback data")
	} else {
		logger.Info("store configured", "uri", MaskURI(cfg.URI), "database", cfg.Name)
	}

	return c
}

func (c *Connector) Configured() bool {
	return c.cfg.URI != ""
}

func (c *Connector) Name() string {
	return c.cfg.Name
}

// Database returns a handle to the store database, or nil when no
// connection string is configured or the store cannot be reached.
// It never returns an error; failures are logged.
func (c *Connector) Database(ctx context.Context) *mongo.Database {
	if !c.Configured() {
		return nil
	}

	db, _, err := c.probe(ctx)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Debug("store probe short-circuited, serving fallback data")
			return nil
		}

		c.logger.Error("failed to connect to store", "error", err, "diagnosis", Diagnose(err))
		c.logger.Warn("serving fallback data")

		return nil
	}

	return db
}

// Collections probes the store and returns its collection names. Unlike
// Database it reports the failure, for health reporting.
func (c *Connector) Collections(ctx context.Context) ([]string, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	_, names, err := c.probe(ctx)
	return names, err
}

func (c *Connector) probe(ctx context.Context) (*mongo.Database, []string, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, nil, err
	}

	db := client.Database(c.cfg.Name)

	names, err := c.breaker.Execute(func() ([]string, error) {
		start := time.Now()
		defer func() { metrics.StoreProbeDuration.Observe(time.Since(start).Seconds()) }()

		probeCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
		defer cancel()

		err := db.RunCommand(probeCtx, bson.D{{Key: "ping", Value: 1}}).Err()
		if err != nil {
			metrics.StoreProbes.WithLabelValues("ping_failed").Inc()
			return nil, probeError(ctx, "ping", err)
		}

		names, err := db.ListCollectionNames(probeCtx, bson.D{})
		if err != nil {
			metrics.StoreProbes.WithLabelValues("list_failed").Inc()
			return nil, probeError(ctx, "list collections", err)
		}

		metrics.StoreProbes.WithLabelValues("ok").Inc()

		return names, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return db, names, nil
}

// probeError wraps a probe failure. When the caller's context was
// canceled the result also matches context.Canceled.
func probeError(ctx context.Context, stage string, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", stage, err, context.Canceled)
	}

	return fmt.Errorf("%s: %w", stage, err)
}

// getClient creates the shared client once. Concurrent first callers wait
// on the same attempt.
func (c *Connector) getClient() (*mongo.Client, error) {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()

	if client != nil {
		return client, nil
	}

	v, err, _ := c.group.Do("connect", func() (any, error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.client != nil {
			return c.client, nil
		}

		opts := options.Client().
			ApplyURI(c.cfg.URI).
			SetAppName("movieflix").
			SetMaxPoolSize(c.cfg.MaxPoolSize).
			SetServerSelectionTimeout(c.cfg.ConnectTimeout).
			SetConnectTimeout(c.cfg.ConnectTimeout).
			SetTimeout(c.cfg.SocketTimeout).
			SetRetryWrites(true).
			SetWriteConcern(writeconcern.Majority())

		client, err := c.connect(opts)
		if err != nil {
			return nil, fmt.Errorf("create client: %w", err)
		}

		c.logger.Info("created store client", "database", c.cfg.Name)
		c.client = client

		return client, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*mongo.Client), nil
}

func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil

	return err
}

var credentialsRgx = regexp.MustCompile(`//.*:.*@`)

// MaskURI hides the credentials of a connection string.
func MaskURI(uri string) string {
	return credentialsRgx.ReplaceAllString(uri, "//***:***@")
}
