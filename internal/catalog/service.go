// Package catalog is the data access layer every handler goes through.
//
// Each call asks the StoreProvider for a live store and otherwise uses the
// in-memory fallback source. Reads never fail: a store error is logged and
// the fallback answers instead. Watchlist and user writes report store
// failures to the caller. Movie records returned to anonymous callers are
// shaped by domain.ShapeMovie whatever their source.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/metinatakli/movieflix/internal/domain"
	"github.com/metinatakli/movieflix/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultListLimit        = 20
	AnonymousListLimit      = 6
	AnonymousGenreLimit     = 4
	AuthenticatedGenreLimit = 10
	SearchLimit             = 20

	joinConcurrency = 8
)

// StoreProvider returns the primary store when it is reachable.
type StoreProvider interface {
	Store(ctx context.Context) (domain.Store, bool)
}

type Service struct {
	store    StoreProvider
	fallback domain.CatalogSource
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

func NewService(store StoreProvider, fallback domain.CatalogSource, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		fallback: fallback,
		logger:   logger,
		tracer:   otel.Tracer("github.com/metinatakli/movieflix/internal/catalog"),
		now:      time.Now,
	}
}

// Viewer is who a read is for. An empty UserID on an authenticated viewer
// skips the watchlist join.
type Viewer struct {
	Authenticated bool
	UserID        string
}

func Anonymous() Viewer {
	return Viewer{}
}

func ViewerOf(identity *domain.Identity) Viewer {
	if identity == nil {
		return Anonymous()
	}

	return Viewer{Authenticated: true, UserID: identity.UserID}
}

// read runs fn against the store, or against the fallback when the store
// is unavailable or fn fails on it with anything but ErrRecordNotFound.
func read[T any](ctx context.Context, s *Service, op string, fn func(src domain.CatalogSource, primary bool) (T, error)) (T, error) {
	ctx, span := s.tracer.Start(ctx, "catalog."+op)
	defer span.End()

	if store, ok := s.store.Store(ctx); ok {
		v, err := fn(store, true)
		if err == nil || errors.Is(err, domain.ErrRecordNotFound) {
			span.SetAttributes(attribute.Bool("catalog.fallback", false))
			return v, err
		}

		s.logger.WarnContext(ctx, "store read failed, serving fallback data", "operation", op, "error", err)
		metrics.CatalogFallbacks.WithLabelValues(op, metrics.ReasonError).Inc()
	} else {
		metrics.CatalogFallbacks.WithLabelValues(op, metrics.ReasonUnavailable).Inc()
	}

	span.SetAttributes(attribute.Bool("catalog.fallback", true))

	return fn(s.fallback, false)
}

// writeSource returns the store when it is reachable and the fallback
// otherwise.
func (s *Service) writeSource(ctx context.Context) (domain.CatalogSource, bool) {
	if store, ok := s.store.Store(ctx); ok {
		return store, true
	}

	return s.fallback, false
}
