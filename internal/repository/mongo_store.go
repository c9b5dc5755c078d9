package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/metinatakli/movieflix/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	moviesCollection    = "movies"
	commentsCollection  = "comments"
	theatersCollection  = "theaters"
	usersCollection     = "users"
	watchlistCollection = "watchlist"
)

// Collections lists every collection the store owns, in reporting order.
var Collections = []string{
	moviesCollection,
	usersCollection,
	commentsCollection,
	theatersCollection,
	watchlistCollection,
}

// MongoStore is the document store implementation of domain.Store.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		db: db,
	}
}

func (s *MongoStore) movies() *mongo.Collection {
	return s.db.Collection(moviesCollection)
}

func (s *MongoStore) comments() *mongo.Collection {
	return s.db.Collection(commentsCollection)
}

func (s *MongoStore) theaters() *mongo.Collection {
	return s.db.Collection(theatersCollection)
}

func (s *MongoStore) users() *mongo.Collection {
	return s.db.Collection(usersCollection)
}

func (s *MongoStore) watchlist() *mongo.Collection {
	return s.db.Collection(watchlistCollection)
}

func objectID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, hex)
	}

	return id, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrRecordNotFound
	}

	return err
}

type databaseConnector interface {
	Database(ctx context.Context) *mongo.Database
}

// MongoProvider hands out a MongoStore whenever the connector has a
// reachable database.
type MongoProvider struct {
	connector databaseConnector
}

func NewMongoProvider(connector databaseConnector) *MongoProvider {
	return &MongoProvider{
		connector: connector,
	}
}

func (p *MongoProvider) Store(ctx context.Context) (domain.Store, bool) {
	db := p.connector.Database(ctx)
	if db == nil {
		return nil, false
	}

	return NewMongoStore(db), true
}
