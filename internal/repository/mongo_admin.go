package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/metinatakli/movieflix/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		moviesCollection: {
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "plot", Value: "text"}, {Key: "fullplot", Value: "text"}}},
			{Keys: bson.D{{Key: "genres", Value: 1}}},
			{Keys: bson.D{{Key: "year", Value: 1}}},
			{Keys: bson.D{{Key: "imdb.rating", Value: -1}}},
			{Keys: bson.D{{Key: "released", Value: -1}}},
		},
		commentsCollection: {
			{Keys: bson.D{{Key: "movie_id", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		theatersCollection: {
			{Keys: bson.D{{Key: "location.geo", Value: "2dsphere"}}},
		},
		watchlistCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "movie_id", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "movie_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "added_date", Value: -1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "added_date", Value: -1}}},
		},
	}
}

// CreateIndexes creates the catalog indexes. Existing indexes are left as
// they are. A failing collection does not stop the others; all failures
// are returned joined.
func (s *MongoStore) CreateIndexes(ctx context.Context) error {
	models := indexModels()

	var errs []error

	for _, name := range Collections {
		_, err := s.db.Collection(name).Indexes().CreateMany(ctx, models[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("create %s indexes: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func (s *MongoStore) CollectionStats(ctx context.Context) map[string]domain.CollectionStats {
	stats := make(map[string]domain.CollectionStats, len(Collections))

	for _, name := range Collections {
		st, err := s.collectionStats(ctx, name)
		if err != nil {
			stats[name] = domain.CollectionStats{Error: err.Error()}
			continue
		}

		stats[name] = st
	}

	return stats
}

func (s *MongoStore) collectionStats(ctx context.Context, name string) (domain.CollectionStats, error) {
	coll := s.db.Collection(name)

	count, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return domain.CollectionStats{}, err
	}

	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return domain.CollectionStats{}, err
	}

	var specs []struct {
		Name string `bson:"name"`
		Key  bson.M `bson:"key"`
	}
	if err := cursor.All(ctx, &specs); err != nil {
		return domain.CollectionStats{}, err
	}

	indexes := make([]domain.IndexInfo, len(specs))
	for i, spec := range specs {
		indexes[i] = domain.IndexInfo{Name: spec.Name, Keys: map[string]any(spec.Key)}
	}

	return domain.CollectionStats{
		DocumentCount: count,
		IndexCount:    len(indexes),
		Indexes:       indexes,
	}, nil
}

func (s *MongoStore) RecountComments(ctx context.Context, movieID string) error {
	oid, err := objectID(movieID)
	if err != nil {
		return err
	}

	count, err := s.comments().CountDocuments(ctx, bson.D{{Key: "movie_id", Value: oid}})
	if err != nil {
		return err
	}

	_, err = s.movies().UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "num_mflix_comments", Value: count}}}},
	)

	return err
}
