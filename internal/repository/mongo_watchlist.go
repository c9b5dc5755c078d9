package repository

import (
	"context"
	"errors"
	"time"

	"github.com/metinatakli/movieflix/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type watchlistDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    bson.ObjectID `bson:"user_id"`
	MovieID   bson.ObjectID `bson:"movie_id"`
	AddedDate time.Time     `bson:"added_date"`
	Status    string        `bson:"status"`
	Rating    *float64      `bson:"rating,omitempty"`
	Notes     *string       `bson:"notes,omitempty"`
}

func (d *watchlistDocument) toDomain() domain.WatchlistItem {
	return domain.WatchlistItem{
		ID:        d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		MovieID:   d.MovieID.Hex(),
		AddedDate: d.AddedDate,
		Status:    domain.WatchlistStatus(d.Status),
		Rating:    d.Rating,
		Notes:     d.Notes,
	}
}

func pairFilter(userID, movieID string) (bson.D, error) {
	uid, err := objectID(userID)
	if err != nil {
		return nil, err
	}

	mid, err := objectID(movieID)
	if err != nil {
		return nil, err
	}

	return bson.D{{Key: "user_id", Value: uid}, {Key: "movie_id", Value: mid}}, nil
}

func (s *MongoStore) WatchlistItem(ctx context.Context, userID, movieID string) (*domain.WatchlistItem, error) {
	filter, err := pairFilter(userID, movieID)
	if err != nil {
		return nil, err
	}

	var doc watchlistDocument

	err = s.watchlist().FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		return nil, notFound(err)
	}

	item := doc.toDomain()

	return &item, nil
}

func (s *MongoStore) UpsertWatchlistItem(
	ctx context.Context,
	userID, movieID string,
	status domain.WatchlistStatus,
	addedAt time.Time,
) (*domain.WatchlistItem, error) {
	filter, err := pairFilter(userID, movieID)
	if err != nil {
		return nil, err
	}

	item, err := s.refreshWatchlistItem(ctx, filter, status, addedAt)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	doc := watchlistDocument{
		UserID:    filter[0].Value.(bson.ObjectID),
		MovieID:   filter[1].Value.(bson.ObjectID),
		AddedDate: addedAt,
		Status:    string(status),
	}

	res, err := s.watchlist().InsertOne(ctx, doc)
	if err != nil {
		// another request inserted the pair first; the unique index keeps one
		if mongo.IsDuplicateKeyError(err) {
			return s.refreshWatchlistItem(ctx, filter, status, addedAt)
		}

		return nil, err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		doc.ID = oid
	}

	inserted := doc.toDomain()

	return &inserted, nil
}

// refreshWatchlistItem sets the status and added date of an existing entry
// and returns it with its rating and notes intact.
func (s *MongoStore) refreshWatchlistItem(
	ctx context.Context,
	filter bson.D,
	status domain.WatchlistStatus,
	addedAt time.Time,
) (*domain.WatchlistItem, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: string(status)},
		{Key: "added_date", Value: addedAt},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc watchlistDocument

	err := s.watchlist().FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		return nil, notFound(err)
	}

	item := doc.toDomain()

	return &item, nil
}

func (s *MongoStore) DeleteWatchlistItem(ctx context.Context, userID, movieID string) (bool, error) {
	filter, err := pairFilter(userID, movieID)
	if err != nil {
		return false, err
	}

	res, err := s.watchlist().DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}

	return res.DeletedCount > 0, nil
}

func (s *MongoStore) UpdateWatchlistItem(ctx context.Context, userID, movieID string, u domain.WatchlistUpdate) (bool, error) {
	if u.Empty() {
		return false, nil
	}

	filter, err := pairFilter(userID, movieID)
	if err != nil {
		return false, err
	}

	set := bson.D{}
	if u.Status != nil {
		set = append(set, bson.E{Key: "status", Value: string(*u.Status)})
	}
	if u.Rating != nil {
		set = append(set, bson.E{Key: "rating", Value: *u.Rating})
	}
	if u.Notes != nil {
		set = append(set, bson.E{Key: "notes", Value: *u.Notes})
	}

	res, err := s.watchlist().UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, err
	}

	return res.ModifiedCount > 0, nil
}

func (s *MongoStore) UserWatchlist(ctx context.Context, userID string, status *domain.WatchlistStatus) ([]domain.WatchlistItem, error) {
	uid, err := objectID(userID)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "user_id", Value: uid}}
	if status != nil {
		filter = append(filter, bson.E{Key: "status", Value: string(*status)})
	}

	opts := options.Find().SetSort(bson.D{{Key: "added_date", Value: -1}})

	cursor, err := s.watchlist().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []watchlistDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]domain.WatchlistItem, len(docs))
	for i := range docs {
		items[i] = docs[i].toDomain()
	}

	return items, nil
}
