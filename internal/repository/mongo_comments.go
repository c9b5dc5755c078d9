package repository

import (
	"context"
	"time"

	"github.com/metinatakli/movieflix/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type commentDocument struct {
	ID      bson.ObjectID `bson:"_id,omitempty"`
	Name    string        `bson:"name"`
	Email   string        `bson:"email"`
	MovieID bson.ObjectID `bson:"movie_id"`
	Text    string        `bson:"text"`
	Date    time.Time     `bson:"date"`
}

func (d *commentDocument) toDomain() domain.Comment {
	return domain.Comment{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		Email:   d.Email,
		MovieID: d.MovieID.Hex(),
		Text:    d.Text,
		Date:    d.Date,
	}
}

func (s *MongoStore) CommentsByMovie(ctx context.Context, movieID string) ([]domain.Comment, error) {
	oid, err := objectID(movieID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := s.comments().Find(ctx, bson.D{{Key: "movie_id", Value: oid}}, opts)
	if err != nil {
		return nil, err
	}

	var docs []commentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, len(docs))
	for i := range docs {
		comments[i] = docs[i].toDomain()
	}

	return comments, nil
}

func (s *MongoStore) InsertComment(ctx context.Context, c *domain.Comment) error {
	movieID, err := objectID(c.MovieID)
	if err != nil {
		return err
	}

	doc := commentDocument{
		Name:    c.Name,
		Email:   c.Email,
		MovieID: movieID,
		Text:    c.Text,
		Date:    c.Date,
	}

	res, err := s.comments().InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		c.ID = oid.Hex()
	}

	return nil
}
