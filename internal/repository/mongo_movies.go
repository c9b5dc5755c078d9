package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/metinatakli/movieflix/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Numeric fields that the sample catalog sometimes stores as strings are
// decoded raw and read leniently.
type movieDocument struct {
	ID          bson.ObjectID     `bson:"_id"`
	Title       string            `bson:"title"`
	Plot        string            `bson:"plot"`
	FullPlot    string            `bson:"fullplot"`
	Genres      []string          `bson:"genres"`
	Runtime     bson.RawValue     `bson:"runtime"`
	Cast        []string          `bson:"cast"`
	Poster      string            `bson:"poster"`
	Year        bson.RawValue     `bson:"year"`
	Rated       string            `bson:"rated"`
	IMDb        imdbDocument      `bson:"imdb"`
	Countries   []string          `bson:"countries"`
	Languages   []string          `bson:"languages"`
	Directors   []string          `bson:"directors"`
	NumComments bson.RawValue     `bson:"num_mflix_comments"`
	Released    *time.Time        `bson:"released"`
	Awards      *awardsDocument   `bson:"awards"`
	Tomatoes    *tomatoesDocument `bson:"tomatoes"`
}

type imdbDocument struct {
	Rating bson.RawValue `bson:"rating"`
	Votes  bson.RawValue `bson:"votes"`
	ID     bson.RawValue `bson:"id"`
}

type awardsDocument struct {
	Wins        int    `bson:"wins"`
	Nominations int    `bson:"nominations"`
	Text        string `bson:"text"`
}

type tomatoesDocument struct {
	Viewer      *tomatoesScoreDocument `bson:"viewer"`
	Critic      *tomatoesScoreDocument `bson:"critic"`
	Fresh       int                    `bson:"fresh"`
	Rotten      int                    `bson:"rotten"`
	LastUpdated *time.Time             `bson:"lastUpdated"`
}

type tomatoesScoreDocument struct {
	Rating     bson.RawValue `bson:"rating"`
	NumReviews int           `bson:"numReviews"`
	Meter      int           `bson:"meter"`
}

func number(v bson.RawValue) float64 {
	switch v.Type {
	case bson.TypeInt32:
		return float64(v.Int32())
	case bson.TypeInt64:
		return float64(v.Int64())
	case bson.TypeDouble:
		return v.Double()
	}

	return 0
}

func (d *movieDocument) toDomain() domain.Movie {
	m := domain.Movie{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Plot:      d.Plot,
		FullPlot:  d.FullPlot,
		Genres:    d.Genres,
		Runtime:   int(number(d.Runtime)),
		Cast:      d.Cast,
		Poster:    d.Poster,
		Year:      int(number(d.Year)),
		Rated:     d.Rated,
		Countries: d.Countries,
		Languages: d.Languages,
		Directors: d.Directors,
		IMDb: domain.IMDb{
			Rating: number(d.IMDb.Rating),
			Votes:  int(number(d.IMDb.Votes)),
			ID:     int(number(d.IMDb.ID)),
		},
		NumComments: int(number(d.NumComments)),
		Released:    d.Released,
	}

	if d.Awards != nil {
		m.Awards = &domain.Awards{
			Wins:        d.Awards.Wins,
			Nominations: d.Awards.Nominations,
			Text:        d.Awards.Text,
		}
	}

	if d.Tomatoes != nil {
		m.Tomatoes = &domain.Tomatoes{
			Viewer:      d.Tomatoes.Viewer.toDomain(),
			Critic:      d.Tomatoes.Critic.toDomain(),
			Fresh:       d.Tomatoes.Fresh,
			Rotten:      d.Tomatoes.Rotten,
			LastUpdated: d.Tomatoes.LastUpdated,
		}
	}

	return m
}

func (d *tomatoesScoreDocument) toDomain() *domain.TomatoesScore {
	if d == nil {
		return nil
	}

	return &domain.TomatoesScore{
		Rating:     number(d.Rating),
		NumReviews: d.NumReviews,
		Meter:      d.Meter,
	}
}

func (s *MongoStore) findMovies(ctx context.Context, filter any, opts *options.FindOptionsBuilder) ([]domain.Movie, error) {
	cursor, err := s.movies().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, len(docs))
	for i := range docs {
		movies[i] = docs[i].toDomain()
	}

	return movies, nil
}

func (s *MongoStore) ListMovies(ctx context.Context, limit, offset int) ([]domain.Movie, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	return s.findMovies(ctx, bson.D{}, opts)
}

func (s *MongoStore) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc movieDocument

	err = s.movies().FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		return nil, notFound(err)
	}

	movie := doc.toDomain()

	return &movie, nil
}

func (s *MongoStore) MoviesByGenre(ctx context.Context, genre string, limit int) ([]domain.Movie, error) {
	filter := bson.D{{Key: "genres", Value: bson.D{{Key: "$in", Value: bson.A{genre}}}}}

	return s.findMovies(ctx, filter, options.Find().SetLimit(int64(limit)))
}

// SearchMovies matches query as a literal, case-insensitive substring of
// the title, plot, full plot, any cast member or any director.
func (s *MongoStore) SearchMovies(ctx context.Context, query string, limit int) ([]domain.Movie, error) {
	pattern := bson.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "title", Value: pattern}},
		bson.D{{Key: "plot", Value: pattern}},
		bson.D{{Key: "fullplot", Value: pattern}},
		bson.D{{Key: "cast", Value: bson.D{{Key: "$in", Value: bson.A{pattern}}}}},
		bson.D{{Key: "directors", Value: bson.D{{Key: "$in", Value: bson.A{pattern}}}}},
	}}}

	return s.findMovies(ctx, filter, options.Find().SetLimit(int64(limit)))
}
