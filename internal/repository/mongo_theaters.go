package repository

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type theaterDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	TheaterID int           `bson:"theaterId"`
	Location  struct {
		Address struct {
			Street1 string `bson:"street1"`
			City    string `bson:"city"`
			State   string `bson:"state"`
			Zipcode string `bson:"zipcode"`
		} `bson:"address"`
		Geo struct {
			Type        string    `bson:"type"`
			Coordinates []float64 `bson:"coordinates"`
		} `bson:"geo"`
	} `bson:"location"`
}

func (d *theaterDocument) toDomain() domain.Theater {
	t := domain.Theater{
		ID:        d.ID.Hex(),
		TheaterID: d.TheaterID,
		Location: domain.Location{
			Address: domain.Address{
				Street1: d.Location.Address.Street1,
				City:    d.Location.Address.City,
				State:   d.Location.Address.State,
				Zipcode: d.Location.Address.Zipcode,
			},
			Geo: domain.GeoPoint{Type: d.Location.Geo.Type},
		},
	}

	copy(t.Location.Geo.Coordinates[:], d.Location.Geo.Coordinates)

	return t
}

func (s *MongoStore) Theaters(ctx context.Context) ([]domain.Theater, error) {
	cursor, err := s.theaters().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []theaterDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	theaters := make([]domain.Theater, len(docs))
	for i := range docs {
		theaters[i] = docs[i].toDomain()
	}

	return theaters, nil
}
