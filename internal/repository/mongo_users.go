package repository

import (
	"context"

	"github.com/metinatakli/movieflix/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userDocument struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Name     string        `bson:"name"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
}

func (s *MongoStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument

	err := s.users().FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		return nil, notFound(err)
	}

	user := &domain.User{
		ID:    doc.ID.Hex(),
		Name:  doc.Name,
		Email: doc.Email,
	}
	user.Password.Hash = []byte(doc.Password)

	return user, nil
}

func (s *MongoStore) InsertUser(ctx context.Context, u *domain.User) error {
	doc := userDocument{
		Name:     u.Name,
		Email:    u.Email,
		Password: string(u.Password.Hash),
	}

	res, err := s.users().InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserAlreadyExists
		}

		return err
	}

	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = oid.Hex()
	}

	return nil
}
