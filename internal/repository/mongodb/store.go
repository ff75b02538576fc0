package mongodb

import (
	"context"
	"errors"
	"fmt"
	"gamesite/internal/repository"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	usersCollection = "users"

	// index names follow the "<field>_1" convention so existing collections keep their indexes
	emailIndex    = "email_1"
	usernameIndex = "username_1"
)

// userDocument is the stored shape of an account.
type userDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Email       string        `bson:"email"`
	Username    string        `bson:"username"`
	Password    string        `bson:"password"`
	ConfirmCode *string       `bson:"confirmCode"`
	Confirmed   bool          `bson:"confirmed"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

// Store keeps accounts in a MongoDB collection.
type Store struct {
	client *mongo.Client
	users  *mongo.Collection
}

func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		users:  client.Database(database).Collection(usersCollection),
	}, nil
}

// EnsureIndexes creates the unique indexes that guarantee email and username uniqueness.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(emailIndex).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName(usernameIndex).SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, user repository.User) error {
	doc := toDocument(user, time.Now().UTC())

	_, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		err = translateWriteError(err)
		if errors.Is(err, repository.ErrUsernameTaken) && s.emailHeld(ctx, user.Email) {
			return repository.ErrEmailTaken
		}
		return err
	}
	return nil
}

// emailHeld reports whether an account already uses email. Lookup failures count as not held.
func (s *Store) emailHeld(ctx context.Context, email string) bool {
	n, err := s.users.CountDocuments(ctx, bson.D{{Key: "email", Value: email}}, options.Count().SetLimit(1))
	return err == nil && n > 0
}

func (s *Store) ConfirmUser(ctx context.Context, email, code string) error {
	res, err := s.users.UpdateOne(ctx,
		confirmFilter(email, code),
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "confirmed", Value: true},
			{Key: "confirmCode", Value: nil},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	)
	if err != nil {
		return fmt.Errorf("confirm user: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (s *Store) GetConfirmedUser(ctx context.Context, username, email string) (repository.User, error) {
	var doc userDocument
	err := s.users.FindOne(ctx, loginFilter(username, email)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.User{}, repository.ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return doc.toUser(), nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func confirmFilter(email, code string) bson.D {
	return bson.D{
		{Key: "email", Value: email},
		{Key: "confirmCode", Value: code},
		{Key: "confirmed", Value: false},
	}
}

func loginFilter(username, email string) bson.D {
	filter := bson.D{
		{Key: "username", Value: username},
		{Key: "confirmed", Value: true},
	}
	if email != "" {
		filter = append(filter, bson.E{Key: "email", Value: email})
	}
	return filter
}

func translateWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert user: %w", err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "index: "+emailIndex):
		return repository.ErrEmailTaken
	case strings.Contains(msg, "index: "+usernameIndex):
		return repository.ErrUsernameTaken
	}
	return fmt.Errorf("insert user: %w", err)
}

func toDocument(user repository.User, now time.Time) userDocument {
	doc := userDocument{
		Email:       user.Email,
		Username:    user.Username,
		Password:    user.PasswordHash,
		ConfirmCode: user.ConfirmCode,
		Confirmed:   user.Confirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if id, err := bson.ObjectIDFromHex(user.ID); err == nil {
		doc.ID = id
	}
	return doc
}

func (d userDocument) toUser() repository.User {
	return repository.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.Password,
		ConfirmCode:  d.ConfirmCode,
		Confirmed:    d.Confirmed,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
