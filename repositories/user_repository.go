package repositories

import (
	"bistro-boss/models"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	collection *mongo.Collection
}

// EnsureUserIndexes makes email unique so concurrent registrations cannot both insert
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "create users email index")
	}
	return nil
}

func NewUserRepository(collection *mongo.Collection) IUserRepository {
	return &UserRepository{collection: collection}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "find users")
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, errors.Wrap(err, "decode user")
		}
		users = append(users, user)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "read users")
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, errors.Wrap(err, "insert user")
	}
	return models.NewInsertResult(result), nil
}

// PromoteToAdmin sets role=admin on the user with the given id
func (r *UserRepository) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"role": models.RoleAdmin,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, errors.Wrap(err, "promote user")
	}
	return models.NewUpdateResult(result), nil
}
