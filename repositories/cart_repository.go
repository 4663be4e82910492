package repositories

import (
	"bistro-boss/models"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) ICartRepository {
	return &CartRepository{collection: collection}
}

// FindByEmail returns the cart entries owned by email
func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, errors.Wrap(err, "find cart")
	}
	entries := []models.CartEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, errors.Wrap(err, "read cart")
	}
	return entries, nil
}

func (r *CartRepository) Create(ctx context.Context, entry models.CartEntry) (*models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, errors.Wrap(err, "insert cart entry")
	}
	return models.NewInsertResult(result), nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID, owner string) (*models.DeleteResult, error) {
	filter := bson.M{"_id": id}
	if owner != "" {
		filter["email"] = owner
	}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "delete cart entry")
	}
	return models.NewDeleteResult(result), nil
}
