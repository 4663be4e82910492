package repositories

import (
	"bistro-boss/models"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(collection *mongo.Collection) IMenuRepository {
	return &MenuRepository{collection: collection}
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "find menu")
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "read menu")
	}
	return items, nil
}

func (r *MenuRepository) Create(ctx context.Context, item models.MenuItem) (*models.InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, errors.Wrap(err, "insert menu item")
	}
	return models.NewInsertResult(result), nil
}
