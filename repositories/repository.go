package repositories

import (
	"bistro-boss/models"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a single-document lookup matches nothing
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when an insert collides with a unique index
var ErrDuplicate = errors.New("duplicate document")

type IUserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.InsertResult, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error)
}

type IMenuRepository interface {
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (*models.InsertResult, error)
}

type IReviewRepository interface {
	FindAll(ctx context.Context) ([]models.Review, error)
}

type ICartRepository interface {
	FindByEmail(ctx context.Context, email string) ([]models.CartEntry, error)
	Create(ctx context.Context, entry models.CartEntry) (*models.InsertResult, error)
	// Delete removes the entry with id; a non-empty owner also requires the entry's email to match
	Delete(ctx context.Context, id primitive.ObjectID, owner string) (*models.DeleteResult, error)
}

// Repositories groups the four resource stores
type Repositories struct {
	Users   IUserRepository
	Menu    IMenuRepository
	Reviews IReviewRepository
	Carts   ICartRepository
}

// Collection names inside the bistro database
const (
	UsersCollection   = "users"
	MenuCollection    = "menu"
	ReviewsCollection = "reviews"
	CartCollection    = "cart"
)

// EnsureIndexes creates the indexes the repositories rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	return EnsureUserIndexes(ctx, db.Collection(UsersCollection))
}

// NewMongoRepositories binds every repository to its collection in db
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(db.Collection(UsersCollection)),
		Menu:    NewMenuRepository(db.Collection(MenuCollection)),
		Reviews: NewReviewRepository(db.Collection(ReviewsCollection)),
		Carts:   NewCartRepository(db.Collection(CartCollection)),
	}
}
