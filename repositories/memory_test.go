package repositories

import (
	"bistro-boss/models"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	_, err := repo.FindByEmail(ctx, "a@x.com")
	assert.True(t, errors.Is(err, ErrNotFound))

	res, err := repo.Create(ctx, models.User{Email: "a@x.com"})
	require.NoError(t, err)
	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok)
	assert.False(t, id.IsZero())

	user, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.False(t, user.IsAdmin())

	upd, err := repo.PromoteToAdmin(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	upd, err = repo.PromoteToAdmin(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(0), upd.ModifiedCount)

	user, err = repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	upd, err = repo.PromoteToAdmin(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), upd.MatchedCount)
}

func TestMemoryUserRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	_, err := repo.Create(ctx, models.User{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.User{Email: "a@x.com", Name: "again"})
	assert.True(t, errors.Is(err, ErrDuplicate))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryCartRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()

	first, err := repo.Create(ctx, models.CartEntry{Name: "Pizza", Email: "a@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.CartEntry{Name: "Salad", Email: "b@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.CartEntry{Name: "Soup", Email: "a@x.com"})
	require.NoError(t, err)

	entries, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "a@x.com", e.Email)
	}

	id := first.InsertedID.(primitive.ObjectID)
	del, err := repo.Delete(ctx, id, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount, "entry owned by someone else")

	del, err = repo.Delete(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	del, err = repo.Delete(ctx, id, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)

	entries, err = repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Soup", entries[0].Name)
}

func TestMemoryMenuAndReviews(t *testing.T) {
	ctx := context.Background()
	menu := NewMemoryMenuRepository()

	items, err := menu.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	res, err := menu.Create(ctx, models.MenuItem{Name: "Pizza", Category: "pizza", Price: 10})
	require.NoError(t, err)
	items, err = menu.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, res.InsertedID, items[0].ID)

	reviews := NewMemoryReviewRepository(models.Review{Name: "Jane", Details: "Great", Rating: 5})
	all, err := reviews.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].ID.IsZero())
}
