package controllers

import (
	"bistro-boss/models"
	"bistro-boss/repositories"
	"bistro-boss/utils"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedCart(t *testing.T, carts *repositories.MemoryCartRepository) primitive.ObjectID {
	t.Helper()
	ctx := context.Background()
	res, err := carts.Create(ctx, models.CartEntry{Name: "Pizza", Price: 10, Email: "a@x.com"})
	require.NoError(t, err)
	_, err = carts.Create(ctx, models.CartEntry{Name: "Salad", Price: 7, Email: "b@x.com"})
	require.NoError(t, err)
	return res.InsertedID.(primitive.ObjectID)
}

func TestGetCart(t *testing.T) {
	carts := repositories.NewMemoryCartRepository()
	seedCart(t, carts)
	cc := NewCartController(carts)

	rec := do(cc.GetCart, request{method: http.MethodGet, target: "/carts?email=a@x.com", email: "a@x.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.CartEntry
	decode(t, rec, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "a@x.com", entries[0].Email)
	assert.Equal(t, "Pizza", entries[0].Name)
}

func TestGetCart_NoEmail(t *testing.T) {
	cc := NewCartController(failingCarts{})

	rec := do(cc.GetCart, request{method: http.MethodGet, target: "/carts", email: "a@x.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetCart_OtherOwner(t *testing.T) {
	carts := repositories.NewMemoryCartRepository()
	seedCart(t, carts)
	cc := NewCartController(carts)

	rec := do(cc.GetCart, request{method: http.MethodGet, target: "/carts?email=a@x.com", email: "b@x.com"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	var body utils.ErrorResponse
	decode(t, rec, &body)
	assert.True(t, body.Error)
	assert.Equal(t, "forbidden access", body.Message)
}

func TestAddToCart(t *testing.T) {
	carts := repositories.NewMemoryCartRepository()
	cc := NewCartController(carts)

	rec := do(cc.AddToCart, request{method: http.MethodPost, target: "/carts", body: `{"menuItemId":"642c155b2c4774f05c36eeaa","name":"Soup","price":4.5,"email":"a@x.com"}`})
	require.Equal(t, http.StatusOK, rec.Code)

	entries, err := carts.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "642c155b2c4774f05c36eeaa", entries[0].MenuItemID)

	rec = do(cc.AddToCart, request{method: http.MethodPost, target: "/carts", body: `{"name":"Soup"}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFromCart(t *testing.T) {
	carts := repositories.NewMemoryCartRepository()
	id := seedCart(t, carts)
	cc := NewCartController(carts)
	req := request{method: http.MethodDelete, target: "/carts/" + id.Hex(), vars: map[string]string{"id": id.Hex()}}

	rec := do(cc.RemoveFromCart, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var del models.DeleteResult
	decode(t, rec, &del)
	assert.Equal(t, int64(1), del.DeletedCount)

	rec = do(cc.RemoveFromCart, req)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &del)
	assert.Equal(t, int64(0), del.DeletedCount)

	rec = do(cc.RemoveFromCart, request{method: http.MethodDelete, target: "/carts/1", vars: map[string]string{"id": "1"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_StorageError(t *testing.T) {
	cc := NewCartController(failingCarts{})

	rec := do(cc.GetCart, request{method: http.MethodGet, target: "/carts?email=a@x.com", email: "a@x.com"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	id := primitive.NewObjectID().Hex()
	rec = do(cc.RemoveFromCart, request{method: http.MethodDelete, target: "/carts/" + id, vars: map[string]string{"id": id}})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
