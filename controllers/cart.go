package controllers

import (
	"bistro-boss/middleware"
	"bistro-boss/models"
	"bistro-boss/repositories"
	"bistro-boss/utils"
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartController handles cart-related requests
type CartController struct {
	Carts repositories.ICartRepository
}

// NewCartController creates a new CartController
func NewCartController(carts repositories.ICartRepository) *CartController {
	return &CartController{Carts: carts}
}

// GetCart lists the cart entries for the ?email= owner, which must be the caller
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteJSON(w, http.StatusOK, []models.CartEntry{})
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		utils.WriteError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := cc.Carts.FindByEmail(ctx, email)
	if err != nil {
		utils.Log.Errorf("list cart for %s: %v", email, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching cart")
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}

// AddToCart stores one cart entry. Behind the identity guard the entry must belong to the caller.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var entry models.CartEntry
	if err := utils.DecodeJSON(r, &entry); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	entry.ID = primitive.NilObjectID

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.Email != entry.Email {
		utils.WriteError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cc.Carts.Create(ctx, entry)
	if err != nil {
		utils.Log.Errorf("add to cart for %s: %v", entry.Email, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error adding to cart")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// RemoveFromCart deletes the cart entry with the given id.
// Behind the identity guard only the caller's own entries match.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid cart ID")
		return
	}

	owner := ""
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		owner = claims.Email
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cc.Carts.Delete(ctx, id, owner)
	if err != nil {
		utils.Log.Errorf("remove cart entry %s: %v", id.Hex(), err)
		utils.WriteError(w, http.StatusInternalServerError, "Error removing from cart")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
