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
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const msgUserExists = "Already exist this user"

// UserController handles user-related requests
type UserController struct {
	Users repositories.IUserRepository
}

// NewUserController creates a new UserController
func NewUserController(users repositories.IUserRepository) *UserController {
	return &UserController{Users: users}
}

// GetUsers lists every user (admin only)
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := uc.Users.FindAll(ctx)
	if err != nil {
		utils.Log.Errorf("list users: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

// CreateUser registers a user unless one with the same email already exists
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	user.ID = primitive.NilObjectID
	user.Role = ""

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := uc.Users.FindByEmail(ctx, user.Email)
	if err == nil {
		utils.Log.Debugf("existing user %s", user.Email)
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": msgUserExists})
		return
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		utils.Log.Errorf("lookup user %s: %v", user.Email, err)
		utils.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}

	result, err := uc.Users.Create(ctx, user)
	if errors.Is(err, repositories.ErrDuplicate) {
		utils.Log.Debugf("existing user %s (concurrent insert)", user.Email)
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": msgUserExists})
		return
	}
	if err != nil {
		utils.Log.Errorf("create user %s: %v", user.Email, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error creating user")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// IsAdmin reports whether the caller, identified by the path email, is an admin
func (uc *UserController) IsAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		utils.WriteJSON(w, http.StatusOK, map[string]bool{"admin": false})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := uc.Users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		utils.Log.Errorf("admin status for %s: %v", email, err)
		utils.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"admin": user.IsAdmin()})
}

// MakeAdmin promotes the user with the given id to admin
func (uc *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := uc.Users.PromoteToAdmin(ctx, id)
	if err != nil {
		utils.Log.Errorf("promote user %s: %v", id.Hex(), err)
		utils.WriteError(w, http.StatusInternalServerError, "Error updating user")
		return
	}
	utils.Log.Infof("user %s promoted to admin (matched=%d)", id.Hex(), result.MatchedCount)
	utils.WriteJSON(w, http.StatusOK, result)
}
