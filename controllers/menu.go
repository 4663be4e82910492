package controllers

import (
	"bistro-boss/models"
	"bistro-boss/repositories"
	"bistro-boss/utils"
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuController handles menu-related requests
type MenuController struct {
	Menu repositories.IMenuRepository
}

// NewMenuController creates a new MenuController
func NewMenuController(menu repositories.IMenuRepository) *MenuController {
	return &MenuController{Menu: menu}
}

// GetMenu retrieves all menu items
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := mc.Menu.FindAll(ctx)
	if err != nil {
		utils.Log.Errorf("list menu: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching menu")
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

// CreateMenuItem adds a dish to the menu
func (mc *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := utils.DecodeJSON(r, &item); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	item.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := mc.Menu.Create(ctx, item)
	if err != nil {
		utils.Log.Errorf("create menu item %q: %v", item.Name, err)
		utils.WriteError(w, http.StatusInternalServerError, "Error creating menu item")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}
