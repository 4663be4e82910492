package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry is one menu item added to a user's cart
type CartEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId,omitempty" json:"menuItemId,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price" validate:"gte=0"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
}
