package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a dish on the restaurant menu
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category" json:"category" validate:"required"`
	Price    float64            `bson:"price" json:"price" validate:"gte=0"`
}
