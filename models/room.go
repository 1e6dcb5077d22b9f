package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Room is a bookable unit. Rooms are seeded out of band; this service only
// flips the availability flag and appends reviews.
type Room struct {
	ID           primitive.ObjectID       `bson:"_id,omitempty" json:"_id"`
	Name         string                   `bson:"name" json:"name"`
	Description  string                   `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64                  `bson:"price" json:"price"`
	Availability bool                     `bson:"availability" json:"availability"`
	Rating       float64                  `bson:"rating" json:"rating"`
	Location     string                   `bson:"location" json:"location"`
	Image        string                   `bson:"image,omitempty" json:"image,omitempty"`
	Reviews      []map[string]interface{} `bson:"reviews,omitempty" json:"reviews,omitempty"`
}
