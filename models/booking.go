package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a reservation record. Clients may attach arbitrary extra fields;
// those are stored verbatim and only the fields below are interpreted by the
// lifecycle logic.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RoomID    string             `bson:"roomId" json:"roomId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Date      string             `bson:"date" json:"date"`
}
