package models

import "time"

// Room represents a bookable hotel room.
type Room struct {
	ID           string    `bson:"id" json:"id"`
	RoomNumber   string    `bson:"roomNumber" json:"roomNumber"` // Unique business key, e.g. "R01"
	RoomType     string    `bson:"roomType" json:"roomType"`
	BedType      string    `bson:"bedType" json:"bedType"`
	Price        float64   `bson:"price" json:"price"` // Per-night rate
	Size         string    `bson:"size" json:"size"`
	Description  string    `bson:"description" json:"description"`
	Images       []string  `bson:"images" json:"images"`
	Availability bool      `bson:"availability" json:"availability"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
