package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Price          float64            `bson:"price" json:"price"`
	Category       string             `bson:"category" json:"category"`
	Stock          int64              `bson:"stock" json:"stock"`
	Specifications interface{}        `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Images         []string           `bson:"images" json:"images"`
	MainImageIndex int                `bson:"mainImageIndex" json:"mainImageIndex"`
	Rating         float64            `bson:"rating" json:"rating"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

const (
	MinProductImages = 2
	MaxProductImages = 5
)
