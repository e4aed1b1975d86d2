package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment references its product by ID only; the store enforces no
// referential integrity and comments are immutable once written.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Username  string             `bson:"username" json:"username"`
	Comment   string             `bson:"comment" json:"comment"`
	Star      float64            `bson:"star" json:"star"`
	Verified  bool               `bson:"verified" json:"verified"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
