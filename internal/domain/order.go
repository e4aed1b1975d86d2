package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusOrderPlaced OrderStatus = "Order Placed"
	OrderStatusProcessing  OrderStatus = "Processing"
	OrderStatusShipped     OrderStatus = "Shipped"
	OrderStatusDelivered   OrderStatus = "Delivered"
	OrderStatusCancelled   OrderStatus = "Cancelled"
)

// The two order-update entry points carry different allow-lists: the edit
// path accepts Cancelled, the PATCH endpoint does not. Neither accepts
// "pending", which is only ever assigned as the creation default. Kept as
// two separate lists so the divergence stays visible.
var (
	OrderEditStatuses = []OrderStatus{
		OrderStatusOrderPlaced,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}

	OrderPatchStatuses = []OrderStatus{
		OrderStatusOrderPlaced,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
	}
)

// AdminUserID is treated as an administrative sentinel: order listings for
// this user return every order in the system.
const AdminUserID = "1"

// Order items, shipping address and payment details are persisted opaquely;
// nothing in this service validates or settles payments.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"userId" json:"userId"`
	Items           []interface{}      `bson:"items" json:"items"`
	ShippingAddress interface{}        `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentDetails  interface{}        `bson:"paymentDetails" json:"paymentDetails"`
	Total           float64            `bson:"total" json:"total"`
	Status          OrderStatus        `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
