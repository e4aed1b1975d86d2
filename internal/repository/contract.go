package repository

import (
	"context"

	"ecommerce-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProductFields(ctx context.Context, id string, fields map[string]interface{}) (modifiedCount int64, err error)
	DeleteProduct(ctx context.Context, id string) (deletedCount int64, err error)
	CountProducts(ctx context.Context) (count int64, err error)

	AddComment(ctx context.Context, data domain.Comment) (id primitive.ObjectID, err error)
	GetCommentsByProductID(ctx context.Context, productID primitive.ObjectID) (data []domain.Comment, err error)
	SetProductRating(ctx context.Context, productID primitive.ObjectID, rating float64) (err error)

	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrders(ctx context.Context) (data []domain.Order, err error)
	GetOrdersByUserID(ctx context.Context, userID string) (data []domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (matchedCount int64, modifiedCount int64, err error)
	CountOrders(ctx context.Context) (count int64, err error)
	SumOrderTotals(ctx context.Context) (total float64, err error)

	HandleTrx(ctx context.Context, fn func(ctx mongo.SessionContext) error) error
}
