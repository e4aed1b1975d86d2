package service

import (
	"context"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/dto"
)

// EventPublisher emits domain events after successful mutations. Publishing
// is best-effort and never fails the originating operation.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

type CatalogService interface {
	AddProduct(ctx context.Context, req dto.ProductRequest) (productID string, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, patch map[string]interface{}) (modifiedCount int64, err error)
	DeleteProduct(ctx context.Context, id string) (deletedCount int64, err error)
}

type ReviewService interface {
	AddComment(ctx context.Context, productID string, req dto.ReviewRequest) (resp dto.ReviewResponse, err error)
	GetComments(ctx context.Context, productID string) (data []domain.Comment, err error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req dto.OrderRequest) (resp dto.OrderResponse, err error)
	GetOrders(ctx context.Context) (data []domain.Order, err error)
	GetOrdersByUserID(ctx context.Context, userID string) (data []domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) (modifiedCount int64, err error)
	GetDashboardStats(ctx context.Context) (stats dto.StatsResponse, err error)
}
