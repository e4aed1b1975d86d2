package dto

import "ecommerce-backend/internal/domain"

type ReviewResponse struct {
	Comment       domain.Comment `json:"comment"`
	UpdatedRating float64        `json:"updatedRating"`
}

type OrderResponse struct {
	OrderID string       `json:"orderId"`
	Order   domain.Order `json:"order"`
}

type ProductAddedResponse struct {
	ProductID string `json:"productId"`
}

type ModifiedResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type StatsResponse struct {
	TotalProducts int64   `json:"totalProducts"`
	NewOrders     int64   `json:"newOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
