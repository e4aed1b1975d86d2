package service

import (
	"context"
	"time"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/dto"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/pkg/errs"
)

type OrderServiceImpl struct {
	repo      repository.Repository
	publisher EventPublisher
}

func CreateOrderService(repo repository.Repository, publisher EventPublisher) OrderService {
	return &OrderServiceImpl{repo: repo, publisher: publisher}
}

// PlaceOrder persists the order as submitted: items, shipping address and
// payment details pass through opaquely, no stock is decremented and no
// payment is verified.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, req dto.OrderRequest) (resp dto.OrderResponse, err error) {
	status := domain.OrderStatus(req.Status)
	if req.Status == "" {
		status = domain.OrderStatusPending
	}

	order := domain.Order{
		UserID:          req.UserID,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentDetails:  req.PaymentDetails,
		Total:           req.Total,
		Status:          status,
		CreatedAt:       time.Now(),
	}

	id, err := s.repo.AddOrder(ctx, order)
	if err != nil {
		return
	}

	order.ID = id
	resp = dto.OrderResponse{OrderID: id.Hex(), Order: order}

	s.publisher.Publish(ctx, "order_created", resp)

	return resp, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context) (data []domain.Order, err error) {
	return s.repo.GetOrders(ctx)
}

// GetOrdersByUserID returns the caller's orders, newest first. The admin
// sentinel user ID returns every order in the system.
func (s *OrderServiceImpl) GetOrdersByUserID(ctx context.Context, userID string) (data []domain.Order, err error) {
	if userID == domain.AdminUserID {
		return s.repo.GetOrders(ctx)
	}

	return s.repo.GetOrdersByUserID(ctx, userID)
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, orderID string, status string) (modifiedCount int64, err error) {
	if err = ValidateOrderStatus(status, domain.OrderEditStatuses); err != nil {
		return
	}

	matchedCount, modifiedCount, err := s.repo.UpdateOrderStatus(ctx, orderID, domain.OrderStatus(status))
	if err != nil {
		return 0, err
	}

	if matchedCount == 0 {
		return 0, errs.ErrNotFound
	}

	s.publisher.Publish(ctx, "order_status_updated", map[string]interface{}{"id": orderID, "status": status})

	return modifiedCount, nil
}

// GetDashboardStats reports the product count, the order count (every
// order, not only recent ones, despite the field name) and total revenue.
func (s *OrderServiceImpl) GetDashboardStats(ctx context.Context) (stats dto.StatsResponse, err error) {
	totalProducts, err := s.repo.CountProducts(ctx)
	if err != nil {
		return
	}

	totalOrders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return
	}

	totalRevenue, err := s.repo.SumOrderTotals(ctx)
	if err != nil {
		return
	}

	return dto.StatsResponse{
		TotalProducts: totalProducts,
		NewOrders:     totalOrders,
		TotalRevenue:  totalRevenue,
	}, nil
}
