package controller

import (
	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/dto"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/pkg/response"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	catalogService service.CatalogService
	orderService   service.OrderService
}

func CreateAdminController(e *echo.Group, catalogService service.CatalogService, orderService service.OrderService) {
	c := AdminController{
		catalogService: catalogService,
		orderService:   orderService,
	}

	e.POST("/add-product", c.AddProduct)
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
	e.GET("/orders", c.GetOrders)
	e.PATCH("/orders/:id", c.UpdateOrderStatus)
	e.GET("/stats", c.GetStats)
}

func (c *AdminController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	productID, err := c.catalogService.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product added successfully", dto.ProductAddedResponse{ProductID: productID})
}

func (c *AdminController) GetProducts(e echo.Context) error {
	data, err := c.catalogService.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Products retrieved successfully", data)
}

func (c *AdminController) GetProductByID(e echo.Context) error {
	product, err := c.catalogService.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product retrieved successfully", product)
}

func (c *AdminController) UpdateProduct(e echo.Context) error {
	patch := map[string]interface{}{}
	err := e.Bind(&patch)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	modifiedCount, err := c.catalogService.UpdateProduct(e.Request().Context(), e.Param("id"), patch)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product updated successfully", dto.ModifiedResponse{ModifiedCount: modifiedCount})
}

func (c *AdminController) DeleteProduct(e echo.Context) error {
	deletedCount, err := c.catalogService.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted successfully", dto.DeletedResponse{DeletedCount: deletedCount})
}

func (c *AdminController) GetOrders(e echo.Context) error {
	data, err := c.orderService.GetOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Orders retrieved successfully", data)
}

// UpdateOrderStatus validates against the PATCH allow-list before the
// service applies its own, wider edit allow-list.
func (c *AdminController) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	if err := service.ValidateOrderStatus(payload.Status, domain.OrderPatchStatuses); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	modifiedCount, err := c.orderService.UpdateOrderStatus(e.Request().Context(), e.Param("id"), payload.Status)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Order status updated successfully", dto.ModifiedResponse{ModifiedCount: modifiedCount})
}

func (c *AdminController) GetStats(e echo.Context) error {
	stats, err := c.orderService.GetDashboardStats(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Dashboard stats retrieved successfully", stats)
}
