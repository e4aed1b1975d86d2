package controller

import (
	"ecommerce-backend/internal/dto"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/pkg/response"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	catalogService service.CatalogService
	reviewService  service.ReviewService
	orderService   service.OrderService
}

func CreateUserController(e *echo.Group, catalogService service.CatalogService, reviewService service.ReviewService, orderService service.OrderService) {
	c := UserController{
		catalogService: catalogService,
		reviewService:  reviewService,
		orderService:   orderService,
	}

	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/review/:productId", c.AddReview)
	e.GET("/review/:productId", c.GetReviews)
	e.POST("/buy", c.PlaceOrder)
	e.GET("/orders/:userId", c.GetOrders)
}

func (c *UserController) GetProducts(e echo.Context) error {
	data, err := c.catalogService.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Products retrieved successfully", data)
}

func (c *UserController) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	product, err := c.catalogService.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product retrieved successfully", product)
}

func (c *UserController) AddReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
	}

	resp, err := c.reviewService.AddComment(e.Request().Context(), e.Param("productId"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Comment added successfully", resp)
}

func (c *UserController) GetReviews(e echo.Context) error {
	data, err := c.reviewService.GetComments(e.Request().Context(), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Comments retrieved successfully", data)
}

func (c *UserController) PlaceOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PlaceOrder").Msg("")
	}

	resp, err := c.orderService.PlaceOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Order placed successfully", resp)
}

func (c *UserController) GetOrders(e echo.Context) error {
	data, err := c.orderService.GetOrdersByUserID(e.Request().Context(), e.Param("userId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Orders retrieved successfully", data)
}
