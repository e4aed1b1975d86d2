package service

import (
	"context"
	"time"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/dto"
	"ecommerce-backend/internal/repository"
)

type CatalogServiceImpl struct {
	repo      repository.Repository
	publisher EventPublisher
}

func CreateCatalogService(repo repository.Repository, publisher EventPublisher) CatalogService {
	return &CatalogServiceImpl{repo: repo, publisher: publisher}
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (productID string, err error) {
	product, err := validateProductCreate(req)
	if err != nil {
		return
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	id, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	productID = id.Hex()
	s.publisher.Publish(ctx, "add_product", dto.ProductAddedResponse{ProductID: productID})

	return productID, nil
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	return s.repo.GetProducts(ctx)
}

func (s *CatalogServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, id string, patch map[string]interface{}) (modifiedCount int64, err error) {
	if err = validateProductUpdate(patch); err != nil {
		return
	}

	modifiedCount, err = s.repo.UpdateProductFields(ctx, id, patch)
	if err != nil {
		return
	}

	s.publisher.Publish(ctx, "update_product", map[string]interface{}{"id": id})

	return modifiedCount, nil
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) (deletedCount int64, err error) {
	deletedCount, err = s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	s.publisher.Publish(ctx, "delete_product", map[string]interface{}{"id": id})

	return deletedCount, nil
}
