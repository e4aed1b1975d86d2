package service

import (
	"strconv"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/dto"
	"ecommerce-backend/pkg/errs"
)

// validateProductCreate checks required fields and image cardinality, and
// returns the normalized product: price coerced to a float, stock to an
// integer, rating forced to 0.
func validateProductCreate(req dto.ProductRequest) (domain.Product, error) {
	price, _ := coerceFloat(req.Price)
	stock, _ := coerceInt(req.Stock)

	if req.Name == "" || price == 0 || req.Category == "" || stock == 0 || len(req.Images) == 0 {
		return domain.Product{}, errs.ErrMissingField
	}

	if len(req.Images) < domain.MinProductImages || len(req.Images) > domain.MaxProductImages {
		return domain.Product{}, errs.ErrImageCount
	}

	return domain.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          price,
		Category:       req.Category,
		Stock:          stock,
		Specifications: req.Specifications,
		Images:         req.Images,
		MainImageIndex: req.MainImageIndex,
		Rating:         0,
	}, nil
}

// validateProductUpdate strips the fields an edit may never touch from the
// patch in place. The rating field belongs to the rating recompute alone.
func validateProductUpdate(patch map[string]interface{}) error {
	delete(patch, "_id")
	delete(patch, "id")
	delete(patch, "createdAt")
	delete(patch, "rating")

	images, ok := patch["images"]
	if !ok {
		return nil
	}

	count, ok := imageCount(images)
	if !ok || count < domain.MinProductImages || count > domain.MaxProductImages {
		return errs.ErrImageCount
	}

	return nil
}

// validateReviewCreate requires username, comment and star; verified
// defaults to false. Star values are not range-checked, matching the
// store's accept-anything behavior for review scores.
func validateReviewCreate(req dto.ReviewRequest) (domain.Comment, error) {
	star, ok := coerceFloat(req.Star)
	if req.Username == "" || req.Comment == "" || !ok || star == 0 {
		return domain.Comment{}, errs.ErrMissingField
	}

	verified := false
	if req.Verified != nil {
		verified = *req.Verified
	}

	return domain.Comment{
		Username: req.Username,
		Comment:  req.Comment,
		Star:     star,
		Verified: verified,
	}, nil
}

// ValidateOrderStatus checks membership in the given allow-list. There is
// no transition graph: any listed status may replace any other.
func ValidateOrderStatus(status string, allowed []domain.OrderStatus) error {
	for _, s := range allowed {
		if domain.OrderStatus(status) == s {
			return nil
		}
	}

	return errs.ErrInvalidStatus
}

func coerceFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	return 0, false
}

func coerceInt(v interface{}) (int64, bool) {
	f, ok := coerceFloat(v)
	if !ok {
		return 0, false
	}

	return int64(f), true
}

func imageCount(v interface{}) (int, bool) {
	switch images := v.(type) {
	case []interface{}:
		return len(images), true
	case []string:
		return len(images), true
	}

	return 0, false
}
