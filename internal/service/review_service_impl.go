package service

import (
	"context"
	"time"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/dto"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/pkg/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewServiceImpl struct {
	repo      repository.Repository
	publisher EventPublisher
	ratingTx  bool
}

func CreateReviewService(repo repository.Repository, publisher EventPublisher, ratingTx bool) ReviewService {
	return &ReviewServiceImpl{repo: repo, publisher: publisher, ratingTx: ratingTx}
}

// AddComment inserts the comment, reads back every comment for the product
// and persists their mean star value as the product rating. Without the
// transaction opt-in the sequence is not atomic: concurrent submissions for
// the same product may each compute the mean from a snapshot missing the
// other's insert, and the last write wins.
func (s *ReviewServiceImpl) AddComment(ctx context.Context, productID string, req dto.ReviewRequest) (resp dto.ReviewResponse, err error) {
	comment, err := validateReviewCreate(req)
	if err != nil {
		return
	}

	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return resp, errs.ErrInvalidID
	}

	comment.ProductID = objectID
	comment.CreatedAt = time.Now()

	if s.ratingTx {
		err = s.repo.HandleTrx(ctx, func(sc mongo.SessionContext) error {
			var trxErr error
			resp, trxErr = s.insertAndRecompute(sc, comment)
			return trxErr
		})
	} else {
		resp, err = s.insertAndRecompute(ctx, comment)
	}

	if err != nil {
		return
	}

	s.publisher.Publish(ctx, "review_added", resp)

	return resp, nil
}

func (s *ReviewServiceImpl) insertAndRecompute(ctx context.Context, comment domain.Comment) (resp dto.ReviewResponse, err error) {
	commentID, err := s.repo.AddComment(ctx, comment)
	if err != nil {
		return
	}
	comment.ID = commentID

	comments, err := s.repo.GetCommentsByProductID(ctx, comment.ProductID)
	if err != nil {
		return
	}

	rating := averageRating(comments)

	// A missing product matches zero documents here and is not surfaced.
	if err = s.repo.SetProductRating(ctx, comment.ProductID, rating); err != nil {
		return
	}

	return dto.ReviewResponse{Comment: comment, UpdatedRating: rating}, nil
}

func (s *ReviewServiceImpl) GetComments(ctx context.Context, productID string) (data []domain.Comment, err error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, errs.ErrInvalidID
	}

	return s.repo.GetCommentsByProductID(ctx, objectID)
}

func averageRating(comments []domain.Comment) float64 {
	if len(comments) == 0 {
		return 0
	}

	var total float64
	for _, c := range comments {
		total += c.Star
	}

	return total / float64(len(comments))
}
