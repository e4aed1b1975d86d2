package service

import (
	"context"
	"testing"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/dto"
	"ecommerce-backend/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func commentsWithStars(productID primitive.ObjectID, stars ...float64) []domain.Comment {
	comments := make([]domain.Comment, 0, len(stars))
	for _, star := range stars {
		comments = append(comments, domain.Comment{ProductID: productID, Star: star})
	}
	return comments
}

func TestAddCommentRecomputesRating(t *testing.T) {
	productID := primitive.NewObjectID()
	repo := new(MockRepository)
	publisher := &MockPublisher{}
	svc := CreateReviewService(repo, publisher, false)

	// Third comment arriving for a product already holding stars 5 and 3.
	repo.On("AddComment", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)
	repo.On("GetCommentsByProductID", mock.Anything, productID).
		Return(commentsWithStars(productID, 4, 3, 5), nil)
	repo.On("SetProductRating", mock.Anything, productID, 4.0).Return(nil)

	resp, err := svc.AddComment(context.Background(), productID.Hex(), dto.ReviewRequest{
		Username: "ana",
		Comment:  "solid",
		Star:     4,
	})

	require.NoError(t, err)
	assert.InDelta(t, 4.0, resp.UpdatedRating, 1e-9)
	assert.Equal(t, productID, resp.Comment.ProductID)
	assert.False(t, resp.Comment.CreatedAt.IsZero())
	assert.Equal(t, []string{"review_added"}, publisher.events)
	repo.AssertExpectations(t)
}

func TestAddCommentFourthCommentShiftsMean(t *testing.T) {
	productID := primitive.NewObjectID()
	repo := new(MockRepository)
	svc := CreateReviewService(repo, &MockPublisher{}, false)

	repo.On("AddComment", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)
	repo.On("GetCommentsByProductID", mock.Anything, productID).
		Return(commentsWithStars(productID, 2, 5, 3, 4), nil)
	repo.On("SetProductRating", mock.Anything, productID, 3.5).Return(nil)

	resp, err := svc.AddComment(context.Background(), productID.Hex(), dto.ReviewRequest{
		Username: "bob",
		Comment:  "meh",
		Star:     2,
	})

	require.NoError(t, err)
	assert.InDelta(t, 3.5, resp.UpdatedRating, 1e-9)
	repo.AssertExpectations(t)
}

func TestAddCommentMissingFieldWritesNothing(t *testing.T) {
	repo := new(MockRepository)
	svc := CreateReviewService(repo, &MockPublisher{}, false)

	_, err := svc.AddComment(context.Background(), primitive.NewObjectID().Hex(), dto.ReviewRequest{
		Username: "ana",
	})

	assert.Equal(t, errs.ErrMissingField, err)
	repo.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything)
}

func TestAddCommentInvalidProductID(t *testing.T) {
	repo := new(MockRepository)
	svc := CreateReviewService(repo, &MockPublisher{}, false)

	_, err := svc.AddComment(context.Background(), "not-a-hex-id", dto.ReviewRequest{
		Username: "ana",
		Comment:  "great",
		Star:     5,
	})

	assert.Equal(t, errs.ErrInvalidID, err)
	repo.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything)
}

func TestGetCommentsInvalidProductID(t *testing.T) {
	repo := new(MockRepository)
	svc := CreateReviewService(repo, &MockPublisher{}, false)

	_, err := svc.GetComments(context.Background(), "nope")
	assert.Equal(t, errs.ErrInvalidID, err)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, float64(0), averageRating(nil))

	productID := primitive.NewObjectID()
	assert.InDelta(t, 4.0, averageRating(commentsWithStars(productID, 5, 3, 4)), 1e-9)
	assert.InDelta(t, 3.5, averageRating(commentsWithStars(productID, 5, 3, 4, 2)), 1e-9)
}
