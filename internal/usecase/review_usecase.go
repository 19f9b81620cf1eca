package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PublicReviewLimit is how many approved reviews the public listing shows.
const PublicReviewLimit = 10

var (
	ErrInvalidRating  = fmt.Errorf("rating must be between 1 and 5: %w", entities.ErrValidation)
	ErrReviewNotFound = fmt.Errorf("review not found: %w", entities.ErrNotFound)
)

type IReviewUseCase interface {
	Submit(ctx context.Context, userID string, rating int, comment string) (entities.Review, error)
	ListApproved(ctx context.Context) ([]entities.Review, error)
	ListAll(ctx context.Context) ([]entities.Review, error)
	SetApproved(ctx context.Context, id string, approved bool) (entities.Review, error)
}

type ReviewUseCase struct {
	repo  interfaces.IReviewRepository
	users interfaces.IUserRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository, users interfaces.IUserRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, users: users}
}

// Submit stores an unapproved review. The author name is copied from the
// user so public listings need no user lookup.
func (u *ReviewUseCase) Submit(ctx context.Context, userID string, rating int, comment string) (entities.Review, error) {
	if rating < 1 || rating > 5 {
		return entities.Review{}, ErrInvalidRating
	}

	review := entities.Review{
		ID:        uuid.NewString(),
		UserID:    userID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}
	if u.users != nil {
		if author, err := u.users.GetByID(ctx, userID); err == nil {
			review.AuthorName = author.Name
		} else {
			logger.FromCtx(ctx).Warn("[review][usecase] author lookup failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return u.repo.Create(ctx, review)
}

func (u *ReviewUseCase) ListApproved(ctx context.Context) ([]entities.Review, error) {
	reviews, err := u.repo.ListApproved(ctx, PublicReviewLimit)
	if err != nil {
		return nil, err
	}
	sortReviews(reviews)
	if len(reviews) > PublicReviewLimit {
		reviews = reviews[:PublicReviewLimit]
	}
	return reviews, nil
}

func (u *ReviewUseCase) ListAll(ctx context.Context) ([]entities.Review, error) {
	reviews, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortReviews(reviews)
	return reviews, nil
}

func (u *ReviewUseCase) SetApproved(ctx context.Context, id string, approved bool) (entities.Review, error) {
	r, err := u.repo.SetApproved(ctx, strings.TrimSpace(id), approved)
	if err != nil {
		return entities.Review{}, err
	}
	if r.ID == "" {
		return entities.Review{}, ErrReviewNotFound
	}
	logger.FromCtx(ctx).Info("[review][usecase] moderation", zap.String("review_id", r.ID), zap.Bool("approved", approved))
	return r, nil
}

func sortReviews(reviews []entities.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}
