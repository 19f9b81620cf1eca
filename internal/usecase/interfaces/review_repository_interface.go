package interfaces

import (
	"context"

	"polymesh/internal/domain/entities"
)

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListAll(ctx context.Context) ([]entities.Review, error)
	ListApproved(ctx context.Context, limit int) ([]entities.Review, error)
	SetApproved(ctx context.Context, id string, approved bool) (entities.Review, error)
}
