package interfaces

import (
	"context"

	"polymesh/internal/domain/entities"
)

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
}
