package interfaces

import (
	"context"

	"polymesh/internal/domain/entities"
)

// IQuoteRepository abstracts quote persistence (DynamoDB or MongoDB).
//
// Lookups return a zero Quote (empty ID) when nothing matches. The two
// update methods are single conditional writes: they only apply when the
// stored value still equals expected, and return a zero Quote otherwise.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	UpdatePaymentStatus(ctx context.Context, id string, expected, status entities.PaymentStatus, details *entities.PaymentDetails) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, expected, status entities.QuoteStatus) (entities.Quote, error)
}
