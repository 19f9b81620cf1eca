package interfaces

import (
	"context"
	"encoding/json"

	"polymesh/internal/domain/entities"
)

// IPaymentAttemptRepository abstracts persistence of accepted STK pushes,
// keyed by the gateway checkout request id.

type IPaymentAttemptRepository interface {
	Create(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error)
	GetByID(ctx context.Context, checkoutRequestID string) (entities.PaymentAttempt, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentAttempt, error)
	UpdateResult(ctx context.Context, checkoutRequestID string, status entities.PaymentStatus, resultCode, resultDesc string, raw json.RawMessage) (entities.PaymentAttempt, error)
}
