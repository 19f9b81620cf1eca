package interfaces

import (
	"context"

	"polymesh/internal/domain/entities"
)

type IInquiryRepository interface {
	Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
}
