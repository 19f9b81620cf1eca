package repository

import (
	"context"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"
)

const defaultInquiriesTableName = "inquiries"

type inquiryItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id,omitempty"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone"`
	InquiryType string `dynamodbav:"inquiry_type"`
	Message     string `dynamodbav:"message,omitempty"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// InquiryDynamoRepository persists contact-form inquiries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type InquiryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb DynamoAPI) *InquiryDynamoRepository {
	return &InquiryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INQUIRIES_TABLE", defaultInquiriesTableName),
	}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	it := inquiryItem{
		ID:          i.ID,
		UserID:      i.UserID,
		Name:        i.Name,
		Email:       i.Email,
		Phone:       i.Phone,
		InquiryType: string(i.InquiryType),
		Message:     i.Message,
		Status:      string(i.Status),
		CreatedAt:   formatTime(i.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Inquiry{}, err
	}
	return i, nil
}
