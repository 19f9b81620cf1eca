package repository

import (
	"context"
	"sort"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesUserIDIndex      = "user_id-index"
)

type measurementItem struct {
	Width  float64 `dynamodbav:"width"`
	Height float64 `dynamodbav:"height"`
}

type paymentDetailsItem struct {
	TransactionID string  `dynamodbav:"transaction_id"`
	ReceiptNumber string  `dynamodbav:"receipt_number,omitempty"`
	Amount        float64 `dynamodbav:"amount"`
	Phone         string  `dynamodbav:"phone"`
	Date          string  `dynamodbav:"date"`
}

type quoteItem struct {
	ID             string              `dynamodbav:"id"`
	UserID         string              `dynamodbav:"user_id"`
	WindowCount    int                 `dynamodbav:"window_count"`
	Measurements   []measurementItem   `dynamodbav:"measurements"`
	Material       string              `dynamodbav:"material"`
	Type           string              `dynamodbav:"type"`
	Location       string              `dynamodbav:"location"`
	Warranty       string              `dynamodbav:"warranty"`
	TotalArea      float64             `dynamodbav:"total_area"`
	BaseCost       float64             `dynamodbav:"base_cost"`
	WarrantyCost   float64             `dynamodbav:"warranty_cost"`
	TotalCost      float64             `dynamodbav:"total_cost"`
	Status         string              `dynamodbav:"status"`
	PaymentStatus  string              `dynamodbav:"payment_status"`
	PaymentDetails *paymentDetailsItem `dynamodbav:"payment_details,omitempty"`
	ValidUntil     string              `dynamodbav:"valid_until"`
	CreatedAt      string              `dynamodbav:"created_at"`
	UpdatedAt      string              `dynamodbav:"updated_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Status and payment status only change through conditional updates on the
// value the caller last read, so concurrent callbacks cannot overwrite each
// other.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	items, err := queryIndex[quoteItem](ctx, r.ddb, r.tableName, quotesUserIDIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	return fromQuoteItems(items), nil
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	items, err := scanAll[quoteItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromQuoteItems(items), nil
}

func (r *QuoteDynamoRepository) UpdatePaymentStatus(
	ctx context.Context,
	id string,
	expected, status entities.PaymentStatus,
	details *entities.PaymentDetails,
) (entities.Quote, error) {
	var detailsAV types.AttributeValue
	if details != nil {
		av, err := attributevalue.Marshal(toPaymentDetailsItem(*details))
		if err != nil {
			return entities.Quote{}, err
		}
		detailsAV = av
	}

	var it quoteItem
	ok, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, "#payment_status = :expected",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #payment_status = :status, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":expected":   &types.AttributeValueMemberS{Value: string(expected)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#payment_status": "payment_status",
				"#updated_at":     "updated_at",
			}
			if detailsAV != nil {
				expr += ", #payment_details = :details"
				vals[":details"] = detailsAV
				names["#payment_details"] = "payment_details"
			}
			return expr, vals, names
		}, &it)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, status entities.QuoteStatus) (entities.Quote, error) {
	var it quoteItem
	ok, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, "#status = :expected",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #status = :status, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":expected":   &types.AttributeValueMemberS{Value: string(expected)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		}, &it)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	ms := make([]measurementItem, 0, len(q.Measurements))
	for _, m := range q.Measurements {
		ms = append(ms, measurementItem{Width: m.Width, Height: m.Height})
	}
	it := quoteItem{
		ID:            q.ID,
		UserID:        q.UserID,
		WindowCount:   q.WindowCount,
		Measurements:  ms,
		Material:      q.Material,
		Type:          q.Type,
		Location:      q.Location,
		Warranty:      q.Warranty,
		TotalArea:     q.TotalArea,
		BaseCost:      q.BaseCost,
		WarrantyCost:  q.WarrantyCost,
		TotalCost:     q.TotalCost,
		Status:        string(q.Status),
		PaymentStatus: string(q.PaymentStatus),
		ValidUntil:    formatTime(q.ValidUntil),
		CreatedAt:     formatTime(q.CreatedAt),
	}
	if q.PaymentDetails != nil {
		d := toPaymentDetailsItem(*q.PaymentDetails)
		it.PaymentDetails = &d
	}
	return it
}

func toPaymentDetailsItem(d entities.PaymentDetails) paymentDetailsItem {
	return paymentDetailsItem{
		TransactionID: d.TransactionID,
		ReceiptNumber: d.ReceiptNumber,
		Amount:        d.Amount,
		Phone:         d.Phone,
		Date:          formatTime(d.Date),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	ms := make([]entities.Measurement, 0, len(it.Measurements))
	for _, m := range it.Measurements {
		ms = append(ms, entities.Measurement{Width: m.Width, Height: m.Height})
	}
	q := entities.Quote{
		ID:            it.ID,
		UserID:        it.UserID,
		WindowCount:   it.WindowCount,
		Measurements:  ms,
		Material:      it.Material,
		Type:          it.Type,
		Location:      it.Location,
		Warranty:      it.Warranty,
		TotalArea:     it.TotalArea,
		BaseCost:      it.BaseCost,
		WarrantyCost:  it.WarrantyCost,
		TotalCost:     it.TotalCost,
		Status:        entities.QuoteStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		ValidUntil:    parseTime(it.ValidUntil),
		CreatedAt:     parseTime(it.CreatedAt),
	}
	if it.PaymentDetails != nil {
		q.PaymentDetails = &entities.PaymentDetails{
			TransactionID: it.PaymentDetails.TransactionID,
			ReceiptNumber: it.PaymentDetails.ReceiptNumber,
			Amount:        it.PaymentDetails.Amount,
			Phone:         it.PaymentDetails.Phone,
			Date:          parseTime(it.PaymentDetails.Date),
		}
	}
	return q
}

func fromQuoteItems(items []quoteItem) []entities.Quote {
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
