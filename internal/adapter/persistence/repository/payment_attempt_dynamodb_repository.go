package repository

import (
	"context"
	"encoding/json"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentAttemptsTableName = "payment_attempts"
	paymentAttemptsQuoteIDIndex     = "quote_id-index"
)

type paymentAttemptItem struct {
	ID                string  `dynamodbav:"id"`
	QuoteID           string  `dynamodbav:"quote_id"`
	MerchantRequestID string  `dynamodbav:"merchant_request_id,omitempty"`
	Phone             string  `dynamodbav:"phone"`
	Amount            float64 `dynamodbav:"amount"`
	Status            string  `dynamodbav:"status"`
	ResultCode        string  `dynamodbav:"result_code,omitempty"`
	ResultDesc        string  `dynamodbav:"result_desc,omitempty"`
	CallbackRaw       string  `dynamodbav:"callback_raw,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// PaymentAttemptDynamoRepository persists accepted STK pushes in DynamoDB.
//
// Table requirements:
//   - PK: id (string, gateway CheckoutRequestID)
//   - GSI: quote_id-index (PK: quote_id)
type PaymentAttemptDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentAttemptRepository = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb DynamoAPI) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_ATTEMPTS_TABLE", defaultPaymentAttemptsTableName),
	}
}

func (r *PaymentAttemptDynamoRepository) Create(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentAttemptItem(a)); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return a, nil
}

func (r *PaymentAttemptDynamoRepository) GetByID(ctx context.Context, checkoutRequestID string) (entities.PaymentAttempt, error) {
	var it paymentAttemptItem
	found, err := getByID(ctx, r.ddb, r.tableName, checkoutRequestID, &it)
	if err != nil || !found {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func (r *PaymentAttemptDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentAttempt, error) {
	items, err := queryIndex[paymentAttemptItem](ctx, r.ddb, r.tableName, paymentAttemptsQuoteIDIndex, "quote_id", quoteID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PaymentAttempt, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentAttemptItem(it))
	}
	return out, nil
}

// UpdateResult stores the callback outcome. Unknown checkout ids yield a
// zero attempt.
func (r *PaymentAttemptDynamoRepository) UpdateResult(
	ctx context.Context,
	checkoutRequestID string,
	status entities.PaymentStatus,
	resultCode, resultDesc string,
	raw json.RawMessage,
) (entities.PaymentAttempt, error) {
	var it paymentAttemptItem
	ok, err := conditionalUpdate(ctx, r.ddb, r.tableName, checkoutRequestID, "",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #status = :status, #result_code = :code, #result_desc = :desc, #callback_raw = :raw, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(status)},
				":code":       &types.AttributeValueMemberS{Value: resultCode},
				":desc":       &types.AttributeValueMemberS{Value: resultDesc},
				":raw":        &types.AttributeValueMemberS{Value: string(raw)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#status":       "status",
				"#result_code":  "result_code",
				"#result_desc":  "result_desc",
				"#callback_raw": "callback_raw",
				"#updated_at":   "updated_at",
			}
			return expr, vals, names
		}, &it)
	if err != nil || !ok {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func toPaymentAttemptItem(a entities.PaymentAttempt) paymentAttemptItem {
	return paymentAttemptItem{
		ID:                a.ID,
		QuoteID:           a.QuoteID,
		MerchantRequestID: a.MerchantRequestID,
		Phone:             a.Phone,
		Amount:            a.Amount,
		Status:            string(a.Status),
		ResultCode:        a.ResultCode,
		ResultDesc:        a.ResultDesc,
		CallbackRaw:       string(a.CallbackRaw),
		CreatedAt:         formatTime(a.CreatedAt),
		UpdatedAt:         formatTime(a.UpdatedAt),
	}
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttempt {
	a := entities.PaymentAttempt{
		ID:                it.ID,
		QuoteID:           it.QuoteID,
		MerchantRequestID: it.MerchantRequestID,
		Phone:             it.Phone,
		Amount:            it.Amount,
		Status:            entities.PaymentStatus(it.Status),
		ResultCode:        it.ResultCode,
		ResultDesc:        it.ResultDesc,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.CallbackRaw != "" {
		a.CallbackRaw = json.RawMessage(it.CallbackRaw)
	}
	return a
}
