package repository

import (
	"context"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"
)

type orderItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	QuoteID   string `dynamodbav:"quote_id"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := orderItem{
		ID:        o.ID,
		UserID:    o.UserID,
		QuoteID:   o.QuoteID,
		Status:    string(o.Status),
		CreatedAt: formatTime(o.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	items, err := queryIndex[orderItem](ctx, r.ddb, r.tableName, ordersUserIDIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Order{
			ID:        it.ID,
			UserID:    it.UserID,
			QuoteID:   it.QuoteID,
			Status:    entities.OrderStatus(it.Status),
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
