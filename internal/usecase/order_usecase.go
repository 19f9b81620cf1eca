package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IOrderUseCase turns a pending quote into an order.
type IOrderUseCase interface {
	Create(ctx context.Context, userID, quoteID string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	quotes IQuoteUseCase
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, quotes IQuoteUseCase) *OrderUseCase {
	return &OrderUseCase{repo: repo, quotes: quotes}
}

// Create accepts the quote first so a quote backs at most one order. A failed
// order write hands the quote back to pending so the customer can retry.
func (u *OrderUseCase) Create(ctx context.Context, userID, quoteID string) (entities.Order, error) {
	q, err := u.quotes.GetOwned(ctx, strings.TrimSpace(quoteID), userID)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := u.quotes.MarkAccepted(ctx, q.ID); err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		QuoteID:   q.ID,
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, order)
	if err != nil {
		log := logger.FromCtx(ctx).With(zap.String("quote_id", q.ID))
		log.Error("[order][usecase] repository create failed", zap.Error(err))
		if _, rerr := u.quotes.ReleaseAccepted(ctx, q.ID); rerr != nil {
			log.Error("[order][usecase] releasing accepted quote failed", zap.Error(rerr))
		}
		return entities.Order{}, err
	}
	logger.FromCtx(ctx).Info("[order][usecase] order created", zap.String("order_id", created.ID), zap.String("quote_id", q.ID))
	return created, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	orders, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
