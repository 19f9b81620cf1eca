package usecase

import (
	"context"
	"sync"

	"polymesh/internal/domain/entities"
)

// memQuoteRepo is an in-memory IQuoteRepository with the same conditional
// write semantics as the DynamoDB and MongoDB repositories.
type memQuoteRepo struct {
	mu     sync.Mutex
	quotes map[string]entities.Quote
	writes int
}

func newMemQuoteRepo(qs ...entities.Quote) *memQuoteRepo {
	r := &memQuoteRepo{quotes: map[string]entities.Quote{}}
	for _, q := range qs {
		r.quotes[q.ID] = q
	}
	return r
}

func (r *memQuoteRepo) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes[q.ID] = q
	r.writes++
	return q, nil
}

func (r *memQuoteRepo) GetByID(_ context.Context, id string) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quotes[id], nil
}

func (r *memQuoteRepo) ListByUserID(_ context.Context, userID string) ([]entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Quote
	for _, q := range r.quotes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuoteRepo) ListAll(_ context.Context) ([]entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, q)
	}
	return out, nil
}

func (r *memQuoteRepo) UpdatePaymentStatus(_ context.Context, id string, expected, status entities.PaymentStatus, details *entities.PaymentDetails) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok || q.PaymentStatus != expected {
		return entities.Quote{}, nil
	}
	q.PaymentStatus = status
	if details != nil {
		d := *details
		q.PaymentDetails = &d
	}
	r.quotes[id] = q
	r.writes++
	return q, nil
}

func (r *memQuoteRepo) UpdateStatus(_ context.Context, id string, expected, status entities.QuoteStatus) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok || q.Status != expected {
		return entities.Quote{}, nil
	}
	q.Status = status
	r.quotes[id] = q
	r.writes++
	return q, nil
}
