package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/domain/pricing"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound          = fmt.Errorf("quote not found: %w", entities.ErrNotFound)
	ErrInvalidQuoteID         = fmt.Errorf("invalid quote id: %w", entities.ErrValidation)
	ErrInvalidUserID          = fmt.Errorf("invalid user id: %w", entities.ErrValidation)
	ErrInvalidPaymentStatus   = fmt.Errorf("invalid payment status: %w", entities.ErrValidation)
	ErrInvalidPaymentDetails  = fmt.Errorf("completed payment requires a transaction id: %w", entities.ErrValidation)
	ErrPaymentRegression      = fmt.Errorf("payment already completed: %w", entities.ErrConflict)
	ErrPaymentTransactionDiff = fmt.Errorf("payment completed by another transaction: %w", entities.ErrConflict)
	ErrQuoteStatusTransition  = fmt.Errorf("illegal quote status transition: %w", entities.ErrConflict)
	ErrQuoteConcurrentUpdate  = fmt.Errorf("quote changed concurrently: %w", entities.ErrConflict)
)

// CreatedQuote is a freshly persisted quote plus the pricing summary shown to
// the customer.
type CreatedQuote struct {
	Quote                 entities.Quote
	Breakdown             pricing.Breakdown
	EstimatedInstallation string
}

// IQuoteUseCase is the quote ledger. It is the only writer of quotes.
//
//   - Create prices the request and stores a pending quote.
//   - UpdatePaymentStatus never moves a payment out of completed.
//   - MarkAccepted / MarkCompleted drive the commercial lifecycle.
//   - ReleaseAccepted undoes an acceptance whose order was never stored.
type IQuoteUseCase interface {
	Create(ctx context.Context, userID string, in pricing.Input) (CreatedQuote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetOwned(ctx context.Context, id, userID string) (entities.Quote, error)
	ListByOwner(ctx context.Context, userID string) ([]entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, details *entities.PaymentDetails) (entities.Quote, error)
	MarkAccepted(ctx context.Context, id string) (entities.Quote, error)
	MarkCompleted(ctx context.Context, id string) (entities.Quote, error)
	ReleaseAccepted(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo  interfaces.IQuoteRepository
	users interfaces.IUserRepository
	sms   interfaces.ISMSNotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, users interfaces.IUserRepository, sms interfaces.ISMSNotifier) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, users: users, sms: sms}
}

func (u *QuoteUseCase) Create(ctx context.Context, userID string, in pricing.Input) (CreatedQuote, error) {
	log := logger.FromCtx(ctx)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return CreatedQuote{}, ErrInvalidUserID
	}

	res, err := pricing.Calculate(in)
	if err != nil {
		log.Info("[quote][usecase] pricing rejected", zap.String("user_id", userID), zap.Error(err))
		return CreatedQuote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		// Dash-free so the id survives the QUOTE-<id> account reference split.
		ID:            strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserID:        userID,
		WindowCount:   in.WindowCount,
		Measurements:  append([]entities.Measurement(nil), in.Measurements...),
		Material:      res.Material.String(),
		Type:          res.MeshType.String(),
		Location:      strings.TrimSpace(in.Location),
		Warranty:      res.Warranty.String(),
		TotalArea:     res.TotalArea,
		BaseCost:      res.BaseCost,
		WarrantyCost:  res.WarrantyCost,
		TotalCost:     res.TotalCost,
		Status:        entities.QuoteStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		ValidUntil:    now.Add(entities.QuoteValidity),
		CreatedAt:     now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Error("[quote][usecase] repository create failed", zap.String("user_id", userID), zap.Error(err))
		return CreatedQuote{}, err
	}
	log.Info("[quote][usecase] quote created",
		zap.String("quote_id", created.ID),
		zap.String("user_id", userID),
		zap.Float64("total_cost", created.TotalCost),
	)

	u.notifyOwner(ctx, created)

	return CreatedQuote{
		Quote:                 created,
		Breakdown:             res.Breakdown(created.Location),
		EstimatedInstallation: pricing.InstallationWindow(created.Location),
	}, nil
}

func (u *QuoteUseCase) notifyOwner(ctx context.Context, q entities.Quote) {
	if u.users == nil {
		return
	}
	owner, err := u.users.GetByID(ctx, q.UserID)
	if err != nil {
		logger.FromCtx(ctx).Warn("[quote][usecase] owner lookup for sms failed", zap.String("user_id", q.UserID), zap.Error(err))
		return
	}
	if owner.Phone == "" {
		return
	}
	msg := fmt.Sprintf("Your quote for %d %s %s windows is KES %d. Valid until %s.",
		q.WindowCount, q.Material, q.Type, int64(math.Round(q.TotalCost)), q.ValidUntil.Format("02/01/2006"))
	notify(ctx, u.sms, owner.Phone, msg)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// GetOwned hides quotes of other users behind ErrQuoteNotFound.
func (u *QuoteUseCase) GetOwned(ctx context.Context, id, userID string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.UserID != userID {
		logger.FromCtx(ctx).Info("[quote][usecase] ownership mismatch", zap.String("quote_id", q.ID), zap.String("user_id", userID))
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByOwner(ctx context.Context, userID string) ([]entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	quotes, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(quotes)
	return quotes, nil
}

func (u *QuoteUseCase) ListAll(ctx context.Context) ([]entities.Quote, error) {
	quotes, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(quotes)
	return quotes, nil
}

func sortNewestFirst(quotes []entities.Quote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
}

// UpdatePaymentStatus applies a payment status change as a conditional write
// on the status it just read. When another writer wins the race the quote is
// re-read once and the change is classified again, so a duplicate callback
// resolves to a no-op instead of an error.
func (u *QuoteUseCase) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, details *entities.PaymentDetails) (entities.Quote, error) {
	log := logger.FromCtx(ctx)
	switch status {
	case entities.PaymentStatusPending, entities.PaymentStatusFailed:
		details = nil
	case entities.PaymentStatusCompleted:
		if details == nil || strings.TrimSpace(details.TransactionID) == "" {
			return entities.Quote{}, ErrInvalidPaymentDetails
		}
	default:
		return entities.Quote{}, ErrInvalidPaymentStatus
	}

	for attempt := 0; attempt < 2; attempt++ {
		current, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.Quote{}, err
		}

		noop, err := classifyPaymentChange(current, status, details)
		if err != nil {
			log.Info("[quote][usecase] payment status change refused",
				zap.String("quote_id", current.ID),
				zap.String("from", string(current.PaymentStatus)),
				zap.String("to", string(status)),
				zap.Error(err),
			)
			return entities.Quote{}, err
		}
		if noop {
			return current, nil
		}

		updated, err := u.repo.UpdatePaymentStatus(ctx, current.ID, current.PaymentStatus, status, details)
		if err != nil {
			log.Error("[quote][usecase] payment status update failed", zap.String("quote_id", current.ID), zap.Error(err))
			return entities.Quote{}, err
		}
		if updated.ID != "" {
			log.Info("[quote][usecase] payment status updated",
				zap.String("quote_id", updated.ID),
				zap.String("from", string(current.PaymentStatus)),
				zap.String("to", string(updated.PaymentStatus)),
			)
			return updated, nil
		}
		log.Info("[quote][usecase] payment status condition failed, re-reading", zap.String("quote_id", current.ID))
	}
	return entities.Quote{}, ErrQuoteConcurrentUpdate
}

// classifyPaymentChange reports whether moving q to status is a no-op, or the
// conflict that forbids it.
func classifyPaymentChange(q entities.Quote, status entities.PaymentStatus, details *entities.PaymentDetails) (bool, error) {
	if q.PaymentStatus == entities.PaymentStatusCompleted {
		if status != entities.PaymentStatusCompleted {
			return false, ErrPaymentRegression
		}
		if q.PaymentDetails != nil && q.PaymentDetails.TransactionID == details.TransactionID {
			return true, nil
		}
		return false, ErrPaymentTransactionDiff
	}
	return q.PaymentStatus == status, nil
}

func (u *QuoteUseCase) MarkAccepted(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusPending, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) MarkCompleted(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusAccepted, entities.QuoteStatusCompleted)
}

func (u *QuoteUseCase) ReleaseAccepted(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusAccepted, entities.QuoteStatusPending)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.Status != from {
		return entities.Quote{}, fmt.Errorf("%s -> %s: %w", current.Status, to, ErrQuoteStatusTransition)
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, from, to)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, fmt.Errorf("%s -> %s: %w", from, to, ErrQuoteStatusTransition)
	}
	logger.FromCtx(ctx).Info("[quote][usecase] status updated",
		zap.String("quote_id", updated.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return updated, nil
}
