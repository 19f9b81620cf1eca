package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const chargeDescription = "Mosquito Mesh Payment"

var (
	ErrInvalidPhone        = fmt.Errorf("phone must be +254 or 254 followed by 9 digits: %w", entities.ErrValidation)
	ErrInvalidAmount       = fmt.Errorf("amount must be between KES 1 and KES 2147483647: %w", entities.ErrValidation)
	ErrQuoteAlreadyPaid    = fmt.Errorf("quote already paid: %w", entities.ErrConflict)
	ErrGatewayNotAvailable = fmt.Errorf("payment gateway not configured: %w", entities.ErrPaymentInitiation)
)

// IMpesaPaymentUseCase starts M-Pesa STK push payments for quotes.
//
// The gateway is asked exactly once per call, except that a rejected access
// token gets one fresh token and one resubmission. Nothing touches the quote
// unless the gateway accepted the charge.
type IMpesaPaymentUseCase interface {
	Initiate(ctx context.Context, userID, quoteID, phone string, amount float64) (entities.PaymentAttempt, error)
	ListAttempts(ctx context.Context, userID, quoteID string) ([]entities.PaymentAttempt, error)
}

type MpesaPaymentUseCase struct {
	quotes   IQuoteUseCase
	attempts interfaces.IPaymentAttemptRepository
	gateway  interfaces.IPaymentGateway
	sms      interfaces.ISMSNotifier
}

var _ IMpesaPaymentUseCase = (*MpesaPaymentUseCase)(nil)

func NewMpesaPaymentUseCase(quotes IQuoteUseCase, attempts interfaces.IPaymentAttemptRepository, gateway interfaces.IPaymentGateway, sms interfaces.ISMSNotifier) *MpesaPaymentUseCase {
	return &MpesaPaymentUseCase{quotes: quotes, attempts: attempts, gateway: gateway, sms: sms}
}

func (u *MpesaPaymentUseCase) Initiate(ctx context.Context, userID, quoteID, phone string, amount float64) (entities.PaymentAttempt, error) {
	log := logger.FromCtx(ctx).With(zap.String("quote_id", quoteID))
	log.Info("[payment][usecase] initiate start", zap.Float64("amount", amount))

	phone = strings.TrimSpace(phone)
	if !ValidMSISDN(phone) {
		return entities.PaymentAttempt{}, ErrInvalidPhone
	}
	if math.IsNaN(amount) || amount < 1 || amount > math.MaxInt32 {
		return entities.PaymentAttempt{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		log.Error("[payment][usecase] gateway not configured")
		return entities.PaymentAttempt{}, ErrGatewayNotAvailable
	}

	q, err := u.quotes.GetOwned(ctx, quoteID, userID)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if q.PaymentStatus == entities.PaymentStatusCompleted {
		return entities.PaymentAttempt{}, ErrQuoteAlreadyPaid
	}

	req := interfaces.ChargeRequest{
		Phone:            strings.TrimPrefix(phone, "+"),
		Amount:           int(math.Round(amount)),
		AccountReference: q.AccountReference(),
		Description:      chargeDescription,
	}
	resp, err := u.submit(ctx, req)
	if err != nil {
		log.Warn("[payment][usecase] gateway failed", zap.Error(err))
		return entities.PaymentAttempt{}, fmt.Errorf("%w: %v", entities.ErrPaymentInitiation, err)
	}
	log.Info("[payment][usecase] gateway accepted charge", zap.String("checkout_request_id", resp.CheckoutRequestID))

	if _, err := u.quotes.UpdatePaymentStatus(ctx, q.ID, entities.PaymentStatusPending, nil); err != nil {
		// A callback may already have settled this quote; the charge stands.
		if !errors.Is(err, entities.ErrConflict) {
			log.Error("[payment][usecase] marking quote pending failed", zap.Error(err))
			return entities.PaymentAttempt{}, err
		}
		log.Warn("[payment][usecase] quote not marked pending", zap.Error(err))
	}

	now := time.Now().UTC()
	attempt := entities.PaymentAttempt{
		ID:                resp.CheckoutRequestID,
		QuoteID:           q.ID,
		MerchantRequestID: resp.MerchantRequestID,
		Phone:             phone,
		Amount:            float64(req.Amount),
		Status:            entities.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if u.attempts != nil {
		if _, err := u.attempts.Create(ctx, attempt); err != nil {
			log.Warn("[payment][usecase] recording payment attempt failed",
				zap.String("checkout_request_id", attempt.ID), zap.Error(err))
		}
	}

	notify(ctx, u.sms, phone, fmt.Sprintf(
		"Payment request of KES %d for Quote #%s sent to %s. Check your phone to complete via M-Pesa.",
		req.Amount, q.ID, phone))

	return attempt, nil
}

// submit sends the charge, retrying once with a fresh token when the gateway
// rejects the first one.
func (u *MpesaPaymentUseCase) submit(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResponse, error) {
	token, err := u.gateway.GetAccessToken(ctx)
	if err != nil {
		return interfaces.ChargeResponse{}, fmt.Errorf("access token: %w", err)
	}
	resp, err := u.gateway.SubmitCharge(ctx, token, req)
	if errors.Is(err, interfaces.ErrGatewayUnauthorized) {
		logger.FromCtx(ctx).Info("[payment][usecase] access token rejected, refreshing once")
		token, err = u.gateway.GetAccessToken(ctx)
		if err != nil {
			return interfaces.ChargeResponse{}, fmt.Errorf("access token refresh: %w", err)
		}
		resp, err = u.gateway.SubmitCharge(ctx, token, req)
	}
	if err != nil {
		return interfaces.ChargeResponse{}, err
	}
	if resp.CheckoutRequestID == "" {
		return interfaces.ChargeResponse{}, errors.New("gateway response without checkout request id")
	}
	return resp, nil
}

func (u *MpesaPaymentUseCase) ListAttempts(ctx context.Context, userID, quoteID string) ([]entities.PaymentAttempt, error) {
	q, err := u.quotes.GetOwned(ctx, quoteID, userID)
	if err != nil {
		return nil, err
	}
	if u.attempts == nil {
		return []entities.PaymentAttempt{}, nil
	}
	items, err := u.attempts.ListByQuoteID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
