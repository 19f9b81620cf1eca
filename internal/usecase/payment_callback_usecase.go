package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidCallback       = fmt.Errorf("invalid mpesa callback payload: %w", entities.ErrValidation)
	ErrCallbackQuoteUnknown  = fmt.Errorf("callback does not resolve to a quote: %w", entities.ErrNotFound)
	errCallbackMissingResult = errors.New("missing ResultCode")
)

// Daraja STK push callback body.
type stkCallbackEnvelope struct {
	Body struct {
		StkCallback *stkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type stkCallback struct {
	MerchantRequestID string      `json:"MerchantRequestID"`
	CheckoutRequestID string      `json:"CheckoutRequestID"`
	ResultCode        json.Number `json:"ResultCode"`
	ResultDesc        string      `json:"ResultDesc"`
	CallbackMetadata  *struct {
		Item []callbackItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

type callbackItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

func (c *stkCallback) meta(name string) any {
	if c.CallbackMetadata == nil {
		return nil
	}
	for _, it := range c.CallbackMetadata.Item {
		if it.Name == name {
			return it.Value
		}
	}
	return nil
}

func (c *stkCallback) metaString(name string) string {
	switch v := c.meta(name).(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	}
	return ""
}

func (c *stkCallback) metaFloat(name string) float64 {
	f, _ := strconv.ParseFloat(c.metaString(name), 64)
	return f
}

// IPaymentCallbackUseCase reconciles gateway callbacks against the quote
// ledger. Callers acknowledge the gateway whatever it returns.
type IPaymentCallbackUseCase interface {
	HandleCallback(ctx context.Context, payload json.RawMessage) (entities.Quote, error)
}

type PaymentCallbackUseCase struct {
	quotes   IQuoteUseCase
	attempts interfaces.IPaymentAttemptRepository
	sms      interfaces.ISMSNotifier
}

var _ IPaymentCallbackUseCase = (*PaymentCallbackUseCase)(nil)

func NewPaymentCallbackUseCase(quotes IQuoteUseCase, attempts interfaces.IPaymentAttemptRepository, sms interfaces.ISMSNotifier) *PaymentCallbackUseCase {
	return &PaymentCallbackUseCase{quotes: quotes, attempts: attempts, sms: sms}
}

// HandleCallback settles the quote named by the callback.
//
// ResultCode 0 completes the payment; repeating it is a no-op. Any other code
// marks the payment failed unless it is already completed, or unless a newer
// checkout for the same quote is still waiting on the customer.
func (u *PaymentCallbackUseCase) HandleCallback(ctx context.Context, payload json.RawMessage) (entities.Quote, error) {
	log := logger.FromCtx(ctx)

	cb, code, err := parseCallback(payload)
	if err != nil {
		log.Warn("[mpesa-callback][usecase] unparseable payload", zap.Int("payload_len", len(payload)), zap.Error(err))
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrInvalidCallback, err)
	}
	log = log.With(zap.String("checkout_request_id", cb.CheckoutRequestID), zap.Int64("result_code", code))
	log.Info("[mpesa-callback][usecase] received", zap.String("result_desc", cb.ResultDesc))

	quoteID, err := u.resolveQuoteID(ctx, cb)
	if err != nil {
		log.Warn("[mpesa-callback][usecase] quote not resolved", zap.Error(err))
		return entities.Quote{}, err
	}
	log = log.With(zap.String("quote_id", quoteID))

	status := entities.PaymentStatusFailed
	if code == 0 {
		status = entities.PaymentStatusCompleted
	}
	u.recordAttempt(ctx, cb, status, code, payload)

	if status == entities.PaymentStatusFailed {
		if newer := u.pendingNewerAttempt(ctx, quoteID, cb.CheckoutRequestID); newer != "" {
			log.Info("[mpesa-callback][usecase] stale failure ignored", zap.String("pending_checkout_request_id", newer))
			return u.quotes.GetByID(ctx, quoteID)
		}
		q, err := u.quotes.UpdatePaymentStatus(ctx, quoteID, entities.PaymentStatusFailed, nil)
		if err != nil {
			log.Warn("[mpesa-callback][usecase] failed payment not recorded on quote", zap.Error(err))
			return entities.Quote{}, err
		}
		log.Info("[mpesa-callback][usecase] payment failed")
		return q, nil
	}

	details := &entities.PaymentDetails{
		TransactionID: transactionID(cb),
		ReceiptNumber: cb.metaString("MpesaReceiptNumber"),
		Amount:        cb.metaFloat("Amount"),
		Phone:         cb.metaString("PhoneNumber"),
		Date:          time.Now().UTC(),
	}

	if current, err := u.quotes.GetByID(ctx, quoteID); err == nil &&
		current.PaymentStatus == entities.PaymentStatusCompleted &&
		current.PaymentDetails != nil && current.PaymentDetails.TransactionID == details.TransactionID {
		log.Info("[mpesa-callback][usecase] duplicate delivery ignored")
		return current, nil
	}

	q, err := u.quotes.UpdatePaymentStatus(ctx, quoteID, entities.PaymentStatusCompleted, details)
	if err != nil {
		log.Error("[mpesa-callback][usecase] completing payment failed", zap.Error(err))
		return entities.Quote{}, err
	}
	log.Info("[mpesa-callback][usecase] payment completed", zap.Float64("amount", details.Amount))

	notify(ctx, u.sms, details.Phone, fmt.Sprintf(
		"Payment of KES %s for Quote #%s received. We'll contact you to schedule installation.",
		formatKES(details.Amount), quoteID))

	return q, nil
}

// transactionID prefers the checkout request id. Minimal callbacks without
// one fall back to the receipt number, then the account reference.
func transactionID(cb *stkCallback) string {
	for _, id := range []string{
		strings.TrimSpace(cb.CheckoutRequestID),
		cb.metaString("MpesaReceiptNumber"),
		cb.metaString("AccountReference"),
	} {
		if id != "" {
			return id
		}
	}
	return ""
}

func parseCallback(payload json.RawMessage) (*stkCallback, int64, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var env stkCallbackEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, 0, err
	}
	cb := env.Body.StkCallback
	if cb == nil {
		return nil, 0, errors.New("missing Body.stkCallback")
	}
	if cb.ResultCode == "" {
		return nil, 0, errCallbackMissingResult
	}
	code, err := cb.ResultCode.Int64()
	if err != nil {
		return nil, 0, fmt.Errorf("ResultCode: %w", err)
	}
	return cb, code, nil
}

// resolveQuoteID reads QUOTE-<id> from the metadata and falls back to the
// attempt recorded for the checkout request.
func (u *PaymentCallbackUseCase) resolveQuoteID(ctx context.Context, cb *stkCallback) (string, error) {
	if ref := cb.metaString("AccountReference"); ref != "" {
		parts := strings.Split(ref, "-")
		if len(parts) >= 2 && parts[1] != "" {
			return parts[1], nil
		}
	}
	if cb.CheckoutRequestID == "" || u.attempts == nil {
		return "", ErrCallbackQuoteUnknown
	}
	attempt, err := u.attempts.GetByID(ctx, cb.CheckoutRequestID)
	if err != nil {
		return "", err
	}
	if attempt.QuoteID == "" {
		return "", ErrCallbackQuoteUnknown
	}
	return attempt.QuoteID, nil
}

func (u *PaymentCallbackUseCase) recordAttempt(ctx context.Context, cb *stkCallback, status entities.PaymentStatus, code int64, raw json.RawMessage) {
	if u.attempts == nil || cb.CheckoutRequestID == "" {
		return
	}
	updated, err := u.attempts.UpdateResult(ctx, cb.CheckoutRequestID, status, strconv.FormatInt(code, 10), cb.ResultDesc, raw)
	if err != nil {
		logger.FromCtx(ctx).Warn("[mpesa-callback][usecase] attempt update failed", zap.String("checkout_request_id", cb.CheckoutRequestID), zap.Error(err))
		return
	}
	if updated.ID == "" {
		logger.FromCtx(ctx).Info("[mpesa-callback][usecase] no attempt recorded for checkout", zap.String("checkout_request_id", cb.CheckoutRequestID))
	}
}

// pendingNewerAttempt returns the checkout request id of a still pending
// attempt created after the one being reported, or "" when there is none.
func (u *PaymentCallbackUseCase) pendingNewerAttempt(ctx context.Context, quoteID, checkoutRequestID string) string {
	if u.attempts == nil || checkoutRequestID == "" {
		return ""
	}
	attempts, err := u.attempts.ListByQuoteID(ctx, quoteID)
	if err != nil {
		logger.FromCtx(ctx).Warn("[mpesa-callback][usecase] listing attempts failed", zap.String("quote_id", quoteID), zap.Error(err))
		return ""
	}
	var reported, latest entities.PaymentAttempt
	for _, a := range attempts {
		if a.ID == checkoutRequestID {
			reported = a
		}
		if latest.ID == "" || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	if latest.ID == "" || latest.ID == checkoutRequestID || latest.Status != entities.PaymentStatusPending {
		return ""
	}
	if reported.ID != "" && !latest.CreatedAt.After(reported.CreatedAt) {
		return ""
	}
	return latest.ID
}
