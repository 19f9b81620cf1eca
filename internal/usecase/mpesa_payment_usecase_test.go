package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase/interfaces"
	mock_interfaces "polymesh/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingQuote() entities.Quote {
	return entities.Quote{
		ID:            "abc123",
		UserID:        "alice",
		TotalCost:     6300,
		Status:        entities.QuoteStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
	}
}

func TestMpesaPaymentUseCase_Initiate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		phone  string
		amount float64
		want   error
	}{
		{"local format phone", "0712345678", 100, ErrInvalidPhone},
		{"short phone", "+25471234567", 100, ErrInvalidPhone},
		{"letters", "+254abcdefghi", 100, ErrInvalidPhone},
		{"zero amount", "+254712345678", 0, ErrInvalidAmount},
		{"below one", "254712345678", 0.5, ErrInvalidAmount},
		{"beyond gateway range", "254712345678", 1e20, ErrInvalidAmount},
		{"infinite", "254712345678", math.Inf(1), ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewMpesaPaymentUseCase(nil, nil, nil, nil)
			_, err := uc.Initiate(context.Background(), "alice", "abc123", tt.phone, tt.amount)
			if !errors.Is(err, tt.want) || !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMpesaPaymentUseCase_Initiate(t *testing.T) {
	t.Run("other user's quote is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := newMemQuoteRepo(pendingQuote())
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(repo, nil, nil), nil, gateway, nil)

		_, err := uc.Initiate(context.Background(), "bob", "abc123", "+254712345678", 3150)
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(newMemQuoteRepo(), nil, nil), nil, gateway, nil)

		_, err := uc.Initiate(context.Background(), "alice", "nope", "+254712345678", 3150)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		q := pendingQuote()
		q.PaymentStatus = entities.PaymentStatusCompleted
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(newMemQuoteRepo(q), nil, nil), nil, gateway, nil)

		_, err := uc.Initiate(context.Background(), "alice", "abc123", "+254712345678", 3150)
		if !errors.Is(err, ErrQuoteAlreadyPaid) {
			t.Fatalf("expected ErrQuoteAlreadyPaid, got %v", err)
		}
	})

	t.Run("no gateway", func(t *testing.T) {
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(newMemQuoteRepo(pendingQuote()), nil, nil), nil, nil, nil)
		_, err := uc.Initiate(context.Background(), "alice", "abc123", "+254712345678", 3150)
		if !errors.Is(err, entities.ErrPaymentInitiation) {
			t.Fatalf("expected PaymentInitiation, got %v", err)
		}
	})

	t.Run("token failure leaves quote untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		q := pendingQuote()
		q.PaymentStatus = entities.PaymentStatusFailed
		repo := newMemQuoteRepo(q)
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(repo, nil, nil), nil, gateway, nil)

		gateway.EXPECT().GetAccessToken(gomock.Any()).Return("", errors.New("dial tcp: i/o timeout"))

		_, err := uc.Initiate(context.Background(), "alice", "abc123", "+254712345678", 3150)
		if !errors.Is(err, entities.ErrPaymentInitiation) {
			t.Fatalf("expected PaymentInitiation, got %v", err)
		}
		if after, _ := repo.GetByID(context.Background(), "abc123"); after.PaymentStatus != entities.PaymentStatusFailed || repo.writes != 0 {
			t.Fatalf("quote must be untouched, got %+v writes=%d", after, repo.writes)
		}
	})

	t.Run("gateway rejection is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := newMemQuoteRepo(pendingQuote())
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(repo, nil, nil), nil, gateway, nil)

		gateway.EXPECT().GetAccessToken(gomock.Any()).Return("tok", nil).Times(1)
		gateway.EXPECT().SubmitCharge(gomock.Any(), "tok", gomock.Any()).Return(interfaces.ChargeResponse{}, errors.New("status 500")).Times(1)

		_, err := uc.Initiate(context.Background(), "alice", "abc123", "+254712345678", 3150)
		if !errors.Is(err, entities.ErrPaymentInitiation) {
			t.Fatalf("expected PaymentInitiation, got %v", err)
		}
		if repo.writes != 0 {
			t.Fatalf("quote must be untouched")
		}
	})

	t.Run("expired token refreshed exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(newMemQuoteRepo(pendingQuote()), nil, nil), nil, gateway, nil)

		unauthorized := fmt.Errorf("stk push: %w", interfaces.ErrGatewayUnauthorized)
		gomock.InOrder(
			gateway.EXPECT().GetAccessToken(gomock.Any()).Return("stale", nil),
			gateway.EXPECT().SubmitCharge(gomock.Any(), "stale", gomock.Any()).Return(interfaces.ChargeResponse{}, unauthorized),
			gateway.EXPECT().GetAccessToken(gomock.Any()).Return("fresh", nil),
			gateway.EXPECT().SubmitCharge(gomock.Any(), "fresh", gomock.Any()).Return(interfaces.ChargeResponse{}, unauthorized),
		)

		_, err := uc.Initiate(context.Background(), "alice", "abc123", "+254712345678", 3150)
		if !errors.Is(err, entities.ErrPaymentInitiation) {
			t.Fatalf("expected PaymentInitiation after second 401, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		sms := mock_interfaces.NewMockISMSNotifier(ctrl)
		q := pendingQuote()
		q.PaymentStatus = entities.PaymentStatusFailed
		repo := newMemQuoteRepo(q)
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(repo, nil, nil), attempts, gateway, sms)

		gomock.InOrder(
			gateway.EXPECT().GetAccessToken(gomock.Any()).Return("stale", nil),
			gateway.EXPECT().SubmitCharge(gomock.Any(), "stale", gomock.Any()).Return(interfaces.ChargeResponse{}, interfaces.ErrGatewayUnauthorized),
			gateway.EXPECT().GetAccessToken(gomock.Any()).Return("fresh", nil),
			gateway.EXPECT().SubmitCharge(gomock.Any(), "fresh", interfaces.ChargeRequest{
				Phone:            "254712345678",
				Amount:           3151,
				AccountReference: "QUOTE-abc123",
				Description:      "Mosquito Mesh Payment",
			}).Return(interfaces.ChargeResponse{MerchantRequestID: "m-1", CheckoutRequestID: "ws_CO_1", ResponseCode: "0"}, nil),
		)
		attempts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentAttempt{})).DoAndReturn(
			func(_ context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error) {
				if a.ID != "ws_CO_1" || a.QuoteID != "abc123" || a.Amount != 3151 || a.Status != entities.PaymentStatusPending {
					t.Fatalf("unexpected attempt %+v", a)
				}
				return a, nil
			},
		)
		sms.EXPECT().Send(gomock.Any(), "+254712345678", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, msg string) error {
				if !strings.Contains(msg, "Payment request of KES 3151 for Quote #abc123") {
					t.Fatalf("unexpected sms %q", msg)
				}
				return errors.New("sms down")
			},
		)

		got, err := uc.Initiate(context.Background(), "alice", "abc123", "+254712345678", 3150.6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ws_CO_1" {
			t.Fatalf("expected checkout id, got %+v", got)
		}
		after, _ := repo.GetByID(context.Background(), "abc123")
		if after.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("expected pending after acceptance, got %s", after.PaymentStatus)
		}
	})

	t.Run("attempt store failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		uc := NewMpesaPaymentUseCase(NewQuoteUseCase(newMemQuoteRepo(pendingQuote()), nil, nil), attempts, gateway, nil)

		gateway.EXPECT().GetAccessToken(gomock.Any()).Return("tok", nil)
		gateway.EXPECT().SubmitCharge(gomock.Any(), "tok", gomock.Any()).Return(interfaces.ChargeResponse{CheckoutRequestID: "ws_CO_9"}, nil)
		attempts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentAttempt{}, errors.New("db"))

		got, err := uc.Initiate(context.Background(), "alice", "abc123", "254712345678", 10)
		if err != nil || got.ID != "ws_CO_9" {
			t.Fatalf("expected success, got %+v err=%v", got, err)
		}
	})
}

func TestMpesaPaymentUseCase_ListAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	uc := NewMpesaPaymentUseCase(NewQuoteUseCase(newMemQuoteRepo(pendingQuote()), nil, nil), attempts, nil, nil)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	attempts.EXPECT().ListByQuoteID(gomock.Any(), "abc123").Return([]entities.PaymentAttempt{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(time.Minute)},
	}, nil)

	items, err := uc.ListAttempts(context.Background(), "alice", "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "b" {
		t.Fatalf("expected newest first, got %+v", items)
	}

	if _, err := uc.ListAttempts(context.Background(), "bob", "abc123"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}
