package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"polymesh/internal/domain/entities"
	mock_interfaces "polymesh/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const successCallback = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 0,
      "ResultDesc": "The service request is processed successfully.",
      "CallbackMetadata": {
        "Item": [
          {"Name": "Amount", "Value": 3150},
          {"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
          {"Name": "TransactionDate", "Value": 20191219102115},
          {"Name": "PhoneNumber", "Value": "+254712345678"},
          {"Name": "AccountReference", "Value": "QUOTE-abc123"}
        ]
      }
    }
  }
}`

const cancelledCallback = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 1032,
      "ResultDesc": "Request cancelled by user"
    }
  }
}`

func TestPaymentCallbackUseCase_SuccessScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sms := mock_interfaces.NewMockISMSNotifier(ctrl)
	repo := newMemQuoteRepo(pendingQuote())
	uc := NewPaymentCallbackUseCase(NewQuoteUseCase(repo, nil, nil), nil, sms)

	sms.EXPECT().Send(gomock.Any(), "+254712345678",
		"PolyMesh Kenya: Payment of KES 3150 for Quote #abc123 received. We'll contact you to schedule installation.").Return(nil)

	q, err := uc.HandleCallback(context.Background(), json.RawMessage(successCallback))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "abc123" || q.PaymentStatus != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected quote %+v", q)
	}
	d := q.PaymentDetails
	if d == nil || d.TransactionID != "ws_CO_191220191020363925" || d.Amount != 3150 || d.Phone != "+254712345678" || d.ReceiptNumber != "NLJ7RT61SV" || d.Date.IsZero() {
		t.Fatalf("unexpected payment details %+v", d)
	}
}

func TestPaymentCallbackUseCase_DuplicateDeliveryIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sms := mock_interfaces.NewMockISMSNotifier(ctrl)
	repo := newMemQuoteRepo(pendingQuote())
	uc := NewPaymentCallbackUseCase(NewQuoteUseCase(repo, nil, nil), nil, sms)

	sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := uc.HandleCallback(context.Background(), json.RawMessage(successCallback))
	if err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	second, err := uc.HandleCallback(context.Background(), json.RawMessage(successCallback))
	if err != nil {
		t.Fatalf("second delivery must not error: %v", err)
	}
	if second.PaymentStatus != entities.PaymentStatusCompleted || *second.PaymentDetails != *first.PaymentDetails {
		t.Fatalf("details changed on redelivery: %+v vs %+v", second.PaymentDetails, first.PaymentDetails)
	}
	if repo.writes != 1 {
		t.Fatalf("expected one write, got %d", repo.writes)
	}
}

func TestPaymentCallbackUseCase_FailedResult(t *testing.T) {
	t.Run("marks pending quote failed via attempt lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		repo := newMemQuoteRepo(pendingQuote())
		uc := NewPaymentCallbackUseCase(NewQuoteUseCase(repo, nil, nil), attempts, nil)

		attempts.EXPECT().GetByID(gomock.Any(), "ws_CO_191220191020363925").Return(entities.PaymentAttempt{ID: "ws_CO_191220191020363925", QuoteID: "abc123"}, nil)
		attempts.EXPECT().UpdateResult(gomock.Any(), "ws_CO_191220191020363925", entities.PaymentStatusFailed, "1032", "Request cancelled by user", gomock.Any()).
			Return(entities.PaymentAttempt{ID: "ws_CO_191220191020363925"}, nil)
		attempts.EXPECT().ListByQuoteID(gomock.Any(), "abc123").Return([]entities.PaymentAttempt{
			{ID: "ws_CO_191220191020363925", QuoteID: "abc123", Status: entities.PaymentStatusFailed},
		}, nil)

		q, err := uc.HandleCallback(context.Background(), json.RawMessage(cancelledCallback))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.PaymentStatus != entities.PaymentStatusFailed || q.PaymentDetails != nil {
			t.Fatalf("unexpected quote %+v", q)
		}
	})

	t.Run("completed quote is not regressed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		paid := pendingQuote()
		paid.PaymentStatus = entities.PaymentStatusCompleted
		paid.PaymentDetails = &entities.PaymentDetails{TransactionID: "ws_CO_other"}
		repo := newMemQuoteRepo(paid)
		uc := NewPaymentCallbackUseCase(NewQuoteUseCase(repo, nil, nil), attempts, nil)

		attempts.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.PaymentAttempt{QuoteID: "abc123"}, nil)
		attempts.EXPECT().UpdateResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaymentAttempt{}, nil)
		attempts.EXPECT().ListByQuoteID(gomock.Any(), "abc123").Return(nil, nil)

		_, err := uc.HandleCallback(context.Background(), json.RawMessage(cancelledCallback))
		if !errors.Is(err, ErrPaymentRegression) {
			t.Fatalf("expected ErrPaymentRegression, got %v", err)
		}
		if after, _ := repo.GetByID(context.Background(), "abc123"); after.PaymentStatus != entities.PaymentStatusCompleted {
			t.Fatalf("completed payment regressed to %s", after.PaymentStatus)
		}
	})

	t.Run("late failure of an older checkout keeps newer attempt pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		repo := newMemQuoteRepo(pendingQuote())
		uc := NewPaymentCallbackUseCase(NewQuoteUseCase(repo, nil, nil), attempts, nil)

		older := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		attempts.EXPECT().GetByID(gomock.Any(), "ws_CO_191220191020363925").Return(entities.PaymentAttempt{ID: "ws_CO_191220191020363925", QuoteID: "abc123"}, nil)
		attempts.EXPECT().UpdateResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaymentAttempt{ID: "ws_CO_191220191020363925"}, nil)
		attempts.EXPECT().ListByQuoteID(gomock.Any(), "abc123").Return([]entities.PaymentAttempt{
			{ID: "ws_CO_191220191020363925", Status: entities.PaymentStatusFailed, CreatedAt: older},
			{ID: "ws_CO_newer", Status: entities.PaymentStatusPending, CreatedAt: older.Add(time.Minute)},
		}, nil)

		q, err := uc.HandleCallback(context.Background(), json.RawMessage(cancelledCallback))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.PaymentStatus != entities.PaymentStatusPending || repo.writes != 0 {
			t.Fatalf("expected quote untouched and pending, got %s writes=%d", q.PaymentStatus, repo.writes)
		}
	})
}

func TestPaymentCallbackUseCase_MinimalSuccessPayload(t *testing.T) {
	payload := `{"Body":{"stkCallback":{"ResultCode":0,"CallbackMetadata":{"Item":[
		{"Name":"Amount","Value":3150},
		{"Name":"PhoneNumber","Value":"+254712345678"},
		{"Name":"AccountReference","Value":"QUOTE-abc123"}]}}}}`

	tests := []struct {
		name    string
		payload string
		wantTx  string
	}{
		{"account reference only", payload, "QUOTE-abc123"},
		{"receipt number", strings.Replace(payload, `{"Name":"Amount"`, `{"Name":"MpesaReceiptNumber","Value":"NLJ7RT61SV"},{"Name":"Amount"`, 1), "NLJ7RT61SV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemQuoteRepo(pendingQuote())
			uc := NewPaymentCallbackUseCase(NewQuoteUseCase(repo, nil, nil), nil, nil)

			q, err := uc.HandleCallback(context.Background(), json.RawMessage(tt.payload))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.PaymentStatus != entities.PaymentStatusCompleted || q.PaymentDetails == nil || q.PaymentDetails.TransactionID != tt.wantTx {
				t.Fatalf("unexpected quote %+v", q)
			}
			if stored, _ := repo.GetByID(context.Background(), "abc123"); stored.PaymentStatus != entities.PaymentStatusCompleted {
				t.Fatalf("stored quote is %s", stored.PaymentStatus)
			}
			if _, err := uc.HandleCallback(context.Background(), json.RawMessage(tt.payload)); err != nil {
				t.Fatalf("redelivery must be a no-op, got %v", err)
			}
		})
	}
}

func TestPaymentCallbackUseCase_Unresolvable(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{"not json", `{`, ErrInvalidCallback},
		{"missing stkCallback", `{"Body":{}}`, ErrInvalidCallback},
		{"missing result code", `{"Body":{"stkCallback":{"CheckoutRequestID":"x"}}}`, ErrInvalidCallback},
		{"non numeric result code", `{"Body":{"stkCallback":{"ResultCode":"abc"}}}`, ErrInvalidCallback},
		{"no reference and no checkout", `{"Body":{"stkCallback":{"ResultCode":1}}}`, ErrCallbackQuoteUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemQuoteRepo(pendingQuote())
			uc := NewPaymentCallbackUseCase(NewQuoteUseCase(repo, nil, nil), nil, nil)
			_, err := uc.HandleCallback(context.Background(), json.RawMessage(tt.payload))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if repo.writes != 0 {
				t.Fatalf("quote must be untouched")
			}
		})
	}
}

func TestPaymentCallbackUseCase_UnknownAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
	uc := NewPaymentCallbackUseCase(NewQuoteUseCase(newMemQuoteRepo(), nil, nil), attempts, nil)

	attempts.EXPECT().GetByID(gomock.Any(), "ws_CO_191220191020363925").Return(entities.PaymentAttempt{}, nil)

	_, err := uc.HandleCallback(context.Background(), json.RawMessage(cancelledCallback))
	if !errors.Is(err, ErrCallbackQuoteUnknown) {
		t.Fatalf("expected ErrCallbackQuoteUnknown, got %v", err)
	}
}

func TestPaymentCallbackUseCase_NumericMetadata(t *testing.T) {
	payload := `{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_2","ResultCode":"0","CallbackMetadata":{"Item":[
		{"Name":"Amount","Value":1.5},
		{"Name":"PhoneNumber","Value":254712345678},
		{"Name":"AccountReference","Value":"QUOTE-abc123"}]}}}}`
	repo := newMemQuoteRepo(pendingQuote())
	uc := NewPaymentCallbackUseCase(NewQuoteUseCase(repo, nil, nil), nil, nil)

	q, err := uc.HandleCallback(context.Background(), json.RawMessage(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PaymentDetails.Phone != "254712345678" || q.PaymentDetails.Amount != 1.5 {
		t.Fatalf("unexpected details %+v", q.PaymentDetails)
	}
}
