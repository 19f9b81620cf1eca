package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"polymesh/internal/adapter/http/handlers/mocks"
	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_MpesaPay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		body   string
		setup  func(m *mocks.MockIMpesaPaymentUseCase)
		status int
		code   string
	}{
		{
			name:   "missing quote id",
			body:   `{"phone":"+254712345678","amount":100}`,
			status: http.StatusBadRequest,
		},
		{
			name: "invalid phone",
			body: `{"phone":"0712345678","amount":100,"quoteId":"q-1"}`,
			setup: func(m *mocks.MockIMpesaPaymentUseCase) {
				m.EXPECT().Initiate(gomock.Any(), "user-1", "q-1", "0712345678", 100.0).Return(entities.PaymentAttempt{}, usecase.ErrInvalidPhone)
			},
			status: http.StatusBadRequest,
			code:   "INVALID_PHONE",
		},
		{
			name: "quote of someone else",
			body: `{"phone":"+254712345678","amount":100,"quoteId":"q-1"}`,
			setup: func(m *mocks.MockIMpesaPaymentUseCase) {
				m.EXPECT().Initiate(gomock.Any(), "user-1", "q-1", "+254712345678", 100.0).Return(entities.PaymentAttempt{}, usecase.ErrQuoteNotFound)
			},
			status: http.StatusNotFound,
			code:   "QUOTE_NOT_FOUND",
		},
		{
			name: "gateway failure",
			body: `{"phone":"+254712345678","amount":100,"quoteId":"q-1"}`,
			setup: func(m *mocks.MockIMpesaPaymentUseCase) {
				m.EXPECT().Initiate(gomock.Any(), "user-1", "q-1", "+254712345678", 100.0).
					Return(entities.PaymentAttempt{}, fmt.Errorf("stk push: timeout: %w", entities.ErrPaymentInitiation))
			},
			status: http.StatusBadGateway,
			code:   "PAYMENT_FAILED",
		},
		{
			name: "accepted",
			body: `{"phone":"+254 712 345 678","amount":3150,"quoteId":"q-1"}`,
			setup: func(m *mocks.MockIMpesaPaymentUseCase) {
				m.EXPECT().Initiate(gomock.Any(), "user-1", "q-1", "+254712345678", 3150.0).
					Return(entities.PaymentAttempt{ID: "ws_CO_123", QuoteID: "q-1"}, nil)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			initiator := mocks.NewMockIMpesaPaymentUseCase(ctrl)
			if tt.setup != nil {
				tt.setup(initiator)
			}
			h := NewPaymentHandler(initiator, mocks.NewMockIPaymentCallbackUseCase(ctrl), "")
			r := gin.New()
			r.POST("/api/mpesa-pay", authed(), h.MpesaPay)

			w := do(r, http.MethodPost, "/api/mpesa-pay", "user-1", tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if tt.code != "" && body["code"] != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, w.Body.String())
			}
			if tt.status == http.StatusOK {
				if body["transactionId"] != "ws_CO_123" || body["message"] != "M-Pesa payment request sent" {
					t.Fatalf("unexpected body %s", w.Body.String())
				}
			}
		})
	}
}

func TestPaymentHandler_MpesaCallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const payload = `{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_1","ResultCode":0}}}`
	const ack = `{"success":true,"ResultCode":0,"ResultDesc":"Accepted"}`

	tests := []struct {
		name  string
		token string
		path  string
		body  string
		setup func(m *mocks.MockIPaymentCallbackUseCase)
	}{
		{
			name: "applied",
			path: "/api/mpesa-callback",
			body: payload,
			setup: func(m *mocks.MockIPaymentCallbackUseCase) {
				m.EXPECT().HandleCallback(gomock.Any(), json.RawMessage(payload)).
					Return(entities.Quote{ID: "abc123", PaymentStatus: entities.PaymentStatusCompleted}, nil)
			},
		},
		{
			name: "use case error is still acknowledged",
			path: "/api/mpesa-callback",
			body: payload,
			setup: func(m *mocks.MockIPaymentCallbackUseCase) {
				m.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("dynamo down"))
			},
		},
		{
			name: "malformed body is acknowledged without processing",
			path: "/api/mpesa-callback",
			body: `{"Body":`,
		},
		{
			name:  "wrong token is acknowledged without processing",
			token: "s3cret",
			path:  "/api/mpesa-callback?token=nope",
			body:  payload,
		},
		{
			name:  "right token is processed",
			token: "s3cret",
			path:  "/api/mpesa-callback?token=s3cret",
			body:  payload,
			setup: func(m *mocks.MockIPaymentCallbackUseCase) {
				m.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).Return(entities.Quote{ID: "abc123"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			callbacks := mocks.NewMockIPaymentCallbackUseCase(ctrl)
			if tt.setup != nil {
				tt.setup(callbacks)
			}
			h := NewPaymentHandler(mocks.NewMockIMpesaPaymentUseCase(ctrl), callbacks, tt.token)
			r := gin.New()
			r.POST("/api/mpesa-callback", h.MpesaCallback)

			w := do(r, http.MethodPost, tt.path, "", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("callback must always be acknowledged, got %d", w.Code)
			}
			var got, want map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &got)
			_ = json.Unmarshal([]byte(ack), &want)
			if fmt.Sprint(got) != fmt.Sprint(want) {
				t.Fatalf("unexpected ack %s", w.Body.String())
			}
		})
	}
}
