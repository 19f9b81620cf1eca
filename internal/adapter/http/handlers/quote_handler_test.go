package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"polymesh/internal/adapter/http/handlers/mocks"
	"polymesh/internal/domain/entities"
	"polymesh/internal/domain/pricing"
	"polymesh/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{"windowCount":2,"measurements":[{"width":1,"height":1},{"width":2,"height":1}],"material":"fiberglass","type":"sliding","location":"Nairobi","warranty":"standard"}`

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
		ctrl := gomock.NewController(t)
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(quotes, mocks.NewMockIMpesaPaymentUseCase(ctrl))
		r := gin.New()
		r.POST("/api/quotes", authed(), h.CreateQuote)
		return r, quotes
	}

	t.Run("requires auth", func(t *testing.T) {
		r, _ := setup(t)
		w := do(r, http.MethodPost, "/api/quotes", "", validQuoteBody)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields list errors", func(t *testing.T) {
		r, _ := setup(t)
		w := do(r, http.MethodPost, "/api/quotes", "user-1", `{"windowCount":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Errors  []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Success || len(body.Errors) == 0 {
			t.Fatalf("expected field errors, got %s", w.Body.String())
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		r, quotes := setup(t)
		quotes.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(usecase.CreatedQuote{}, pricing.ErrInvalidMaterial)

		w := do(r, http.MethodPost, "/api/quotes", "user-1", validQuoteBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_MATERIAL" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, quotes := setup(t)
		quotes.EXPECT().
			Create(gomock.Any(), "user-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in pricing.Input) (usecase.CreatedQuote, error) {
				if in.Material != "fiberglass" || len(in.Measurements) != 2 {
					t.Fatalf("unexpected pricing input %+v", in)
				}
				return usecase.CreatedQuote{
					Quote:                 entities.Quote{ID: "q-1", TotalCost: 6300},
					EstimatedInstallation: "3-5 working days",
				}, nil
			})

		w := do(r, http.MethodPost, "/api/quotes", "user-1", validQuoteBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Success bool `json:"success"`
			Quote   struct {
				ID        string   `json:"id"`
				TotalCost int64    `json:"totalCost"`
				NextSteps []string `json:"nextSteps"`
			} `json:"quote"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Success || body.Quote.ID != "q-1" || body.Quote.TotalCost != 6300 || len(body.Quote.NextSteps) != 3 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		ret    entities.Quote
		err    error
		status int
	}{
		{"owned", entities.Quote{ID: "q-1", UserID: "user-1", PaymentStatus: entities.PaymentStatusPending}, nil, http.StatusOK},
		{"not owned", entities.Quote{}, usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"store down", entities.Quote{}, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			quotes := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(quotes, mocks.NewMockIMpesaPaymentUseCase(ctrl))
			r := gin.New()
			r.GET("/api/quotes/:id", authed(), h.GetQuote)

			quotes.EXPECT().GetOwned(gomock.Any(), "q-1", "user-1").Return(tt.ret, tt.err)

			w := do(r, http.MethodGet, "/api/quotes/q-1", "user-1", "")
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if tt.status == http.StatusOK {
				var body map[string]map[string]any
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if _, leaked := body["quote"]["userId"]; leaked {
					t.Fatalf("owner id should be hidden: %s", w.Body.String())
				}
			}
		})
	}
}

func TestQuoteHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockIQuoteUseCase(ctrl)
	payments := mocks.NewMockIMpesaPaymentUseCase(ctrl)
	h := NewQuoteHandler(quotes, payments)

	r := gin.New()
	r.GET("/api/user/quotes", authed(), h.ListMyQuotes)
	r.GET("/api/quotes/:id/payments", authed(), h.ListQuotePayments)
	r.GET("/api/admin/quotes", authed(), h.ListAllQuotes)

	now := time.Now().UTC()
	quotes.EXPECT().ListByOwner(gomock.Any(), "user-1").Return([]entities.Quote{{ID: "q-2", CreatedAt: now}, {ID: "q-1", CreatedAt: now.Add(-time.Hour)}}, nil)
	quotes.EXPECT().ListAll(gomock.Any()).Return([]entities.Quote{{ID: "q-9", UserID: "user-2"}}, nil)
	payments.EXPECT().ListAttempts(gomock.Any(), "user-1", "q-1").Return([]entities.PaymentAttempt{{ID: "ws_CO_1", QuoteID: "q-1"}}, nil)

	w := do(r, http.MethodGet, "/api/user/quotes", "user-1", "")
	var mine struct {
		Count  int `json:"count"`
		Quotes []struct {
			ID string `json:"id"`
		} `json:"quotes"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &mine)
	if w.Code != http.StatusOK || mine.Count != 2 || mine.Quotes[0].ID != "q-2" {
		t.Fatalf("unexpected list response %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/admin/quotes", "admin", "")
	var all struct {
		Quotes []struct {
			UserID string `json:"userId"`
		} `json:"quotes"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &all)
	if w.Code != http.StatusOK || len(all.Quotes) != 1 || all.Quotes[0].UserID != "user-2" {
		t.Fatalf("admin list should show owners: %s", w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/quotes/q-1/payments", "user-1", "")
	var attempts struct {
		Payments []struct {
			CheckoutRequestID string `json:"checkoutRequestId"`
		} `json:"payments"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &attempts)
	if w.Code != http.StatusOK || len(attempts.Payments) != 1 || attempts.Payments[0].CheckoutRequestID != "ws_CO_1" {
		t.Fatalf("unexpected payments response %s", w.Body.String())
	}
}
