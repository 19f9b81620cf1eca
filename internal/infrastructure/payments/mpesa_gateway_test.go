package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"polymesh/internal/config"
	"polymesh/internal/usecase/interfaces"
)

func newTestGateway(t *testing.T, srv *httptest.Server) *MpesaGateway {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MPESA_MOCK", "")
	g, err := NewMpesaGateway(config.MpesaConfig{
		BaseURL:        srv.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "passkey",
		CallbackURL:    "https://api.example.com/api/mpesa-callback",
	}, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC) }
	return g
}

func TestNewMpesaGateway_MissingCredentials(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MPESA_MOCK", "")
	if _, err := NewMpesaGateway(config.MpesaConfig{}, time.Second); !errors.Is(err, ErrMissingMpesaCredentials) {
		t.Fatalf("expected ErrMissingMpesaCredentials, got %v", err)
	}
}

func TestMpesaGateway_GetAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("grant_type") != "client_credentials" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":"3599"}`))
	}))
	defer srv.Close()

	token, err := newTestGateway(t, srv).GetAccessToken(context.Background())
	if err != nil || token != "tok-1" {
		t.Fatalf("unexpected token=%q err=%v", token, err)
	}
}

func TestMpesaGateway_GetAccessToken_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	if _, err := newTestGateway(t, srv).GetAccessToken(context.Background()); !errors.Is(err, ErrMpesaRejected) {
		t.Fatalf("expected ErrMpesaRejected, got %v", err)
	}
}

func TestMpesaGateway_SubmitCharge(t *testing.T) {
	var got stkPushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != stkPushPath || r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Errorf("unexpected request %s %s", r.URL.Path, r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResponseCode":"0","ResponseDescription":"Success","CustomerMessage":"Success"}`))
	}))
	defer srv.Close()

	res, err := newTestGateway(t, srv).SubmitCharge(context.Background(), "tok-1", interfaces.ChargeRequest{
		Phone:            "254712345678",
		Amount:           3151,
		AccountReference: "QUOTE-abc123",
		Description:      "Mosquito Mesh Payment",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CheckoutRequestID != "ws_CO_1" || res.MerchantRequestID != "m-1" {
		t.Fatalf("unexpected response %+v", res)
	}

	// 09:30 UTC is 12:30 in Nairobi.
	if got.Timestamp != "20260401123000" {
		t.Fatalf("unexpected timestamp %s", got.Timestamp)
	}
	wantPassword := base64.StdEncoding.EncodeToString([]byte("174379passkey20260401123000"))
	if got.Password != wantPassword {
		t.Fatalf("unexpected password %s", got.Password)
	}
	if got.TransactionType != transactionType || got.PartyA != "254712345678" || got.PartyB != "174379" ||
		got.Amount != 3151 || got.AccountReference != "QUOTE-abc123" || !strings.HasSuffix(got.CallBackURL, "/api/mpesa-callback") {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestMpesaGateway_SubmitCharge_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"errorCode":"404.001.03","errorMessage":"Invalid Access Token"}`, interfaces.ErrGatewayUnauthorized},
		{"bad request", http.StatusBadRequest, `{"errorCode":"400.002.02","errorMessage":"Bad Request - Invalid PhoneNumber"}`, ErrMpesaRejected},
		{"non-zero response code", http.StatusOK, `{"CheckoutRequestID":"ws_CO_2","ResponseCode":"1","ResponseDescription":"Rejected"}`, ErrMpesaRejected},
		{"garbage", http.StatusOK, `<html>`, ErrMpesaRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestGateway(t, srv).SubmitCharge(context.Background(), "tok", interfaces.ChargeRequest{Phone: "254712345678", Amount: 10})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMpesaGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	g, err := NewMpesaGateway(config.MpesaConfig{}, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token, err := g.GetAccessToken(context.Background())
	if err != nil || token == "" {
		t.Fatalf("unexpected token=%q err=%v", token, err)
	}
	res, err := g.SubmitCharge(context.Background(), token, interfaces.ChargeRequest{Amount: 1})
	if err != nil || !strings.HasPrefix(res.CheckoutRequestID, "ws_CO_mock_") {
		t.Fatalf("unexpected response %+v err=%v", res, err)
	}
}
