package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"polymesh/internal/config"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	oauthPath           = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath         = "/mpesa/stkpush/v1/processrequest"
	transactionType     = "CustomerPayBillOnline"
	darajaTimestamp     = "20060102150405"
	maxErrorBodyLogged  = 512
	stkAcceptedResponse = "0"
)

// Daraja timestamps are East Africa Time.
var eat = time.FixedZone("EAT", 3*60*60)

var (
	ErrMissingMpesaCredentials = errors.New("missing MPESA_CONSUMER_KEY or MPESA_CONSUMER_SECRET")
	ErrMpesaRejected           = errors.New("m-pesa rejected the request")
)

// MpesaGateway talks to Safaricom Daraja: OAuth client credentials and
// Lipa na M-Pesa Online (STK push).
type MpesaGateway struct {
	cfg        config.MpesaConfig
	httpClient *http.Client
	now        func() time.Time
	mockMode   bool
}

var _ interfaces.IPaymentGateway = (*MpesaGateway)(nil)

func NewMpesaGateway(cfg config.MpesaConfig, timeout time.Duration) (*MpesaGateway, error) {
	if isPaymentGatewayMockEnabled() {
		logger.L().Info("[payment][gateway] mock mode enabled")
		return &MpesaGateway{mockMode: true, now: time.Now}, nil
	}

	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		logger.L().Warn("[payment][gateway] missing daraja credentials")
		return nil, ErrMissingMpesaCredentials
	}

	logger.L().Info("[payment][gateway] daraja client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.String("shortcode", cfg.ShortCode),
		zap.Duration("timeout", timeout),
	)
	return &MpesaGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}, nil
}

type oauthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

func (g *MpesaGateway) GetAccessToken(ctx context.Context) (string, error) {
	if g.mockMode {
		return "mock-access-token", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(g.cfg.BaseURL, "/")+oauthPath, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.cfg.ConsumerKey, g.cfg.ConsumerSecret)

	body, status, err := g.do(req)
	if err != nil {
		logger.FromCtx(ctx).Error("[payment][gateway] oauth request failed", zap.Error(err))
		return "", err
	}
	if status != http.StatusOK {
		logger.FromCtx(ctx).Error("[payment][gateway] oauth non-success status",
			zap.Int("status", status), zap.ByteString("response", truncate(body)))
		return "", fmt.Errorf("%w: oauth status %d", ErrMpesaRejected, status)
	}

	var res oauthResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("decode oauth response: %w", err)
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrMpesaRejected)
	}
	return res.AccessToken, nil
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

// SubmitCharge sends an STK push. A 401 is reported as
// interfaces.ErrGatewayUnauthorized so the caller can refresh its token.
func (g *MpesaGateway) SubmitCharge(ctx context.Context, accessToken string, charge interfaces.ChargeRequest) (interfaces.ChargeResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("account_reference", charge.AccountReference),
		zap.Int("amount", charge.Amount),
	)

	if g.mockMode {
		id := "ws_CO_mock_" + strconv.FormatInt(g.now().UTC().UnixNano(), 10)
		log.Info("[payment][gateway] mock stk push accepted", zap.String("checkout_request_id", id))
		return interfaces.ChargeResponse{
			MerchantRequestID:   "mock-" + id,
			CheckoutRequestID:   id,
			ResponseCode:        stkAcceptedResponse,
			ResponseDescription: "Success. Request accepted for processing",
			CustomerMessage:     "Success. Request accepted for processing",
		}, nil
	}

	ts := g.now().In(eat).Format(darajaTimestamp)
	payload := stkPushRequest{
		BusinessShortCode: g.cfg.ShortCode,
		Password:          base64.StdEncoding.EncodeToString([]byte(g.cfg.ShortCode + g.cfg.Passkey + ts)),
		Timestamp:         ts,
		TransactionType:   transactionType,
		Amount:            charge.Amount,
		PartyA:            charge.Phone,
		PartyB:            g.cfg.ShortCode,
		PhoneNumber:       charge.Phone,
		CallBackURL:       g.cfg.CallbackURL,
		AccountReference:  charge.AccountReference,
		TransactionDesc:   charge.Description,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return interfaces.ChargeResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(g.cfg.BaseURL, "/")+stkPushPath, bytes.NewReader(b))
	if err != nil {
		return interfaces.ChargeResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	log.Info("[payment][gateway] stk push start")
	body, status, err := g.do(req)
	if err != nil {
		log.Error("[payment][gateway] stk push request failed", zap.Error(err))
		return interfaces.ChargeResponse{}, err
	}
	if status == http.StatusUnauthorized {
		log.Warn("[payment][gateway] stk push unauthorized")
		return interfaces.ChargeResponse{}, fmt.Errorf("stk push: %w", interfaces.ErrGatewayUnauthorized)
	}

	var res stkPushResponse
	decodeErr := json.Unmarshal(body, &res)
	if status != http.StatusOK || decodeErr != nil || res.ResponseCode != stkAcceptedResponse || res.CheckoutRequestID == "" {
		log.Error("[payment][gateway] stk push rejected",
			zap.Int("status", status),
			zap.String("error_code", res.ErrorCode),
			zap.ByteString("response", truncate(body)),
		)
		msg := res.ErrorMessage
		if msg == "" {
			msg = res.ResponseDescription
		}
		return interfaces.ChargeResponse{}, fmt.Errorf("%w: status %d: %s", ErrMpesaRejected, status, msg)
	}

	log.Info("[payment][gateway] stk push accepted", zap.String("checkout_request_id", res.CheckoutRequestID))
	return interfaces.ChargeResponse{
		MerchantRequestID:   res.MerchantRequestID,
		CheckoutRequestID:   res.CheckoutRequestID,
		ResponseCode:        res.ResponseCode,
		ResponseDescription: res.ResponseDescription,
		CustomerMessage:     res.CustomerMessage,
	}, nil
}

func (g *MpesaGateway) do(req *http.Request) ([]byte, int, error) {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read daraja response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func truncate(b []byte) []byte {
	if len(b) > maxErrorBodyLogged {
		return b[:maxErrorBodyLogged]
	}
	return b
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MPESA_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
