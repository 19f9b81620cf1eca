package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"polymesh/internal/config"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	messagingPath = "/version1/messaging"
	// Africa's Talking per-recipient status code for an accepted message.
	statusSent = 101
)

var (
	ErrMissingSMSCredentials = errors.New("missing AT_USERNAME or AT_API_KEY")
	ErrSMSRejected           = errors.New("sms gateway rejected the message")
)

// AfricasTalkingSMS sends text messages through the Africa's Talking
// messaging API.
type AfricasTalkingSMS struct {
	cfg        config.SMSConfig
	httpClient *http.Client
}

var _ interfaces.ISMSNotifier = (*AfricasTalkingSMS)(nil)

func NewAfricasTalkingSMS(cfg config.SMSConfig, timeout time.Duration) (*AfricasTalkingSMS, error) {
	if cfg.Username == "" || cfg.APIKey == "" {
		return nil, ErrMissingSMSCredentials
	}
	logger.L().Info("[sms][gateway] africa's talking client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.String("username", cfg.Username),
	)
	return &AfricasTalkingSMS{cfg: cfg, httpClient: &http.Client{Timeout: timeout}}, nil
}

type messagingResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			StatusCode int    `json:"statusCode"`
			Number     string `json:"number"`
			Status     string `json:"status"`
			Cost       string `json:"cost"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

func (s *AfricasTalkingSMS) Send(ctx context.Context, phone, message string) error {
	form := url.Values{}
	form.Set("username", s.cfg.Username)
	form.Set("to", phone)
	form.Set("message", message)
	if s.cfg.SenderID != "" {
		form.Set("from", s.cfg.SenderID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(s.cfg.BaseURL, "/")+messagingPath, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("apiKey", s.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read sms response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrSMSRejected, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var res messagingResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("decode sms response: %w", err)
	}
	for _, r := range res.SMSMessageData.Recipients {
		if r.StatusCode != statusSent {
			return fmt.Errorf("%w: %s (%d)", ErrSMSRejected, r.Status, r.StatusCode)
		}
		logger.FromCtx(ctx).Debug("[sms][gateway] message queued",
			zap.String("to", r.Number), zap.String("message_id", r.MessageID), zap.String("cost", r.Cost))
	}
	if len(res.SMSMessageData.Recipients) == 0 {
		return fmt.Errorf("%w: %s", ErrSMSRejected, res.SMSMessageData.Message)
	}
	return nil
}
