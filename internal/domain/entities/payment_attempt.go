package entities

import (
	"encoding/json"
	"time"
)

// PaymentAttempt records one STK push accepted by the gateway.
//
// Storage model (DynamoDB):
//   - PK: id (gateway CheckoutRequestID)
//   - GSI (quote_id-index): quote_id
//
// The callback uses it to find the quote when the gateway does not echo the
// account reference (failed or cancelled pushes carry no metadata).
// CallbackRaw keeps the last callback body for audit.
type PaymentAttempt struct {
	ID                string          `json:"id"`
	QuoteID           string          `json:"quoteId"`
	MerchantRequestID string          `json:"merchantRequestId,omitempty"`
	Phone             string          `json:"phone"`
	Amount            float64         `json:"amount"`
	Status            PaymentStatus   `json:"status"`
	ResultCode        string          `json:"resultCode,omitempty"`
	ResultDesc        string          `json:"resultDesc,omitempty"`
	CallbackRaw       json.RawMessage `json:"callbackRaw,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
