package entities

import "time"

// QuoteStatus is the commercial lifecycle of a quote, independent from payment.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusCompleted QuoteStatus = "completed"
)

// PaymentStatus tracks the M-Pesa payment of a quote.
//
// Allowed moves: pending -> completed, pending -> failed, failed -> pending
// (customer retries) and failed -> completed (late success callback).
// Nothing leaves completed.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// QuoteValidity is how long a quote stays valid after creation.
const QuoteValidity = 7 * 24 * time.Hour

// Measurement is one window opening in meters.
type Measurement struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PaymentDetails is written only by the payment callback.
type PaymentDetails struct {
	TransactionID string    `json:"transactionId"`
	ReceiptNumber string    `json:"receiptNumber,omitempty"`
	Amount        float64   `json:"amount"`
	Phone         string    `json:"phone"`
	Date          time.Time `json:"date"`
}

// Quote is a priced installation estimate owned by a single user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id, sorted by created_at
//
// Everything except Status, PaymentStatus and PaymentDetails is fixed at
// creation time.
type Quote struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	WindowCount    int             `json:"windowCount"`
	Measurements   []Measurement   `json:"measurements"`
	Material       string          `json:"material"`
	Type           string          `json:"type"`
	Location       string          `json:"location"`
	Warranty       string          `json:"warranty"`
	TotalArea      float64         `json:"totalArea"`
	BaseCost       float64         `json:"baseCost"`
	WarrantyCost   float64         `json:"warrantyCost"`
	TotalCost      float64         `json:"totalCost"`
	Status         QuoteStatus     `json:"status"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
	ValidUntil     time.Time       `json:"validUntil"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// AccountReference is the tag sent to the payment gateway and echoed back in
// its callback.
func (q Quote) AccountReference() string {
	return AccountReferencePrefix + "-" + q.ID
}

// AccountReferencePrefix marks account references that carry a quote id.
const AccountReferencePrefix = "QUOTE"
