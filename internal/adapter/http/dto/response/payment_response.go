package response

import (
	"time"

	"polymesh/internal/domain/entities"
)

type MpesaPayResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
}

// CallbackAck is what Daraja expects back from the result URL.
type CallbackAck struct {
	Success    bool   `json:"success"`
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

func AcceptedCallback() CallbackAck {
	return CallbackAck{Success: true, ResultCode: 0, ResultDesc: "Accepted"}
}

type PaymentAttemptResponse struct {
	CheckoutRequestID string    `json:"checkoutRequestId"`
	QuoteID           string    `json:"quoteId"`
	Phone             string    `json:"phone"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	ResultCode        string    `json:"resultCode,omitempty"`
	ResultDesc        string    `json:"resultDesc,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type PaymentAttemptListResponse struct {
	Success  bool                     `json:"success"`
	Count    int                      `json:"count"`
	Payments []PaymentAttemptResponse `json:"payments"`
}

func FromPaymentAttempts(as []entities.PaymentAttempt) PaymentAttemptListResponse {
	out := make([]PaymentAttemptResponse, 0, len(as))
	for _, a := range as {
		out = append(out, PaymentAttemptResponse{
			CheckoutRequestID: a.ID,
			QuoteID:           a.QuoteID,
			Phone:             a.Phone,
			Amount:            a.Amount,
			Status:            string(a.Status),
			ResultCode:        a.ResultCode,
			ResultDesc:        a.ResultDesc,
			CreatedAt:         a.CreatedAt,
			UpdatedAt:         a.UpdatedAt,
		})
	}
	return PaymentAttemptListResponse{Success: true, Count: len(out), Payments: out}
}
