package response

import (
	"math"
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/domain/pricing"
	"polymesh/internal/usecase"
)

type CreatedQuoteBody struct {
	ID                    string            `json:"id"`
	TotalCost             int64             `json:"totalCost"`
	Breakdown             pricing.Breakdown `json:"breakdown"`
	EstimatedInstallation string            `json:"estimatedInstallation"`
	NextSteps             []string          `json:"nextSteps"`
}

type CreateQuoteResponse struct {
	Success bool             `json:"success"`
	Quote   CreatedQuoteBody `json:"quote"`
}

func FromCreatedQuote(cq usecase.CreatedQuote) CreateQuoteResponse {
	return CreateQuoteResponse{
		Success: true,
		Quote: CreatedQuoteBody{
			ID:                    cq.Quote.ID,
			TotalCost:             int64(math.Round(cq.Quote.TotalCost)),
			Breakdown:             cq.Breakdown,
			EstimatedInstallation: cq.EstimatedInstallation,
			NextSteps: []string{
				"We'll call to confirm measurements",
				"50% deposit required via M-Pesa",
				"Installation in " + cq.EstimatedInstallation,
			},
		},
	}
}

type PaymentDetailsResponse struct {
	TransactionID string    `json:"transactionId"`
	ReceiptNumber string    `json:"receiptNumber,omitempty"`
	Amount        float64   `json:"amount"`
	Phone         string    `json:"phone"`
	Date          time.Time `json:"date"`
}

// QuoteResponse is a stored quote as shown to its owner or an admin.
type QuoteResponse struct {
	ID             string                  `json:"id"`
	UserID         string                  `json:"userId,omitempty"`
	WindowCount    int                     `json:"windowCount"`
	Measurements   []entities.Measurement  `json:"measurements"`
	Material       string                  `json:"material"`
	Type           string                  `json:"type"`
	Location       string                  `json:"location"`
	Warranty       string                  `json:"warranty"`
	TotalArea      float64                 `json:"totalArea"`
	BaseCost       float64                 `json:"baseCost"`
	WarrantyCost   float64                 `json:"warrantyCost"`
	TotalCost      float64                 `json:"totalCost"`
	Status         string                  `json:"status"`
	PaymentStatus  string                  `json:"paymentStatus"`
	PaymentDetails *PaymentDetailsResponse `json:"paymentDetails,omitempty"`
	ValidUntil     time.Time               `json:"validUntil"`
	CreatedAt      time.Time               `json:"createdAt"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	r := QuoteResponse{
		ID:            q.ID,
		UserID:        q.UserID,
		WindowCount:   q.WindowCount,
		Measurements:  q.Measurements,
		Material:      q.Material,
		Type:          q.Type,
		Location:      q.Location,
		Warranty:      q.Warranty,
		TotalArea:     q.TotalArea,
		BaseCost:      q.BaseCost,
		WarrantyCost:  q.WarrantyCost,
		TotalCost:     q.TotalCost,
		Status:        string(q.Status),
		PaymentStatus: string(q.PaymentStatus),
		ValidUntil:    q.ValidUntil,
		CreatedAt:     q.CreatedAt,
	}
	if d := q.PaymentDetails; d != nil {
		r.PaymentDetails = &PaymentDetailsResponse{
			TransactionID: d.TransactionID,
			ReceiptNumber: d.ReceiptNumber,
			Amount:        d.Amount,
			Phone:         d.Phone,
			Date:          d.Date,
		}
	}
	return r
}

// FromOwnQuote hides the owner id, which the caller already knows.
func FromOwnQuote(q entities.Quote) QuoteResponse {
	r := FromQuote(q)
	r.UserID = ""
	return r
}

type QuoteEnvelope struct {
	Success bool          `json:"success"`
	Quote   QuoteResponse `json:"quote"`
}

type QuoteListResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Quotes  []QuoteResponse `json:"quotes"`
}

func FromQuotes(qs []entities.Quote, own bool) QuoteListResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		if own {
			out = append(out, FromOwnQuote(q))
		} else {
			out = append(out, FromQuote(q))
		}
	}
	return QuoteListResponse{Success: true, Count: len(out), Quotes: out}
}
