package request

import "strings"

type MpesaPayRequest struct {
	Phone   string  `json:"phone" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
	QuoteID string  `json:"quoteId" binding:"required"`
}

func (r MpesaPayRequest) ResolvePhone() string {
	return strings.ReplaceAll(strings.TrimSpace(r.Phone), " ", "")
}
