package request

import "polymesh/internal/usecase"

type OrderRequest struct {
	QuoteID string `json:"quoteId" binding:"required"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

type InquiryRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	InquiryType string `json:"inquiryType" binding:"required"`
	Message     string `json:"message"`
}

// ToInput attaches the caller when the request carried a valid token.
func (r InquiryRequest) ToInput(userID string) usecase.InquiryInput {
	return usecase.InquiryInput{
		UserID:      userID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		InquiryType: r.InquiryType,
		Message:     r.Message,
	}
}

type CoverageRequest struct {
	Address string `json:"address" binding:"required"`
}
