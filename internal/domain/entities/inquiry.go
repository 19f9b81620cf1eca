package entities

import "time"

type InquiryType string

const (
	InquiryTypeGeneral   InquiryType = "general"
	InquiryTypeQuote     InquiryType = "quote"
	InquiryTypeTechnical InquiryType = "technical"
	InquiryTypeComplaint InquiryType = "complaint"
)

// Valid reports whether t is one of the accepted inquiry types.
func (t InquiryType) Valid() bool {
	switch t {
	case InquiryTypeGeneral, InquiryTypeQuote, InquiryTypeTechnical, InquiryTypeComplaint:
		return true
	}
	return false
}

type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in-progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
)

// Inquiry is a contact-form submission. UserID is empty for anonymous visitors.
type Inquiry struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId,omitempty"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	InquiryType InquiryType   `json:"inquiryType"`
	Message     string        `json:"message,omitempty"`
	Status      InquiryStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
