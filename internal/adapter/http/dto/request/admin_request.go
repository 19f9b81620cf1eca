package request

import "time"

// ReviewApprovalRequest uses a pointer so an explicit false is not
// mistaken for a missing field.
type ReviewApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type ScheduleInstallationRequest struct {
	QuoteID       string    `json:"quoteId" binding:"required"`
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
	Notes         string    `json:"notes"`
}

type InstallationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SendSMSRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}
