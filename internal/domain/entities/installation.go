package entities

import "time"

type InstallationStatus string

const (
	InstallationStatusScheduled  InstallationStatus = "scheduled"
	InstallationStatusInProgress InstallationStatus = "in-progress"
	InstallationStatusCompleted  InstallationStatus = "completed"
	InstallationStatusCancelled  InstallationStatus = "cancelled"
)

// Valid reports whether s is a known installation status.
func (s InstallationStatus) Valid() bool {
	switch s {
	case InstallationStatusScheduled, InstallationStatusInProgress, InstallationStatusCompleted, InstallationStatusCancelled:
		return true
	}
	return false
}

// Installation is a site visit scheduled against a quote. UserID is copied
// from the quote owner so tracking can be restricted to that user.
type Installation struct {
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	QuoteID       string             `json:"quoteId"`
	ScheduledDate time.Time          `json:"scheduledDate"`
	Status        InstallationStatus `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}
