package entities

import "time"

// Review is a customer testimonial. It stays hidden until an admin approves it.
type Review struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"createdAt"`
}
