package response

import (
	"time"

	"polymesh/internal/domain/entities"
	"polymesh/internal/usecase"
)

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Name    string `json:"name"`
}

type OrderEnvelope struct {
	Success bool           `json:"success"`
	Order   entities.Order `json:"order"`
}

type OrderListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Orders  []entities.Order `json:"orders"`
}

// PublicReview omits the author's user id.
type PublicReview struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type PublicReviewListResponse struct {
	Success bool           `json:"success"`
	Reviews []PublicReview `json:"reviews"`
}

func FromPublicReviews(rs []entities.Review) PublicReviewListResponse {
	out := make([]PublicReview, 0, len(rs))
	for _, r := range rs {
		out = append(out, PublicReview{
			ID:         r.ID,
			AuthorName: r.AuthorName,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
		})
	}
	return PublicReviewListResponse{Success: true, Reviews: out}
}

type ReviewEnvelope struct {
	Success bool            `json:"success"`
	Review  entities.Review `json:"review"`
}

type ReviewListResponse struct {
	Success bool              `json:"success"`
	Reviews []entities.Review `json:"reviews"`
}

type InquirySummary struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type InquiryResponse struct {
	Success bool           `json:"success"`
	Inquiry InquirySummary `json:"inquiry"`
}

type CoverageResponse struct {
	Success          bool   `json:"success"`
	Coverage         string `json:"coverage"`
	InstallationDays int    `json:"installationDays"`
	Message          string `json:"message"`
}

func FromCoverage(c usecase.Coverage) CoverageResponse {
	return CoverageResponse{
		Success:          true,
		Coverage:         string(c.Tier),
		InstallationDays: c.InstallationDays,
		Message:          c.Message,
	}
}

type ServiceAreasResponse struct {
	Success      bool                  `json:"success"`
	Count        int                   `json:"count"`
	ServiceAreas []usecase.ServiceArea `json:"serviceAreas"`
}

type InstallationQuoteSummary struct {
	ID            string  `json:"id"`
	WindowCount   int     `json:"windowCount"`
	Material      string  `json:"material"`
	Type          string  `json:"type"`
	Location      string  `json:"location"`
	TotalCost     float64 `json:"totalCost"`
	PaymentStatus string  `json:"paymentStatus"`
}

type InstallationBody struct {
	entities.Installation
	Quote *InstallationQuoteSummary `json:"quote,omitempty"`
}

type InstallationEnvelope struct {
	Success      bool             `json:"success"`
	Installation InstallationBody `json:"installation"`
}

func FromInstallationView(v usecase.InstallationView) InstallationEnvelope {
	body := InstallationBody{Installation: v.Installation}
	if v.Quote.ID != "" {
		body.Quote = &InstallationQuoteSummary{
			ID:            v.Quote.ID,
			WindowCount:   v.Quote.WindowCount,
			Material:      v.Quote.Material,
			Type:          v.Quote.Type,
			Location:      v.Quote.Location,
			TotalCost:     v.Quote.TotalCost,
			PaymentStatus: string(v.Quote.PaymentStatus),
		}
	}
	return InstallationEnvelope{Success: true, Installation: body}
}

func FromInstallation(i entities.Installation) InstallationEnvelope {
	return InstallationEnvelope{Success: true, Installation: InstallationBody{Installation: i}}
}
