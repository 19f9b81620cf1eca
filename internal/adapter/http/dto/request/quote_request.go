package request

import (
	"strings"

	"polymesh/internal/domain/entities"
	"polymesh/internal/domain/pricing"
)

type MeasurementRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// QuoteRequest is the body of POST /api/quotes. Enum and range checks are
// left to the pricing calculator so they are reported the same way for
// every caller.
type QuoteRequest struct {
	WindowCount  int                  `json:"windowCount" binding:"required"`
	Measurements []MeasurementRequest `json:"measurements" binding:"required"`
	Material     string               `json:"material" binding:"required"`
	Type         string               `json:"type" binding:"required"`
	Location     string               `json:"location" binding:"required"`
	Warranty     string               `json:"warranty" binding:"required"`
}

func (r QuoteRequest) ToPricingInput() pricing.Input {
	ms := make([]entities.Measurement, 0, len(r.Measurements))
	for _, m := range r.Measurements {
		ms = append(ms, entities.Measurement{Width: m.Width, Height: m.Height})
	}
	return pricing.Input{
		WindowCount:  r.WindowCount,
		Measurements: ms,
		Material:     strings.ToLower(strings.TrimSpace(r.Material)),
		MeshType:     strings.ToLower(strings.TrimSpace(r.Type)),
		Location:     strings.TrimSpace(r.Location),
		Warranty:     strings.ToLower(strings.TrimSpace(r.Warranty)),
	}
}
