package usecase

import (
	"fmt"
	"strings"

	"polymesh/internal/domain/entities"
)

var ErrMissingAddress = fmt.Errorf("address is required: %w", entities.ErrValidation)

type CoverageTier string

const (
	CoveragePremium  CoverageTier = "premium"
	CoverageStandard CoverageTier = "standard"
	CoverageLimited  CoverageTier = "limited"
)

var (
	premiumAreas  = []string{"nairobi", "westlands", "karen"}
	standardAreas = []string{"thika", "kiambu", "ruaka", "kikuyu", "limuru"}
)

type Coverage struct {
	Tier             CoverageTier
	InstallationDays int
	Message          string
}

type ServiceArea struct {
	Name         string `json:"name"`
	DeliveryTime string `json:"deliveryTime"`
	Premium      bool   `json:"premium"`
}

var serviceAreas = []ServiceArea{
	{Name: "Nairobi Central", DeliveryTime: "1-2 days", Premium: true},
	{Name: "Westlands", DeliveryTime: "1-2 days", Premium: true},
	{Name: "Karen", DeliveryTime: "1-2 days", Premium: true},
	{Name: "Thika", DeliveryTime: "3-4 days", Premium: false},
	{Name: "Kiambu", DeliveryTime: "3-4 days", Premium: false},
	{Name: "Kikuyu", DeliveryTime: "3-4 days", Premium: false},
	{Name: "Other Areas", DeliveryTime: "5-7 days", Premium: false},
}

type ICoverageUseCase interface {
	Check(address string) (Coverage, error)
	ServiceAreas() []ServiceArea
}

type CoverageUseCase struct{}

var _ ICoverageUseCase = (*CoverageUseCase)(nil)

func NewCoverageUseCase() *CoverageUseCase {
	return &CoverageUseCase{}
}

// Check matches the address against area keywords, premium areas first.
func (u *CoverageUseCase) Check(address string) (Coverage, error) {
	normalized := strings.ToLower(strings.TrimSpace(address))
	if normalized == "" {
		return Coverage{}, ErrMissingAddress
	}
	switch {
	case containsAnyKeyword(normalized, premiumAreas):
		return Coverage{Tier: CoveragePremium, InstallationDays: 2, Message: "We provide premium same-week service in your area"}, nil
	case containsAnyKeyword(normalized, standardAreas):
		return Coverage{Tier: CoverageStandard, InstallationDays: 4, Message: "Standard service available with 3-5 day installation"}, nil
	default:
		return Coverage{Tier: CoverageLimited, InstallationDays: 7, Message: "Service available with extended installation timeline"}, nil
	}
}

func (u *CoverageUseCase) ServiceAreas() []ServiceArea {
	out := make([]ServiceArea, len(serviceAreas))
	copy(out, serviceAreas)
	return out
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
