// Package pricing computes mesh installation quotes.
//
// Cost model:
//
//	totalArea    = Σ width × height
//	baseCost     = totalArea × material unit price × type multiplier × location factor
//	warrantyCost = totalArea × warranty unit price
//	totalCost    = baseCost + warrantyCost
package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"polymesh/internal/domain/entities"
)

// Input is the raw, unvalidated quote request.
type Input struct {
	WindowCount  int
	Measurements []entities.Measurement
	Material     string
	MeshType     string
	Location     string
	Warranty     string
}

// Result carries the validated enums next to the computed amounts.
type Result struct {
	Material       Material
	MeshType       MeshType
	Warranty       Warranty
	Zone           Zone
	LocationFactor float64
	TotalArea      float64
	BaseCost       float64
	WarrantyCost   float64
	TotalCost      float64
}

// Breakdown is the human readable pricing summary returned with a new quote.
type Breakdown struct {
	Material string `json:"material"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Warranty string `json:"warranty"`
}

// Calculate validates in and prices it. It has no side effects.
func Calculate(in Input) (Result, error) {
	if in.WindowCount < 1 {
		return Result{}, ErrInvalidWindowCount
	}
	if len(in.Measurements) == 0 {
		return Result{}, ErrNoMeasurements
	}
	if strings.TrimSpace(in.Location) == "" {
		return Result{}, ErrMissingLocation
	}
	material, err := ParseMaterial(in.Material)
	if err != nil {
		return Result{}, err
	}
	meshType, err := ParseMeshType(in.MeshType)
	if err != nil {
		return Result{}, err
	}
	warranty, err := ParseWarranty(in.Warranty)
	if err != nil {
		return Result{}, err
	}

	area, err := TotalArea(in.Measurements)
	if err != nil {
		return Result{}, err
	}

	zone := ResolveZone(in.Location)
	factor := zone.Factor()
	base := area * material.UnitPrice() * meshType.Multiplier() * factor
	warrantyCost := area * warranty.UnitPrice()

	return Result{
		Material:       material,
		MeshType:       meshType,
		Warranty:       warranty,
		Zone:           zone,
		LocationFactor: factor,
		TotalArea:      area,
		BaseCost:       base,
		WarrantyCost:   warrantyCost,
		TotalCost:      base + warrantyCost,
	}, nil
}

// TotalArea sums width × height, rejecting non-positive sides.
func TotalArea(measurements []entities.Measurement) (float64, error) {
	var area float64
	for i, m := range measurements {
		if !(m.Width > 0) || !(m.Height > 0) {
			return 0, fmt.Errorf("measurement %d: %w", i, ErrInvalidMeasurement)
		}
		area += m.Width * m.Height
	}
	return area, nil
}

// Breakdown renders the tables used for r next to the customer's location.
func (r Result) Breakdown(location string) Breakdown {
	return Breakdown{
		Material: fmt.Sprintf("%s @ KES %s/m²", r.Material, formatNumber(r.Material.UnitPrice())),
		Type:     fmt.Sprintf("%s (x%s)", r.MeshType, formatNumber(r.MeshType.Multiplier())),
		Location: fmt.Sprintf("%s (x%.1f)", location, r.LocationFactor),
		Warranty: fmt.Sprintf("%s @ KES %s/m²", r.Warranty, formatNumber(r.Warranty.UnitPrice())),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
