package pricing

import (
	"fmt"
	"strings"

	"polymesh/internal/domain/entities"
)

var (
	ErrInvalidMaterial    = fmt.Errorf("%w: unknown material", entities.ErrValidation)
	ErrInvalidMeshType    = fmt.Errorf("%w: unknown mesh type", entities.ErrValidation)
	ErrInvalidWarranty    = fmt.Errorf("%w: unknown warranty tier", entities.ErrValidation)
	ErrNoMeasurements     = fmt.Errorf("%w: at least one measurement is required", entities.ErrValidation)
	ErrInvalidMeasurement = fmt.Errorf("%w: width and height must be greater than zero", entities.ErrValidation)
	ErrInvalidWindowCount = fmt.Errorf("%w: window count must be at least 1", entities.ErrValidation)
	ErrMissingLocation    = fmt.Errorf("%w: location is required", entities.ErrValidation)
)

// Material is the mesh fabric.
type Material int

const (
	MaterialFiberglass Material = iota
	MaterialPolyester
	MaterialStainless
	materialCount
)

var (
	materialNames     = [materialCount]string{"fiberglass", "polyester", "stainless"}
	materialUnitPrice = [materialCount]float64{1500, 1800, 3500} // KES/m²
)

func ParseMaterial(s string) (Material, error) {
	for i, name := range materialNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Material(i), nil
		}
	}
	return 0, ErrInvalidMaterial
}

func (m Material) String() string { return materialNames[m] }

// UnitPrice is the KES price per square meter.
func (m Material) UnitPrice() float64 { return materialUnitPrice[m] }

// MeshType is the opening mechanism of the screen.
type MeshType int

const (
	MeshTypeFixed MeshType = iota
	MeshTypeSliding
	MeshTypeRetractable
	MeshTypePleated
	MeshTypeMagnetic
	MeshTypeVelcro
	meshTypeCount
)

var (
	meshTypeNames      = [meshTypeCount]string{"fixed", "sliding", "retractable", "pleated", "magnetic", "velcro"}
	meshTypeMultiplier = [meshTypeCount]float64{1.0, 1.2, 1.5, 1.8, 1.3, 1.1}
)

func ParseMeshType(s string) (MeshType, error) {
	for i, name := range meshTypeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return MeshType(i), nil
		}
	}
	return 0, ErrInvalidMeshType
}

func (t MeshType) String() string { return meshTypeNames[t] }

func (t MeshType) Multiplier() float64 { return meshTypeMultiplier[t] }

// Warranty is the after-sales cover tier.
type Warranty int

const (
	WarrantyBasic Warranty = iota
	WarrantyStandard
	WarrantyPremium
	warrantyCount
)

var (
	warrantyNames     = [warrantyCount]string{"basic", "standard", "premium"}
	warrantyUnitPrice = [warrantyCount]float64{0, 300, 600} // KES/m²
)

func ParseWarranty(s string) (Warranty, error) {
	for i, name := range warrantyNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Warranty(i), nil
		}
	}
	return 0, ErrInvalidWarranty
}

func (w Warranty) String() string { return warrantyNames[w] }

func (w Warranty) UnitPrice() float64 { return warrantyUnitPrice[w] }

// Materials, MeshTypes and Warranties list every enum value, in table order.
func Materials() []Material {
	out := make([]Material, 0, materialCount)
	for m := Material(0); m < materialCount; m++ {
		out = append(out, m)
	}
	return out
}

func MeshTypes() []MeshType {
	out := make([]MeshType, 0, meshTypeCount)
	for t := MeshType(0); t < meshTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

func Warranties() []Warranty {
	out := make([]Warranty, 0, warrantyCount)
	for w := Warranty(0); w < warrantyCount; w++ {
		out = append(out, w)
	}
	return out
}
