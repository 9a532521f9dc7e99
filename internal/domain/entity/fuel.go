package entity

import (
	"slices"
	"strings"
)

// FuelType is a key of the closed fuel enumeration tracked in price history.
type FuelType string

const (
	FuelDiesel               FuelType = "diesel"
	FuelDieselPremium        FuelType = "dieselPremium"
	FuelPetrol95             FuelType = "petrol95"
	FuelPetrol95E10          FuelType = "petrol95E10"
	FuelPetrol95E5Premium    FuelType = "petrol95E5Premium"
	FuelPetrol98             FuelType = "petrol98"
	FuelPetrol98E10          FuelType = "petrol98E10"
	FuelGPL                  FuelType = "gpl"
	FuelBiodiesel            FuelType = "biodiesel"
	FuelBioethanol           FuelType = "bioethanol"
	FuelGasNaturalLicuado    FuelType = "gasNaturalLicuado"
	FuelGasNaturalComprimido FuelType = "gasNaturalComprimido"
	FuelGasoleoB             FuelType = "gasoleoB"
	FuelHydrogen             FuelType = "hydrogen"
)

// AllFuelTypes lists every tracked fuel type in a stable order.
var AllFuelTypes = []FuelType{
	FuelDiesel,
	FuelDieselPremium,
	FuelPetrol95,
	FuelPetrol95E10,
	FuelPetrol95E5Premium,
	FuelPetrol98,
	FuelPetrol98E10,
	FuelGPL,
	FuelBiodiesel,
	FuelBioethanol,
	FuelGasNaturalLicuado,
	FuelGasNaturalComprimido,
	FuelGasoleoB,
	FuelHydrogen,
}

// DefaultFuelPreferences applies to users without registered vehicles.
var DefaultFuelPreferences = []FuelType{FuelDiesel, FuelPetrol95, FuelPetrol98}

var fuelDisplayNames = map[FuelType]string{
	FuelDiesel:               "Diésel",
	FuelDieselPremium:        "Diésel Premium",
	FuelPetrol95:             "Gasolina 95",
	FuelPetrol95E10:          "Gasolina 95 E10",
	FuelPetrol95E5Premium:    "Gasolina 95 Premium",
	FuelPetrol98:             "Gasolina 98",
	FuelPetrol98E10:          "Gasolina 98 E10",
	FuelGPL:                  "GLP",
	FuelBiodiesel:            "Biodiésel",
	FuelBioethanol:           "Bioetanol",
	FuelGasNaturalLicuado:    "Gas Natural Licuado",
	FuelGasNaturalComprimido: "Gas Natural Comprimido",
	FuelGasoleoB:             "Gasóleo B",
	FuelHydrogen:             "Hidrógeno",
}

// IsValid reports whether f belongs to the enumeration.
func (f FuelType) IsValid() bool {
	return slices.Contains(AllFuelTypes, f)
}

// DisplayName returns the human label used in notifications.
func (f FuelType) DisplayName() string {
	if name, ok := fuelDisplayNames[f]; ok {
		return name
	}

	return string(f)
}

// ParseFuelType matches a fuel type key case-insensitively.
func ParseFuelType(s string) (FuelType, bool) {
	s = strings.TrimSpace(s)
	for _, f := range AllFuelTypes {
		if strings.EqualFold(string(f), s) {
			return f, true
		}
	}

	return "", false
}

// Prices maps a fuel type to its price per litre. A nil value means the station does not sell it.
type Prices map[FuelType]*float64

// NewEmptyPrices returns a map with a nil entry for every fuel type.
func NewEmptyPrices() Prices {
	prices := make(Prices, len(AllFuelTypes))
	for _, f := range AllFuelTypes {
		prices[f] = nil
	}

	return prices
}

// Get returns the price for f, or nil when absent.
func (p Prices) Get(f FuelType) *float64 {
	if p == nil {
		return nil
	}

	return p[f]
}

// Equal compares every fuel type exactly. A missing key and a nil value are the same.
func (p Prices) Equal(other Prices) bool {
	for _, f := range AllFuelTypes {
		a, b := p.Get(f), other.Get(f)
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}

	return true
}

// Available returns only the fuel types with a known price.
func (p Prices) Available() Prices {
	out := make(Prices)
	for f, v := range p {
		if v != nil {
			out[f] = v
		}
	}

	return out
}
