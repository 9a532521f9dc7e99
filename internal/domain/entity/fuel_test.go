package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 {
	return &v
}

func TestPrices_Equal(t *testing.T) {
	t.Parallel()

	base := Prices{FuelDiesel: price(1.459), FuelPetrol95: price(1.649)}

	tests := []struct {
		name     string
		other    Prices
		expected bool
	}{
		{name: "identical", other: Prices{FuelDiesel: price(1.459), FuelPetrol95: price(1.649)}, expected: true},
		{name: "explicit nil equals missing key", other: Prices{FuelDiesel: price(1.459), FuelPetrol95: price(1.649), FuelGPL: nil}, expected: true},
		{name: "one price differs", other: Prices{FuelDiesel: price(1.469), FuelPetrol95: price(1.649)}, expected: false},
		{name: "nil versus value", other: Prices{FuelDiesel: price(1.459)}, expected: false},
		{name: "value versus nil", other: Prices{FuelDiesel: price(1.459), FuelPetrol95: price(1.649), FuelHydrogen: price(0)}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, base.Equal(tt.other))
			assert.Equal(t, tt.expected, tt.other.Equal(base))
		})
	}
}

func TestParseFuelType(t *testing.T) {
	t.Parallel()

	f, ok := ParseFuelType("PETROL95")
	assert.True(t, ok)
	assert.Equal(t, FuelPetrol95, f)

	_, ok = ParseFuelType("kerosene")
	assert.False(t, ok)
}

func TestFuelPreferences(t *testing.T) {
	t.Parallel()

	t.Run("no vehicles uses defaults", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []FuelType{FuelDiesel, FuelPetrol95, FuelPetrol98}, FuelPreferences(nil))
	})

	t.Run("distinct vehicle fuel types", func(t *testing.T) {
		t.Parallel()

		vehicles := []*Vehicle{
			{FuelType: FuelGPL},
			{FuelType: FuelDiesel},
			{FuelType: FuelGPL},
		}
		assert.Equal(t, []FuelType{FuelGPL, FuelDiesel}, FuelPreferences(vehicles))
	})

	t.Run("invalid fuel types are ignored", func(t *testing.T) {
		t.Parallel()

		vehicles := []*Vehicle{{FuelType: "kerosene"}}
		assert.Equal(t, DefaultFuelPreferences, FuelPreferences(vehicles))
	})
}

func TestChangedFields(t *testing.T) {
	t.Parallel()

	current := &Station{IDEESS: "1234", Latitude: 40.416775, Longitude: -3.70379, Brand: "REPSOL", Schedule: "L-D: 24H"}
	incoming := *current

	assert.Empty(t, ChangedFields(current, &incoming))

	incoming.Brand = "CEPSA"
	incoming.Longitude = -3.7038
	assert.Equal(t, []string{"longitude", "brand"}, ChangedFields(current, &incoming))
}
