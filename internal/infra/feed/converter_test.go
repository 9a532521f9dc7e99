package feed

import (
	"testing"

	"gasradar/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{name: "comma decimal", input: "1,649", want: ptr(1.649)},
		{name: "dot decimal", input: "1.649", want: ptr(1.649)},
		{name: "negative coordinate", input: "-3,703790", want: ptr(-3.70379)},
		{name: "zero is a value", input: "0,000", want: ptr(0)},
		{name: "surrounding noise", input: " 1,5 €", want: ptr(1.5)},
		{name: "empty string", input: "", want: nil},
		{name: "letters only", input: "n/a", want: nil},
		{name: "two decimal points", input: "1.2.3", want: nil},
		{name: "number type", input: 1.649, want: nil},
		{name: "nil", input: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseDecimal(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-12)
		})
	}
}

func TestParseDecimal_CommaAndDotAgree(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"40,416775", "1,649", "0,5", "-12,25"} {
		comma := ParseDecimal(s)
		dot := ParseDecimal(replaceComma(s))
		require.NotNil(t, comma, s)
		require.NotNil(t, dot, s)
		assert.Equal(t, *dot, *comma, s)
	}
}

func TestConverter_Convert_MadridStation(t *testing.T) {
	t.Parallel()

	raw := entity.RawStationRecord{
		"IDEESS":                "4375",
		"Latitud":               "40,416775",
		"Longitud (WGS84)":      "-3,703790",
		"Precio Gasolina 95 E5": "1,649",
		"Precio Gasoleo A":      "1,529",
		"Precio Hidrogeno":      "",
		"Rótulo":                "REPSOL",
		"Dirección":             "CALLE MAYOR, 1",
		"C.P.":                  "28013",
		"Horario":               "L-D: 24H",
		"Tipo Venta":            "P",
		"Unknown Field":         "ignored",
	}

	record := NewConverter().Convert(raw)

	assert.Equal(t, "4375", record.IDEESS)
	assert.InDelta(t, 40.416775, record.Latitude, 1e-9)
	assert.InDelta(t, -3.70379, record.Longitude, 1e-9)
	assert.Equal(t, orb.Point{-3.70379, 40.416775}, record.Location)
	assert.True(t, record.HasValidLocation())

	require.NotNil(t, record.Prices[entity.FuelPetrol95])
	assert.InDelta(t, 1.649, *record.Prices[entity.FuelPetrol95], 1e-9)
	require.NotNil(t, record.Prices[entity.FuelDiesel])
	assert.InDelta(t, 1.529, *record.Prices[entity.FuelDiesel], 1e-9)
	assert.Nil(t, record.Prices[entity.FuelHydrogen])
	assert.Nil(t, record.Prices[entity.FuelGPL])
	assert.Len(t, record.Prices, len(entity.AllFuelTypes))

	assert.Equal(t, "REPSOL", record.Brand)
	assert.Equal(t, "CALLE MAYOR, 1", record.Address)
	assert.Equal(t, "28013", record.ZipCode)
	assert.Equal(t, "L-D: 24H", record.Schedule)
	assert.Equal(t, "P", record.SellingType)
	assert.Empty(t, record.City)
}

func TestConverter_Convert_InvalidLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  entity.RawStationRecord
	}{
		{name: "missing longitude", raw: entity.RawStationRecord{"IDEESS": "1", "Latitud": "40,1"}},
		{name: "latitude out of range", raw: entity.RawStationRecord{"IDEESS": "1", "Latitud": "140,1", "Longitud (WGS84)": "-3,1"}},
		{name: "unparseable", raw: entity.RawStationRecord{"IDEESS": "1", "Latitud": "abc", "Longitud (WGS84)": "-3,1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := NewConverter().Convert(tt.raw)
			assert.False(t, record.HasValidLocation())
			assert.Equal(t, orb.Point{}, record.Location)
		})
	}
}

func ptr(f float64) *float64 {
	return &f
}

func replaceComma(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == ',' {
			out[i] = '.'
		}
	}

	return string(out)
}
