package feed

import (
	"strconv"
	"strings"

	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/service"

	"github.com/paulmach/orb"
)

// Feed field names.
const (
	fieldIDEESS    = "IDEESS"
	fieldLatitude  = "Latitud"
	fieldLongitude = "Longitud (WGS84)"
)

// stationFields maps a feed field to the station attribute it fills.
var stationFields = map[string]func(*entity.Station, string){
	"Dirección":        func(s *entity.Station, v string) { s.Address = v },
	"C.P.":             func(s *entity.Station, v string) { s.ZipCode = v },
	"Localidad":        func(s *entity.Station, v string) { s.City = v },
	"Municipio":        func(s *entity.Station, v string) { s.Municipality = v },
	"Provincia":        func(s *entity.Station, v string) { s.Province = v },
	"Horario":          func(s *entity.Station, v string) { s.Schedule = v },
	"Rótulo":           func(s *entity.Station, v string) { s.Brand = v },
	"IDMunicipio":      func(s *entity.Station, v string) { s.IDMunicipality = v },
	"IDProvincia":      func(s *entity.Station, v string) { s.IDProvince = v },
	"IDCCAA":           func(s *entity.Station, v string) { s.IDCCAA = v },
	"Tipo Venta":       func(s *entity.Station, v string) { s.SellingType = v },
	"Remisión":         func(s *entity.Station, v string) { s.Remission = v },
	"Margen":           func(s *entity.Station, v string) { s.Margin = v },
	"% BioEtanol":      func(s *entity.Station, v string) { s.BioEthanolPct = v },
	"% Éster metílico": func(s *entity.Station, v string) { s.MethylEsterPct = v },
}

// priceFields maps a feed price field to its fuel type.
var priceFields = map[string]entity.FuelType{
	"Precio Gasoleo A":                   entity.FuelDiesel,
	"Precio Gasoleo Premium":             entity.FuelDieselPremium,
	"Precio Gasolina 95 E5":              entity.FuelPetrol95,
	"Precio Gasolina 95 E10":             entity.FuelPetrol95E10,
	"Precio Gasolina 95 E5 Premium":      entity.FuelPetrol95E5Premium,
	"Precio Gasolina 98 E5":              entity.FuelPetrol98,
	"Precio Gasolina 98 E10":             entity.FuelPetrol98E10,
	"Precio Gases licuados del petróleo": entity.FuelGPL,
	"Precio Biodiesel":                   entity.FuelBiodiesel,
	"Precio Bioetanol":                   entity.FuelBioethanol,
	"Precio Gas Natural Licuado":         entity.FuelGasNaturalLicuado,
	"Precio Gas Natural Comprimido":      entity.FuelGasNaturalComprimido,
	"Precio Gasoleo B":                   entity.FuelGasoleoB,
	"Precio Hidrogeno":                   entity.FuelHydrogen,
}

// Converter turns raw feed records into canonical station records.
type Converter struct{}

// NewConverter creates the feed record converter.
func NewConverter() service.StationConverter {
	return Converter{}
}

// Convert maps one raw record. It never fails: unknown or malformed fields stay empty.
func (Converter) Convert(raw entity.RawStationRecord) *entity.StationRecord {
	record := &entity.StationRecord{
		Prices: entity.NewEmptyPrices(),
	}

	record.IDEESS = stringField(raw[fieldIDEESS])

	for name, set := range stationFields {
		set(&record.Station, stringField(raw[name]))
	}

	lat := ParseDecimal(raw[fieldLatitude])
	lon := ParseDecimal(raw[fieldLongitude])
	if lat != nil {
		record.Latitude = *lat
	}
	if lon != nil {
		record.Longitude = *lon
	}
	if lat != nil && lon != nil && validCoordinates(*lat, *lon) {
		record.Location = orb.Point{*lon, *lat}
	}

	for name, fuel := range priceFields {
		record.Prices[fuel] = ParseDecimal(raw[name])
	}

	return record
}

// ParseDecimal parses a feed number written with a decimal comma, e.g. "1,649".
// Anything that is not a string or does not parse yields nil.
func ParseDecimal(v any) *float64 {
	s, ok := v.(string)
	if !ok {
		return nil
	}

	s = strings.ReplaceAll(s, ",", ".")
	s = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}

		return -1
	}, s)
	if s == "" {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &f
}

func stringField(v any) string {
	s, _ := v.(string)

	return s
}

func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
