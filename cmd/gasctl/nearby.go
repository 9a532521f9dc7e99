package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/service"
	"gasradar/internal/usecase"
	"gasradar/internal/util"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func nearbyCommand() *cli.Command {
	return &cli.Command{
		Name:  "nearby",
		Usage: "List stations around a place or a coordinate",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "place",
				Usage: "Place name resolved through Nominatim",
			},
			&cli.Float64Flag{
				Name:  "lat",
				Usage: "Latitude of the centre",
			},
			&cli.Float64Flag{
				Name:  "lon",
				Usage: "Longitude of the centre",
			},
			&cli.Float64Flag{
				Name:    "radius",
				Aliases: []string{"r"},
				Usage:   "Search radius in kilometres (0 uses the configured default)",
			},
			&cli.StringFlag{
				Name:  "fuel",
				Usage: "Only show this fuel type, e.g. diesel or petrol95",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Only show stations open now",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of stations",
				Value: 20,
			},
		},
		Action: nearbyAction,
	}
}

func nearbyAction(c *cli.Context) error {
	query := &usecase.NearbyQuery{
		Latitude:  c.Float64("lat"),
		Longitude: c.Float64("lon"),
		RadiusKm:  c.Float64("radius"),
		Limit:     c.Int("limit"),
	}
	if fuel := c.String("fuel"); fuel != "" {
		fuelType, ok := entity.ParseFuelType(fuel)
		if !ok {
			return errors.Errorf("unknown fuel type %q", fuel)
		}
		query.FuelType = fuelType
	}
	if c.Bool("open") {
		query.Availability = entity.AvailabilityOpen
	}

	place := c.String("place")
	if place == "" && !c.IsSet("lat") && !c.IsSet("lon") {
		return errors.New("place or latitude and longitude are required")
	}

	var (
		geocoder service.Geocoder
		queryUC  usecase.StationQueryUsecase
	)

	return withApp(c.Context, func(ctx context.Context) error {
		if place != "" {
			found, err := geocoder.Search(ctx, place)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Location found:", found.DisplayName)
			query.Latitude, query.Longitude = found.Latitude, found.Longitude
		}

		stations, err := queryUC.FindNearby(ctx, query)
		if err != nil {
			return err
		}

		return printStations(c, stations, query.FuelType)
	}, &geocoder, &queryUC)
}

func printStations(c *cli.Context, stations []*usecase.NearbyStation, fuelType entity.FuelType) error {
	if len(stations) == 0 {
		fmt.Fprintln(c.App.Writer, "No stations found")

		return nil
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KM\tBRAND\tADDRESS\tCITY\tOPEN\tPRICE")
	for _, s := range stations {
		fmt.Fprintf(w, "%.2f\t%s\t%s\t%s\t%s\t%s\n",
			s.Distance, s.Brand, s.Address, s.City, openLabel(s.IsOpen), priceLabel(s, fuelType))
	}

	return w.Flush()
}

func openLabel(open *bool) string {
	switch {
	case open == nil:
		return "?"
	case *open:
		return "yes"
	default:
		return "no"
	}
}

func priceLabel(s *usecase.NearbyStation, fuelType entity.FuelType) string {
	if fuelType != "" {
		if s.Price == nil {
			return "-"
		}

		return util.FormatPrice(*s.Price)
	}

	// Without a fuel filter show the default preferences only.
	out := ""
	for _, f := range entity.DefaultFuelPreferences {
		if p := s.Prices.Get(f); p != nil {
			if out != "" {
				out += "  "
			}
			out += f.DisplayName() + " " + util.PriceString(*p)
		}
	}
	if out == "" {
		return "-"
	}

	return out
}
