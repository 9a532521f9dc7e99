package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gasradar/config"
	deliverycontext "gasradar/internal/delivery/context"
	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/domain/service"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"
	"gasradar/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const metersPerKm = 1000.0

type stationQueryService struct {
	stationRepo repository.StationRepository
	historyRepo repository.PriceHistoryRepository
	queryCache  service.QueryCache
	cfg         config.QueryConfig
	location    *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

// StationQueryServiceParams holds dependencies for StationQueryService, injected by Fx.
type StationQueryServiceParams struct {
	fx.In

	StationRepo repository.StationRepository
	HistoryRepo repository.PriceHistoryRepository
	QueryCache  service.QueryCache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewStationQueryService creates the geo query engine
func NewStationQueryService(params StationQueryServiceParams) (usecase.StationQueryUsecase, error) {
	location, err := time.LoadLocation(params.Config.Query.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", params.Config.Query.Timezone)
	}

	return &stationQueryService{
		stationRepo: params.StationRepo,
		historyRepo: params.HistoryRepo,
		queryCache:  params.QueryCache,
		cfg:         params.Config.Query,
		location:    location,
		logger:      params.Logger,
		now:         time.Now,
	}, nil
}

// FindNearby returns stations with tracked prices inside the radius, nearest first
func (s *stationQueryService) FindNearby(ctx context.Context, query *usecase.NearbyQuery) ([]*usecase.NearbyStation, error) {
	if err := s.validate(query); err != nil {
		return nil, err
	}

	radiusKm := query.RadiusKm
	if radiusKm == 0 {
		radiusKm = s.cfg.DefaultRadiusKm
	}
	radiusKm = min(radiusKm, s.cfg.MaxRadiusKm)

	nearQuery := &entity.NearQuery{
		Latitude:     query.Latitude,
		Longitude:    query.Longitude,
		RadiusMeters: radiusKm * metersPerKm,
		Brand:        strings.TrimSpace(query.Brand),
		MinRating:    query.MinRating,
	}

	availability := query.Availability
	if availability == "" {
		availability = entity.AvailabilityAll
	}
	postFiltered := query.FuelType != "" || availability != entity.AvailabilityAll

	candidates, err := s.loadCandidates(ctx, nearQuery, query.Limit, postFiltered)
	if err != nil {
		return nil, err
	}

	localNow := s.now().In(s.location)
	results := make([]*usecase.NearbyStation, 0, len(candidates))
	for _, candidate := range candidates {
		if query.Limit > 0 && len(results) >= query.Limit {
			break
		}
		if candidate.Latest == nil {
			continue
		}

		var price *float64
		if query.FuelType != "" {
			price = candidate.Latest.Prices.Get(query.FuelType)
			if price == nil {
				continue
			}
		}

		isOpen := openState(candidate.Station.Schedule, localNow)
		if !matchesAvailability(availability, isOpen) {
			continue
		}

		result := toNearbyStation(candidate, isOpen)
		if query.FuelType != "" {
			result.FuelType = string(query.FuelType)
			result.Price = price
		} else {
			result.Prices = candidate.Latest.Prices.Available()
		}
		results = append(results, result)
	}

	return results, nil
}

type nearbyCandidate struct {
	Station        *entity.Station
	Latest         *entity.PriceHistoryEntry
	DistanceMeters float64
}

// loadCandidates runs the radius search, from the cache when possible, and joins the latest prices.
func (s *stationQueryService) loadCandidates(ctx context.Context, nearQuery *entity.NearQuery, limit int, postFiltered bool) ([]*nearbyCandidate, error) {
	logger := deliverycontext.Logger(ctx, s.logger)
	key := s.queryCache.Key(nearQuery)

	if cached, ok := s.queryCache.Get(key); ok {
		logger.Debug("Nearby query served from cache", slog.String("key", key))

		return fromCached(cached), nil
	}

	// Results are only cached when the search was not truncated.
	if !postFiltered && limit > 0 {
		nearQuery.Limit = limit
	}

	found, err := s.stationRepo.FindNear(ctx, nearQuery)
	if err != nil {
		return nil, errors.Wrap(err, "find stations near")
	}

	ids := make([]uuid.UUID, 0, len(found))
	for _, sd := range found {
		ids = append(ids, sd.Station.ID)
	}

	latest := map[uuid.UUID]*entity.PriceHistoryEntry{}
	if len(ids) > 0 {
		latest, err = s.historyRepo.LatestForStations(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "load latest prices")
		}
	}

	candidates := make([]*nearbyCandidate, 0, len(found))
	cached := &service.CachedNearby{Candidates: make([]*service.CachedCandidate, 0, len(found))}
	for _, sd := range found {
		entry := latest[sd.Station.ID]
		candidates = append(candidates, &nearbyCandidate{
			Station:        sd.Station,
			Latest:         entry,
			DistanceMeters: sd.DistanceMeters,
		})
		cached.Candidates = append(cached.Candidates, &service.CachedCandidate{
			Station:        sd.Station,
			Latest:         entry,
			DistanceMeters: sd.DistanceMeters,
		})
	}

	if nearQuery.Limit == 0 {
		s.queryCache.Set(key, cached)
	}

	return candidates, nil
}

// fromCached replays a stored search. Entries keep the store's order and distances.
func fromCached(cached *service.CachedNearby) []*nearbyCandidate {
	candidates := make([]*nearbyCandidate, 0, len(cached.Candidates))
	for _, c := range cached.Candidates {
		candidates = append(candidates, &nearbyCandidate{
			Station:        c.Station,
			Latest:         c.Latest,
			DistanceMeters: c.DistanceMeters,
		})
	}

	return candidates
}

func (s *stationQueryService) validate(query *usecase.NearbyQuery) error {
	switch {
	case query == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("query is required")
	case query.Latitude < -90 || query.Latitude > 90:
		return domainerrors.ErrValidationFailed.WrapMessage("latitude must be between -90 and 90")
	case query.Longitude < -180 || query.Longitude > 180:
		return domainerrors.ErrValidationFailed.WrapMessage("longitude must be between -180 and 180")
	case query.RadiusKm < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("radius must be positive")
	case query.Limit < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("limit must be positive")
	case query.MinRating != nil && (*query.MinRating < 0 || *query.MinRating > 5):
		return domainerrors.ErrValidationFailed.WrapMessage("minRating must be between 0 and 5")
	case query.FuelType != "" && !query.FuelType.IsValid():
		return domainerrors.ErrValidationFailed.WrapMessage("unknown fuel type")
	}

	switch query.Availability {
	case "", entity.AvailabilityAll, entity.AvailabilityOpen, entity.AvailabilityClosed:
		return nil
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("availability must be open, closed or all")
	}
}

// GetStation returns the detail view of one station
func (s *stationQueryService) GetStation(ctx context.Context, idEESS string) (*usecase.StationDetail, error) {
	station, err := s.stationRepo.FindByExternalID(ctx, idEESS)
	if err != nil {
		return nil, err
	}

	detail := &usecase.StationDetail{
		Station: station,
		Reviews: station.Reviews,
		IsOpen:  openState(station.Schedule, s.now().In(s.location)),
	}

	latest, err := s.historyRepo.Latest(ctx, station.ID)
	switch {
	case err == nil:
		detail.Prices = latest.Prices.Available()
		detail.PricesAt = &latest.CreatedAt
	case errors.Is(err, domainerrors.ErrPriceHistoryNotFound):
	default:
		return nil, errors.Wrap(err, "load latest prices")
	}

	return detail, nil
}

// openState evaluates a schedule, returning nil when it cannot be parsed.
func openState(schedule string, at time.Time) *bool {
	open, ok := entity.OpenState(schedule, at)
	if !ok {
		return nil
	}

	return &open
}

// matchesAvailability never matches an unknown schedule against open or closed.
func matchesAvailability(availability entity.Availability, isOpen *bool) bool {
	switch availability {
	case entity.AvailabilityOpen:
		return isOpen != nil && *isOpen
	case entity.AvailabilityClosed:
		return isOpen != nil && !*isOpen
	default:
		return true
	}
}

func toNearbyStation(candidate *nearbyCandidate, isOpen *bool) *usecase.NearbyStation {
	station := candidate.Station

	return &usecase.NearbyStation{
		ID:           station.ID.String(),
		IDEESS:       station.IDEESS,
		Brand:        station.Brand,
		Address:      station.Address,
		City:         station.City,
		Municipality: station.Municipality,
		Province:     station.Province,
		ZipCode:      station.ZipCode,
		Schedule:     station.Schedule,
		Latitude:     station.Latitude,
		Longitude:    station.Longitude,
		Distance:     util.RoundTo(candidate.DistanceMeters/metersPerKm, 2),
		Rating:       station.Reviews.Scoring,
		TotalRatings: station.Reviews.TotalRatings,
		IsOpen:       isOpen,
		PricesAt:     candidate.Latest.CreatedAt,
	}
}
