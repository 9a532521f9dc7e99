package handler

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/response"
	"gasradar/internal/domain/constants"
	"gasradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	StationSyncUC  usecase.StationSyncUsecase
	PriceHistoryUC usecase.PriceHistoryUsecase
	LowPriceUC     usecase.LowPriceUsecase
}

type jobRunner func(ctx context.Context) (any, error)

// TestHandler serves the operator-only endpoints used to exercise jobs and tokens by hand.
type TestHandler struct {
	jobs map[string]jobRunner
}

func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		jobs: map[string]jobRunner{
			constants.JobStationSync: func(ctx context.Context) (any, error) {
				return params.StationSyncUC.SyncStations(ctx)
			},
			constants.JobPriceHistory: func(ctx context.Context) (any, error) {
				return params.PriceHistoryUC.RecordPrices(ctx)
			},
			constants.JobLowPriceAlert: func(ctx context.Context) (any, error) {
				return params.LowPriceUC.NotifyLowPrices(ctx)
			},
		},
	}
}

// Whoami handles GET /api/v1/test/whoami and echoes the caller's token claims.
func (h *TestHandler) Whoami(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}
	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"userID": userID,
		"roles":  roles,
	})
}

// RunJob handles POST /api/v1/test/jobs/:job/run. One cycle runs synchronously
// and its report is returned.
func (h *TestHandler) RunJob(c echo.Context) error {
	run, ok := h.jobs[c.Param("job")]
	if !ok {
		names := make([]string, 0, len(h.jobs))
		for name := range h.jobs {
			names = append(names, name)
		}
		slices.Sort(names)

		return response.NotFound(c, "UNKNOWN_JOB", "Job must be one of "+strings.Join(names, ", "))
	}

	report, err := run(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
