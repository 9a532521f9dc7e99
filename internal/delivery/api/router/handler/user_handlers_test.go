package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/validator"
	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	mockUsecase "gasradar/internal/mocks/usecase"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newUserContext builds a request context already authenticated as userID.
func newUserContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		middleware.SetIdentity(c, userID, []string{string(entity.RoleUser)})
	}

	return c, rec
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		body      string
		setupMock func(uc *mockUsecase.MockDeviceUsecase)
		wantCode  int
	}{
		{
			name: "registered",
			body: `{"fcm_token":"tok-1","device_id":"pixel-8","platform":"android"}`,
			setupMock: func(uc *mockUsecase.MockDeviceUsecase) {
				uc.EXPECT().RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{
					FCMToken: "tok-1", DeviceID: "pixel-8", Platform: "android",
				}).Return(&entity.UserDevice{ID: uuid.New(), UserID: userID}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "unknown platform",
			body:      `{"fcm_token":"tok-1","device_id":"pixel-8","platform":"symbian"}`,
			setupMock: func(uc *mockUsecase.MockDeviceUsecase) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "token owned by another account",
			body: `{"fcm_token":"tok-1","device_id":"pixel-8","platform":"ios"}`,
			setupMock: func(uc *mockUsecase.MockDeviceUsecase) {
				uc.EXPECT().RegisterDevice(mock.Anything, userID, mock.Anything).
					Return(nil, domainerrors.ErrConflict.WrapMessage("push token already registered"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockDeviceUsecase(t)
			tt.setupMock(uc)
			h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: discardLogger()})

			c, rec := newUserContext(http.MethodPost, "/api/v1/devices", tt.body, userID)

			require.NoError(t, h.RegisterDevice(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotContains(t, rec.Body.String(), "tok-1")
		})
	}
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	userID, deviceID := uuid.New(), uuid.New()

	t.Run("not the caller's device", func(t *testing.T) {
		uc := mockUsecase.NewMockDeviceUsecase(t)
		uc.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(domainerrors.ErrDeviceNotFound)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: discardLogger()})

		c, rec := newUserContext(http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "", userID)
		c.SetParamNames("id")
		c.SetParamValues(deviceID.String())

		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: discardLogger()})

		c, rec := newUserContext(http.MethodDelete, "/api/v1/devices/abc", "", userID)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: discardLogger()})

		c, rec := newUserContext(http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "", uuid.Nil)

		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestNotificationHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("lists a page", func(t *testing.T) {
		uc := mockUsecase.NewMockNotificationUsecase(t)
		uc.EXPECT().ListNotifications(mock.Anything, userID, 2, 10).
			Return(&usecase.NotificationPage{Items: []*entity.Notification{}, Total: 12, Page: 2, PageSize: 10}, nil)

		c, rec := newUserContext(http.MethodGet, "/api/v1/notifications?page=2&pageSize=10", "", userID)

		require.NoError(t, NewNotificationHandler(uc).ListNotifications(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":12`)
	})

	t.Run("mark read of unknown notification", func(t *testing.T) {
		notificationID := uuid.New()
		uc := mockUsecase.NewMockNotificationUsecase(t)
		uc.EXPECT().MarkRead(mock.Anything, userID, notificationID).Return(domainerrors.ErrNotificationNotFound)

		c, rec := newUserContext(http.MethodPatch, "/", "", userID)
		c.SetParamNames("id")
		c.SetParamValues(notificationID.String())

		require.NoError(t, NewNotificationHandler(uc).MarkRead(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOTIFICATION_NOT_FOUND", decodeError(t, rec).Code)
	})
}

func TestVehicleHandler_AddVehicle(t *testing.T) {
	userID := uuid.New()

	t.Run("fuel type is normalised", func(t *testing.T) {
		uc := mockUsecase.NewMockVehicleUsecase(t)
		uc.EXPECT().AddVehicle(mock.Anything, userID, mock.MatchedBy(func(info *usecase.VehicleInfo) bool {
			return info.Brand == "Seat" && info.FuelType == entity.FuelDiesel
		})).Return(&entity.Vehicle{ID: uuid.New(), UserID: userID}, nil)

		c, rec := newUserContext(http.MethodPost, "/api/v1/vehicles", `{"brand":"Seat","model":"Leon","fuel_type":"DIESEL"}`, userID)

		require.NoError(t, NewVehicleHandler(uc).AddVehicle(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown fuel", func(t *testing.T) {
		c, rec := newUserContext(http.MethodPost, "/api/v1/vehicles", `{"brand":"Seat","fuel_type":"kerosene"}`, userID)

		require.NoError(t, NewVehicleHandler(mockUsecase.NewMockVehicleUsecase(t)).AddVehicle(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReviewHandler_AddReview(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		body      string
		setupMock func(uc *mockUsecase.MockReviewUsecase)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"rating":4,"comment":"clean toilets"}`,
			setupMock: func(uc *mockUsecase.MockReviewUsecase) {
				uc.EXPECT().AddReview(mock.Anything, userID, "1001", 4, "clean toilets").
					Return(&entity.Review{ID: uuid.New()}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "rating out of range",
			body:      `{"rating":6}`,
			setupMock: func(uc *mockUsecase.MockReviewUsecase) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "second review",
			body: `{"rating":2}`,
			setupMock: func(uc *mockUsecase.MockReviewUsecase) {
				uc.EXPECT().AddReview(mock.Anything, userID, "1001", 2, "").Return(nil, domainerrors.ErrReviewAlreadyExists)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockReviewUsecase(t)
			tt.setupMock(uc)

			c, rec := newUserContext(http.MethodPost, "/api/v1/stations/1001/reviews", tt.body, userID)
			c.SetParamNames("idEESS")
			c.SetParamValues("1001")

			require.NoError(t, NewReviewHandler(uc).AddReview(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
