package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/adiwira/tebengan/internal/pkg/models"
	"github.com/adiwira/tebengan/services/location/mocks"
	"github.com/adiwira/tebengan/services/location/usecase"
)

func TestNewLocationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.locationUC)
}

func TestLocationHandler_PublishLocation(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name: "Success",
			requestBody: models.LocationPublishRequest{
				UserID:    "driver-123",
				RideID:    "ride-456",
				UserType:  "driver",
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					PublishLocation(gomock.Any(), gomock.Any()).
					Return(models.LocationPublishResult{}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Throttled publish still succeeds",
			requestBody: models.LocationPublishRequest{
				UserID:    "driver-123",
				RideID:    "ride-456",
				UserType:  "driver",
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					PublishLocation(gomock.Any(), gomock.Any()).
					Return(models.LocationPublishResult{Throttled: true}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Validation failure",
			requestBody: models.LocationPublishRequest{UserType: "admin"},
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					PublishLocation(gomock.Any(), gomock.Any()).
					Return(models.LocationPublishResult{}, errors.New("invalid user_type")).
					Times(1)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Malformed body",
			requestBody: "not-json",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				// Bind fails before the usecase is reached
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewLocationHandler(mockUC)

			var body []byte
			switch v := tt.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/locations", bytes.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.PublishLocation(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLocationHandler_GetRideLocation(t *testing.T) {
	lat := -6.175392
	lng := 106.827153

	tests := []struct {
		name           string
		rideID         string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name:   "Success",
			rideID: "ride-456",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					GetRideLocation(gomock.Any(), "ride-456").
					Return(&models.LocationUpdateRecord{
						RideID:    "ride-456",
						DriverLat: &lat,
						DriverLng: &lng,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "No record yet",
			rideID: "ride-789",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					GetRideLocation(gomock.Any(), "ride-789").
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Store failure",
			rideID: "ride-456",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					GetRideLocation(gomock.Any(), "ride-456").
					Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewLocationHandler(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/rides/"+tt.rideID+"/location", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.rideID)

			err := handler.GetRideLocation(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLocationHandler_GetLocationHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mockUC.EXPECT().
		GetLocationHistory(gomock.Any(), "user-123", start, end).
		Return([]*models.LocationHistoryEntry{
			{UserID: "user-123", RideID: "ride-456", Geohash: "qqguww7"},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/locations/history/user-123?start="+start.Format(time.RFC3339)+"&end="+end.Format(time.RFC3339), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues("user-123")

	err := handler.GetLocationHistory(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestLocationHandler_GetLocationHistory_BadTimeParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/locations/history/user-123?start=yesterday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues("user-123")

	err := handler.GetLocationHistory(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_GetMapCredential(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
		expectedKey    string
		expectHint     bool
	}{
		{
			name: "Success",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().MapCredential().Return("maps-api-key", nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "maps-api-key",
		},
		{
			name: "Credential not configured",
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().MapCredential().Return("", usecase.ErrCredentialMissing)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectHint:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewLocationHandler(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/maps/credential", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.GetMapCredential(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedKey != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedKey, resp["map_provider_api_key"])
			}
			if tt.expectHint {
				var resp struct {
					Hint string `json:"hint"`
				}
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Hint)
			}
		})
	}
}
