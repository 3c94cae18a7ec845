package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/greensteps/greensteps-api/internal/dto"
	"github.com/greensteps/greensteps-api/internal/model"
	"github.com/greensteps/greensteps-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTravelService struct {
	logResp   *dto.TravelLogResponse
	logErr    error
	lastInput dto.LogTravelInput
	today     *model.TravelLog
	history   []dto.DailyData
}

func (f *fakeTravelService) LogTravel(_ context.Context, _ string, input dto.LogTravelInput) (*dto.TravelLogResponse, error) {
	f.lastInput = input
	return f.logResp, f.logErr
}

func (f *fakeTravelService) Today(_ context.Context, _ string) (*model.TravelLog, error) {
	return f.today, nil
}

func (f *fakeTravelService) History(_ context.Context, _ string, _ int) ([]dto.DailyData, error) {
	return f.history, nil
}

func (f *fakeTravelService) RecommendationContext(_ context.Context, _ string) (*service.RecommendationInput, error) {
	return nil, nil
}

func travelRouter(h *TravelHandler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
	})
	router.POST("/api/travel", h.LogTravel)
	router.GET("/api/travel/today", h.Today)
	router.GET("/api/travel/history", h.History)
	return router
}

func TestLogTravelHandler(t *testing.T) {
	svc := &fakeTravelService{
		logResp: &dto.TravelLogResponse{
			Entry: &model.TravelLog{Mode: model.ModeBus, Points: 83, EmissionsKg: 0.50},
			User:  &model.User{},
		},
	}
	router := travelRouter(NewTravelHandler(svc, nil), uuid.NewString())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/travel", strings.NewReader(`{"mode":"Bus","distance_km":10,"trips":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bus", svc.lastInput.Mode)
	assert.Equal(t, 1, svc.lastInput.Trips)

	var resp dto.TravelLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 83, resp.Entry.Points)
}

func TestLogTravelHandlerRejectsInvalidBody(t *testing.T) {
	router := travelRouter(NewTravelHandler(&fakeTravelService{}, nil), uuid.NewString())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/travel", strings.NewReader(`{"distance_km":10}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogTravelHandlerRequiresAuth(t *testing.T) {
	router := travelRouter(NewTravelHandler(&fakeTravelService{}, nil), "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/travel", strings.NewReader(`{"mode":"Bus","trips":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHistoryHandlerDefaultsWindow(t *testing.T) {
	svc := &fakeTravelService{
		history: []dto.DailyData{{Date: "2026-09-01", Points: 83, Emissions: 0.50}},
	}
	router := travelRouter(NewTravelHandler(svc, nil), uuid.NewString())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/travel/history?days=abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2026-09-01")
}

func TestTodayHandlerNullWhenUnlogged(t *testing.T) {
	router := travelRouter(NewTravelHandler(&fakeTravelService{}, nil), uuid.NewString())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/travel/today", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entry": null}`, w.Body.String())
}
