package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"impactDashboardAPI/internal/acceptance"
	"impactDashboardAPI/internal/challenge"
	"impactDashboardAPI/internal/impactapi"
	"impactDashboardAPI/internal/kv"
	"impactDashboardAPI/internal/notification"
	"impactDashboardAPI/internal/validation"
	"impactDashboardAPI/middleware"
	"impactDashboardAPI/services"
)

const upstreamSummary = `{"co2Emitted":40.5,"co2Saved":12,"streak":7,"badgesUnlocked":1,"totalBadges":6,"percentChange":-4.2}`

// fakeUpstream serves canned impact API bodies keyed by path.
func fakeUpstream(t *testing.T, bodies map[string]string) *impactapi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return impactapi.NewClient(impactapi.Config{BaseURL: srv.URL, Timeout: time.Second}, zap.NewNop())
}

func dashboardBodies() map[string]string {
	return map[string]string{
		"GET /api/dashboard/summary": upstreamSummary,
		"GET /api/dashboard/chart":   `[{"week":"W1","footprint":42,"saved":20,"baseline":50},{"week":"W2","footprint":38,"saved":30,"baseline":50}]`,
		"GET /api/dashboard/badges":  `[{"id":1,"name":"First Week","icon":"🌱","description":"d","unlocked":false}]`,
		"GET /api/dashboard/goal":    `{"target":100,"current":50,"daysLeft":3}`,
		"GET /api/dashboard/details": `{"emitted":[{"d":"Mon","v":5.5}],"saved":[],"streak":[true],"contributions":[],"impact":[]}`,
	}
}

func withUser(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ClerkIDKey, userID)
	ctx = impactapi.WithBearerToken(ctx, "tok")
	return r.WithContext(ctx)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestGetDashboard(t *testing.T) {
	client := fakeUpstream(t, dashboardBodies())
	h := NewDashboardHandler(services.NewDashboardService(client, 100, zap.NewNop()), zap.NewNop())
	h.now = func() time.Time { return time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.GetDashboard(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?weeks=1", nil), "user_1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Chart         []map[string]any `json:"chart"`
		UnlockedCount int              `json:"unlockedCount"`
		TotalSaved    float64          `json:"totalSaved"`
		MonthlyGoal   struct {
			Percentage float64 `json:"percentage"`
			DaysLeft   int     `json:"daysLeft"`
		} `json:"monthlyGoal"`
		Impact struct {
			Water int `json:"water"`
		} `json:"impact"`
	}
	decode(t, rec, &view)
	assert.Len(t, view.Chart, 1)
	assert.Equal(t, 2, view.UnlockedCount)
	assert.Equal(t, 50.0, view.TotalSaved)
	assert.Equal(t, 50.0, view.MonthlyGoal.Percentage)
	assert.Equal(t, 11, view.MonthlyGoal.DaysLeft)
	assert.Equal(t, 750, view.Impact.Water)
}

func TestGetDashboardErrors(t *testing.T) {
	malformed := dashboardBodies()
	malformed["GET /api/dashboard/summary"] = `{"co2Emitted":40.5}`

	missing := dashboardBodies()
	delete(missing, "GET /api/dashboard/details")

	tests := []struct {
		name   string
		bodies map[string]string
		url    string
		user   string
		status int
	}{
		{"unauthenticated", dashboardBodies(), "/api/v1/dashboard", "", http.StatusUnauthorized},
		{"bad weeks", dashboardBodies(), "/api/v1/dashboard?weeks=0", "user_1", http.StatusBadRequest},
		{"malformed payload", malformed, "/api/v1/dashboard", "user_1", http.StatusBadGateway},
		{"upstream 404", missing, "/api/v1/dashboard", "user_1", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := fakeUpstream(t, tt.bodies)
			h := NewDashboardHandler(services.NewDashboardService(client, 100, zap.NewNop()), zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.user != "" {
				req = withUser(req, tt.user)
			}
			rec := httptest.NewRecorder()
			h.GetDashboard(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]any
			decode(t, rec, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func newChallengeHandler(t *testing.T) *ChallengeHandler {
	mem := kv.NewMemoryStore(0)
	t.Cleanup(func() { mem.Close() })
	catalog := challenge.Default()
	svc := services.NewChallengeService(catalog, acceptance.NewStore(mem, catalog), nil, zap.NewNop())
	h := NewChallengeHandler(svc, zap.NewNop())
	h.now = func() time.Time { return time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC) }
	return h
}

func TestListChallenges(t *testing.T) {
	h := newChallengeHandler(t)

	rec := httptest.NewRecorder()
	h.ListChallenges(rec, httptest.NewRequest(http.MethodGet, "/api/v1/challenges?category=transport&difficulty=easy", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []challenge.Challenge
	decode(t, rec, &items)
	require.NotEmpty(t, items)
	for _, ch := range items {
		assert.Equal(t, challenge.CategoryTransport, ch.Category)
		assert.Equal(t, challenge.DifficultyEasy, ch.Difficulty)
	}

	rec = httptest.NewRecorder()
	h.ListChallenges(rec, httptest.NewRequest(http.MethodGet, "/api/v1/challenges?difficulty=extreme", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetChallenge(t *testing.T) {
	h := newChallengeHandler(t)

	call := func(id string) *httptest.ResponseRecorder {
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/challenges/"+id, nil), map[string]string{"id": id})
		rec := httptest.NewRecorder()
		h.GetChallenge(rec, req)
		return rec
	}

	rec := call("22")
	require.Equal(t, http.StatusOK, rec.Code)
	var ch challenge.Challenge
	decode(t, rec, &ch)
	assert.Equal(t, 22, ch.ID)

	assert.Equal(t, http.StatusNotFound, call("99").Code)
	assert.Equal(t, http.StatusBadRequest, call("abc").Code)
}

func TestTodayFlow(t *testing.T) {
	h := newChallengeHandler(t)

	rec := httptest.NewRecorder()
	h.GetToday(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/challenges/today", nil), "user_1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var view services.TodayView
	decode(t, rec, &view)
	assert.Equal(t, 1, view.DailyIndex)
	assert.Equal(t, 2, view.Challenge.ID)

	rec = httptest.NewRecorder()
	h.ToggleAcceptance(rec, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/challenges/today/toggle", nil), "user_1"))
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &view)
	assert.True(t, view.State.Accepted)

	rec = httptest.NewRecorder()
	h.NextChallenge(rec, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/challenges/today/next", nil), "user_1"))
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &view)
	assert.Equal(t, 3, view.Challenge.ID)
	assert.False(t, view.State.Accepted)

	rec = httptest.NewRecorder()
	h.PreviousChallenge(rec, httptest.NewRequest(http.MethodPost, "/api/v1/challenges/today/previous", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTotalPotential(t *testing.T) {
	h := newChallengeHandler(t)

	rec := httptest.NewRecorder()
	h.GetTotalPotential(rec, httptest.NewRequest(http.MethodGet, "/api/v1/challenges/total-potential", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var total services.TotalPotential
	decode(t, rec, &total)
	assert.Equal(t, 50, total.Count)
	assert.InDelta(t, 407.4, total.TotalPotentialCO2, 1e-9)
}

func foodBodies() map[string]string {
	return map[string]string{
		"GET /api/foods/3":  `{"id":3,"name":"Chicken","category":"meat","is_veg":false,"protein":27,"co2_per_100g":0.69}`,
		"POST /api/log-food": `{"id":9,"food_name":"Chicken","quantity_grams":200,"co2_impact":1.38,"logged_at":"2025-01-01T10:00:00Z"}`,
		"GET /api/activity-logs": `[]`,
	}
}

func TestFoodImpactPreview(t *testing.T) {
	h := NewFoodHandler(services.NewFoodService(fakeUpstream(t, foodBodies()), zap.NewNop()), zap.NewNop())

	call := func(id, grams string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/foods/"+id+"/impact?grams="+grams, nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		rec := httptest.NewRecorder()
		h.GetImpactPreview(rec, req)
		return rec
	}

	rec := call("3", "200")
	require.Equal(t, http.StatusOK, rec.Code)
	var preview struct {
		CO2Impact float64 `json:"co2_impact"`
	}
	decode(t, rec, &preview)
	assert.Equal(t, 1.38, preview.CO2Impact)

	assert.Equal(t, http.StatusBadRequest, call("3", "0").Code)
	assert.Equal(t, http.StatusBadRequest, call("3", "x").Code)
	assert.Equal(t, http.StatusNotFound, call("4", "100").Code)
}

func TestLogFood(t *testing.T) {
	h := NewFoodHandler(services.NewFoodService(fakeUpstream(t, foodBodies()), zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.LogFood(rec, httptest.NewRequest(http.MethodPost, "/api/v1/foods/log", strings.NewReader(`{"food_id":3,"quantity_grams":200}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.LogFood(rec, httptest.NewRequest(http.MethodPost, "/api/v1/foods/log", strings.NewReader(`{"food_id":3}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body validationResponse
	decode(t, rec, &body)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "quantity_grams", body.Fields[0].Field)
}

func TestActivityLogsLimit(t *testing.T) {
	h := NewFoodHandler(services.NewFoodService(fakeUpstream(t, foodBodies()), zap.NewNop()), zap.NewNop())

	for url, status := range map[string]int{
		"/api/v1/activity-logs":           http.StatusOK,
		"/api/v1/activity-logs?limit=100": http.StatusOK,
		"/api/v1/activity-logs?limit=0":   http.StatusBadRequest,
		"/api/v1/activity-logs?limit=101": http.StatusBadRequest,
		"/api/v1/activity-logs?limit=ten": http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		h.GetActivityLogs(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, status, rec.Code, url)
	}
}

func TestRegisterDevice(t *testing.T) {
	mem := kv.NewMemoryStore(0)
	t.Cleanup(func() { mem.Close() })
	h := NewDeviceHandler(services.NewDeviceService(notification.NewDeviceRegistry(mem), zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	body := `{"token":"fcm-token-0123456789abcdef","platform":"ios"}`
	h.RegisterDevice(rec, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/devices", strings.NewReader(body)), "user_1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"devices":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.RegisterDevice(rec, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/devices", strings.NewReader(`{"token":"short"}`)), "user_1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingPinger struct{ err error }

func (p failingPinger) Ping(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(failingPinger{}, zap.NewNop()).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	NewHealthHandler(failingPinger{err: context.DeadlineExceeded}, zap.NewNop()).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogFoodMalformedUpstreamIsBadGateway(t *testing.T) {
	bodies := foodBodies()
	bodies["POST /api/log-food"] = `{"id":9,"food_name":"Chicken","quantity_grams":200}`
	h := NewFoodHandler(services.NewFoodService(fakeUpstream(t, bodies), zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.LogFood(rec, httptest.NewRequest(http.MethodPost, "/api/v1/foods/log", strings.NewReader(`{"food_id":3,"quantity_grams":200}`)))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "Impact service unavailable", body["error"])
	assert.NotContains(t, rec.Body.String(), "co2_impact")
}

func TestRespondWithServiceError(t *testing.T) {
	upstreamInvalid := &validation.Error{Fields: []validation.FieldError{{Field: "co2_impact", Rule: "required"}}}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"malformed payload wrapping validation", &impactapi.PayloadError{Path: "/api/log-food", Err: upstreamInvalid}, http.StatusBadGateway},
		{"wrapped malformed payload", fmt.Errorf("failed to log food: %w", &impactapi.PayloadError{Path: "/api/log-food", Err: upstreamInvalid}), http.StatusBadGateway},
		{"upstream status", &impactapi.StatusError{Path: "/api/foods", Code: 503}, http.StatusBadGateway},
		{"upstream not found", &impactapi.StatusError{Path: "/api/foods/4", Code: 404}, http.StatusNotFound},
		{"upstream deadline", fmt.Errorf("%w: GET /api/foods: %w", impactapi.ErrUpstream, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"client validation", upstreamInvalid, http.StatusBadRequest},
		{"invalid limit", services.ErrInvalidLimit, http.StatusBadRequest},
		{"unknown challenge", services.ErrChallengeNotFound, http.StatusNotFound},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondWithServiceError(rec, zap.NewNop(), tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestListChallengesAllDifficulty(t *testing.T) {
	h := newChallengeHandler(t)

	rec := httptest.NewRecorder()
	h.ListChallenges(rec, httptest.NewRequest(http.MethodGet, "/api/v1/challenges?category=all&difficulty=all", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []challenge.Challenge
	decode(t, rec, &items)
	assert.Len(t, items, 50)
}
