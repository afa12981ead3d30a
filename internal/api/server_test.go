package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/communitylens/ledger/internal/api"
	"github.com/communitylens/ledger/internal/config"
	"github.com/communitylens/ledger/internal/repository/dao"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.InitTables(db))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "8080",
			BaseURL:            "localhost:8080",
			AllowedCORSDomains: []string{"*"},
		},
		Gin: &config.GinConfig{
			Mode: gin.TestMode,
		},
	}

	return api.NewServer(conf, db)
}

func doJSON(t *testing.T, s *api.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ".", w.Body.String())
}

func TestEventLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/events", `{
		"event_name": "Harvest Festival",
		"event_date": "2024-10-12",
		"location": "Town Square",
		"expected_participants": 200
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID      uint   `json:"id"`
		Quarter string `json:"quarter"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "2024Q4", created.Quarter)
	assert.Equal(t, "In Progress", created.Status)

	eventPath := "/api/v1/events/" + strconv.FormatUint(uint64(created.ID), 10)

	w = doJSON(t, s, http.MethodPost, eventPath+"/costs", `{
		"amount": 150,
		"is_income": true
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, s, http.MethodGet, eventPath, "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Event struct {
			TotalIncome float64 `json:"total_income"`
			NetProfit   float64 `json:"net_profit"`
		} `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, 150.0, detail.Event.TotalIncome)
	assert.Equal(t, 150.0, detail.Event.NetProfit)

	w = doJSON(t, s, http.MethodDelete, eventPath, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, http.MethodGet, eventPath, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateEvent_InvalidDate(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/events", `{
		"event_name": "Bad Date",
		"event_date": "12/10/2024"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEventType_Duplicate(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/event-types", `{"name": "School"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard struct {
		Period string `json:"period"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, "to_date", dashboard.Period)

	w = doJSON(t, s, http.MethodGet, "/api/v1/dashboard?year=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLensTaxonomySeeded(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/lens-categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []struct {
		Name          string `json:"name"`
		Subcategories []struct {
			Name string `json:"name"`
		} `json:"subcategories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 7)

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	assert.Contains(t, names, "CALENDAR")
	assert.Contains(t, names, "VIABILITY")
}

func TestGenerateReport_Validation(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/reports/generate", `{"report_type": "quarterly"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/v1/reports/generate", `{"report_type": "all_time"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
