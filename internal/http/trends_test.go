package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lonamusi/trending-collections/internal/database/trends"
	"github.com/lonamusi/trending-collections/internal/entities"
)

type mockTrendStore struct {
	records       []entities.Trend
	created       *entities.Trend
	deletedID     uint
	updatedID     uint
	lastPartial   trends.Partial
	getByIDErr    error
	updateErr     error
	deleteErr     error
	getAllErr     error
	createErr     error
	getByIDResult *entities.Trend
}

func (m *mockTrendStore) Create(trend *entities.Trend) error {
	if m.createErr != nil {
		return m.createErr
	}
	trend.ID = 42
	m.created = trend
	return nil
}

func (m *mockTrendStore) GetByID(id uint) (*entities.Trend, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	return m.getByIDResult, nil
}

func (m *mockTrendStore) GetAll() ([]entities.Trend, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	return m.records, nil
}

func (m *mockTrendStore) Update(id uint, partial trends.Partial) (*entities.Trend, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updatedID = id
	m.lastPartial = partial
	return &entities.Trend{ID: id}, nil
}

func (m *mockTrendStore) Delete(id uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func newTrendsRouter(store TrendStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewTrendsController(store)

	router := gin.New()
	router.GET("/api/trends", controller.ListTrends)
	router.GET("/api/trends/:id", controller.GetTrend)
	router.POST("/api/trends", controller.CreateTrend)
	router.PUT("/api/trends/:id", controller.UpdateTrend)
	router.DELETE("/api/trends/:id", controller.DeleteTrend)
	router.GET("/api/test-trends", controller.ListTrendsUnauthenticated)
	return router
}

func strPtr(s string) *string {
	return &s
}

func TestListTrends(t *testing.T) {
	store := &mockTrendStore{
		records: []entities.Trend{
			{
				ID:            1,
				OriginalQuery: "sustainable fashion",
				TrendTopic:    "Upcycled Denim",
				Category:      strPtr("fashion"),
				CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	router := newTrendsRouter(store)

	req, _ := http.NewRequest("GET", "/api/trends", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(response) != 1 {
		t.Fatalf("expected 1 trend, got %d", len(response))
	}
	if response[0]["trend_topic"] != "Upcycled Denim" {
		t.Errorf("unexpected trend_topic: %v", response[0]["trend_topic"])
	}
	if response[0]["created_at"] != "2025-03-01T12:00:00Z" {
		t.Errorf("unexpected created_at: %v", response[0]["created_at"])
	}
}

func TestListTrends_EmptyIsArray(t *testing.T) {
	router := newTrendsRouter(&mockTrendStore{})

	req, _ := http.NewRequest("GET", "/api/trends", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	// An empty collection serializes as [], never null
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestGetTrend_ZeroTimestampsAreNull(t *testing.T) {
	store := &mockTrendStore{
		getByIDResult: &entities.Trend{ID: 7, TrendTopic: "Chore Coats"},
	}
	router := newTrendsRouter(store)

	req, _ := http.NewRequest("GET", "/api/trends/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["created_at"] != nil {
		t.Errorf("expected null created_at for zero timestamp, got %v", response["created_at"])
	}
	if response["category"] != nil {
		t.Errorf("expected null category, got %v", response["category"])
	}
}

func TestGetTrend_NotFound(t *testing.T) {
	store := &mockTrendStore{getByIDErr: trends.ErrTrendNotFound}
	router := newTrendsRouter(store)

	req, _ := http.NewRequest("GET", "/api/trends/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Error != "Trend not found" {
		t.Errorf("unexpected error message: %q", response.Error)
	}
}

func TestGetTrend_InvalidID(t *testing.T) {
	router := newTrendsRouter(&mockTrendStore{})

	req, _ := http.NewRequest("GET", "/api/trends/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCreateTrend(t *testing.T) {
	store := &mockTrendStore{}
	router := newTrendsRouter(store)

	body := `{
		"original_query": "sustainable fashion",
		"trend_topic": "Upcycled Denim",
		"description": "Denim reworked into new garments",
		"reformulated_queries": "upcycled denim brands",
		"category": "fashion"
	}`
	req, _ := http.NewRequest("POST", "/api/trends", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["id"] != float64(42) {
		t.Errorf("expected id 42 in response, got %v", response["id"])
	}
	if store.created == nil || store.created.TrendTopic != "Upcycled Denim" {
		t.Error("trend was not passed to the store")
	}
}

func TestCreateTrend_MissingRequiredField(t *testing.T) {
	store := &mockTrendStore{}
	router := newTrendsRouter(store)

	// trend_topic is absent
	body := `{
		"original_query": "sustainable fashion",
		"description": "Denim reworked into new garments",
		"reformulated_queries": "upcycled denim brands"
	}`
	req, _ := http.NewRequest("POST", "/api/trends", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if store.created != nil {
		t.Error("store must not be touched on a rejected request")
	}
}

func TestCreateTrend_CategoryOptional(t *testing.T) {
	store := &mockTrendStore{}
	router := newTrendsRouter(store)

	body := `{
		"original_query": "q",
		"trend_topic": "t",
		"description": "d",
		"reformulated_queries": "r"
	}`
	req, _ := http.NewRequest("POST", "/api/trends", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if store.created.Category != nil {
		t.Error("omitted category should be stored as null")
	}
}

func TestUpdateTrend(t *testing.T) {
	store := &mockTrendStore{}
	router := newTrendsRouter(store)

	body := `{"trend_topic": "Patchwork Denim"}`
	req, _ := http.NewRequest("PUT", "/api/trends/5", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if store.updatedID != 5 {
		t.Errorf("expected update of trend 5, got %d", store.updatedID)
	}
	if store.lastPartial.TrendTopic == nil || *store.lastPartial.TrendTopic != "Patchwork Denim" {
		t.Error("trend_topic was not passed to the store")
	}
	// Omitted fields must reach the store as nil so they stay untouched
	if store.lastPartial.OriginalQuery != nil {
		t.Error("omitted original_query should be nil in the partial")
	}
}

func TestUpdateTrend_NotFound(t *testing.T) {
	store := &mockTrendStore{updateErr: trends.ErrTrendNotFound}
	router := newTrendsRouter(store)

	body := `{"trend_topic": "anything"}`
	req, _ := http.NewRequest("PUT", "/api/trends/999", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteTrend(t *testing.T) {
	store := &mockTrendStore{}
	router := newTrendsRouter(store)

	req, _ := http.NewRequest("DELETE", "/api/trends/123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if store.deletedID != 123 {
		t.Errorf("expected trend ID 123 to be deleted, got %d", store.deletedID)
	}
}

func TestDeleteTrend_NotFound(t *testing.T) {
	store := &mockTrendStore{deleteErr: trends.ErrTrendNotFound}
	router := newTrendsRouter(store)

	req, _ := http.NewRequest("DELETE", "/api/trends/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestListTrendsUnauthenticated_OmitsTimestamps(t *testing.T) {
	store := &mockTrendStore{
		records: []entities.Trend{
			{
				ID:            1,
				OriginalQuery: "sustainable fashion",
				TrendTopic:    "Upcycled Denim",
				CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	router := newTrendsRouter(store)

	req, _ := http.NewRequest("GET", "/api/test-trends", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(response) != 1 {
		t.Fatalf("expected 1 trend, got %d", len(response))
	}
	if _, present := response[0]["created_at"]; present {
		t.Error("diagnostic response must not carry created_at")
	}
	if _, present := response[0]["updated_at"]; present {
		t.Error("diagnostic response must not carry updated_at")
	}
}
