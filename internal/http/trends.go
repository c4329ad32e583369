package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lonamusi/trending-collections/internal/database/trends"
	"github.com/lonamusi/trending-collections/internal/entities"
)

// TrendStore defines database operations for trend records.
type TrendStore interface {
	Create(trend *entities.Trend) error
	GetByID(id uint) (*entities.Trend, error)
	GetAll() ([]entities.Trend, error)
	Update(id uint, partial trends.Partial) (*entities.Trend, error)
	Delete(id uint) error
}

type TrendsController struct {
	store TrendStore
}

func NewTrendsController(store TrendStore) *TrendsController {
	return &TrendsController{store: store}
}

// trendResponse is the wire shape of a trend record. Timestamps are
// RFC 3339 strings or null.
type trendResponse struct {
	ID                  uint    `json:"id"`
	OriginalQuery       string  `json:"original_query"`
	TrendTopic          string  `json:"trend_topic"`
	Description         string  `json:"description"`
	ReformulatedQueries string  `json:"reformulated_queries"`
	Category            *string `json:"category"`
	CreatedAt           *string `json:"created_at"`
	UpdatedAt           *string `json:"updated_at"`
}

// diagnosticTrendResponse is the reduced shape served by the
// unauthenticated diagnostic endpoint: no timestamps.
type diagnosticTrendResponse struct {
	ID                  uint    `json:"id"`
	OriginalQuery       string  `json:"original_query"`
	TrendTopic          string  `json:"trend_topic"`
	Description         string  `json:"description"`
	ReformulatedQueries string  `json:"reformulated_queries"`
	Category            *string `json:"category"`
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func newTrendResponse(t entities.Trend) trendResponse {
	return trendResponse{
		ID:                  t.ID,
		OriginalQuery:       t.OriginalQuery,
		TrendTopic:          t.TrendTopic,
		Description:         t.Description,
		ReformulatedQueries: t.ReformulatedQueries,
		Category:            t.Category,
		CreatedAt:           formatTime(t.CreatedAt),
		UpdatedAt:           formatTime(t.UpdatedAt),
	}
}

type createTrendRequest struct {
	OriginalQuery       string  `json:"original_query" binding:"required"`
	TrendTopic          string  `json:"trend_topic" binding:"required"`
	Description         string  `json:"description" binding:"required"`
	ReformulatedQueries string  `json:"reformulated_queries" binding:"required"`
	Category            *string `json:"category"`
}

type updateTrendRequest struct {
	OriginalQuery       *string `json:"original_query"`
	TrendTopic          *string `json:"trend_topic"`
	Description         *string `json:"description"`
	ReformulatedQueries *string `json:"reformulated_queries"`
	Category            *string `json:"category"`
}

// ListTrends returns all trend records.
// GET /api/trends
func (tc *TrendsController) ListTrends(c *gin.Context) {
	all, err := tc.store.GetAll()
	if err != nil {
		respondInternalError(c, err, "list trends")
		return
	}

	response := make([]trendResponse, 0, len(all))
	for _, t := range all {
		response = append(response, newTrendResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

// GetTrend returns a single trend by ID.
// GET /api/trends/:id
func (tc *TrendsController) GetTrend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	trend, err := tc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, trends.ErrTrendNotFound) {
			respondNotFound(c, "Trend")
			return
		}
		respondInternalError(c, err, "get trend")
		return
	}

	c.JSON(http.StatusOK, newTrendResponse(*trend))
}

// CreateTrend inserts a new trend record.
// POST /api/trends
func (tc *TrendsController) CreateTrend(c *gin.Context) {
	var req createTrendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "missing required field")
		return
	}

	trend := &entities.Trend{
		OriginalQuery:       req.OriginalQuery,
		TrendTopic:          req.TrendTopic,
		Description:         req.Description,
		ReformulatedQueries: req.ReformulatedQueries,
		Category:            req.Category,
	}

	if err := tc.store.Create(trend); err != nil {
		respondInternalError(c, err, "create trend")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trend created successfully",
		"id":      trend.ID,
	})
}

// UpdateTrend applies a partial update to an existing trend.
// PUT /api/trends/:id
func (tc *TrendsController) UpdateTrend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateTrendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	_, err := tc.store.Update(id, trends.Partial{
		OriginalQuery:       req.OriginalQuery,
		TrendTopic:          req.TrendTopic,
		Description:         req.Description,
		ReformulatedQueries: req.ReformulatedQueries,
		Category:            req.Category,
	})
	if err != nil {
		if errors.Is(err, trends.ErrTrendNotFound) {
			respondNotFound(c, "Trend")
			return
		}
		respondInternalError(c, err, "update trend")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trend updated successfully"})
}

// DeleteTrend removes a trend. Routed behind RequireAdmin.
// DELETE /api/trends/:id
func (tc *TrendsController) DeleteTrend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.store.Delete(id); err != nil {
		if errors.Is(err, trends.ErrTrendNotFound) {
			respondNotFound(c, "Trend")
			return
		}
		respondInternalError(c, err, "delete trend")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trend deleted successfully"})
}

// ListTrendsUnauthenticated serves the diagnostic read used to check
// connectivity without credentials.
// GET /api/test-trends
func (tc *TrendsController) ListTrendsUnauthenticated(c *gin.Context) {
	all, err := tc.store.GetAll()
	if err != nil {
		respondInternalError(c, err, "list trends (diagnostic)")
		return
	}

	response := make([]diagnosticTrendResponse, 0, len(all))
	for _, t := range all {
		response = append(response, diagnosticTrendResponse{
			ID:                  t.ID,
			OriginalQuery:       t.OriginalQuery,
			TrendTopic:          t.TrendTopic,
			Description:         t.Description,
			ReformulatedQueries: t.ReformulatedQueries,
			Category:            t.Category,
		})
	}
	c.JSON(http.StatusOK, response)
}
