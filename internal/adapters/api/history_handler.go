package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/pkg/errors"
)

// HistoryQuery binds the query string of GET /api/history
type HistoryQuery struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// HistoryEntryResponse is one finished search
type HistoryEntryResponse struct {
	ID             uint      `json:"id"`
	SessionID      string    `json:"session_id"`
	Query          string    `json:"query"`
	Status         string    `json:"status"`
	ErrorKind      string    `json:"error_kind,omitempty"`
	ForecastStatus string    `json:"forecast_status"`
	ForecastDays   int       `json:"forecast_days"`
	DurationMs     int64     `json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// getHistory handles GET /api/history requests
func (s *HTTPServerAdapter) getHistory(c *gin.Context) {
	if s.history == nil {
		s.handleError(c, errors.NewNotFoundError("search history is disabled"))
		return
	}

	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("limit must be between 1 and 100"))
		return
	}

	records, err := s.history.Recent(c.Request.Context(), query.Limit)
	if err != nil {
		s.handleError(c, err)
		return
	}

	entries := make([]HistoryEntryResponse, 0, len(records))
	for _, r := range records {
		entries = append(entries, HistoryEntryResponse{
			ID:             r.ID,
			SessionID:      r.SessionID,
			Query:          r.Query,
			Status:         r.Status,
			ErrorKind:      r.ErrorKind,
			ForecastStatus: r.ForecastStatus,
			ForecastDays:   r.ForecastDays,
			DurationMs:     r.DurationMs,
			CreatedAt:      r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, entries)
}
