package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/pkg/errors"
)

// SearchRequest represents the HTTP request for a city search
type SearchRequest struct {
	City string `json:"city" form:"city" binding:"city"`
}

// SessionResponse is returned when a session is opened
type SessionResponse struct {
	SessionID string        `json:"session_id"`
	State     StateResponse `json:"state"`
}

// openSession handles POST /api/sessions requests
func (s *HTTPServerAdapter) openSession(c *gin.Context) {
	result, err := s.searchUseCase.OpenSession(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("Session opened", "session_id", result.SessionID)
	c.JSON(http.StatusCreated, SessionResponse{
		SessionID: result.SessionID,
		State:     s.presenter.State(result),
	})
}

// getSessionState handles GET /api/sessions/:id requests
func (s *HTTPServerAdapter) getSessionState(c *gin.Context) {
	sessionID := c.Param("id")

	result, err := s.searchUseCase.State(c.Request.Context(), sessionID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.presenter.State(result))
}

// searchCity handles POST /api/sessions/:id/search requests
func (s *HTTPServerAdapter) searchCity(c *gin.Context) {
	sessionID := c.Param("id")

	var httpReq SearchRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		slog.Debug("Request binding error", "error", err, "session_id", sessionID)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	result, err := s.searchUseCase.Search(c.Request.Context(), sessionID, httpReq.City)
	if err != nil {
		slog.Debug("Search error", "error", err, "session_id", sessionID, "city", httpReq.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.presenter.State(result))
}
