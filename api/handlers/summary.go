package handlers

import (
	"context"
	"errors"
	"net/http"

	"leaguestats/api/dto"
	"leaguestats/api/filters"
	"leaguestats/fetcher/requests"
	"leaguestats/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Shared caches may keep a summary for this long.
const summaryCacheControl = "s-maxage=60"

// SummaryService is what the handler needs from the summary service.
type SummaryService interface {
	GetPlayerSummary(ctx context.Context, filter *filters.PlayerSummaryFilter) (*dto.PlayerSummary, error)
}

// SummaryHandler is the handler for the player summary endpoint.
type SummaryHandler struct {
	summaryService SummaryService
	logger         *logger.NewLogger
}

type SummaryHandlerDependencies struct {
	SummaryService SummaryService
	Logger         *logger.NewLogger
}

// NewSummaryHandler creates a new instance of the summary handler.
func NewSummaryHandler(deps *SummaryHandlerDependencies) *SummaryHandler {
	h := &SummaryHandler{
		summaryService: deps.SummaryService,
		logger:         deps.Logger,
	}
	if h.logger == nil {
		h.logger = logger.Discard()
	}
	return h
}

// GetPlayerSummary handles requests for a player summary.
func (h *SummaryHandler) GetPlayerSummary(c *gin.Context) {
	var qp filters.PlayerSummaryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewPlayerSummaryFilter(&qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.summaryService.GetPlayerSummary(c.Request.Context(), filter)
	if err != nil {
		status := StatusFromError(err)
		if status >= http.StatusInternalServerError {
			h.logger.With("request_id", c.GetString(RequestIdKey)).Errorf("Couldn't build the summary of %s: %v", qp.RiotId, err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.Header("Cache-Control", summaryCacheControl)
	c.JSON(http.StatusOK, summary)
}

// StatusFromError maps a service error to the HTTP status.
func StatusFromError(err error) int {
	var rateLimited *requests.RateLimitExhaustedError
	var timeout *requests.TimeoutError

	switch {
	case errors.Is(err, filters.ErrInvalidRequest):
		return http.StatusBadRequest
	case requests.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &rateLimited), errors.As(err, &timeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
