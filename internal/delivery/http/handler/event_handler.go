package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/gdugdh24/mpit2026-discovery/internal/usecase/event"
)

type EventHandler struct {
	eventUseCase *event.EventUseCase
}

func NewEventHandler(eventUseCase *event.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

// ClassifyResponse represents classification response
type ClassifyResponse struct {
	Category domain.Category `json:"category"`
}

// CreateEvent handles POST /events
// @Summary Create event
// @Description Create an event; its category is assigned automatically
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body event.CreateEventRequest true "Event data"
// @Success 201 {object} domain.ScheduledEvent
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.eventUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "failed to create event")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetUpcoming handles GET /events/upcoming
// @Summary Upcoming events
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {array} domain.ScheduledEvent
// @Failure 400 {object} ErrorResponse
// @Router /events/upcoming [get]
func (h *EventHandler) GetUpcoming(c *gin.Context) {
	limit, ok := queryInt(c, "limit", defaultFeedLimit)
	if !ok {
		return
	}

	events, err := h.eventUseCase.Upcoming(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err, "failed to get events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetNewcomers handles GET /events/newcomers
// @Summary Recently created events
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param days query int false "Window in days"
// @Param limit query int false "Max results"
// @Success 200 {array} domain.ScheduledEvent
// @Failure 400 {object} ErrorResponse
// @Router /events/newcomers [get]
func (h *EventHandler) GetNewcomers(c *gin.Context) {
	days, ok := queryInt(c, "days", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultFeedLimit)
	if !ok {
		return
	}

	events, err := h.eventUseCase.Newcomers(c.Request.Context(), days, limit)
	if err != nil {
		writeError(c, err, "failed to get events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// Recategorize handles POST /events/:id/categorize
// @Summary Retry classification
// @Description Re-run classification for an uncategorized event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.ScheduledEvent
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id}/categorize [post]
func (h *EventHandler) Recategorize(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid event id"})
		return
	}

	updated, err := h.eventUseCase.Recategorize(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to categorize event")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Classify handles POST /events/classify
// @Summary Classify without saving
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body event.ClassifyRequest true "Event text"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /events/classify [post]
func (h *EventHandler) Classify(c *gin.Context) {
	var req event.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	category := h.eventUseCase.Classify(c.Request.Context(), &req)
	c.JSON(http.StatusOK, ClassifyResponse{Category: category})
}
