package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/gdugdh24/mpit2026-discovery/internal/usecase/feed"
)

const defaultFeedLimit = 20

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
	}
}

// DistanceResponse represents distance response
type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
}

// GetRecommendations handles GET /discovery/recommendations
// @Summary Get recommendations
// @Description Rank other users by shared interests
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {array} domain.RecommendationResult
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery/recommendations [get]
func (h *FeedHandler) GetRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultFeedLimit)
	if !ok {
		return
	}

	results, err := h.feedUseCase.Recommendations(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err, "failed to get recommendations")
		return
	}
	if results == nil {
		results = []domain.RecommendationResult{}
	}

	c.JSON(http.StatusOK, results)
}

// GetNewcomers handles GET /discovery/newcomers
// @Summary Get new users
// @Description Users who joined within the last days
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param days query int false "Window in days"
// @Param limit query int false "Max results"
// @Success 200 {array} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery/newcomers [get]
func (h *FeedHandler) GetNewcomers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	days, ok := queryInt(c, "days", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultFeedLimit)
	if !ok {
		return
	}

	profiles, err := h.feedUseCase.Newcomers(c.Request.Context(), userID, days, limit)
	if err != nil {
		writeError(c, err, "failed to get newcomers")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetDistance handles GET /discovery/distance
// @Summary Distance between two points
// @Tags discovery
// @Security BearerAuth
// @Produce json
// @Param lat1 query number true "Origin latitude"
// @Param lon1 query number true "Origin longitude"
// @Param lat2 query number true "Destination latitude"
// @Param lon2 query number true "Destination longitude"
// @Success 200 {object} DistanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /discovery/distance [get]
func (h *FeedHandler) GetDistance(c *gin.Context) {
	var coords [4]float64
	for i, name := range []string{"lat1", "lon1", "lat2", "lon2"} {
		v, err := strconv.ParseFloat(c.Query(name), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
			return
		}
		coords[i] = v
	}

	km, err := h.feedUseCase.Distance(
		&domain.GeoPoint{Latitude: coords[0], Longitude: coords[1]},
		&domain.GeoPoint{Latitude: coords[2], Longitude: coords[3]},
	)
	if err != nil {
		writeError(c, err, "failed to compute distance")
		return
	}

	c.JSON(http.StatusOK, DistanceResponse{DistanceKm: km})
}
