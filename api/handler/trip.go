package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/routescrape/models"
	"github.com/use-agent/routescrape/trip"
)

// tripSummaryResponse is the response for POST /api/v1/trip/summary.
type tripSummaryResponse struct {
	Success     bool                `json:"success"`
	Data        *trip.Trip          `json:"data,omitempty"`
	DistanceKm  float64             `json:"distance_km"`
	DurationMin int                 `json:"duration_min"`
	Summary     string              `json:"summary,omitempty"`
	Error       *models.ErrorDetail `json:"error,omitempty"`
}

// TripSummary returns a handler for POST /api/v1/trip/summary.
//
// Legs are typed with trip.FromRecords; unparsable distance or duration
// labels are reported as INVALID_INPUT.
func TripSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TripSummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, tripSummaryResponse{
				Error: &models.ErrorDetail{Code: models.ErrCodeInvalidInput, Message: err.Error()},
			})
			return
		}
		req.Defaults()

		t, err := trip.FromRecords(req.Name, req.Legs)
		if err != nil {
			c.JSON(http.StatusBadRequest, tripSummaryResponse{
				Error: &models.ErrorDetail{Code: models.ErrCodeInvalidInput, Message: err.Error()},
			})
			return
		}

		c.JSON(http.StatusOK, tripSummaryResponse{
			Success:     true,
			Data:        t,
			DistanceKm:  t.DistanceKm(),
			DurationMin: t.DurationMin(),
			Summary:     t.String(),
		})
	}
}
