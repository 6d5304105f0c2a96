package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/routescrape/cache"
	"github.com/use-agent/routescrape/extractor"
	"github.com/use-agent/routescrape/models"
)

// Routing returns a handler for POST /api/v1/routing.
//
// Orchestration flow:
//  1. Parse & validate request.
//  2. Cache lookup by document hash (only when max_age > 0).
//  3. extractor.ExtractHTML → TripRouting   (records extract_ms)
//  4. Cache store, fill Timing, return 200.
func Routing(cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		// ── 1. Parse request ────────────────────────────────────────
		var req models.RoutingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, models.NewScrapeError(models.ErrCodeInvalidInput, err.Error(), err), models.TimingInfo{
				TotalMs: time.Since(totalStart).Milliseconds(),
			})
			return
		}

		// ── 2. Cache lookup ─────────────────────────────────────────
		var cacheKey string
		if cc != nil && req.MaxAge > 0 {
			cacheKey = cache.Key([]byte(req.HTML))
			if cached, hit := cc.Get(cacheKey, req.MaxAge); hit {
				c.JSON(http.StatusOK, models.RoutingResponse{
					Success:     true,
					Data:        cached,
					CacheStatus: "hit",
					Timing: models.TimingInfo{
						TotalMs: time.Since(totalStart).Milliseconds(),
					},
				})
				return
			}
		}

		// ── 3. Extract ──────────────────────────────────────────────
		extractStart := time.Now()
		rec, err := extractor.ExtractHTML(strings.NewReader(req.HTML))
		extractMs := time.Since(extractStart).Milliseconds()

		if err != nil {
			slog.Warn("routing extraction failed", "error", err, "bytes", len(req.HTML))
			respondError(c, err, models.TimingInfo{
				TotalMs:   time.Since(totalStart).Milliseconds(),
				ExtractMs: extractMs,
			})
			return
		}

		// ── 4. Cache store and respond ──────────────────────────────
		resp := models.RoutingResponse{
			Success: true,
			Data:    rec,
		}
		if cacheKey != "" {
			cc.Set(cacheKey, rec)
			resp.CacheStatus = "miss"
		}
		resp.Timing = models.TimingInfo{
			TotalMs:   time.Since(totalStart).Milliseconds(),
			ExtractMs: extractMs,
		}

		c.JSON(http.StatusOK, resp)
	}
}

// respondError maps a ScrapeError to the correct HTTP status code and writes
// a structured JSON error response.
func respondError(c *gin.Context, err error, timing models.TimingInfo) {
	scrapeErr := models.AsScrapeError(err)

	c.JSON(mapErrorToStatus(scrapeErr), models.RoutingResponse{
		Success: false,
		Error:   scrapeErr.ToDetail(),
		Timing:  timing,
	})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.ScrapeError) int {
	switch e.Code {
	case models.ErrCodeElementNotFound, models.ErrCodeAttributeMissing, models.ErrCodeParse:
		return http.StatusUnprocessableEntity // 422
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
