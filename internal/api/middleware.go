package api

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"saiyan/training-app/internal/metrics"
	"saiyan/training-app/internal/service"
	"saiyan/training-app/internal/session"
)

// RequestLogger logs every request at debug level, failures at warn.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(begin),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request")
	}
}

// RequestMetrics counts requests by method and status and observes their duration.
func RequestMetrics(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func(begin time.Time) {
			metricsManager.HistRequestDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())

		c.Next()

		metricsManager.CounterRequests.WithLabelValues(
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

func PanicRecovery(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("http: panic serving %s: %v\n%s", c.Request.URL.Path, r, debug.Stack())
				metricsManager.CounterHandlerPanic.Inc()
				abortWithError(c, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		c.Next()
	}
}

// Helper function for consistent error responses
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps service and session errors to HTTP status codes.
func abortWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrNoActiveSession),
		errors.Is(err, service.ErrMealPlanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionInProgress),
		errors.Is(err, session.ErrInvalidState):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, session.ErrInvalidWorkout):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.Errorf("%s: %s", fallback, err)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
