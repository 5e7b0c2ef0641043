package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yishak-cs/campus-meals/internal/services"
)

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Health reports catalog state and user store reachability. A store outage
// degrades the response but the planner itself keeps serving.
func Health(recs *services.RecommendationService, users HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"status":  "ok",
			"catalog": recs.Snapshot().Info(),
		}

		if users != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := users.Health(ctx); err != nil {
				resp["status"] = "degraded"
				resp["user_store"] = err.Error()
			} else {
				resp["user_store"] = "ok"
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}
