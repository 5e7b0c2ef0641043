package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yishak-cs/campus-meals/internal/auth"
	"github.com/yishak-cs/campus-meals/internal/logger"
	"github.com/yishak-cs/campus-meals/internal/middleware"
	"github.com/yishak-cs/campus-meals/internal/services"
)

// RouterConfig collects everything the HTTP surface is built from
type RouterConfig struct {
	Recommendations *services.RecommendationService
	Auth            *auth.Service
	Log             *logger.Logger
	CORSOrigins     []string
	AuthRequired    bool
}

// NewRouter wires middleware, the auth endpoints and the /api group
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(cfg.Log), middleware.CORS(cfg.CORSOrigins))

	var users HealthChecker
	if cfg.Auth != nil {
		users = cfg.Auth
		NewAuthHandler(cfg.Auth, cfg.Log).SetupRoutes(router)
	}
	router.GET("/health", Health(cfg.Recommendations, users))

	var gate []gin.HandlerFunc
	if cfg.AuthRequired && cfg.Auth != nil {
		gate = append(gate, middleware.RequireSession(cfg.Auth))
	}
	NewAPIHandler(cfg.Recommendations, cfg.Log).SetupRoutes(router, gate...)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
