package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultOrigins are the local dev hosts for the Expo web client
var DefaultOrigins = []string{
	"http://localhost:8081",
	"http://localhost:19006",
	"http://127.0.0.1:8081",
	"http://127.0.0.1:19006",
}

// CORS allows the given origins, or any origin when the list contains "*".
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = DefaultOrigins
	}

	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
