package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yishak-cs/campus-meals/internal/auth"
	"github.com/yishak-cs/campus-meals/internal/logger"
	"github.com/yishak-cs/campus-meals/internal/middleware"
)

// AuthHandler exposes the identity provider over HTTP
type AuthHandler struct {
	provider auth.Provider
	log      *logger.Logger
}

func NewAuthHandler(provider auth.Provider, log *logger.Logger) *AuthHandler {
	return &AuthHandler{provider: provider, log: log.With("handler", "AuthHandler")}
}

type credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SetupRoutes(router *gin.Engine) {
	group := router.Group("/auth")
	{
		group.POST("/signup", h.SignUp)
		group.POST("/signin", h.SignIn)
		group.POST("/signout", h.SignOut)
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	session, err := h.provider.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountExists):
			c.JSON(http.StatusConflict, gin.H{"error": "An account with that email already exists"})
		case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error("Sign up failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	session, err := h.provider.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.log.Error("Sign in failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
		return
	}

	if err := h.provider.SignOut(c.Request.Context(), token); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		h.log.Error("Sign out failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	c.Status(http.StatusNoContent)
}
