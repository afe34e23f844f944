package handler

import (
	"net/http"

	"companion_rental/internal/middleware"
	"companion_rental/internal/model"
	"companion_rental/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	log     zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err, "register")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	_, token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.log, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *AuthHandler) Protected(c *gin.Context, identity model.Identity) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, " + identity.Username + "!"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context, identity model.Identity) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), identity, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, h.log, err, "change password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, auth *middleware.Authenticator) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/protected", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Protected)))
	rg.PUT("/change-password", auth.Protect(middleware.AuthenticatedHandlerFunc(h.ChangePassword)))
}
