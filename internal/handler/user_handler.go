package handler

import (
	"net/http"

	"companion_rental/internal/middleware"
	"companion_rental/internal/model"
	"companion_rental/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler serves the caller's profile and the admin user removal
type UserHandler struct {
	service service.UserService
	log     zerolog.Logger
}

func NewUserHandler(s service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: s, log: log}
}

func (h *UserHandler) Profile(c *gin.Context, identity model.Identity) {
	user, err := h.service.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, h.log, err, "get profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) EditProfile(c *gin.Context, identity model.Identity) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), identity.UserID, req)
	if err != nil {
		respondError(c, h.log, err, "edit profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

func (h *UserHandler) ProfilePicture(c *gin.Context, identity model.Identity) {
	file, err := c.FormFile("profile_picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile picture file is required: " + err.Error()})
		return
	}

	user, err := h.service.UpdateProfilePicture(c.Request.Context(), identity.UserID, file)
	if err != nil {
		respondError(c, h.log, err, "upload profile picture")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated successfully", "user": user})
}

// DeleteUser is admin only; it removes the user and everything that references them
func (h *UserHandler) DeleteUser(c *gin.Context, identity model.Identity) {
	targetID := c.Param("id")
	if err := h.service.DeleteUser(c.Request.Context(), targetID); err != nil {
		respondError(c, h.log, err, "delete user")
		return
	}
	h.log.Info().Str("admin_id", identity.UserID).Str("deleted_user_id", targetID).Msg("user deleted by admin")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, auth *middleware.Authenticator, admin *middleware.AdminGate) {
	rg.GET("/profile", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Profile)))
	rg.PUT("/edit-profile", auth.Protect(middleware.AuthenticatedHandlerFunc(h.EditProfile)))
	rg.PUT("/profile-picture", auth.Protect(middleware.AuthenticatedHandlerFunc(h.ProfilePicture)))
	rg.DELETE("/admin/user/:id", auth.Protect(admin.RequireAdmin(middleware.AuthenticatedHandlerFunc(h.DeleteUser))))
}
