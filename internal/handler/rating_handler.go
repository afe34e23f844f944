package handler

import (
	"net/http"

	"companion_rental/internal/middleware"
	"companion_rental/internal/model"
	"companion_rental/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RatingHandler handles companion rating requests
type RatingHandler struct {
	service service.RatingService
	log     zerolog.Logger
}

func NewRatingHandler(s service.RatingService, log zerolog.Logger) *RatingHandler {
	return &RatingHandler{service: s, log: log}
}

func (h *RatingHandler) Create(c *gin.Context, identity model.Identity) {
	var req model.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rating, err := h.service.Create(c.Request.Context(), identity.UserID, req)
	if err != nil {
		respondError(c, h.log, err, "create rating")
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "list ratings")
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// ListForCompanion lists the ratings received by the companion in :id
func (h *RatingHandler) ListForCompanion(c *gin.Context) {
	ratings, err := h.service.ListForCompanion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "list ratings of companion")
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (h *RatingHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "sum ratings")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *RatingHandler) Update(c *gin.Context, identity model.Identity) {
	var req model.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rating, err := h.service.Update(c.Request.Context(), c.Param("id"), identity.UserID, req)
	if err != nil {
		respondError(c, h.log, err, "update rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) Delete(c *gin.Context, identity model.Identity) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		respondError(c, h.log, err, "delete rating")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

func (h *RatingHandler) DeleteAdmin(c *gin.Context, _ model.Identity) {
	if err := h.service.DeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err, "admin delete rating")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

func (h *RatingHandler) RegisterRatingRoutes(rg *gin.RouterGroup, auth *middleware.Authenticator, admin *middleware.AdminGate) {
	ratings := rg.Group("/rating")
	{
		ratings.GET("", h.List)
		ratings.GET("/:id", h.ListForCompanion)
		ratings.POST("", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Create)))
		ratings.PUT("/:id", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Update)))
		ratings.DELETE("/:id", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Delete)))
	}
	rg.GET("/sum-rating/:id", h.Summary)
	rg.DELETE("/admin/rating/:id", auth.Protect(admin.RequireAdmin(middleware.AuthenticatedHandlerFunc(h.DeleteAdmin))))
}
