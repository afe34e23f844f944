package handler

import (
	"net/http"

	"companion_rental/internal/middleware"
	"companion_rental/internal/model"
	"companion_rental/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PackageHandler handles companion package requests
type PackageHandler struct {
	service service.PackageService
	log     zerolog.Logger
}

func NewPackageHandler(s service.PackageService, log zerolog.Logger) *PackageHandler {
	return &PackageHandler{service: s, log: log}
}

func (h *PackageHandler) Create(c *gin.Context, identity model.Identity) {
	var req model.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pkg, err := h.service.Create(c.Request.Context(), identity.UserID, req)
	if err != nil {
		respondError(c, h.log, err, "create package")
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) List(c *gin.Context) {
	packages, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "list packages")
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) Get(c *gin.Context) {
	pkg, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "get package")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) ListByUsername(c *gin.Context) {
	packages, err := h.service.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.log, err, "list packages of user")
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) Update(c *gin.Context, identity model.Identity) {
	var req model.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pkg, err := h.service.Update(c.Request.Context(), c.Param("id"), identity.UserID, req)
	if err != nil {
		respondError(c, h.log, err, "update package")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) Delete(c *gin.Context, identity model.Identity) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		respondError(c, h.log, err, "delete package")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}

func (h *PackageHandler) DeleteAdmin(c *gin.Context, _ model.Identity) {
	if err := h.service.DeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err, "admin delete package")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}

func (h *PackageHandler) RegisterPackageRoutes(rg *gin.RouterGroup, auth *middleware.Authenticator, admin *middleware.AdminGate) {
	packages := rg.Group("/user_package")
	{
		packages.GET("", h.List)
		packages.GET("/:id", h.Get)
		packages.POST("", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Create)))
		packages.PUT("/:id", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Update)))
		packages.DELETE("/:id", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Delete)))
	}
	rg.GET("/users/:username/user_package", h.ListByUsername)
	rg.DELETE("/admin/user_package/:id", auth.Protect(admin.RequireAdmin(middleware.AuthenticatedHandlerFunc(h.DeleteAdmin))))
}
