package handler

import (
	"net/http"

	"companion_rental/internal/middleware"
	"companion_rental/internal/model"
	"companion_rental/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// OrderHandler handles package order requests. Every route requires a token.
type OrderHandler struct {
	service service.OrderService
	log     zerolog.Logger
}

func NewOrderHandler(s service.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{service: s, log: log}
}

func (h *OrderHandler) Create(c *gin.Context, identity model.Identity) {
	var req model.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.service.Create(c.Request.Context(), identity.UserID, req)
	if err != nil {
		respondError(c, h.log, err, "create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c *gin.Context, identity model.Identity) {
	orders, err := h.service.List(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, h.log, err, "list orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context, identity model.Identity) {
	order, err := h.service.Get(c.Request.Context(), c.Param("id"), identity.UserID)
	if err != nil {
		respondError(c, h.log, err, "get order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListForPackage(c *gin.Context, identity model.Identity) {
	orders, err := h.service.ListForPackage(c.Request.Context(), c.Param("id"), identity.UserID)
	if err != nil {
		respondError(c, h.log, err, "list orders of package")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListMine(c *gin.Context, identity model.Identity) {
	orders, err := h.service.ListForBuyer(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, h.log, err, "list own orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Update(c *gin.Context, identity model.Identity) {
	var req model.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.service.Update(c.Request.Context(), c.Param("id"), identity.UserID, req)
	if err != nil {
		respondError(c, h.log, err, "update order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context, identity model.Identity) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		respondError(c, h.log, err, "delete order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func (h *OrderHandler) DeleteAdmin(c *gin.Context, _ model.Identity) {
	if err := h.service.DeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err, "admin delete order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, auth *middleware.Authenticator, admin *middleware.AdminGate) {
	protect := func(f middleware.AuthenticatedHandlerFunc) gin.HandlerFunc { return auth.Protect(f) }

	orders := rg.Group("/order")
	{
		orders.POST("", protect(h.Create))
		orders.GET("", protect(h.List))
		orders.GET("/:id", protect(h.Get))
		orders.PUT("/:id", protect(h.Update))
		orders.DELETE("/:id", protect(h.Delete))
	}
	rg.GET("/package/order/:id", protect(h.ListForPackage))
	rg.GET("/user/order", protect(h.ListMine))
	rg.DELETE("/admin/order/:id", auth.Protect(admin.RequireAdmin(middleware.AuthenticatedHandlerFunc(h.DeleteAdmin))))
}
