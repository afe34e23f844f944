package handler

import (
	"net/http"

	"companion_rental/internal/middleware"
	"companion_rental/internal/model"
	"companion_rental/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MessageHandler handles direct messages between users
type MessageHandler struct {
	service service.MessageService
	log     zerolog.Logger
}

func NewMessageHandler(s service.MessageService, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{service: s, log: log}
}

func (h *MessageHandler) Send(c *gin.Context, identity model.Identity) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.service.Send(c.Request.Context(), identity.UserID, req)
	if err != nil {
		respondError(c, h.log, err, "send message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// Conversation returns the messages between the caller and the user in :id
func (h *MessageHandler) Conversation(c *gin.Context, identity model.Identity) {
	messages, err := h.service.Conversation(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "load conversation")
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) Delete(c *gin.Context, identity model.Identity) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		respondError(c, h.log, err, "delete message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

func (h *MessageHandler) RegisterMessageRoutes(rg *gin.RouterGroup, auth *middleware.Authenticator) {
	messages := rg.Group("/message")
	{
		messages.POST("", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Send)))
		messages.GET("/:id", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Conversation)))
		messages.DELETE("/:id", auth.Protect(middleware.AuthenticatedHandlerFunc(h.Delete)))
	}
}
