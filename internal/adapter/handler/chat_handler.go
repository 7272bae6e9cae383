package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/service"
)

type ChatHandler struct {
	svc    *service.AssistantService
	logger *zap.Logger
}

func NewChatHandler(svc *service.AssistantService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, logger: logger}
}

type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []domain.ChatMessage `json:"history"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("chat message received",
		zap.Int("history_len", len(req.History)),
		zap.String("ip", c.ClientIP()),
	)

	reply := h.svc.Reply(c.Request.Context(), req.Message, req.History)
	c.JSON(http.StatusOK, reply)
}
