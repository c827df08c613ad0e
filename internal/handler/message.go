package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"love_space/internal/service"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

type MessageHandler struct {
	messageService service.MessageService
	log            logger.Logger
}

func NewMessageHandler(messageService service.MessageService, log logger.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		log:            log,
	}
}

type PostMessageRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Color  string `json:"color,omitempty"`
}

func (h *MessageHandler) Post(c *gin.Context) {
	code := c.Param("code")

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMissingMessage)
		return
	}

	message, err := h.messageService.Post(c.Request.Context(), code, req.Text, req.Author, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}
