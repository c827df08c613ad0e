package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"love_space/internal/service"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

type RoomHandler struct {
	roomService service.RoomService
	log         logger.Logger
}

func NewRoomHandler(roomService service.RoomService, log logger.Logger) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		log:         log,
	}
}

// Get отдает полный снимок комнаты по коду
func (h *RoomHandler) Get(c *gin.Context) {
	code := c.Param("code")

	state, err := h.roomService.GetState(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *RoomHandler) Create(c *gin.Context) {
	code := c.Param("code")

	state, err := h.roomService.Create(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, state)
}

// respondError переводит ошибку сервиса в HTTP-ответ; неожиданные ошибки
// не протекают наружу текстом
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatusFromError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": apperrors.ErrInternalServer.Error()})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
