package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"love_space/internal/service"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

type ThemeHandler struct {
	themeService service.ThemeService
	log          logger.Logger
}

func NewThemeHandler(themeService service.ThemeService, log logger.Logger) *ThemeHandler {
	return &ThemeHandler{
		themeService: themeService,
		log:          log,
	}
}

type SetThemeRequest struct {
	Theme string `json:"theme"`
}

func (h *ThemeHandler) Set(c *gin.Context) {
	code := c.Param("code")

	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMissingTheme)
		return
	}

	if err := h.themeService.Set(c.Request.Context(), code, req.Theme); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "theme": req.Theme})
}
