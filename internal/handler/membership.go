package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"love_space/internal/service"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

type MembershipHandler struct {
	membershipService service.MembershipService
	log               logger.Logger
}

func NewMembershipHandler(membershipService service.MembershipService, log logger.Logger) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		log:               log,
	}
}

type JoinRoomRequest struct {
	Username string `json:"username"`
}

func (h *MembershipHandler) Join(c *gin.Context) {
	code := c.Param("code")

	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMissingUsername)
		return
	}

	if err := h.membershipService.Join(c.Request.Context(), code, req.Username); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
