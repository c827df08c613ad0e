package handler

import (
	"love_space/internal/config"
	"love_space/internal/service"
	"love_space/pkg/logger"
)

type Handlers struct {
	Health     *HealthHandler
	Room       *RoomHandler
	Membership *MembershipHandler
	Message    *MessageHandler
	Theme      *ThemeHandler
}

func NewHandlers(services *service.Services, cfg *config.Config, log logger.Logger) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(cfg),
		Room:       NewRoomHandler(services.Room, log),
		Membership: NewMembershipHandler(services.Membership, log),
		Message:    NewMessageHandler(services.Message, log),
		Theme:      NewThemeHandler(services.Theme, log),
	}
}
