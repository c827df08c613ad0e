package service

import (
	"love_space/internal/config"
	"love_space/internal/repository"
	"love_space/pkg/logger"
)

type Services struct {
	Room       RoomService
	Membership MembershipService
	Message    MessageService
	Theme      ThemeService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log logger.Logger) *Services {
	return &Services{
		Room:       NewRoomService(repos, cfg, log),
		Membership: NewMembershipService(repos, log),
		Message:    NewMessageService(repos, log),
		Theme:      NewThemeService(repos, log),
	}
}
