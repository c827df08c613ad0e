package service

import (
	"context"
	"strings"
	"time"

	"love_space/internal/metrics"
	"love_space/internal/repository"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

type MembershipService interface {
	Join(ctx context.Context, code, username string) error
}

type membershipService struct {
	membershipRepo repository.MembershipRepository
	roomRepo       repository.RoomRepository
	stateCache     repository.StateCacheRepository
	log            logger.Logger
}

func NewMembershipService(repos *repository.Repositories, log logger.Logger) MembershipService {
	return &membershipService{
		membershipRepo: repos.Membership,
		roomRepo:       repos.Room,
		stateCache:     repos.StateCache,
		log:            log,
	}
}

// Join идемпотентен: повторный вызов для той же пары (комната, имя)
// только передвигает joined_at.
func (s *membershipService) Join(ctx context.Context, code, username string) error {
	if strings.TrimSpace(username) == "" {
		return apperrors.ErrMissingUsername
	}

	room, err := s.roomRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	if err := s.membershipRepo.Upsert(ctx, room.ID, username, time.Now()); err != nil {
		return err
	}

	if err := s.stateCache.Invalidate(ctx, code); err != nil {
		s.log.Warn("Failed to invalidate room state after join", "error", err, "code", code)
	}

	metrics.RoomJoins.Inc()
	s.log.Info("User joined room", "code", code, "username", username)

	return nil
}
