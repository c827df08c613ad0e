package service

import (
	"context"
	"strings"

	"love_space/internal/metrics"
	"love_space/internal/repository"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

type ThemeService interface {
	Set(ctx context.Context, code, theme string) error
}

type themeService struct {
	roomRepo   repository.RoomRepository
	stateCache repository.StateCacheRepository
	log        logger.Logger
}

func NewThemeService(repos *repository.Repositories, log logger.Logger) ThemeService {
	return &themeService{
		roomRepo:   repos.Room,
		stateCache: repos.StateCache,
		log:        log,
	}
}

// Set безусловно перезаписывает тему комнаты: последний вызов выигрывает,
// optimistic-concurrency проверки нет.
func (s *themeService) Set(ctx context.Context, code, theme string) error {
	if strings.TrimSpace(theme) == "" {
		return apperrors.ErrMissingTheme
	}

	if err := s.roomRepo.UpdateThemeByCode(ctx, code, theme); err != nil {
		return err
	}

	if err := s.stateCache.Invalidate(ctx, code); err != nil {
		s.log.Warn("Failed to invalidate room state after theme change", "error", err, "code", code)
	}

	metrics.ThemeChanges.Inc()
	s.log.Info("Room theme changed", "code", code, "theme", theme)

	return nil
}
