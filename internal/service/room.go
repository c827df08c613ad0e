package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"love_space/internal/config"
	"love_space/internal/domain"
	"love_space/internal/metrics"
	"love_space/internal/repository"
	"love_space/pkg/logger"
)

type RoomService interface {
	Create(ctx context.Context, code string) (*domain.RoomState, error)
	GetState(ctx context.Context, code string) (*domain.RoomState, error)
}

type roomService struct {
	roomRepo       repository.RoomRepository
	membershipRepo repository.MembershipRepository
	messageRepo    repository.MessageRepository
	stateCache     repository.StateCacheRepository
	cfg            *config.Config
	log            logger.Logger
}

func NewRoomService(repos *repository.Repositories, cfg *config.Config, log logger.Logger) RoomService {
	return &roomService{
		roomRepo:       repos.Room,
		membershipRepo: repos.Membership,
		messageRepo:    repos.Message,
		stateCache:     repos.StateCache,
		cfg:            cfg,
		log:            log,
	}
}

func (s *roomService) Create(ctx context.Context, code string) (*domain.RoomState, error) {
	room := &domain.Room{
		ID:        uuid.New(),
		Code:      code,
		Theme:     s.cfg.Room.DefaultTheme,
		CreatedAt: time.Now(),
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	metrics.RoomsCreated.Inc()
	s.log.Info("Room created", "code", code, "room_id", room.ID)

	return &domain.RoomState{
		Room:     *room,
		Users:    []string{},
		Messages: []domain.MessageView{},
	}, nil
}

// GetState отдает полный снимок комнаты: метаданные, участники, все
// сообщения по порядку. Снимок сначала ищется в Redis, при промахе
// собирается из Postgres и кладется в кеш с коротким TTL.
func (s *roomService) GetState(ctx context.Context, code string) (*domain.RoomState, error) {
	if state, err := s.stateCache.Get(ctx, code); err == nil {
		metrics.StateCacheHits.Inc()
		return state, nil
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		s.log.Warn("State cache read failed, falling back to database", "error", err, "code", code)
	}
	metrics.StateCacheMisses.Inc()

	room, err := s.roomRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	usernames, err := s.membershipRepo.GetUsernames(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if usernames == nil {
		usernames = []string{}
	}

	messages, err := s.messageRepo.GetByRoom(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, m.View())
	}

	state := &domain.RoomState{
		Room:     *room,
		Users:    usernames,
		Messages: views,
	}

	if err := s.stateCache.Set(ctx, code, state, s.cfg.Room.CacheTTL); err != nil {
		// Кеш необязателен, снимок уже собран
		s.log.Warn("Failed to cache room state", "error", err, "code", code)
	}

	return state, nil
}
