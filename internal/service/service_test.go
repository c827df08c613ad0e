package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"love_space/internal/config"
	"love_space/internal/domain"
	"love_space/internal/repository"
	apperrors "love_space/pkg/errors"
	"love_space/pkg/logger"
)

// In-memory реализации репозиториев для тестов сервисного слоя

type fakeRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]*domain.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*domain.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *domain.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rooms[room.Code]; ok {
		return apperrors.ErrRoomExists
	}
	copied := *room
	f.rooms[room.Code] = &copied
	return nil
}

func (f *fakeRoomRepo) GetByCode(_ context.Context, code string) (*domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[code]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) UpdateThemeByCode(_ context.Context, code, theme string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[code]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	room.Theme = theme
	return nil
}

type membershipKey struct {
	roomID   uuid.UUID
	username string
}

type fakeMembershipRepo struct {
	mu      sync.Mutex
	members map[membershipKey]time.Time
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{members: make(map[membershipKey]time.Time)}
}

func (f *fakeMembershipRepo) Upsert(_ context.Context, roomID uuid.UUID, username string, joinedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.members[membershipKey{roomID, username}] = joinedAt
	return nil
}

func (f *fakeMembershipRepo) GetUsernames(_ context.Context, roomID uuid.UUID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var usernames []string
	for k := range f.members {
		if k.roomID == roomID {
			usernames = append(usernames, k.username)
		}
	}
	return usernames, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	nextID   int64
	messages []*domain.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (f *fakeMessageRepo) Create(_ context.Context, message *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	message.ID = f.nextID
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	copied := *message
	f.messages = append(f.messages, &copied)
	return nil
}

func (f *fakeMessageRepo) GetByRoom(_ context.Context, roomID uuid.UUID) ([]*domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Message
	for _, m := range f.messages {
		if m.RoomID == roomID {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeStateCache struct {
	mu     sync.Mutex
	states map[string]*domain.RoomState
}

func newFakeStateCache() *fakeStateCache {
	return &fakeStateCache{states: make(map[string]*domain.RoomState)}
}

func (f *fakeStateCache) Get(_ context.Context, code string) (*domain.RoomState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.states[code]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return state, nil
}

func (f *fakeStateCache) Set(_ context.Context, code string, state *domain.RoomState, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[code] = state
	return nil
}

func (f *fakeStateCache) Invalidate(_ context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.states, code)
	return nil
}

func (f *fakeStateCache) has(code string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.states[code]
	return ok
}

type testEnv struct {
	repos      *repository.Repositories
	roomRepo   *fakeRoomRepo
	memberRepo *fakeMembershipRepo
	msgRepo    *fakeMessageRepo
	cache      *fakeStateCache
	services   *Services
}

func newTestEnv() *testEnv {
	roomRepo := newFakeRoomRepo()
	memberRepo := newFakeMembershipRepo()
	msgRepo := newFakeMessageRepo()
	cache := newFakeStateCache()

	repos := &repository.Repositories{
		Room:       roomRepo,
		Membership: memberRepo,
		Message:    msgRepo,
		StateCache: cache,
	}

	cfg := &config.Config{}
	cfg.Room.DefaultTheme = domain.DefaultTheme
	cfg.Room.CacheTTL = 2 * time.Second

	services := NewServices(repos, cfg, logger.New("error"))

	return &testEnv{
		repos:      repos,
		roomRepo:   roomRepo,
		memberRepo: memberRepo,
		msgRepo:    msgRepo,
		cache:      cache,
		services:   services,
	}
}
