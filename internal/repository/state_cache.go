package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"love_space/internal/domain"
	"love_space/pkg/logger"
)

// Префикс ключей Redis
const roomStateKeyPrefix = "room:%s:state"

// StateCacheRepository хранит короткоживущий JSON-снимок состояния комнаты.
// Снимает нагрузку с Postgres при опросе каждые 3 секунды двумя клиентами;
// любая запись в комнату сбрасывает ключ.
type StateCacheRepository interface {
	Get(ctx context.Context, code string) (*domain.RoomState, error)
	Set(ctx context.Context, code string, state *domain.RoomState, ttl time.Duration) error
	Invalidate(ctx context.Context, code string) error
}

// ErrCacheMiss возвращается, когда снимка комнаты нет в Redis
var ErrCacheMiss = errors.New("state cache miss")

type stateCacheRepository struct {
	rdb *redis.Client
	log logger.Logger
}

func NewStateCacheRepository(rdb *redis.Client, log logger.Logger) StateCacheRepository {
	return &stateCacheRepository{rdb: rdb, log: log}
}

func (r *stateCacheRepository) key(code string) string {
	return fmt.Sprintf(roomStateKeyPrefix, code)
}

func (r *stateCacheRepository) Get(ctx context.Context, code string) (*domain.RoomState, error) {
	data, err := r.rdb.Get(ctx, r.key(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		r.log.Error("Failed to read room state from Redis", "error", err, "code", code)
		return nil, err
	}

	state := &domain.RoomState{}
	if err := json.Unmarshal(data, state); err != nil {
		r.log.Error("Failed to unmarshal cached room state", "error", err, "code", code)
		return nil, err
	}

	return state, nil
}

func (r *stateCacheRepository) Set(ctx context.Context, code string, state *domain.RoomState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		r.log.Error("Failed to marshal room state", "error", err, "code", code)
		return fmt.Errorf("failed to marshal room state: %w", err)
	}

	if err := r.rdb.Set(ctx, r.key(code), data, ttl).Err(); err != nil {
		r.log.Error("Failed to cache room state", "error", err, "code", code)
		return err
	}

	return nil
}

func (r *stateCacheRepository) Invalidate(ctx context.Context, code string) error {
	if err := r.rdb.Del(ctx, r.key(code)).Err(); err != nil {
		r.log.Error("Failed to invalidate room state", "error", err, "code", code)
		return err
	}
	return nil
}
