package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"love_space/pkg/logger"
)

type Repositories struct {
	Room       RoomRepository
	Membership MembershipRepository
	Message    MessageRepository
	StateCache StateCacheRepository
}

func NewRepositories(db *pgxpool.Pool, rdb *redis.Client, log logger.Logger) *Repositories {
	return &Repositories{
		Room:       NewRoomRepository(db, log),
		Membership: NewMembershipRepository(db, log),
		Message:    NewMessageRepository(db, log),
		StateCache: NewStateCacheRepository(rdb, log),
	}
}
