package domain

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomUser struct {
	RoomID   uuid.UUID `json:"room_id"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joined_at"`
}

// RoomState — полный снимок комнаты в том виде, в котором он отдается клиенту.
// Клиент целиком подставляет снимок вместо локального состояния при каждом опросе.
type RoomState struct {
	Room     Room          `json:"room"`
	Users    []string      `json:"users"`
	Messages []MessageView `json:"messages"`
}
