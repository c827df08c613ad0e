package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID        int64     `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageView — каноничная внешняя форма сообщения: id всегда строкой
type MessageView struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
	Color     string    `json:"color"`
}

func (m *Message) View() MessageView {
	return MessageView{
		ID:        strconv.FormatInt(m.ID, 10),
		Text:      m.Text,
		Author:    m.Author,
		Timestamp: m.CreatedAt,
		Color:     m.Color,
	}
}
