package domain

import (
	"crypto/rand"
	"math/big"
)

const (
	DefaultTheme        = "Romantic Pink"
	DefaultMessageColor = "from-pink-500 to-rose-500"
)

// Theme описывает визуальную тему комнаты. Primary — градиент, которым
// помечаются сообщения, отправленные при активной теме.
type Theme struct {
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

var Themes = []Theme{
	{Name: "Romantic Pink", Primary: "from-pink-500 to-rose-500", Secondary: "bg-pink-50", Accent: "text-pink-600"},
	{Name: "Purple Dreams", Primary: "from-purple-500 to-indigo-500", Secondary: "bg-purple-50", Accent: "text-purple-600"},
	{Name: "Sunset Love", Primary: "from-orange-400 to-pink-500", Secondary: "bg-orange-50", Accent: "text-orange-600"},
	{Name: "Ocean Breeze", Primary: "from-blue-400 to-cyan-500", Secondary: "bg-blue-50", Accent: "text-blue-600"},
}

// ThemeIndex возвращает позицию темы в каталоге, 0 если тема неизвестна
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const roomCodeLength = 6

// NewRoomCode генерирует короткий код комнаты вида "LOVE42"
func NewRoomCode() string {
	code := make([]byte, roomCodeLength)
	max := big.NewInt(int64(len(roomCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			code[i] = roomCodeAlphabet[0]
			continue
		}
		code[i] = roomCodeAlphabet[n.Int64()]
	}
	return string(code)
}
