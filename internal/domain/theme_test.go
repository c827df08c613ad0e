package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeIndex(t *testing.T) {
	assert.Equal(t, 0, ThemeIndex("Romantic Pink"))
	assert.Equal(t, 3, ThemeIndex("Ocean Breeze"))
	// Неизвестная тема откатывается к первой
	assert.Equal(t, 0, ThemeIndex("Neon Void"))
}

func TestDefaultColorMatchesDefaultTheme(t *testing.T) {
	assert.Equal(t, Themes[ThemeIndex(DefaultTheme)].Primary, DefaultMessageColor)
}

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := NewRoomCode()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(roomCodeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	// Коды не должны повторяться на каждом вызове
	assert.Greater(t, len(seen), 1)
}

func TestMessageViewRendersIDAsString(t *testing.T) {
	m := Message{ID: 42, Text: "Hi", Author: "Alice", Color: DefaultMessageColor}
	view := m.View()
	assert.Equal(t, "42", view.ID)
	assert.Equal(t, "Hi", view.Text)
}
