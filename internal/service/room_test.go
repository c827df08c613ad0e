package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"love_space/internal/domain"
	apperrors "love_space/pkg/errors"
)

func TestCreateRoomRoundTrip(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.services.Room.Create(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", created.Room.Code)
	assert.Equal(t, "Romantic Pink", created.Room.Theme)
	assert.Empty(t, created.Users)
	assert.Empty(t, created.Messages)

	state, err := env.services.Room.GetState(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, created.Room.ID, state.Room.ID)
	assert.Equal(t, "Romantic Pink", state.Room.Theme)
	assert.NotNil(t, state.Users)
	assert.Len(t, state.Users, 0)
	assert.NotNil(t, state.Messages)
	assert.Len(t, state.Messages, 0)
}

func TestCreateRoomDuplicateCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.services.Room.Create(ctx, "LOVE01")
	require.NoError(t, err)

	_, err = env.services.Room.Create(ctx, "LOVE01")
	assert.ErrorIs(t, err, apperrors.ErrRoomExists)
}

func TestGetStateUnknownRoom(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Room.GetState(context.Background(), "NOSUCH")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestGetStateServedFromCache(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	cached := &domain.RoomState{
		Room:     domain.Room{Code: "CACHED", Theme: "Ocean Breeze"},
		Users:    []string{"Alice"},
		Messages: []domain.MessageView{},
	}
	require.NoError(t, env.cache.Set(ctx, "CACHED", cached, 0))

	// Комнаты нет в "базе", но снимок лежит в кеше
	state, err := env.services.Room.GetState(ctx, "CACHED")
	require.NoError(t, err)
	assert.Equal(t, "Ocean Breeze", state.Room.Theme)
	assert.Equal(t, []string{"Alice"}, state.Users)
}

func TestGetStatePopulatesCache(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.services.Room.Create(ctx, "WARM01")
	require.NoError(t, err)
	assert.False(t, env.cache.has("WARM01"))

	_, err = env.services.Room.GetState(ctx, "WARM01")
	require.NoError(t, err)
	assert.True(t, env.cache.has("WARM01"))
}
