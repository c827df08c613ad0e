package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"love_space/internal/domain"
	apperrors "love_space/pkg/errors"
)

func TestPostMessageThenGetState(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.services.Room.Create(ctx, "LOVE01")
	require.NoError(t, err)

	posted, err := env.services.Message.Post(ctx, "LOVE01", "Hi", "Alice", "")
	require.NoError(t, err)
	assert.Equal(t, "1", posted.ID)
	assert.Equal(t, domain.DefaultMessageColor, posted.Color)

	state, err := env.services.Room.GetState(ctx, "LOVE01")
	require.NoError(t, err)
	require.Len(t, state.Messages, 1)
	assert.Equal(t, posted.ID, state.Messages[len(state.Messages)-1].ID)
}

func TestPostMessageValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.services.Room.Create(ctx, "LOVE01")
	require.NoError(t, err)

	_, err = env.services.Message.Post(ctx, "LOVE01", "", "Alice", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingMessage)

	_, err = env.services.Message.Post(ctx, "LOVE01", "Hi", "", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingMessage)

	assert.Empty(t, env.msgRepo.messages)
}

func TestPostMessageUnknownRoom(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Message.Post(context.Background(), "NOSUCH", "Hi", "Alice", "")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	assert.Empty(t, env.msgRepo.messages)
}

func TestMessageColorSnapshotsTheme(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.services.Room.Create(ctx, "LOVE01")
	require.NoError(t, err)

	posted, err := env.services.Message.Post(ctx, "LOVE01", "Hi", "Alice", "from-blue-400 to-cyan-500")
	require.NoError(t, err)

	// Смена темы комнаты не перекрашивает уже отправленное
	require.NoError(t, env.services.Theme.Set(ctx, "LOVE01", "Romantic Pink"))

	state, err := env.services.Room.GetState(ctx, "LOVE01")
	require.NoError(t, err)
	require.Len(t, state.Messages, 1)
	assert.Equal(t, posted.Color, state.Messages[0].Color)
	assert.Equal(t, "from-blue-400 to-cyan-500", state.Messages[0].Color)
}

func TestMessagesOrderedByCreation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.services.Room.Create(ctx, "LOVE01")
	require.NoError(t, err)

	base := time.Now()
	for i, text := range []string{"first", "second", "third"} {
		msg := &domain.Message{
			RoomID:    created.Room.ID,
			Text:      text,
			Author:    "Alice",
			Color:     domain.DefaultMessageColor,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, env.msgRepo.Create(ctx, msg))
	}

	state, err := env.services.Room.GetState(ctx, "LOVE01")
	require.NoError(t, err)
	require.Len(t, state.Messages, 3)
	assert.Equal(t, "first", state.Messages[0].Text)
	assert.Equal(t, "second", state.Messages[1].Text)
	assert.Equal(t, "third", state.Messages[2].Text)
}

func TestTwoParticipantScenario(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.services.Room.Create(ctx, "LOVE01")
	require.NoError(t, err)

	require.NoError(t, env.services.Membership.Join(ctx, "LOVE01", "Alice"))
	require.NoError(t, env.services.Membership.Join(ctx, "LOVE01", "Bob"))

	_, err = env.services.Message.Post(ctx, "LOVE01", "Hi", "Alice", "")
	require.NoError(t, err)
	_, err = env.services.Message.Post(ctx, "LOVE01", "Hey", "Bob", "")
	require.NoError(t, err)

	state, err := env.services.Room.GetState(ctx, "LOVE01")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Alice", "Bob"}, state.Users)
	require.Len(t, state.Messages, 2)
	assert.Equal(t, "Alice", state.Messages[0].Author)
	assert.Equal(t, "Hi", state.Messages[0].Text)
	assert.Equal(t, "Bob", state.Messages[1].Author)
	assert.Equal(t, "Hey", state.Messages[1].Text)
}
