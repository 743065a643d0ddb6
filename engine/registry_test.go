package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewGameRegistry()

	require.NoError(t, r.create("g1", "alice", 50, false))

	game, ok := r.Get("g1")
	require.True(t, ok)
	require.Equal(t, "alice", game.Player)
	require.Equal(t, int64(50), game.BetAmount)
	require.Equal(t, GamePending, game.State)
	require.False(t, game.CreatedAt.IsZero())

	_, ok = r.Get("g2")
	require.False(t, ok)
}

func TestRegistryRejectsDuplicateID(t *testing.T) {
	r := NewGameRegistry()

	require.NoError(t, r.create("g1", "alice", 50, false))
	require.ErrorIs(t, r.create("g1", "bob", 60, false), ErrGameExists)

	// the original record is untouched
	game, _ := r.Get("g1")
	require.Equal(t, "alice", game.Player)
	require.Equal(t, int64(50), game.BetAmount)
}

func TestRegistrySettleIsTerminal(t *testing.T) {
	r := NewGameRegistry()
	require.NoError(t, r.create("g1", "alice", 50, false))

	game, err := r.settle("g1", true, 51, "abc123")
	require.NoError(t, err)
	require.Equal(t, GameSettled, game.State)
	require.True(t, game.IsWin)
	require.Equal(t, int64(51), game.WinAmount)
	require.Equal(t, "abc123", game.ResultHash)

	_, err = r.settle("g1", false, 0, "")
	require.ErrorIs(t, err, ErrAlreadySettled)

	_, err = r.settle("missing", true, 1, "")
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewGameRegistry()
	require.NoError(t, r.create("g1", "alice", 50, false))

	game, _ := r.Get("g1")
	game.BetAmount = 999

	fresh, _ := r.Get("g1")
	require.Equal(t, int64(50), fresh.BetAmount)
}
