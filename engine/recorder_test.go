package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store down")

// toggleRecorder captures events like captureRecorder but can be switched
// into a failing mode, mimicking a database that goes away mid-flight.
type toggleRecorder struct {
	fail   bool
	events []Event
}

func (r *toggleRecorder) Record(ev Event) error {
	if r.fail {
		return errStore
	}
	r.events = append(r.events, ev)
	return nil
}

func newFlakyEngine(t *testing.T) (*Engine, *toggleRecorder) {
	t.Helper()
	rec := &toggleRecorder{}
	e, err := New("owner", genesis, nil, rec)
	require.NoError(t, err)
	return e, rec
}

func TestDepositRecordFailureLeavesNoBalance(t *testing.T) {
	e, rec := newFlakyEngine(t)

	rec.fail = true
	require.ErrorIs(t, e.Deposit("alice", 100), errStore)
	require.Equal(t, int64(0), e.BalanceOf("alice"))
	require.Equal(t, int64(0), e.Float())
	require.Empty(t, rec.events)

	rec.fail = false
	require.NoError(t, e.Deposit("alice", 100))
	require.Equal(t, int64(100), e.BalanceOf("alice"))
}

func TestWithdrawRecordFailureRestoresBalanceAndSkipsTransfer(t *testing.T) {
	e, rec := newFlakyEngine(t)
	require.NoError(t, e.Deposit("alice", 100))

	transferred := false
	e.SetTransferFunc(func(string, int64, string) error {
		transferred = true
		return nil
	})

	rec.fail = true
	refID, err := e.Withdraw("alice", 60)
	require.ErrorIs(t, err, errStore)
	require.Empty(t, refID)
	require.False(t, transferred)
	require.Equal(t, int64(100), e.BalanceOf("alice"))
	require.Equal(t, int64(100), e.Float())
}

func TestPlaceBetRecordFailureUnwindsEverything(t *testing.T) {
	e, rec := newFlakyEngine(t)
	require.NoError(t, e.Deposit("alice", 500))

	rec.fail = true
	_, err := e.PlaceBet("alice", "g1", 100, true)
	require.ErrorIs(t, err, errStore)
	require.Equal(t, int64(500), e.BalanceOf("alice"))
	_, found := e.Game("g1")
	require.False(t, found)

	// the game ID and its randomness slot are free again
	rec.fail = false
	handle, err := e.PlaceBet("alice", "g1", 100, true)
	require.NoError(t, err)
	require.NotEmpty(t, handle)
	require.Equal(t, int64(400), e.BalanceOf("alice"))
}

func TestSettleRecordFailureKeepsGamePending(t *testing.T) {
	e, rec := newFlakyEngine(t)
	require.NoError(t, e.Deposit("alice", 500))
	_, err := e.PlaceBet("alice", "g1", 100, false)
	require.NoError(t, err)

	rec.fail = true
	require.ErrorIs(t, e.SettleGame("owner", "g1", true, 102, "cafe"), errStore)
	game, found := e.Game("g1")
	require.True(t, found)
	require.Equal(t, GamePending, game.State)
	require.False(t, game.IsWin)
	require.Equal(t, int64(400), e.BalanceOf("alice"))

	rec.fail = false
	require.NoError(t, e.SettleGame("owner", "g1", true, 102, "cafe"))
	require.Equal(t, int64(502), e.BalanceOf("alice"))
}

func TestFulfillRecordFailureKeepsRequestPending(t *testing.T) {
	e, rec := newFlakyEngine(t)
	require.NoError(t, e.Deposit("alice", 500))
	handle, err := e.PlaceBet("alice", "g1", 100, true)
	require.NoError(t, err)

	rec.fail = true
	require.ErrorIs(t, e.FulfillRandomness(handle, 777), errStore)
	_, fulfilled := e.RandomnessResult("g1")
	require.False(t, fulfilled)

	// the oracle may redeliver on the same handle
	rec.fail = false
	require.NoError(t, e.FulfillRandomness(handle, 888))
	value, fulfilled := e.RandomnessResult("g1")
	require.True(t, fulfilled)
	require.Equal(t, uint64(888), value)
}

func TestAdminRecordFailuresRollBack(t *testing.T) {
	e, rec := newFlakyEngine(t)
	require.NoError(t, e.AddOperator("owner", "op"))
	require.NoError(t, e.Deposit("alice", 100))

	rec.fail = true

	require.ErrorIs(t, e.SetHouseEdge("owner", 500), errStore)
	require.ErrorIs(t, e.SetBetLimits("owner", 5, 5000), errStore)
	require.Equal(t, genesis, e.Params())

	require.ErrorIs(t, e.AddOperator("owner", "op2"), errStore)
	require.False(t, e.IsOperatorOrOwner("op2"))
	require.ErrorIs(t, e.RemoveOperator("owner", "op"), errStore)
	require.True(t, e.IsOperatorOrOwner("op"))

	require.ErrorIs(t, e.TransferOwnership("owner", "op"), errStore)
	require.Equal(t, "owner", e.Owner())
	require.Contains(t, e.Operators(), "op")

	require.ErrorIs(t, e.Pause("owner"), errStore)
	require.False(t, e.Paused())

	rec.fail = false
	require.NoError(t, e.Pause("owner"))
	rec.fail = true
	require.ErrorIs(t, e.Unpause("owner"), errStore)
	require.True(t, e.Paused())

	_, err := e.EmergencyWithdraw("owner", 50)
	require.ErrorIs(t, err, errStore)
	require.Equal(t, int64(100), e.Float())
}

// A recorder outage must never fork the log from live state: whatever the
// engine reports afterwards has to be reproducible from the events that did
// land.
func TestFlakyRecorderKeepsLogReplayable(t *testing.T) {
	e, rec := newFlakyEngine(t)

	rec.fail = true
	require.ErrorIs(t, e.Deposit("alice", 100), errStore)
	require.Equal(t, int64(0), e.BalanceOf("alice"))

	rec.fail = false
	require.NoError(t, e.Deposit("alice", 100))
	_, err := e.PlaceBet("alice", "g1", 50, false)
	require.NoError(t, err)

	rebuilt, err := Replay("owner", genesis, rec.events)
	require.NoError(t, err)
	require.Equal(t, e.BalanceOf("alice"), rebuilt.BalanceOf("alice"))
	require.Equal(t, e.Float(), rebuilt.Float())

	want, _ := e.Game("g1")
	got, found := rebuilt.Game("g1")
	require.True(t, found)
	require.Equal(t, want.BetAmount, got.BetAmount)
	require.Equal(t, want.State, got.State)
}
