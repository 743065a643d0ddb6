package engine

import "time"

// EventType identifies the type of a casino event.
type EventType string

// Ledger events.
const (
	EventDeposit             EventType = "deposit"
	EventWithdrawal          EventType = "withdrawal"
	EventEmergencyWithdrawal EventType = "emergency_withdrawal"
)

// Game lifecycle events.
const (
	EventBetPlaced   EventType = "bet_placed"
	EventGameSettled EventType = "game_settled"
)

// Oracle events. A bet_placed event with a non-empty Handle opens the
// randomness request; fulfillment gets its own entry.
const (
	EventRandomnessFulfilled EventType = "randomness_fulfilled"
)

// Admin events.
const (
	EventParamsChanged        EventType = "params_changed"
	EventOperatorAdded        EventType = "operator_added"
	EventOperatorRemoved      EventType = "operator_removed"
	EventOwnershipTransferred EventType = "ownership_transferred"
	EventPaused               EventType = "paused"
	EventUnpaused             EventType = "unpaused"
)

// Event is one entry of the append-only audit log. The full engine state is
// reconstructable by replaying the log in order.
type Event struct {
	Type    EventType
	Account string
	GameID  string

	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64

	IsWin      bool
	WinAmount  int64
	ResultHash string

	ProvablyFair bool
	Handle       string
	RandomValue  uint64

	HouseEdgeBps uint16
	MinBet       int64
	MaxBet       int64

	RefID     string
	Note      string
	CreatedAt time.Time
}

// EventRecorder receives exactly one event per committed mutation. Recording
// happens inside the engine's critical section; when Record fails the engine
// rolls the mutation back, so a recorded log never lags live state.
type EventRecorder interface {
	Record(ev Event) error
}

// RecorderFunc adapts a function to the EventRecorder interface.
type RecorderFunc func(ev Event) error

func (f RecorderFunc) Record(ev Event) error { return f(ev) }
