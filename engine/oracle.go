package engine

import (
	"time"

	"github.com/google/uuid"
)

// Oracle pairs randomness requests with their asynchronous fulfillments. At
// most one request may ever exist per game ID, and each request is fulfilled
// at most once. Fulfillments for unknown or already-fulfilled handles are
// dropped without error: independent oracle callers may replay stale
// callbacks and the engine must shrug those off.
type Oracle interface {
	// Request records a pending request and returns the opaque handle the
	// fulfillment callback will be keyed by.
	Request(gameID string) (handle string, err error)
	// Fulfill stores value for the request behind handle. Returns the game
	// ID and true when the fulfillment landed, "" and false when it was
	// dropped.
	Fulfill(handle string, value uint64) (gameID string, ok bool)
	// Result reports the fulfilled value; fulfilled is false while pending
	// or never requested.
	Result(gameID string) (value uint64, fulfilled bool)
	// Pending lists game IDs whose request has waited longer than olderThan.
	Pending(olderThan time.Duration) []string

	restore(gameID, handle string, fulfilled bool, value uint64)
	cancel(gameID string)
	revertFulfill(gameID string)
}

type randomnessRequest struct {
	handle      string
	fulfilled   bool
	value       uint64
	requestedAt time.Time
}

// VRFOracle is the asynchronous variant: fulfillment arrives later, keyed by
// handle, from an external oracle network.
type VRFOracle struct {
	requests map[string]*randomnessRequest
	handles  map[string]string // handle -> gameID
}

func NewVRFOracle() *VRFOracle {
	return &VRFOracle{
		requests: make(map[string]*randomnessRequest),
		handles:  make(map[string]string),
	}
}

func (o *VRFOracle) Request(gameID string) (string, error) {
	if _, ok := o.requests[gameID]; ok {
		return "", ErrAlreadyRequested
	}
	handle := uuid.New().String()
	o.requests[gameID] = &randomnessRequest{
		handle:      handle,
		requestedAt: time.Now(),
	}
	o.handles[handle] = gameID
	return handle, nil
}

func (o *VRFOracle) Fulfill(handle string, value uint64) (string, bool) {
	gameID, ok := o.handles[handle]
	if !ok {
		return "", false
	}
	req := o.requests[gameID]
	if req.fulfilled {
		return "", false
	}
	req.fulfilled = true
	req.value = value
	return gameID, true
}

func (o *VRFOracle) Result(gameID string) (uint64, bool) {
	req, ok := o.requests[gameID]
	if !ok || !req.fulfilled {
		return 0, false
	}
	return req.value, true
}

func (o *VRFOracle) Pending(olderThan time.Duration) []string {
	cutoff := time.Now().Add(-olderThan)
	var stale []string
	for gameID, req := range o.requests {
		if !req.fulfilled && req.requestedAt.Before(cutoff) {
			stale = append(stale, gameID)
		}
	}
	return stale
}

func (o *VRFOracle) restore(gameID, handle string, fulfilled bool, value uint64) {
	o.requests[gameID] = &randomnessRequest{
		handle:      handle,
		fulfilled:   fulfilled,
		value:       value,
		requestedAt: time.Now(),
	}
	o.handles[handle] = gameID
}

// cancel withdraws a request whose opening bet could not be committed.
func (o *VRFOracle) cancel(gameID string) {
	req, ok := o.requests[gameID]
	if !ok {
		return
	}
	delete(o.handles, req.handle)
	delete(o.requests, gameID)
}

// revertFulfill returns a request to pending after a fulfillment that could
// not be committed; the same handle stays valid for redelivery.
func (o *VRFOracle) revertFulfill(gameID string) {
	req, ok := o.requests[gameID]
	if !ok {
		return
	}
	req.fulfilled = false
	req.value = 0
}

// MockOracle fulfills each request immediately with the next preset value.
// Used in tests and on hosts without an asynchronous oracle; the contract
// (one request per game, idempotent fulfillment) is identical to VRFOracle.
type MockOracle struct {
	*VRFOracle
	values []uint64
	next   int
}

func NewMockOracle(values ...uint64) *MockOracle {
	return &MockOracle{VRFOracle: NewVRFOracle(), values: values}
}

func (m *MockOracle) Request(gameID string) (string, error) {
	handle, err := m.VRFOracle.Request(gameID)
	if err != nil {
		return "", err
	}
	m.VRFOracle.Fulfill(handle, m.nextValue())
	return handle, nil
}

func (m *MockOracle) nextValue() uint64 {
	if len(m.values) == 0 {
		return 0
	}
	v := m.values[m.next%len(m.values)]
	m.next++
	return v
}
