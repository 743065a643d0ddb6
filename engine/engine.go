package engine

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// BasisPoints is the denominator for house-edge math: 10000 = 100%.
	BasisPoints = 10000
	// MaxHouseEdgeBps caps the configurable house edge at 10%.
	MaxHouseEdgeBps = 1000
)

// Config holds the owner-tunable casino parameters.
type Config struct {
	HouseEdgeBps uint16
	MinBet       int64
	MaxBet       int64
}

func (c Config) validate() error {
	if c.HouseEdgeBps > MaxHouseEdgeBps {
		return ErrHouseEdgeTooHigh
	}
	if c.MinBet <= 0 || c.MinBet > c.MaxBet {
		return ErrInvalidBetLimits
	}
	return nil
}

// TransferFunc moves funds out of the house to an external destination. It
// runs as the final, non-retriable step of a withdrawal, after the balance
// mutation and its event are committed; a failure is surfaced to the caller
// and never rolls the committed mutation back.
type TransferFunc func(account string, amount int64, refID string) error

// Engine is the casino state machine. Every operation runs as one critical
// section over the ledger, registry, oracle and config, reproducing the
// one-transaction-at-a-time execution model of the source hosts.
type Engine struct {
	mu sync.Mutex

	cfg      Config
	ledger   *Ledger
	access   *AccessControl
	registry *GameRegistry
	oracle   Oracle
	paused   bool

	recorder EventRecorder
	transfer TransferFunc
}

// New builds an engine with the given owner and parameters. A nil oracle
// defaults to the asynchronous VRF variant; a nil recorder keeps the engine
// purely in-memory.
func New(owner string, cfg Config, oracle Oracle, recorder EventRecorder) (*Engine, error) {
	if owner == "" {
		return nil, ErrInvalidAccount
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if oracle == nil {
		oracle = NewVRFOracle()
	}
	return &Engine{
		cfg:      cfg,
		ledger:   NewLedger(),
		access:   NewAccessControl(owner),
		registry: NewGameRegistry(),
		oracle:   oracle,
		recorder: recorder,
	}, nil
}

// SetTransferFunc installs the external payout hook. Must be called before
// the engine starts serving withdrawals.
func (e *Engine) SetTransferFunc(fn TransferFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transfer = fn
}

// record persists the event describing a mutation that was just applied.
// Callers must undo that mutation when record fails: a rejected operation
// leaves no state behind, and the log never lags the in-memory state it is
// replayed into.
func (e *Engine) record(ev Event) error {
	ev.CreatedAt = time.Now()
	if e.recorder == nil {
		return nil
	}
	if err := e.recorder.Record(ev); err != nil {
		return fmt.Errorf("record %s event: %w", ev.Type, err)
	}
	return nil
}

// Deposit credits an account with external funds, raising the house float.
func (e *Engine) Deposit(account string, amount int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return ErrPaused
	}
	if account == "" {
		return ErrInvalidAccount
	}
	before := e.ledger.BalanceOf(account)
	if err := e.ledger.deposit(account, amount); err != nil {
		return err
	}
	if err := e.record(Event{
		Type:          EventDeposit,
		Account:       account,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  e.ledger.BalanceOf(account),
	}); err != nil {
		_ = e.ledger.withdraw(account, amount)
		return err
	}
	return nil
}

// Withdraw debits an account and pays the funds out through the transfer
// hook. The balance mutation and its event commit first; the external
// transfer is the last step, so a transfer failure can never leave a
// balance that was silently spent.
func (e *Engine) Withdraw(account string, amount int64) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if account == "" {
		return "", ErrInvalidAccount
	}
	before := e.ledger.BalanceOf(account)
	if err := e.ledger.withdraw(account, amount); err != nil {
		return "", err
	}
	refID := uuid.New().String()
	if err := e.record(Event{
		Type:          EventWithdrawal,
		Account:       account,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  e.ledger.BalanceOf(account),
		RefID:         refID,
	}); err != nil {
		_ = e.ledger.deposit(account, amount)
		return "", err
	}
	if e.transfer != nil {
		if err := e.transfer(account, amount, refID); err != nil {
			return refID, fmt.Errorf("external transfer %s: %w", refID, err)
		}
	}
	return refID, nil
}

// PlaceBet debits the caller and records a Pending game. For provably-fair
// games a randomness request is opened; its handle is returned and travels
// in the bet event. The debit, the game creation and the request are one
// atomic unit: any failure past the debit unwinds everything before the
// error is returned.
func (e *Engine) PlaceBet(caller, gameID string, amount int64, provablyFair bool) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused {
		return "", ErrPaused
	}
	if caller == "" {
		return "", ErrInvalidAccount
	}
	if amount < e.cfg.MinBet || amount > e.cfg.MaxBet {
		return "", ErrBetOutOfBounds
	}
	if e.ledger.BalanceOf(caller) < amount {
		return "", ErrInsufficientBalance
	}

	before := e.ledger.BalanceOf(caller)
	if err := e.ledger.debit(caller, amount); err != nil {
		return "", err
	}
	if err := e.registry.create(gameID, caller, amount, provablyFair); err != nil {
		if rbErr := e.ledger.credit(caller, amount); rbErr != nil {
			return "", fmt.Errorf("rollback debit for game %s: %w", gameID, rbErr)
		}
		return "", err
	}

	var handle string
	if provablyFair {
		var err error
		handle, err = e.oracle.Request(gameID)
		if err != nil {
			e.registry.remove(gameID)
			_ = e.ledger.credit(caller, amount)
			return "", err
		}
	}

	if err := e.record(Event{
		Type:          EventBetPlaced,
		Account:       caller,
		GameID:        gameID,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  e.ledger.BalanceOf(caller),
		ProvablyFair:  provablyFair,
		Handle:        handle,
	}); err != nil {
		if handle != "" {
			e.oracle.cancel(gameID)
		}
		e.registry.remove(gameID)
		_ = e.ledger.credit(caller, amount)
		return "", err
	}
	return handle, nil
}

// MaxPossibleWin is the payout ceiling the house edge allows for a bet:
// bet * 10000 / (10000 - edgeBps), truncating.
func (e *Engine) MaxPossibleWin(betAmount int64) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return maxPossibleWin(betAmount, e.cfg.HouseEdgeBps)
}

func maxPossibleWin(betAmount int64, edgeBps uint16) (int64, error) {
	if betAmount > math.MaxInt64/BasisPoints {
		return 0, ErrAmountOverflow
	}
	return betAmount * BasisPoints / (BasisPoints - int64(edgeBps)), nil
}

// SettleGame records the terminal outcome of a game and credits the player
// on a win. Only the owner or an operator may settle; a winning payout must
// respect the house-edge ceiling. resultHash is an optional verification
// digest stored with the outcome.
func (e *Engine) SettleGame(caller, gameID string, isWin bool, winAmount int64, resultHash string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOperatorOrOwner(caller) {
		return ErrUnauthorized
	}
	game, ok := e.registry.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}
	if game.State == GameSettled {
		return ErrAlreadySettled
	}
	if isWin {
		if winAmount <= 0 {
			return ErrInvalidAmount
		}
		maxWin, err := maxPossibleWin(game.BetAmount, e.cfg.HouseEdgeBps)
		if err != nil {
			return err
		}
		if winAmount > maxWin {
			return ErrWinExceedsMaximum
		}
	}

	before := e.ledger.BalanceOf(game.Player)
	if _, err := e.registry.settle(gameID, isWin, winAmount, resultHash); err != nil {
		return err
	}
	if isWin {
		if err := e.ledger.credit(game.Player, winAmount); err != nil {
			e.registry.revertSettle(gameID)
			return err
		}
	}
	if err := e.record(Event{
		Type:          EventGameSettled,
		Account:       game.Player,
		GameID:        gameID,
		IsWin:         isWin,
		WinAmount:     winAmount,
		ResultHash:    resultHash,
		BalanceBefore: before,
		BalanceAfter:  e.ledger.BalanceOf(game.Player),
	}); err != nil {
		if isWin {
			_ = e.ledger.debit(game.Player, winAmount)
		}
		e.registry.revertSettle(gameID)
		return err
	}
	return nil
}

// FulfillRandomness delivers an oracle callback. Unknown or duplicate
// handles are dropped silently: stale replays from an oracle network are
// expected and must not fail.
func (e *Engine) FulfillRandomness(handle string, value uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	gameID, ok := e.oracle.Fulfill(handle, value)
	if !ok {
		return nil
	}
	if err := e.record(Event{
		Type:        EventRandomnessFulfilled,
		GameID:      gameID,
		Handle:      handle,
		RandomValue: value,
	}); err != nil {
		e.oracle.revertFulfill(gameID)
		return err
	}
	return nil
}

// RandomnessResult reports the fulfilled value for a game, if any.
func (e *Engine) RandomnessResult(gameID string) (uint64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.oracle.Result(gameID)
}

// StalePendingRandomness lists games whose randomness request has been
// pending longer than olderThan.
func (e *Engine) StalePendingRandomness(olderThan time.Duration) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.oracle.Pending(olderThan)
}

// SetHouseEdge updates the house edge. Owner only.
func (e *Engine) SetHouseEdge(caller string, bps uint16) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOwner(caller) {
		return ErrNotOwner
	}
	if bps > MaxHouseEdgeBps {
		return ErrHouseEdgeTooHigh
	}
	prev := e.cfg
	e.cfg.HouseEdgeBps = bps
	if err := e.recordParams(); err != nil {
		e.cfg = prev
		return err
	}
	return nil
}

// SetBetLimits updates the bet bounds. Owner only.
func (e *Engine) SetBetLimits(caller string, minBet, maxBet int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOwner(caller) {
		return ErrNotOwner
	}
	if minBet <= 0 || minBet > maxBet {
		return ErrInvalidBetLimits
	}
	prev := e.cfg
	e.cfg.MinBet = minBet
	e.cfg.MaxBet = maxBet
	if err := e.recordParams(); err != nil {
		e.cfg = prev
		return err
	}
	return nil
}

func (e *Engine) recordParams() error {
	return e.record(Event{
		Type:         EventParamsChanged,
		HouseEdgeBps: e.cfg.HouseEdgeBps,
		MinBet:       e.cfg.MinBet,
		MaxBet:       e.cfg.MaxBet,
	})
}

// AddOperator grants settlement rights to an account. Owner only; adding an
// existing operator (or the owner) fails loudly.
func (e *Engine) AddOperator(caller, account string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOwner(caller) {
		return ErrNotOwner
	}
	if err := e.access.addOperator(account); err != nil {
		return err
	}
	if err := e.record(Event{Type: EventOperatorAdded, Account: account}); err != nil {
		_ = e.access.removeOperator(account)
		return err
	}
	return nil
}

// RemoveOperator revokes settlement rights. Owner only; removing a
// non-operator fails loudly.
func (e *Engine) RemoveOperator(caller, account string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOwner(caller) {
		return ErrNotOwner
	}
	if err := e.access.removeOperator(account); err != nil {
		return err
	}
	if err := e.record(Event{Type: EventOperatorRemoved, Account: account}); err != nil {
		_ = e.access.addOperator(account)
		return err
	}
	return nil
}

// TransferOwnership moves the owner role to newOwner in one step. A new
// owner who held an operator seat gives it up: the role subsumes it.
func (e *Engine) TransferOwnership(caller, newOwner string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOwner(caller) {
		return ErrNotOwner
	}
	prevOwner := e.access.Owner()
	wasOperator := e.access.isOperator(newOwner)
	if err := e.access.transferOwnership(newOwner); err != nil {
		return err
	}
	if err := e.record(Event{Type: EventOwnershipTransferred, Account: newOwner}); err != nil {
		_ = e.access.transferOwnership(prevOwner)
		if wasOperator {
			_ = e.access.addOperator(newOwner)
		}
		return err
	}
	return nil
}

// Pause stops new deposits and bets. Withdrawals, settlements and admin
// operations stay live: the pause degrades new exposure, not existing
// obligations.
func (e *Engine) Pause(caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOwner(caller) {
		return ErrNotOwner
	}
	if e.paused {
		return ErrPaused
	}
	e.paused = true
	if err := e.record(Event{Type: EventPaused}); err != nil {
		e.paused = false
		return err
	}
	return nil
}

// Unpause resumes deposits and bets.
func (e *Engine) Unpause(caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOwner(caller) {
		return ErrNotOwner
	}
	if !e.paused {
		return ErrNotPaused
	}
	e.paused = false
	if err := e.record(Event{Type: EventUnpaused}); err != nil {
		e.paused = true
		return err
	}
	return nil
}

// EmergencyWithdraw drains up to the pooled house float to the owner. Only
// available while paused.
func (e *Engine) EmergencyWithdraw(caller string, amount int64) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.access.IsOwner(caller) {
		return "", ErrNotOwner
	}
	if !e.paused {
		return "", ErrNotPaused
	}
	if err := e.ledger.drainFloat(amount); err != nil {
		return "", err
	}
	refID := uuid.New().String()
	if err := e.record(Event{
		Type:    EventEmergencyWithdrawal,
		Account: caller,
		Amount:  amount,
		RefID:   refID,
	}); err != nil {
		e.ledger.restoreFloat(amount)
		return "", err
	}
	if e.transfer != nil {
		if err := e.transfer(caller, amount, refID); err != nil {
			return refID, fmt.Errorf("external transfer %s: %w", refID, err)
		}
	}
	return refID, nil
}

// BalanceOf returns the account balance, 0 for unknown accounts.
func (e *Engine) BalanceOf(account string) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.BalanceOf(account)
}

// Float returns the pooled house balance.
func (e *Engine) Float() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Float()
}

// Game returns a snapshot of the game record.
func (e *Engine) Game(gameID string) (Game, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Get(gameID)
}

// Owner returns the current owner account.
func (e *Engine) Owner() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.access.Owner()
}

// IsOperatorOrOwner reports whether account may settle games.
func (e *Engine) IsOperatorOrOwner(account string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.access.IsOperatorOrOwner(account)
}

// Operators returns the operator accounts, excluding the owner.
func (e *Engine) Operators() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.access.Operators()
}

// Params returns the current configuration.
func (e *Engine) Params() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Paused reports whether new exposure is gated off.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}
