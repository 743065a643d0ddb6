package engine

import "fmt"

// Replay folds an event log into a fresh engine. owner and cfg are the
// genesis values the deployment started with; the log carries every change
// since. Events are applied raw: no validation is re-run, no external
// transfer fires, nothing is re-recorded. Attach a recorder with
// SetRecorder once replay is done.
func Replay(owner string, cfg Config, events []Event) (*Engine, error) {
	e, err := New(owner, cfg, nil, nil)
	if err != nil {
		return nil, err
	}
	for i, ev := range events {
		if err := e.apply(ev); err != nil {
			return nil, fmt.Errorf("replay event %d (%s): %w", i, ev.Type, err)
		}
	}
	return e, nil
}

// SetRecorder attaches the event recorder. Used after replay, which must
// run without one.
func (e *Engine) SetRecorder(r EventRecorder) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recorder = r
}

func (e *Engine) apply(ev Event) error {
	switch ev.Type {
	case EventDeposit:
		return e.ledger.deposit(ev.Account, ev.Amount)
	case EventWithdrawal:
		return e.ledger.withdraw(ev.Account, ev.Amount)
	case EventEmergencyWithdrawal:
		return e.ledger.drainFloat(ev.Amount)
	case EventBetPlaced:
		if err := e.ledger.debit(ev.Account, ev.Amount); err != nil {
			return err
		}
		if err := e.registry.create(ev.GameID, ev.Account, ev.Amount, ev.ProvablyFair); err != nil {
			return err
		}
		if ev.Handle != "" {
			e.oracle.restore(ev.GameID, ev.Handle, false, 0)
		}
		return nil
	case EventGameSettled:
		game, err := e.registry.settle(ev.GameID, ev.IsWin, ev.WinAmount, ev.ResultHash)
		if err != nil {
			return err
		}
		if ev.IsWin {
			return e.ledger.credit(game.Player, ev.WinAmount)
		}
		return nil
	case EventRandomnessFulfilled:
		e.oracle.restore(ev.GameID, ev.Handle, true, ev.RandomValue)
		return nil
	case EventParamsChanged:
		cfg := Config{HouseEdgeBps: ev.HouseEdgeBps, MinBet: ev.MinBet, MaxBet: ev.MaxBet}
		if err := cfg.validate(); err != nil {
			return err
		}
		e.cfg = cfg
		return nil
	case EventOperatorAdded:
		return e.access.addOperator(ev.Account)
	case EventOperatorRemoved:
		return e.access.removeOperator(ev.Account)
	case EventOwnershipTransferred:
		return e.access.transferOwnership(ev.Account)
	case EventPaused:
		e.paused = true
		return nil
	case EventUnpaused:
		e.paused = false
		return nil
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
}
