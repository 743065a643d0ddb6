package engine

// Ledger holds per-account balances in smallest currency units, plus the
// pooled float (funds actually held by the house). Balances never go
// negative; every mutation is validated before it is applied.
//
// Deposits raise the float and withdrawals lower it. Bet debits and win
// credits are internal moves between an account and the house, so the float
// is unchanged by them.
type Ledger struct {
	balances map[string]int64
	float    int64
}

func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]int64)}
}

// BalanceOf returns 0 for unknown accounts, never an error.
func (l *Ledger) BalanceOf(account string) int64 {
	return l.balances[account]
}

// Float returns the pooled house balance available for withdrawals.
func (l *Ledger) Float() int64 {
	return l.float
}

func (l *Ledger) deposit(account string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	l.balances[account] += amount
	l.float += amount
	return nil
}

func (l *Ledger) withdraw(account string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if l.balances[account] < amount {
		return ErrInsufficientBalance
	}
	if l.float < amount {
		return ErrInsufficientFloat
	}
	l.balances[account] -= amount
	l.float -= amount
	return nil
}

func (l *Ledger) debit(account string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if l.balances[account] < amount {
		return ErrInsufficientBalance
	}
	l.balances[account] -= amount
	return nil
}

func (l *Ledger) credit(account string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	l.balances[account] += amount
	return nil
}

func (l *Ledger) drainFloat(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if l.float < amount {
		return ErrInsufficientFloat
	}
	l.float -= amount
	return nil
}

// restoreFloat undoes a drainFloat whose event could not be recorded.
func (l *Ledger) restoreFloat(amount int64) {
	l.float += amount
}
