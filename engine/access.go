package engine

// AccessControl tracks the single owner and the operator set. The owner is
// implicitly authorized for everything an operator may do and is never a
// member of the operator set itself.
type AccessControl struct {
	owner     string
	operators map[string]struct{}
}

func NewAccessControl(owner string) *AccessControl {
	return &AccessControl{
		owner:     owner,
		operators: make(map[string]struct{}),
	}
}

func (a *AccessControl) Owner() string {
	return a.owner
}

func (a *AccessControl) IsOwner(account string) bool {
	return account == a.owner
}

func (a *AccessControl) IsOperatorOrOwner(account string) bool {
	if account == a.owner {
		return true
	}
	_, ok := a.operators[account]
	return ok
}

// transferOwnership moves the owner role in one step. The old owner keeps no
// rights unless separately added as an operator afterwards. A new owner who
// was an operator leaves the set: the owner role subsumes it, and the set
// stays owner-free.
func (a *AccessControl) transferOwnership(newOwner string) error {
	if newOwner == "" {
		return ErrInvalidAccount
	}
	a.owner = newOwner
	delete(a.operators, newOwner)
	return nil
}

func (a *AccessControl) isOperator(account string) bool {
	_, ok := a.operators[account]
	return ok
}

func (a *AccessControl) addOperator(account string) error {
	if account == "" {
		return ErrInvalidAccount
	}
	if account == a.owner {
		return ErrAlreadyOperator
	}
	if _, ok := a.operators[account]; ok {
		return ErrAlreadyOperator
	}
	a.operators[account] = struct{}{}
	return nil
}

func (a *AccessControl) removeOperator(account string) error {
	if _, ok := a.operators[account]; !ok {
		return ErrNotOperator
	}
	delete(a.operators, account)
	return nil
}

// Operators returns the operator accounts, excluding the owner.
func (a *AccessControl) Operators() []string {
	out := make([]string, 0, len(a.operators))
	for op := range a.operators {
		out = append(out, op)
	}
	return out
}
