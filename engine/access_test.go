package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessOwnerIsImplicitlyAuthorized(t *testing.T) {
	a := NewAccessControl("owner")

	require.Equal(t, "owner", a.Owner())
	require.True(t, a.IsOwner("owner"))
	require.True(t, a.IsOperatorOrOwner("owner"))
	require.False(t, a.IsOperatorOrOwner("stranger"))
}

func TestAccessOperatorAddRemove(t *testing.T) {
	a := NewAccessControl("owner")

	require.NoError(t, a.addOperator("op1"))
	require.True(t, a.IsOperatorOrOwner("op1"))
	require.False(t, a.IsOwner("op1"))

	require.ErrorIs(t, a.addOperator("op1"), ErrAlreadyOperator)
	require.ErrorIs(t, a.removeOperator("op2"), ErrNotOperator)

	require.NoError(t, a.removeOperator("op1"))
	require.False(t, a.IsOperatorOrOwner("op1"))
	require.ErrorIs(t, a.removeOperator("op1"), ErrNotOperator)
}

func TestAccessOwnerNotInOperatorSet(t *testing.T) {
	a := NewAccessControl("owner")

	require.ErrorIs(t, a.addOperator("owner"), ErrAlreadyOperator)
	require.ErrorIs(t, a.removeOperator("owner"), ErrNotOperator)
	require.Empty(t, a.Operators())
}

func TestAccessTransferOwnershipIsAtomic(t *testing.T) {
	a := NewAccessControl("old")

	require.NoError(t, a.transferOwnership("new"))
	require.Equal(t, "new", a.Owner())
	require.True(t, a.IsOperatorOrOwner("new"))
	// old owner keeps no rights
	require.False(t, a.IsOperatorOrOwner("old"))
}

func TestAccessTransferToOperatorLeavesSet(t *testing.T) {
	a := NewAccessControl("owner")
	require.NoError(t, a.addOperator("op"))

	require.NoError(t, a.transferOwnership("op"))
	require.Equal(t, "op", a.Owner())
	require.True(t, a.IsOperatorOrOwner("op"))
	// the seat is gone, not just shadowed by the owner role
	require.Empty(t, a.Operators())
	require.ErrorIs(t, a.removeOperator("op"), ErrNotOperator)
}

func TestAccessTransferOwnershipRejectsEmpty(t *testing.T) {
	a := NewAccessControl("owner")

	require.ErrorIs(t, a.transferOwnership(""), ErrInvalidAccount)
	require.Equal(t, "owner", a.Owner())
}
