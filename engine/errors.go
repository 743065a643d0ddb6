package engine

import "errors"

// Authorization
var (
	ErrUnauthorized = errors.New("UNAUTHORIZED")
	ErrNotOwner     = errors.New("NOT_OWNER")
)

// Validation
var (
	ErrBetOutOfBounds   = errors.New("BET_OUT_OF_BOUNDS")
	ErrInvalidAmount    = errors.New("INVALID_AMOUNT")
	ErrHouseEdgeTooHigh = errors.New("HOUSE_EDGE_TOO_HIGH")
	ErrInvalidBetLimits = errors.New("INVALID_BET_LIMITS")
	ErrInvalidAccount   = errors.New("INVALID_ACCOUNT")
	ErrAmountOverflow   = errors.New("AMOUNT_OVERFLOW")
	ErrPaused           = errors.New("PAUSED")
	ErrNotPaused        = errors.New("NOT_PAUSED")
)

// State conflict
var (
	ErrGameExists       = errors.New("GAME_EXISTS")
	ErrGameNotFound     = errors.New("GAME_NOT_FOUND")
	ErrAlreadySettled   = errors.New("ALREADY_SETTLED")
	ErrAlreadyRequested = errors.New("ALREADY_REQUESTED")
	ErrAlreadyOperator  = errors.New("ALREADY_OPERATOR")
	ErrNotOperator      = errors.New("NOT_OPERATOR")
)

// Resource
var (
	ErrInsufficientBalance = errors.New("INSUFFICIENT_BALANCE")
	ErrInsufficientFloat   = errors.New("INSUFFICIENT_CONTRACT_FLOAT")
)

// Integrity
var ErrWinExceedsMaximum = errors.New("WIN_EXCEEDS_MAXIMUM")
