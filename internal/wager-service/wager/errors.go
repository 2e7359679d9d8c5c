package wager

import "errors"

var (
	ErrNotFound            = errors.New("wager not found")
	ErrWagerLimit          = errors.New("maximum simultaneous wagers reached")
	ErrCancelWindowExpired = errors.New("cancellation window expired")
	ErrAlreadySettled      = errors.New("wager already settled")
	ErrAlreadyVerifying    = errors.New("wager already under verification")
	ErrUnrealisticGoal     = errors.New("unrealistic goal")
	ErrConflict            = errors.New("concurrent update, try again")
)
