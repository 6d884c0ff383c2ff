package codes

import (
	"github.com/go-kratos/kratos/v2/errors"
)

const (
	ReasonInvalidStateTransition = "INVALID_STATE_TRANSITION"
	ReasonIllegalSelection       = "ILLEGAL_SELECTION"
	ReasonGameAlreadyOver        = "GAME_ALREADY_OVER"
	ReasonBadDice                = "BAD_DICE"
)

var (
	ErrInvalidStateTransition = errors.New(409, ReasonInvalidStateTransition, "operation not allowed in the current stage")
	ErrIllegalSelection       = errors.New(400, ReasonIllegalSelection, "piece cannot move with the current roll")
	ErrGameAlreadyOver        = errors.New(410, ReasonGameAlreadyOver, "game already over")
	ErrBadDice                = errors.New(500, ReasonBadDice, "dice value out of range")
)

// IsInvalidStateTransition reports whether err is (or wraps) ErrInvalidStateTransition.
func IsInvalidStateTransition(err error) bool {
	return errors.Reason(err) == ReasonInvalidStateTransition
}

// IsIllegalSelection reports whether err is (or wraps) ErrIllegalSelection.
func IsIllegalSelection(err error) bool {
	return errors.Reason(err) == ReasonIllegalSelection
}

// IsGameAlreadyOver reports whether err is (or wraps) ErrGameAlreadyOver.
func IsGameAlreadyOver(err error) bool {
	return errors.Reason(err) == ReasonGameAlreadyOver
}

// IsBadDice reports whether err is (or wraps) ErrBadDice.
func IsBadDice(err error) bool {
	return errors.Reason(err) == ReasonBadDice
}
