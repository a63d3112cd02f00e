package game

import "errors"

// User-input rejections. An operation failing with one of these leaves the
// engine untouched.
var (
	ErrIllegalState         = errors.New("action not allowed in the current state")
	ErrBetBelowMinimum      = errors.New("bet is below the minimum")
	ErrInsufficientBankroll = errors.New("insufficient bankroll")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrHandClosed           = errors.New("hand is closed to further cards")
	ErrCannotDouble         = errors.New("hand cannot be doubled")
	ErrDoubleRestricted     = errors.New("double not allowed on this total")
	ErrDoubleAfterSplit     = errors.New("double after split not allowed")
	ErrCannotSplit          = errors.New("hand is not a pair")
	ErrSplitLimit           = errors.New("maximum number of hands reached")
	ErrResplitAces          = errors.New("resplitting aces not allowed")
	ErrSurrenderNotAllowed  = errors.New("surrender not offered at this table")
	ErrCannotSurrender      = errors.New("surrender only on the opening two cards")
	ErrRoundInProgress      = errors.New("round in progress")
	ErrUnknownProfile       = errors.New("unknown profile")
	ErrUnknownCommand       = errors.New("unknown command")
)

var rejections = []error{
	ErrIllegalState,
	ErrBetBelowMinimum,
	ErrInsufficientBankroll,
	ErrInvalidAmount,
	ErrHandClosed,
	ErrCannotDouble,
	ErrDoubleRestricted,
	ErrDoubleAfterSplit,
	ErrCannotSplit,
	ErrSplitLimit,
	ErrResplitAces,
	ErrSurrenderNotAllowed,
	ErrCannotSurrender,
	ErrRoundInProgress,
	ErrUnknownProfile,
	ErrUnknownCommand,
}

// IsRejection reports whether err is a refused user action rather than an
// engine failure.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
