package engine

import "errors"

// Engine failures are typed sentinels so transports can map them to status
// codes without string matching. All of them are recoverable.
var (
	ErrInvalidSetup         = errors.New("invalid setup")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrGameOver             = errors.New("game over")
	ErrPropertyNotAvailable = errors.New("property not available")
	ErrNotOwner             = errors.New("not the owner")
	ErrAlreadyMortgaged     = errors.New("already mortgaged")
	ErrNotMortgaged         = errors.New("not mortgaged")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrNoCardHeld           = errors.New("no jail card held")
	ErrNotInJail            = errors.New("not in jail")
	ErrAlreadyInactive      = errors.New("player already inactive")
	ErrSessionNotFound      = errors.New("session not found")
)

// Kind returns the stable kind name for an engine failure, or "Internal" for
// anything the taxonomy does not cover.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidSetup):
		return "InvalidSetup"
	case errors.Is(err, ErrNotYourTurn):
		return "NotYourTurn"
	case errors.Is(err, ErrGameOver):
		return "GameOver"
	case errors.Is(err, ErrPropertyNotAvailable):
		return "PropertyNotAvailable"
	case errors.Is(err, ErrNotOwner):
		return "NotOwner"
	case errors.Is(err, ErrAlreadyMortgaged):
		return "AlreadyMortgaged"
	case errors.Is(err, ErrNotMortgaged):
		return "NotMortgaged"
	case errors.Is(err, ErrInsufficientFunds):
		return "InsufficientFunds"
	case errors.Is(err, ErrNoCardHeld):
		return "NoCardHeld"
	case errors.Is(err, ErrNotInJail):
		return "NotInJail"
	case errors.Is(err, ErrAlreadyInactive):
		return "AlreadyInactive"
	case errors.Is(err, ErrSessionNotFound):
		return "SessionNotFound"
	default:
		return "Internal"
	}
}
