package board

import "errors"

var (
	// ErrInvalidPosition is returned when explicit field values violate the
	// one-piece-per-square or king-presence invariants.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrSquareEmpty is the panic value for ownership queries on empty
	// squares. Reaching it means the caller passed data inconsistent with
	// the Position.
	ErrSquareEmpty = errors.New("square is not owned by either side")

	// ErrPieceNotAtSquare is the panic value for span queries naming a piece
	// that does not occupy the given square for the given side.
	ErrPieceNotAtSquare = errors.New("piece not at square")

	// ErrUnknownPiece is the panic value for a piece kind outside the
	// enumeration reaching geometry dispatch.
	ErrUnknownPiece = errors.New("unknown piece")
)
