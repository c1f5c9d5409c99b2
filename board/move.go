package board

import "github.com/PlaviAjvar/hepek-chess-engine/position"

// Move is an immutable move value, never referencing a Position. The closed
// set of variants is encoded by two discriminator fields: IsCastle tags
// castling moves (From/To unused), IsPromote tags promotions (always a pawn
// reaching the last rank), and everything else is a normal move. Apply
// dispatches on these tags at a single call site.
type Move struct {
	From, To position.Pos
	Piece    Piece

	Side        Side
	IsCapture   bool
	IsEnPassant bool
	IsCastle    CastleDirection
	IsPromote   Piece
}

// String renders the move for debugging and test output.
func (m Move) String() string {
	if m.IsCastle != CastleDirectionUnknown {
		if m.IsCastle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.From.Notation() + m.To.Notation()
	if m.IsPromote != PieceUnknown {
		nt += m.IsPromote.Symbol(SideBlack) // lowercase by convention
	}
	if m.IsEnPassant {
		nt += " e.p."
	}
	return nt
}
