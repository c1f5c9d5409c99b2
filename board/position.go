package board

import (
	"fmt"

	"github.com/PlaviAjvar/hepek-chess-engine/position"
)

// NoEnPassant marks the absence of an en passant target.
const NoEnPassant position.Pos = -1

// Position is an immutable snapshot of the game: piece placement as one
// bitmap per (side, piece) pair, the side to move, castling rights, the en
// passant target, and the half-move clock. Transitions never mutate a
// Position; Apply reads the receiver and returns a fresh value. Index 0 of
// the side and piece axes is unused, matching the enum zero values.
type Position struct {
	pieces   [2 + 1][6 + 1]bitmap
	sides    [2 + 1]bitmap
	occupied bitmap

	turn          Side
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint64
}

// NewPosition returns the standard initial position, White to move.
func NewPosition() *Position {
	p := &Position{
		turn:         SideWhite,
		castleRights: CastleRightsAll,
		enPassant:    NoEnPassant,
	}

	p.pieces[SideWhite][PiecePawn] = maskRow[position.Rank2]
	p.pieces[SideWhite][PieceRook] = maskCell[position.A1] | maskCell[position.H1]
	p.pieces[SideWhite][PieceKnight] = maskCell[position.B1] | maskCell[position.G1]
	p.pieces[SideWhite][PieceBishop] = maskCell[position.C1] | maskCell[position.F1]
	p.pieces[SideWhite][PieceQueen] = maskCell[position.D1]
	p.pieces[SideWhite][PieceKing] = maskCell[position.E1]

	p.pieces[SideBlack][PiecePawn] = maskRow[position.Rank7]
	p.pieces[SideBlack][PieceRook] = maskCell[position.A8] | maskCell[position.H8]
	p.pieces[SideBlack][PieceKnight] = maskCell[position.B8] | maskCell[position.G8]
	p.pieces[SideBlack][PieceBishop] = maskCell[position.C8] | maskCell[position.F8]
	p.pieces[SideBlack][PieceQueen] = maskCell[position.D8]
	p.pieces[SideBlack][PieceKing] = maskCell[position.E8]

	p.rebuildOccupancy()
	return p
}

// NewPositionFromFields builds a Position from explicit field values. The
// pieces array is indexed by Side and Piece with index 0 on both axes unused.
// It rejects placements where a square is claimed by more than one
// (side, piece) set, where either king is missing or duplicated, where a
// castling right is set without its king and rook on their home squares, or
// where the en passant target is not a valid skipped square for the side to
// move.
func NewPositionFromFields(
	turn Side,
	pieces [2 + 1][6 + 1]uint64,
	castleRights CastleRights,
	enPassant position.Pos,
	halfMoveClock uint64,
) (*Position, error) {
	if turn != SideWhite && turn != SideBlack {
		return nil, fmt.Errorf("%w: bad side to move", ErrInvalidPosition)
	}

	p := &Position{
		turn:          turn,
		castleRights:  castleRights,
		enPassant:     enPassant,
		halfMoveClock: halfMoveClock,
	}

	var seen bitmap
	for _, s := range []Side{SideWhite, SideBlack} {
		for pc := PiecePawn; pc <= PieceKing; pc++ {
			bm := bitmap(pieces[s][pc])
			if seen&bm != 0 {
				return nil, fmt.Errorf("%w: square occupied by more than one piece", ErrInvalidPosition)
			}
			seen |= bm
			p.pieces[s][pc] = bm
		}
		if p.pieces[s][PieceKing].BitCount() != 1 {
			return nil, fmt.Errorf("%w: %s must have exactly one king", ErrInvalidPosition, s)
		}
	}

	for _, d := range []CastleDirection{
		CastleDirectionWhiteRight, CastleDirectionWhiteLeft,
		CastleDirectionBlackRight, CastleDirectionBlackLeft,
	} {
		if !castleRights.IsAllowed(d) {
			continue
		}
		s := d.Side()
		if p.pieces[s][PieceKing]&maskCell[posCastling[d][PieceKing][0]] == 0 ||
			p.pieces[s][PieceRook]&maskCell[posCastling[d][PieceRook][0]] == 0 {
			return nil, fmt.Errorf("%w: %s right without king and rook at home", ErrInvalidPosition, d)
		}
	}

	if enPassant != NoEnPassant {
		wantRank := position.Rank6
		if turn == SideBlack {
			wantRank = position.Rank3
		}
		if enPassant < 0 || enPassant >= TotalCells || enPassant.Y() != wantRank {
			return nil, fmt.Errorf("%w: bad en passant target", ErrInvalidPosition)
		}
	}

	p.rebuildOccupancy()
	return p, nil
}

func (p *Position) rebuildOccupancy() {
	for _, s := range []Side{SideWhite, SideBlack} {
		p.sides[s] = Union(
			p.pieces[s][PiecePawn],
			p.pieces[s][PieceBishop],
			p.pieces[s][PieceKnight],
			p.pieces[s][PieceRook],
			p.pieces[s][PieceQueen],
			p.pieces[s][PieceKing],
		)
	}
	p.occupied = p.sides[SideWhite] | p.sides[SideBlack]
}

// set flips a single (side, piece) square on or off, keeping the aggregate
// maps in sync. Only constructors and Apply (on its fresh copy) use it.
func (p *Position) set(s Side, pc Piece, pos position.Pos, value bool) {
	if value {
		p.pieces[s][pc].Set(pos)
		p.sides[s].Set(pos)
		p.occupied.Set(pos)
	} else {
		p.pieces[s][pc].Unset(pos)
		p.sides[s].Unset(pos)
		p.occupied.Unset(pos)
	}
}

func (p *Position) Turn() Side {
	return p.turn
}

func (p *Position) CastleRights() CastleRights {
	return p.castleRights
}

func (p *Position) EnPassant() position.Pos {
	return p.enPassant
}

func (p *Position) HalfMoveClock() uint64 {
	return p.halfMoveClock
}

// Bitboard returns the piece set for the given side and kind.
func (p *Position) Bitboard(s Side, pc Piece) uint64 {
	return uint64(p.pieces[s][pc])
}

// Occupied returns the aggregate occupancy of both sides.
func (p *Position) Occupied() uint64 {
	return uint64(p.occupied)
}

// IsOccupied reports whether any piece of either side sits on pos.
func (p *Position) IsOccupied(pos position.Pos) bool {
	return p.occupied&maskCell[pos] != 0
}

// Ownership returns the side occupying pos. Calling it on an empty square is
// a usage error and panics with ErrSquareEmpty.
func (p *Position) Ownership(pos position.Pos) Side {
	switch {
	case p.sides[SideWhite]&maskCell[pos] != 0:
		return SideWhite
	case p.sides[SideBlack]&maskCell[pos] != 0:
		return SideBlack
	default:
		panic(fmt.Errorf("%w: %s", ErrSquareEmpty, pos))
	}
}

// PieceAt returns the side and piece kind on pos, or the Unknown values when
// the square is empty.
func (p *Position) PieceAt(pos position.Pos) (Side, Piece) {
	if p.occupied&maskCell[pos] == 0 {
		return SideUnknown, PieceUnknown
	}
	s := p.Ownership(pos)
	for pc := PiecePawn; pc <= PieceKing; pc++ {
		if p.pieces[s][pc]&maskCell[pos] != 0 {
			return s, pc
		}
	}
	return s, PieceUnknown
}

// KingPos returns the square of the given side's king.
func (p *Position) KingPos(s Side) position.Pos {
	return p.pieces[s][PieceKing].LS1B()
}
