package board

import (
	"fmt"

	"github.com/PlaviAjvar/hepek-chess-engine/position"
)

// Span returns the squares the piece on from can move or capture to,
// accounting for board edges and blockers but not for king safety (the
// enumerator filters that). The named piece must occupy from for the given
// side; violating that is a usage error and panics with ErrPieceNotAtSquare.
func (p *Position) Span(from position.Pos, s Side, pc Piece) uint64 {
	return uint64(p.span(from, s, pc))
}

// AttackSet returns the squares the piece on from threatens. Identical to
// Span for every piece except pawns, which always threaten both forward
// diagonals regardless of occupancy.
func (p *Position) AttackSet(from position.Pos, s Side, pc Piece) uint64 {
	return uint64(p.attackSet(from, s, pc))
}

// AttackMap returns the union of attack sets over every piece the side has
// on the board. It serves king-safety and castling-safety checks only.
func (p *Position) AttackMap(s Side) uint64 {
	return uint64(p.attackMap(s))
}

// InCheck reports whether the side to move has its king attacked.
func (p *Position) InCheck() bool {
	return p.isKingChecked(p.turn)
}

func (p *Position) isKingChecked(s Side) bool {
	return p.pieces[s][PieceKing]&p.attackMap(s.Opposite()) != 0
}

func (p *Position) attackMap(s Side) bitmap {
	attackBM := bitmap(0)
	for pc := PiecePawn; pc <= PieceKing; pc++ {
		for pieceBM := p.pieces[s][pc]; pieceBM != 0; {
			pos := pieceBM.LS1B()
			pieceBM &^= maskCell[pos]
			attackBM |= p.attackSet(pos, s, pc)
		}
	}
	return attackBM
}

func (p *Position) span(from position.Pos, s Side, pc Piece) bitmap {
	p.assertPieceAt(from, s, pc)
	switch pc {
	case PiecePawn:
		return p.spanPawn(from, s)
	case PieceBishop:
		return hitDiagonals(from, p.occupied) &^ p.sides[s]
	case PieceKnight:
		return maskKnight[from] &^ p.sides[s]
	case PieceRook:
		return hitLaterals(from, p.occupied) &^ p.sides[s]
	case PieceQueen:
		return (hitDiagonals(from, p.occupied) | hitLaterals(from, p.occupied)) &^ p.sides[s]
	case PieceKing:
		return maskKing[from] &^ p.sides[s]
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownPiece, pc))
	}
}

// spanPawn builds pushes and captures with border-masked shifts, so offsets
// can never wrap across files. The double push requires both squares ahead
// to be empty and the pawn to stand on its home rank.
func (p *Position) spanPawn(from position.Pos, s Side) bitmap {
	cell := maskCell[from]
	var maskEnPassant bitmap
	if p.enPassant != NoEnPassant {
		maskEnPassant = maskCell[p.enPassant]
	}
	if s == SideWhite {
		moveN1 := ShiftN(cell&^maskRow[7]) &^ p.occupied
		moveN2 := ShiftN(moveN1&maskRow[2]) &^ p.occupied
		captureNW := ShiftNW(cell&^maskRow[7]&^maskCol[0]) & (p.sides[SideBlack] | maskEnPassant)
		captureNE := ShiftNE(cell&^maskRow[7]&^maskCol[7]) & (p.sides[SideBlack] | maskEnPassant)
		return moveN1 | moveN2 | captureNW | captureNE
	}
	moveS1 := ShiftS(cell&^maskRow[0]) &^ p.occupied
	moveS2 := ShiftS(moveS1&maskRow[5]) &^ p.occupied
	captureSW := ShiftSW(cell&^maskRow[0]&^maskCol[0]) & (p.sides[SideWhite] | maskEnPassant)
	captureSE := ShiftSE(cell&^maskRow[0]&^maskCol[7]) & (p.sides[SideWhite] | maskEnPassant)
	return moveS1 | moveS2 | captureSW | captureSE
}

func (p *Position) attackSet(from position.Pos, s Side, pc Piece) bitmap {
	if pc != PiecePawn {
		return p.span(from, s, pc)
	}
	p.assertPieceAt(from, s, pc)
	cell := maskCell[from]
	if s == SideWhite {
		return ShiftNW(cell&^maskCol[0]) | ShiftNE(cell&^maskCol[7])
	}
	return ShiftSW(cell&^maskCol[0]) | ShiftSE(cell&^maskCol[7])
}

func (p *Position) assertPieceAt(from position.Pos, s Side, pc Piece) {
	if pc < PiecePawn || PieceKing < pc {
		panic(fmt.Errorf("%w: %d", ErrUnknownPiece, pc))
	}
	if p.pieces[s][pc]&maskCell[from] == 0 {
		panic(fmt.Errorf("%w: no %s %s at %s", ErrPieceNotAtSquare, s, pc, from))
	}
}
