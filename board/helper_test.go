package board

import (
	"testing"

	"github.com/PlaviAjvar/hepek-chess-engine/position"
)

type placement struct {
	s   Side
	pc  Piece
	pos position.Pos
}

func mustPosition(
	t *testing.T,
	turn Side,
	placements []placement,
	castleRights CastleRights,
	enPassant position.Pos,
	halfMoveClock uint64,
) *Position {
	t.Helper()
	var pieces [2 + 1][6 + 1]uint64
	for _, pl := range placements {
		pieces[pl.s][pl.pc] |= 1 << pl.pos
	}
	p, err := NewPositionFromFields(turn, pieces, castleRights, enPassant, halfMoveClock)
	if err != nil {
		t.Fatalf("unexpected error building position: %v", err)
	}
	return p
}

func bmOf(sqs ...position.Pos) uint64 {
	var bm uint64
	for _, sq := range sqs {
		bm |= 1 << sq
	}
	return bm
}

// kings is the minimal legal scaffolding most scenarios build on.
func kings(whiteKing, blackKing position.Pos) []placement {
	return []placement{
		{SideWhite, PieceKing, whiteKing},
		{SideBlack, PieceKing, blackKing},
	}
}

func findMove(mvs []Move, from, to position.Pos) (Move, bool) {
	for _, mv := range mvs {
		if mv.IsCastle == CastleDirectionUnknown && mv.From == from && mv.To == to {
			return mv, true
		}
	}
	return Move{}, false
}

func findCastle(mvs []Move, d CastleDirection) (Move, bool) {
	for _, mv := range mvs {
		if mv.IsCastle == d {
			return mv, true
		}
	}
	return Move{}, false
}
