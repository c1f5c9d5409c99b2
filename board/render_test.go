package board

import (
	"strings"
	"testing"

	"github.com/PlaviAjvar/hepek-chess-engine/position"
)

func TestDumpOccupied(t *testing.T) {
	t.Parallel()
	p := NewPosition()
	if got := strings.Count(p.DumpOccupied(), "#"); got != 32 {
		t.Errorf("unexpected occupied square count: got=%d want=32", got)
	}
}

func TestDumpEnPassant(t *testing.T) {
	t.Parallel()
	if got := strings.Count(NewPosition().DumpEnPassant(), "x"); got != 0 {
		t.Errorf("unexpected en passant marker on the initial board: got=%d want=0", got)
	}

	p := NewPosition().Apply(Move{Side: SideWhite, Piece: PiecePawn, From: position.E2, To: position.E4})
	if got := strings.Count(p.DumpEnPassant(), "x"); got != 1 {
		t.Errorf("unexpected en passant marker count: got=%d want=1", got)
	}
}
