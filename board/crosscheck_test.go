package board

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// TestMovesAgainstReferenceGenerator walks every line from the initial
// position to a fixed depth and compares the enumerated move set against
// dragontoothmg square by square. Any divergence in pawn geometry, border
// handling, castling conditions, or the legality filter shows up as a move
// set mismatch on some line.
func TestMovesAgainstReferenceGenerator(t *testing.T) {
	t.Parallel()
	ref := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	crosscheckMoves(t, NewPosition(), &ref, 3, "")
}

func crosscheckMoves(t *testing.T, p *Position, ref *dragontoothmg.Board, depth int, line string) {
	t.Helper()

	mvs := p.Moves()
	got := make([]string, 0, len(mvs))
	byUCI := make(map[string]Move, len(mvs))
	for _, mv := range mvs {
		uci := uciString(mv)
		got = append(got, uci)
		byUCI[uci] = mv
	}

	refMvs := ref.GenerateLegalMoves()
	want := make([]string, 0, len(refMvs))
	for _, rm := range refMvs {
		want = append(want, rm.String())
	}

	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("move count mismatch after [%s]: got=%v want=%v", line, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("move set mismatch after [%s]: got=%v want=%v", line, got, want)
		}
	}

	if depth == 1 {
		return
	}
	for _, rm := range refMvs {
		uci := rm.String()
		q := p.Apply(byUCI[uci])
		unapply := ref.Apply(rm)
		crosscheckMoves(t, q, ref, depth-1, line+" "+uci)
		unapply()
	}
}

// uciString renders a move in coordinate notation, the form the reference
// generator speaks. Castles become the corresponding king hop.
func uciString(mv Move) string {
	if mv.IsCastle != CastleDirectionUnknown {
		hops := posCastling[mv.IsCastle][PieceKing]
		return hops[0].Notation() + hops[1].Notation()
	}
	s := mv.From.Notation() + mv.To.Notation()
	if mv.IsPromote != PieceUnknown {
		s += mv.IsPromote.Symbol(SideBlack)
	}
	return s
}
