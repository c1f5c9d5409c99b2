package board

import (
	"testing"

	"github.com/PlaviAjvar/hepek-chess-engine/position"
)

func TestMovesInitialPosition(t *testing.T) {
	t.Parallel()
	p := NewPosition()
	mvs := p.Moves()

	if got := len(mvs); got != 20 {
		t.Fatalf("unexpected move count: got=%d want=20", got)
	}

	var pawnMoves, knightMoves int
	for _, mv := range mvs {
		switch mv.Piece {
		case PiecePawn:
			pawnMoves++
		case PieceKnight:
			knightMoves++
		default:
			t.Errorf("unexpected moving piece: got=%v", mv.Piece)
		}
		if mv.IsCastle != CastleDirectionUnknown {
			t.Errorf("unexpected castle in the initial position: %v", mv)
		}
		if mv.IsCapture {
			t.Errorf("unexpected capture in the initial position: %v", mv)
		}
	}
	if pawnMoves != 16 {
		t.Errorf("unexpected pawn move count: got=%d want=16", pawnMoves)
	}
	if knightMoves != 4 {
		t.Errorf("unexpected knight move count: got=%d want=4", knightMoves)
	}
}

func TestMovesNeverLeaveOwnKingAttacked(t *testing.T) {
	t.Parallel()
	p := NewPosition()
	for _, mv := range p.Moves() {
		q := p.Apply(mv)
		if q.isKingChecked(mv.Side) {
			t.Fatalf("move %v leaves own king attacked", mv)
		}
		for _, mv2 := range q.Moves() {
			if q.Apply(mv2).isKingChecked(mv2.Side) {
				t.Fatalf("move %v then %v leaves own king attacked", mv, mv2)
			}
		}
	}
}

func TestMovesPinnedPieceFiltered(t *testing.T) {
	t.Parallel()
	// The e-file knight is pinned by the rook and must not appear in any
	// enumerated move.
	p := mustPosition(t, SideWhite, append(kings(position.E1, position.E8),
		placement{SideWhite, PieceKnight, position.E4},
		placement{SideBlack, PieceRook, position.E7},
	), 0, NoEnPassant, 0)

	for _, mv := range p.Moves() {
		if mv.Piece == PieceKnight {
			t.Errorf("pinned knight move enumerated: %v", mv)
		}
	}
}

func TestMovesCastlingConditions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		rights        CastleRights
		extra         []placement
		wantKingside  bool
		wantQueenside bool
	}{
		{
			name:          "both rights and clear paths",
			rights:        NewCastleRights(CastleDirectionWhiteRight, CastleDirectionWhiteLeft),
			wantKingside:  true,
			wantQueenside: true,
		},
		{
			name:          "kingside right missing",
			rights:        NewCastleRights(CastleDirectionWhiteLeft),
			wantKingside:  false,
			wantQueenside: true,
		},
		{
			name:          "queenside path occupied",
			rights:        NewCastleRights(CastleDirectionWhiteRight, CastleDirectionWhiteLeft),
			extra:         []placement{{SideWhite, PieceKnight, position.B1}},
			wantKingside:  true,
			wantQueenside: false,
		},
		{
			name:          "kingside transit square attacked",
			rights:        NewCastleRights(CastleDirectionWhiteRight, CastleDirectionWhiteLeft),
			extra:         []placement{{SideBlack, PieceRook, position.F8}},
			wantKingside:  false,
			wantQueenside: true,
		},
		{
			name:          "kingside destination attacked",
			rights:        NewCastleRights(CastleDirectionWhiteRight, CastleDirectionWhiteLeft),
			extra:         []placement{{SideBlack, PieceRook, position.G5}},
			wantKingside:  false,
			wantQueenside: true,
		},
		{
			name:          "king square attacked forbids both",
			rights:        NewCastleRights(CastleDirectionWhiteRight, CastleDirectionWhiteLeft),
			extra:         []placement{{SideBlack, PieceRook, position.E5}},
			wantKingside:  false,
			wantQueenside: false,
		},
		{
			name:          "attacked b1 does not forbid queenside",
			rights:        NewCastleRights(CastleDirectionWhiteRight, CastleDirectionWhiteLeft),
			extra:         []placement{{SideBlack, PieceRook, position.B5}},
			wantKingside:  true,
			wantQueenside: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			placements := append(kings(position.E1, position.E8),
				placement{SideWhite, PieceRook, position.A1},
				placement{SideWhite, PieceRook, position.H1},
			)
			placements = append(placements, tt.extra...)
			p := mustPosition(t, SideWhite, placements, tt.rights, NoEnPassant, 0)

			mvs := p.Moves()
			if _, got := findCastle(mvs, CastleDirectionWhiteRight); got != tt.wantKingside {
				t.Errorf("unexpected kingside castle availability: got=%v want=%v", got, tt.wantKingside)
			}
			if _, got := findCastle(mvs, CastleDirectionWhiteLeft); got != tt.wantQueenside {
				t.Errorf("unexpected queenside castle availability: got=%v want=%v", got, tt.wantQueenside)
			}
		})
	}
}

func TestMovesEnPassantOnlyImmediately(t *testing.T) {
	t.Parallel()
	p := mustPosition(t, SideBlack, append(kings(position.E1, position.E8),
		placement{SideWhite, PiecePawn, position.E5},
		placement{SideBlack, PiecePawn, position.D7},
		placement{SideBlack, PiecePawn, position.H7},
	), 0, NoEnPassant, 0)

	p = p.Apply(Move{Side: SideBlack, Piece: PiecePawn, From: position.D7, To: position.D5})
	if _, ok := findMove(p.Moves(), position.E5, position.D6); !ok {
		t.Fatal("expected en passant capture right after the double push")
	}

	// White declines; after any other pair of moves the window is gone.
	p = p.Apply(Move{Side: SideWhite, Piece: PieceKing, From: position.E1, To: position.D1})
	p = p.Apply(Move{Side: SideBlack, Piece: PiecePawn, From: position.H7, To: position.H6})
	if _, ok := findMove(p.Moves(), position.E5, position.D6); ok {
		t.Error("en passant capture must expire after one move")
	}
}

func TestMovesPromotionCandidates(t *testing.T) {
	t.Parallel()
	p := mustPosition(t, SideWhite, append(kings(position.E1, position.E8),
		placement{SideWhite, PiecePawn, position.B7},
	), 0, NoEnPassant, 0)

	seen := map[Piece]bool{}
	for _, mv := range p.Moves() {
		if mv.From != position.B7 {
			continue
		}
		if mv.To != position.B8 {
			t.Errorf("unexpected pawn destination: got=%v want=%v", mv.To, position.B8)
		}
		if mv.IsPromote == PieceUnknown {
			t.Errorf("normal move enumerated for a promoting destination: %v", mv)
			continue
		}
		if seen[mv.IsPromote] {
			t.Errorf("duplicate promotion candidate: %v", mv.IsPromote)
		}
		seen[mv.IsPromote] = true
	}
	if len(seen) != 4 {
		t.Errorf("unexpected promotion candidate count: got=%d want=4", len(seen))
	}
	for _, prom := range PawnPromoteCandidates {
		if !seen[prom] {
			t.Errorf("missing promotion candidate: %v", prom)
		}
	}
}

func TestMovesKingsKeepDistance(t *testing.T) {
	t.Parallel()
	p := mustPosition(t, SideWhite, kings(position.D3, position.D5), 0, NoEnPassant, 0)

	want := map[position.Pos]bool{
		position.C2: true,
		position.D2: true,
		position.E2: true,
		position.C3: true,
		position.E3: true,
	}
	mvs := p.Moves()
	if got := len(mvs); got != len(want) {
		t.Errorf("unexpected move count: got=%d want=%d", got, len(want))
	}
	for _, mv := range mvs {
		if !want[mv.To] {
			t.Errorf("move %v steps into the black king's attack range", mv)
		}
	}
}

func TestDerivedStates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		turn          Side
		placements    []placement
		wantState     State
		wantInCheck   bool
		wantCheckmate bool
		wantStalemate bool
	}{
		{
			name:       "running",
			turn:       SideWhite,
			placements: kings(position.E1, position.E8),
			wantState:  StateRunning,
		},
		{
			name: "check",
			turn: SideWhite,
			placements: append(kings(position.E1, position.E8),
				placement{SideBlack, PieceRook, position.E5},
			),
			wantState:   StateCheckWhite,
			wantInCheck: true,
		},
		{
			name: "checkmate",
			turn: SideBlack,
			placements: append(kings(position.G6, position.H8),
				placement{SideWhite, PieceQueen, position.G7},
			),
			wantState:     StateCheckmateBlack,
			wantInCheck:   true,
			wantCheckmate: true,
		},
		{
			name: "stalemate",
			turn: SideBlack,
			placements: append(kings(position.B5, position.A8),
				placement{SideWhite, PieceQueen, position.C7},
			),
			wantState:     StateStalemate,
			wantStalemate: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := mustPosition(t, tt.turn, tt.placements, 0, NoEnPassant, 0)
			if got := p.State(); got != tt.wantState {
				t.Errorf("unexpected state: got=%v want=%v", got, tt.wantState)
			}
			if got := p.InCheck(); got != tt.wantInCheck {
				t.Errorf("unexpected check: got=%v want=%v", got, tt.wantInCheck)
			}
			if got := p.IsCheckmate(); got != tt.wantCheckmate {
				t.Errorf("unexpected checkmate: got=%v want=%v", got, tt.wantCheckmate)
			}
			if got := p.IsStalemate(); got != tt.wantStalemate {
				t.Errorf("unexpected stalemate: got=%v want=%v", got, tt.wantStalemate)
			}
		})
	}
}
