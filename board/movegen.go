package board

// Moves enumerates every legal move for the side to move. Candidates come
// from each piece's span (expanded into one candidate per promotable kind
// when a pawn reaches the last rank), then pass through the legality filter:
// a candidate is kept only if applying it leaves the mover's king out of the
// resulting opponent attack map. Illegal candidates are dropped silently.
func (p *Position) Moves() []Move {
	var mvs []Move
	for pc := PiecePawn; pc <= PieceKing; pc++ {
		for fromBM := p.pieces[p.turn][pc]; fromBM != 0; {
			from := fromBM.LS1B()
			fromBM &^= maskCell[from]

			for toBM := p.span(from, p.turn, pc); toBM != 0; {
				to := toBM.LS1B()
				toBM &^= maskCell[to]

				var candidates []Move
				if pc == PiecePawn && (maskRow[0]|maskRow[7])&maskCell[to] != 0 {
					for _, prom := range PawnPromoteCandidates {
						candidates = append(candidates, Move{
							Side:      p.turn,
							Piece:     pc,
							From:      from,
							To:        to,
							IsPromote: prom,
						})
					}
				} else {
					candidates = append(candidates, Move{
						Side:  p.turn,
						Piece: pc,
						From:  from,
						To:    to,
					})
				}

				for _, mv := range candidates {
					mv.IsEnPassant = pc == PiecePawn && to == p.enPassant
					mv.IsCapture = p.occupied&maskCell[to] != 0 || mv.IsEnPassant

					if p.Apply(mv).isKingChecked(p.turn) {
						continue
					}
					mvs = append(mvs, mv)
				}
			}
		}
	}

	// Castling is checked on the pre-move position: right still held, the
	// squares between king and rook empty, and the king's start, transit,
	// and destination squares out of the opponent's attack map.
	if p.castleRights.IsSideAllowed(p.turn) {
		oppositeAttackBM := p.attackMap(p.turn.Opposite())
		for _, d := range []CastleDirection{
			castleDirectionRight(p.turn),
			castleDirectionLeft(p.turn),
		} {
			if p.castleRights.IsAllowed(d) &&
				maskCastleOccupancy[d]&p.occupied == 0 &&
				maskCastleSafety[d]&oppositeAttackBM == 0 {
				mvs = append(mvs, Move{
					Side:     p.turn,
					Piece:    PieceKing,
					IsCastle: d,
				})
			}
		}
	}

	return mvs
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && len(p.Moves()) == 0
}

// IsStalemate reports whether the side to move is not in check yet has no
// legal moves.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && len(p.Moves()) == 0
}
