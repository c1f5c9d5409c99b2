package board

// Apply is the pure transition function: it reads the receiver and returns a
// brand-new Position with the move played, leaving the receiver untouched.
// The move must be consistent with the receiver (the enumerator guarantees
// this); applying an inconsistent move is undefined.
func (p *Position) Apply(mv Move) *Position {
	q := *p
	s := mv.Side

	if mv.IsCastle != CastleDirectionUnknown {
		// The direction alone determines the mover.
		s = mv.IsCastle.Side()
		hopsKing := posCastling[mv.IsCastle][PieceKing]
		hopsRook := posCastling[mv.IsCastle][PieceRook]
		q.set(s, PieceKing, hopsKing[0], false)
		q.set(s, PieceRook, hopsRook[0], false)
		q.set(s, PieceKing, hopsKing[1], true)
		q.set(s, PieceRook, hopsRook[1], true)

		q.castleRights.Set(castleDirectionRight(s), false)
		q.castleRights.Set(castleDirectionLeft(s), false)
	} else {
		q.set(s, mv.Piece, mv.From, false)

		if mv.IsCapture {
			if mv.IsEnPassant {
				// The captured pawn sits behind the destination, not on it.
				targetPawnPos := mv.To - Width
				if s == SideBlack {
					targetPawnPos = mv.To + Width
				}
				q.set(s.Opposite(), PiecePawn, targetPawnPos, false)
			} else {
				for pc := PiecePawn; pc <= PieceKing; pc++ {
					q.set(s.Opposite(), pc, mv.To, false)
				}
			}
		}

		if mv.IsPromote == PieceUnknown {
			q.set(s, mv.Piece, mv.To, true)
		} else {
			q.set(s, mv.IsPromote, mv.To, true)
		}

		if mv.Piece == PieceKing {
			q.castleRights.Set(castleDirectionRight(s), false)
			q.castleRights.Set(castleDirectionLeft(s), false)
		}
	}

	// A rook off its home square, moved or captured in place, forfeits the
	// corresponding right for either side.
	for _, side := range []Side{SideWhite, SideBlack} {
		if q.pieces[side][PieceRook]&maskCell[posRookHomeRight[side]] == 0 {
			q.castleRights.Set(castleDirectionRight(side), false)
		}
		if q.pieces[side][PieceRook]&maskCell[posRookHomeLeft[side]] == 0 {
			q.castleRights.Set(castleDirectionLeft(side), false)
		}
	}

	// The target is consumable for exactly one move after a double push.
	q.enPassant = NoEnPassant
	if mv.IsCastle == CastleDirectionUnknown && mv.Piece == PiecePawn {
		if s == SideWhite && maskCell[mv.From]&maskRow[1] != 0 && maskCell[mv.To]&maskRow[3] != 0 {
			q.enPassant = mv.To - Width
		} else if s == SideBlack && maskCell[mv.From]&maskRow[6] != 0 && maskCell[mv.To]&maskRow[4] != 0 {
			q.enPassant = mv.To + Width
		}
	}

	if mv.Piece == PiecePawn || mv.IsCapture {
		q.halfMoveClock = 0
	} else {
		q.halfMoveClock++
	}

	q.turn = s.Opposite()

	return &q
}

func castleDirectionRight(s Side) CastleDirection {
	if s == SideWhite {
		return CastleDirectionWhiteRight
	}
	return CastleDirectionBlackRight
}

func castleDirectionLeft(s Side) CastleDirection {
	if s == SideWhite {
		return CastleDirectionWhiteLeft
	}
	return CastleDirectionBlackLeft
}
