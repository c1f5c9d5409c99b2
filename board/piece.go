package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// Symbol returns the single-letter symbol for the piece, uppercase for White
// and lowercase for Black. Used by the debug renderers only.
func (p Piece) Symbol(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}
