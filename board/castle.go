package board

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// Side returns the side the direction belongs to.
func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionWhiteRight, CastleDirectionWhiteLeft:
		return SideWhite
	case CastleDirectionBlackRight, CastleDirectionBlackLeft:
		return SideBlack
	default:
		return SideUnknown
	}
}

// CastleRights packs the four castling rights into one value, one bit per
// CastleDirection. A right is set only while the corresponding king and rook
// have not yet moved from their home squares; it is tracked across
// transitions, never recomputed from scratch.
type CastleRights uint8

// CastleRightsAll has every direction allowed, as in the starting position.
const CastleRightsAll CastleRights = 0b1111

func NewCastleRights(ds ...CastleDirection) CastleRights {
	var c CastleRights
	for _, d := range ds {
		c.Set(d, true)
	}
	return c
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}
