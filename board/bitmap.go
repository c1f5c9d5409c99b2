package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/PlaviAjvar/hepek-chess-engine/position"
)

// bitmap is a 64-bit piece set: bit i is set when square i (LERF, a1=0) is
// occupied by the piece kind and side the set belongs to.
type bitmap uint64

func reverse(bm bitmap) bitmap {
	return bitmap(bits.Reverse64(uint64(bm)))
}

func ShiftNW(bm bitmap) bitmap {
	return bm << 7
}

func ShiftN(bm bitmap) bitmap {
	return bm << 8
}

func ShiftNE(bm bitmap) bitmap {
	return bm << 9
}

func ShiftE(bm bitmap) bitmap {
	return bm << 1
}

func ShiftSE(bm bitmap) bitmap {
	return bm >> 7
}

func ShiftS(bm bitmap) bitmap {
	return bm >> 8
}

func ShiftSW(bm bitmap) bitmap {
	return bm >> 9
}

func ShiftW(bm bitmap) bitmap {
	return bm >> 1
}

func Union(bms ...bitmap) bitmap {
	var u bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func hitDiagonals(pos position.Pos, occupied bitmap) bitmap {
	return ScanHit(maskCell[pos], occupied, maskDia[pos]) | ScanHit(maskCell[pos], occupied, maskADia[pos])
}

func hitLaterals(pos position.Pos, occupied bitmap) bitmap {
	return ScanHit(maskCell[pos], occupied, maskCol[pos.X()]) | ScanHit(maskCell[pos], occupied, maskRow[pos.Y()])
}

// ScanHit ray-casts along mask in both directions from cell, stopping at and
// including the first blocker, using the o^(o-2r) trick.
func ScanHit(cell, occupied, mask bitmap) bitmap {
	blocker := occupied & mask
	return ((blocker - 2*cell) ^ reverse(reverse(blocker)-2*reverse(cell))) & mask
}

func (bm *bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

// LS1B returns the position of the lowest set bit.
func (bm bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

func (bm bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

func (bm bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.Pos(Height); y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < Width; x++ {
			if bm&maskCell[(y-1)*Width+x] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
