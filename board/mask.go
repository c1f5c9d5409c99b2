package board

import (
	"golang.org/x/exp/constraints"

	"github.com/PlaviAjvar/hepek-chess-engine/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	maskCol = [Width]bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCell   [TotalCells]bitmap
	maskDia    [TotalCells]bitmap
	maskADia   [TotalCells]bitmap
	maskKnight [TotalCells]bitmap
	maskKing   [TotalCells]bitmap

	// maskCastleOccupancy covers the squares strictly between king and rook,
	// which must be empty; maskCastleSafety covers the king's start, transit,
	// and destination squares, which must not be attacked.
	maskCastleOccupancy = [4 + 1]bitmap{}
	maskCastleSafety    = [4 + 1]bitmap{}

	// posCastling holds the {from, to} hops of king and rook per direction.
	posCastling = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {
			PieceKing: {position.E1, position.G1},
			PieceRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteLeft: {
			PieceKing: {position.E1, position.C1},
			PieceRook: {position.A1, position.D1},
		},
		CastleDirectionBlackRight: {
			PieceKing: {position.E8, position.G8},
			PieceRook: {position.H8, position.F8},
		},
		CastleDirectionBlackLeft: {
			PieceKing: {position.E8, position.C8},
			PieceRook: {position.A8, position.D8},
		},
	}

	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}

	// Home squares of the rooks, indexed by side, used to derive castling
	// rights after a transition (covers a rook moving away or being captured
	// in place).
	posRookHomeRight = [2 + 1]position.Pos{
		SideWhite: position.H1,
		SideBlack: position.H8,
	}
	posRookHomeLeft = [2 + 1]position.Pos{
		SideWhite: position.A1,
		SideBlack: position.A8,
	}
)

func init() {
	initMask()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		mask := bitmap(0)
		x, y := pos%Width, pos/Width
		x, y = x-min(x, y), y-min(x, y)
		for x < Width && y < Height {
			mask |= bitmap(1 << (y*Width + x))
			x++
			y++
		}
		maskDia[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		mask := bitmap(0)
		x, y := pos%Width, pos/Width
		x, y = x-min(x, Height-y-1), y+min(x, Height-y-1)
		for x < Width && y >= 0 {
			mask |= bitmap(1 << (y*Width + x))
			x++
			y--
		}
		maskADia[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := bitmap(0)
		mask |= ShiftN(ShiftN(ShiftE(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[7])))
		mask |= ShiftN(ShiftN(ShiftW(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[0])))
		mask |= ShiftS(ShiftS(ShiftE(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[7])))
		mask |= ShiftS(ShiftS(ShiftW(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[0])))
		mask |= ShiftE(ShiftE(ShiftN(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[7])))
		mask |= ShiftE(ShiftE(ShiftS(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[0])))
		mask |= ShiftW(ShiftW(ShiftN(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[7])))
		mask |= ShiftW(ShiftW(ShiftS(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[0])))
		maskKnight[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := bitmap(0)
		mask |= ShiftN(cell &^ maskRow[7])
		mask |= ShiftNE(cell &^ maskRow[7] &^ maskCol[7])
		mask |= ShiftE(cell &^ maskCol[7])
		mask |= ShiftSE(cell &^ maskRow[0] &^ maskCol[7])
		mask |= ShiftS(cell &^ maskRow[0])
		mask |= ShiftSW(cell &^ maskRow[0] &^ maskCol[0])
		mask |= ShiftW(cell &^ maskCol[0])
		mask |= ShiftNW(cell &^ maskRow[7] &^ maskCol[0])
		maskKing[pos] = mask
	}

	maskCastleOccupancy = [4 + 1]bitmap{
		CastleDirectionWhiteRight: maskRow[0] & (maskCol[5] | maskCol[6]),
		CastleDirectionWhiteLeft:  maskRow[0] & (maskCol[1] | maskCol[2] | maskCol[3]),
		CastleDirectionBlackRight: maskRow[7] & (maskCol[5] | maskCol[6]),
		CastleDirectionBlackLeft:  maskRow[7] & (maskCol[1] | maskCol[2] | maskCol[3]),
	}
	maskCastleSafety = [4 + 1]bitmap{
		CastleDirectionWhiteRight: maskRow[0] & (maskCol[4] | maskCol[5] | maskCol[6]),
		CastleDirectionWhiteLeft:  maskRow[0] & (maskCol[2] | maskCol[3] | maskCol[4]),
		CastleDirectionBlackRight: maskRow[7] & (maskCol[4] | maskCol[5] | maskCol[6]),
		CastleDirectionBlackLeft:  maskRow[7] & (maskCol[2] | maskCol[3] | maskCol[4]),
	}
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}
