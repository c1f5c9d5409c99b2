package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/PlaviAjvar/hepek-chess-engine/position"
)

var (
	drawCellDark  = color.New(color.FgBlack, color.BgGreen)
	drawCellLight = color.New(color.FgBlack, color.BgHiWhite)
	drawLabel     = color.New(color.Bold)
)

// Dump renders the position as a plain ASCII grid for debugging.
func (p *Position) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			s, pc := p.PieceAt(y*Width + x)
			sym := pc.Symbol(s)
			if s == SideUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the position as a colored terminal board for debugging.
func (p *Position) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			s, pc := p.PieceAt(y*Width + x)
			sym := pc.SymbolUnicode(s)
			if pc == PieceUnknown {
				sym = " "
			}
			cell := drawCellLight
			if x%2^y%2 == 0 {
				cell = drawCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// DumpOccupied renders the aggregate occupancy of both sides as a bitmap
// grid for debugging.
func (p *Position) DumpOccupied() string {
	return p.occupied.Dump()
}

// DumpEnPassant renders the en passant target square, if any.
func (p *Position) DumpEnPassant() string {
	var bm bitmap
	if p.enPassant != NoEnPassant {
		bm.Set(p.enPassant)
	}
	return bm.Dump('x')
}

// DebugString summarizes the non-placement fields.
func (p *Position) DebugString() string {
	enPassant := "-"
	if p.enPassant != NoEnPassant {
		enPassant = p.enPassant.Notation()
	}
	return fmt.Sprintf("turn: %s\ncast: %04b\n  ep: %s\nhalf: %4d", p.turn, p.castleRights, enPassant, p.halfMoveClock)
}
