package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/PlaviAjvar/hepek-chess-engine/board"
)

// Result tallies the nodes reached at the requested depth, broken down by
// the flags on the leaf moves.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
}

// Perft counts the leaf nodes of the full legal move tree rooted at p. With
// verbose set, per-root-move subtotals are written to out; the summary line
// is always written when out is non-nil.
func Perft(p *board.Position, depth int, parallel, verbose bool, out chan string) Result {
	var nodes, cap, enp, cas, pro uint64

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(p, depth, true, verbose, out, &nodes, &cap, &enp, &cas, &pro)
	end := time.Now()

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d (%.3fs elapsed)",
				depth, nodes, int(float64(nodes)/end.Sub(start).Seconds()), cap, enp, cas, pro, end.Sub(start).Seconds())
	}

	return Result{
		Nodes:      nodes,
		Captures:   cap,
		EnPassants: enp,
		Castles:    cas,
		Promotions: pro,
	}
}

type perftFunc func(p *board.Position, d int, root, verbose bool, out chan string, nodes, cap, enp, cas, pro *uint64)

func runPerft(p *board.Position, d int, root, verbose bool, out chan string, nodes, cap, enp, cas, pro *uint64) {
	if d == 0 {
		*nodes++
		return
	}

	for _, mv := range p.Moves() {
		before := *nodes
		q := p.Apply(mv)
		if d != 1 {
			runPerft(q, d-1, false, verbose, out, nodes, cap, enp, cas, pro)
		} else {
			*nodes++
			if mv.IsCapture {
				*cap++
			}
			if mv.IsEnPassant {
				*enp++
			}
			if mv.IsCastle != board.CastleDirectionUnknown {
				*cas++
			}
			if mv.IsPromote != board.PieceUnknown {
				*pro++
			}
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv, *nodes-before)
		}
	}
}

func runPerftParallel(p *board.Position, d int, root, verbose bool, out chan string, nodes, cap, enp, cas, pro *uint64) {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return
	}

	var wg sync.WaitGroup
	for _, mv := range p.Moves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var sub uint64
			q := p.Apply(mv)
			if d != 1 {
				runPerftParallel(q, d-1, false, verbose, out, &sub, cap, enp, cas, pro)
				atomic.AddUint64(nodes, sub)
			} else {
				sub = 1
				atomic.AddUint64(nodes, 1)
				if mv.IsCapture {
					atomic.AddUint64(cap, 1)
				}
				if mv.IsEnPassant {
					atomic.AddUint64(enp, 1)
				}
				if mv.IsCastle != board.CastleDirectionUnknown {
					atomic.AddUint64(cas, 1)
				}
				if mv.IsPromote != board.PieceUnknown {
					atomic.AddUint64(pro, 1)
				}
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv, sub)
			}
		}()
	}
	wg.Wait()
}
