package simulator

import (
	"github.com/lox/podds/internal/deck"
	"github.com/lox/podds/internal/handeval"
)

// Counters holds the twelve outcome/category tallies described by the
// project's data model: index 0..2 are loss/draw/win, index 3..11 are the
// nine hand categories (handeval.HighCard .. handeval.StraightFlush).
type Counters [12]int64

func (c *Counters) add(other *Counters) {
	for i := range c {
		c[i] += other[i]
	}
}

// OutcomeTotal returns counters[Loss]+counters[Draw]+counters[Win].
func (c Counters) OutcomeTotal() int64 {
	return c[handeval.Loss] + c[handeval.Draw] + c[handeval.Win]
}

// CategoryTotal returns the sum of the nine hand-category counters.
func (c Counters) CategoryTotal() int64 {
	var total int64
	for cat := handeval.HighCard; cat <= handeval.StraightFlush; cat++ {
		total += c[cat]
	}
	return total
}

// worker owns a private deck (and, inside it, a private RNG), scratch space
// for opponent hole cards, the target player's seven drawn cards, and a
// working buffer used to re-sort each candidate hand. None of this state is
// ever shared with another worker.
type worker struct {
	deck    *deck.Deck
	players int
	known   int
	opp     []int
	myas    [7]int
	cs      [7]int
}

func newWorker(players int, knownCards []int, seed uint32) *worker {
	d := deck.New(seed)
	w := &worker{
		deck:    d,
		players: players,
		known:   len(knownCards),
		opp:     make([]int, 2*(players-1)),
	}
	for i, c := range knownCards {
		d.Pick(c)
		w.myas[i] = c
	}
	return w
}

// run plays games independent games and returns the local tallies. It
// allocates nothing beyond its own construction: every buffer is reused
// across iterations.
func (w *worker) run(games int) Counters {
	var local Counters

	for i := 0; i < games; i++ {
		w.deck.Reset(52 - w.known)

		for j := range w.opp {
			w.opp[j] = w.deck.Draw()
		}
		for j := w.known; j < 7; j++ {
			w.myas[j] = w.deck.Draw()
		}

		copy(w.cs[:], w.myas[:])
		handeval.SortDescending(w.cs[:])
		target := handeval.Eval7(w.cs)

		result := handeval.Win
		for j := 0; j < w.players-1; j++ {
			w.cs[0] = w.opp[2*j]
			w.cs[1] = w.opp[2*j+1]
			copy(w.cs[2:], w.myas[2:7])
			handeval.SortDescending(w.cs[:])

			if r := handeval.Compare7(w.cs, target); r < result {
				result = r
			}
			if result == handeval.Loss {
				break
			}
		}

		local[result]++
		local[handeval.Category(target)]++
	}

	return local
}
