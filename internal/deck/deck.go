// Package deck implements the 52-card swap-tail deck: a mutable permutation
// of card indices supporting O(1) random draw and O(1) reset, at the cost of
// an O(n) named pick used only for the handful of already-known cards.
package deck

import (
	"github.com/lox/podds/internal/cards"
	"github.com/lox/podds/internal/xorshift"
)

// Deck is a 52-slot mutable permutation of card indices. Slots [0, n) are
// "available"; slots [n, 52) hold previously-drawn or picked cards and are
// available again only after Reset raises n back up.
//
// Each deck owns an RNG so that independent workers never share mutable
// state.
type Deck struct {
	slots [cards.NumCards]int
	n     int
	rng   *xorshift.RNG
}

// New builds a fresh deck with all 52 cards available, seeded with seed.
func New(seed uint32) *Deck {
	d := &Deck{n: cards.NumCards, rng: xorshift.New(seed)}
	for i := range d.slots {
		d.slots[i] = i
	}
	return d
}

// Reset sets the number of available cards to n without reshuffling; the
// tail retains whatever cards were most recently drawn or picked, in
// whatever order they ended up in. Precondition: 0 <= n <= 52.
func (d *Deck) Reset(n int) {
	d.n = n
}

// Available returns the current count of drawable cards.
func (d *Deck) Available() int { return d.n }

// Draw removes a uniformly random available card and returns its index.
func (d *Deck) Draw() int {
	j := int(d.rng.RandBelow(uint32(d.n)))
	k := d.slots[j]
	d.n--
	d.slots[j] = d.slots[d.n]
	d.slots[d.n] = k
	return k
}

// Pick removes a specific card from the available prefix, swapping it into
// the tail exactly like Draw would have, had Draw happened to produce it.
// It is a no-op if c is not currently available; the caller is responsible
// for guaranteeing that known cards are distinct and have not already been
// removed.
func (d *Deck) Pick(c int) {
	for i := 0; i < d.n; i++ {
		if d.slots[i] == c {
			d.n--
			d.slots[i] = d.slots[d.n]
			d.slots[d.n] = c
			return
		}
	}
}
