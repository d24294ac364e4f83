package env

import (
	"math/bits"

	"github.com/chairbender/gym-fantasy-football-auction/auction"
)

// Mask is a bitset over the flattened action space. Word i bit j covers
// action i*64+j.
type Mask []uint64

func newMask(n int) Mask {
	return make(Mask, (n+63)/64)
}

// Set marks action i legal.
func (m Mask) Set(i int) {
	m[i/64] |= 1 << (uint(i) % 64)
}

// Get reports whether action i is legal.
func (m Mask) Get(i int) bool {
	return m[i/64]&(1<<(uint(i)%64)) != 0
}

// List returns the legal action indices in ascending order.
func (m Mask) List() []int {
	var out []int
	for w, word := range m {
		for word != 0 {
			out = append(out, w*64+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
	return out
}

// LegalActions computes the mask of currently legal actions for the
// controlled owner from the live auction state. Nothing is cached: each call
// reflects the state at the moment of the call.
//
// In NOMINATE on the controlled owner's turn with no lot pending the legal
// set is every (draftable player, bid in [1, max affordable]) pair and
// nothing else; the protocol demands a nomination, so the no-op is excluded.
// A nomination can already be pending in this state after a forced-nomination
// recovery, and then only the no-op is legal. In BID the no-op is always
// legal, plus every raise on the nominee up to the max affordable bid. In
// every other situation only the no-op is legal.
func (e *Env) LegalActions() Mask {
	m := newMask(e.codec.NumActions())
	a := e.auction
	me := a.Owner(0)
	players := a.Players()

	switch {
	case e.done || a.State() == auction.StateDone:
		m.Set(ActionNone)

	case a.State() == auction.StateNominate:
		if a.TurnIndex() != 0 || a.NomineeIndex() != -1 {
			m.Set(ActionNone)
			break
		}
		maxBid := me.MaxBid()
		for _, p := range a.UndraftedPlayers() {
			if !me.CanBuy(players[p], 1) {
				continue
			}
			for b := 1; b <= maxBid; b++ {
				m.Set(e.codec.Encode(p, b))
			}
		}

	case a.State() == auction.StateBid:
		m.Set(ActionNone)
		nominee := a.NomineeIndex()
		if me.CanBuy(players[nominee], a.Bid()+1) {
			for b := a.Bid() + 1; b <= me.MaxBid(); b++ {
				m.Set(e.codec.Encode(nominee, b))
			}
		}
	}
	return m
}
