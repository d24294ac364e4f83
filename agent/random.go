package agent

import (
	"math/rand/v2"

	"github.com/chairbender/gym-fantasy-football-auction/auction"
)

// Random takes uniformly random legal actions: on its nomination turn it
// nominates a random affordable player at a random opening bid, and during
// bidding it raises by one unit half the time.
type Random struct {
	rng *rand.Rand
}

// NewRandom constructs a random agent with the given seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Reset implements Agent. Random holds no per-episode state.
func (r *Random) Reset() {}

// Act implements Agent.
func (r *Random) Act(a *auction.Auction, ownerIdx int) (int, int) {
	me := a.Owner(ownerIdx)
	players := a.Players()

	switch {
	case a.State() == auction.StateNominate && a.TurnIndex() == ownerIdx:
		var affordable []int
		for _, p := range a.UndraftedPlayers() {
			if me.CanBuy(players[p], 1) {
				affordable = append(affordable, p)
			}
		}
		if len(affordable) == 0 {
			return 0, 0
		}
		pick := affordable[r.rng.IntN(len(affordable))]
		return pick, 1 + r.rng.IntN(me.MaxBid())

	case a.State() == auction.StateBid:
		if a.WinningOwner() == ownerIdx || r.rng.IntN(2) == 0 {
			return 0, 0
		}
		nominee := a.NomineeIndex()
		if me.CanBuy(players[nominee], a.Bid()+1) {
			return nominee, a.Bid() + 1
		}
	}

	return 0, 0
}
