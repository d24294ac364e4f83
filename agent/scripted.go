package agent

import (
	"math"
	"math/rand/v2"

	"github.com/chairbender/gym-fantasy-football-auction/auction"
)

// Scripted bids toward a noisy estimate of each player's value.
//
// On its nomination turn it valuates every affordable undrafted player,
// nominates the best at half its target, and then raises toward the target
// in random increments while outbid. The target player and amount persist
// across BID turns until a different lot makes them stale.
type Scripted struct {
	money      int     // starting budget; valuations rescale from the reference budget
	inaccuracy float64 // half-width of the uniform noise band around 1.0
	stddev     float64 // gaussian perturbation applied on top of the band draw

	rng *rand.Rand

	target       float64
	targetPlayer int // player index, -1 when no target is held
}

// NewScripted constructs a scripted agent for an owner starting with the
// given budget. inaccuracy and stddev control the valuation noise; seed
// fixes the agent's private randomness.
func NewScripted(money int, inaccuracy, stddev float64, seed uint64) *Scripted {
	return &Scripted{
		money:        money,
		inaccuracy:   inaccuracy,
		stddev:       stddev,
		rng:          rand.New(rand.NewPCG(seed, seed)),
		targetPlayer: -1,
	}
}

// Reset clears the remembered target so the agent starts the next episode
// as if freshly constructed.
func (s *Scripted) Reset() {
	s.target = 0
	s.targetPlayer = -1
}

// valuation estimates what the player is worth to this agent: the listed
// value scaled by a noise fraction drawn uniformly in [1-inaccuracy,
// 1+inaccuracy] and perturbed with gaussian noise, rescaled from the
// reference budget to the agent's own starting budget.
func (s *Scripted) valuation(p auction.Player) float64 {
	f := 1 - s.inaccuracy + s.rng.Float64()*(2*s.inaccuracy)
	f += s.rng.NormFloat64() * s.stddev
	return float64(p.Value) * f * float64(s.money) / auction.ReferenceBudget
}

// Act implements Agent.
func (s *Scripted) Act(a *auction.Auction, ownerIdx int) (int, int) {
	me := a.Owner(ownerIdx)
	players := a.Players()

	switch {
	case a.State() == auction.StateNominate && a.TurnIndex() == ownerIdx:
		best := -1
		bestVal := math.Inf(-1)
		for _, p := range a.UndraftedPlayers() {
			if !me.CanBuy(players[p], 1) {
				continue // unaffordable players are unselectable
			}
			if v := s.valuation(players[p]); v > bestVal {
				best, bestVal = p, v
			}
		}
		if best == -1 {
			// Nothing affordable: take no action and let the protocol's
			// no-nomination recovery handle the empty turn.
			return 0, 0
		}
		s.target = clamp(bestVal, 1, float64(me.MaxBid()))
		s.targetPlayer = best
		open := int(math.Round(s.target / 2))
		if open < 1 {
			open = 1
		}
		return best, open

	case a.State() == auction.StateBid:
		nominee := a.NomineeIndex()
		bid := a.Bid()

		// A different lot than the remembered target: re-valuate if we can
		// still afford the minimum raise.
		if s.targetPlayer != nominee && me.CanBuy(players[nominee], bid+1) {
			s.target = s.valuation(players[nominee])
			s.targetPlayer = nominee
		}

		// Walk up toward the target while outbid.
		if float64(bid) < s.target && a.WinningOwner() != ownerIdx {
			inc := int(math.Round(s.uniform(1, s.target-float64(bid))))
			if inc < 1 {
				inc = 1
			}
			if me.CanBuy(players[nominee], bid+inc) {
				return nominee, bid + inc
			}
		}
	}

	return 0, 0
}

// uniform draws from [lo, hi] regardless of argument order.
func (s *Scripted) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
