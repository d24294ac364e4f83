// Package agent implements draft participants that act on an auction:
// the scripted valuation-based bidder used as an opponent and correctness
// oracle, and a uniform-random bidder.
package agent

import "github.com/chairbender/gym-fantasy-football-auction/auction"

// Agent decides one action per environment step for the owner it controls.
//
// Act returns the player index to nominate or bid on and the amount; a zero
// amount means taking no action this turn. Agents are expected to return
// legal actions only; illegal returns are rejected by the auction and
// silently dropped.
type Agent interface {
	Act(a *auction.Auction, ownerIdx int) (playerIdx, bid int)

	// Reset clears any per-episode state. After Reset the agent must behave
	// as if freshly constructed, so instances can be reused across episodes.
	Reset()
}
