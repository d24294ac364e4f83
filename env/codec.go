// Package env exposes the auction draft as a stateful decision-making
// environment: one controlled owner acts one scalar action at a time while
// scripted opponents and the auction protocol advance around it.
package env

import "fmt"

// ActionNone is the canonical do-nothing action (player 0, bid 0).
const ActionNone = 0

// ActionCodec bijects a scalar action index and a (player index, bid amount)
// pair. The flattened space is player-major: index = player*(maxBid+1)+bid,
// a total, invertible mapping over [0, numPlayers*(maxBid+1)). Bid 0 is
// reserved as "no action" for every player row.
type ActionCodec struct {
	numPlayers int
	maxBid     int
}

// NewActionCodec sizes the action space for a draft with the given player
// count, starting budget, and roster length. The maximum meaningful bid
// reserves 1 unit for every roster slot beyond the one being bid on, so any
// in-range bid leaves enough to fill the rest of the roster at the floor.
func NewActionCodec(numPlayers, money, rosterSlots int) ActionCodec {
	return ActionCodec{
		numPlayers: numPlayers,
		maxBid:     money - (rosterSlots - 1),
	}
}

// MaxBid returns the largest encodable bid amount.
func (c ActionCodec) MaxBid() int { return c.maxBid }

// NumActions returns the size of the flattened action space.
func (c ActionCodec) NumActions() int { return c.numPlayers * (c.maxBid + 1) }

// Encode returns the action index for bidding the given amount on the given
// player. Out-of-range arguments are a programmer error and panic.
func (c ActionCodec) Encode(playerIdx, bid int) int {
	if playerIdx < 0 || playerIdx >= c.numPlayers {
		panic(fmt.Sprintf("env: encode: player index %d out of range [0, %d)", playerIdx, c.numPlayers))
	}
	if bid < 0 || bid > c.maxBid {
		panic(fmt.Sprintf("env: encode: bid %d out of range [0, %d]", bid, c.maxBid))
	}
	return playerIdx*(c.maxBid+1) + bid
}

// Decode returns the (player index, bid amount) pair for an action index.
// Out-of-range indices are a programmer error and panic; legality of the
// decoded pair is a separate concern owned by the auction protocol.
func (c ActionCodec) Decode(action int) (playerIdx, bid int) {
	if action < 0 || action >= c.NumActions() {
		panic(fmt.Sprintf("env: decode: action %d out of range [0, %d)", action, c.NumActions()))
	}
	return action / (c.maxBid + 1), action % (c.maxBid + 1)
}
