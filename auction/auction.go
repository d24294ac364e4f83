// Package auction implements an English ascending-bid fantasy draft auction
// as a turn-based state machine.
//
// One player at a time is nominated for bidding (a "lot"); owners raise the
// leading bid until a tick passes with no raise, at which point the leading
// owner buys the nominee and the next nomination turn begins. Relations are
// index-based: owners and players live in flat slices and ownership is a
// player-index to owner-index mapping, so nothing in the graph is cyclic.
package auction

import (
	"errors"
	"fmt"
)

// State is the auction turn-machine state.
type State uint8

const (
	StateNominate State = iota // waiting for the turn owner to nominate a lot
	StateBid                   // a lot is up; owners may raise the leading bid
	StateDone                  // every roster is full
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNominate:
		return "NOMINATE"
	case StateBid:
		return "BID"
	case StateDone:
		return "DONE"
	}
	return "?"
}

// InvalidActionError reports a nomination or bid that violates turn order,
// affordability, or roster constraints. It is distinguishable from other
// failures via errors.As / IsInvalidAction.
type InvalidActionError struct {
	Op     string // "nominate" or "bid"
	Owner  int
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("auction: owner %d: invalid %s: %s", e.Owner, e.Op, e.Reason)
}

// IsInvalidAction reports whether err is (or wraps) an InvalidActionError.
func IsInvalidAction(err error) bool {
	var ia *InvalidActionError
	return errors.As(err, &ia)
}

// ErrNoNomination is returned by Tick when a nomination turn ends with
// nothing nominated. It is an invariant violation of the turn protocol, not
// an invalid action by any one owner.
var ErrNoNomination = errors.New("auction: nominate turn ended with no nomination")

// Sale records one resolved purchase.
type Sale struct {
	Owner  int // buying owner index
	Player int // player index
	Price  int
}

// Auction holds the complete state of one draft. Created fresh per episode;
// mutated exclusively through Nominate, PlaceBid, and Tick.
type Auction struct {
	players []Player
	roster  []RosterSlot
	owners  []*Owner

	// playerOwner maps player index to owning owner index, -1 if undrafted.
	// This is the canonical ownership relation.
	playerOwner []int

	state   State
	turn    int // owner whose turn it is to nominate
	nominee int // player index of the active lot, -1 if none
	bid     int // leading bid for the active lot, 0 if none
	leader  int // owner index of the leading bidder, -1 if none

	// bids holds each owner's standing bid for the active lot (0 = none).
	bids []int

	// raised is set by Nominate/PlaceBid and cleared by Tick; a BID tick
	// with raised still clear resolves the sale.
	raised bool
}

// NewAuction constructs a draft with numOwners owners, each starting with
// the given budget and required to fill the given roster. Misconfiguration
// is fatal at construction: every slot must accept at least one player, the
// budget must cover the roster at the 1-unit floor, and there must be enough
// players to fill every roster.
func NewAuction(players []Player, numOwners, budget int, roster []RosterSlot) (*Auction, error) {
	if numOwners < 2 {
		return nil, fmt.Errorf("auction: need at least 2 owners, got %d", numOwners)
	}
	if len(roster) == 0 {
		return nil, errors.New("auction: roster must have at least one slot")
	}
	if budget < len(roster) {
		return nil, fmt.Errorf("auction: budget %d cannot fill %d roster slots at the 1-unit floor", budget, len(roster))
	}
	if len(players) < numOwners*len(roster) {
		return nil, fmt.Errorf("auction: %d players cannot fill %d rosters of %d slots", len(players), numOwners, len(roster))
	}
	for i, slot := range roster {
		ok := false
		for _, p := range players {
			if slot.AcceptsPlayer(p) {
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("auction: roster slot %d (%s) accepts none of the loaded players", i, slot.Name)
		}
	}

	a := &Auction{
		players:     players,
		roster:      roster,
		owners:      make([]*Owner, numOwners),
		playerOwner: make([]int, len(players)),
		state:       StateNominate,
		nominee:     -1,
		leader:      -1,
		bids:        make([]int, numOwners),
	}
	for i := range a.playerOwner {
		a.playerOwner[i] = -1
	}
	for i := range a.owners {
		a.owners[i] = newOwner(players, roster, budget)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Read accessors
// ---------------------------------------------------------------------------

// State returns the current turn-machine state.
func (a *Auction) State() State { return a.state }

// TurnIndex returns the owner whose turn it is to nominate.
func (a *Auction) TurnIndex() int { return a.turn }

// NomineeIndex returns the player index of the active lot, or -1.
func (a *Auction) NomineeIndex() int { return a.nominee }

// Bid returns the leading bid for the active lot, 0 if no lot is active.
func (a *Auction) Bid() int { return a.bid }

// WinningOwner returns the owner index of the leading bidder, or -1.
func (a *Auction) WinningOwner() int { return a.leader }

// Bids returns each owner's standing bid for the active lot (0 = none).
// The returned slice is a copy.
func (a *Auction) Bids() []int {
	out := make([]int, len(a.bids))
	copy(out, a.bids)
	return out
}

// NumOwners returns the number of owners in the draft.
func (a *Auction) NumOwners() int { return len(a.owners) }

// Owner returns the owner at the given index.
func (a *Auction) Owner(i int) *Owner { return a.owners[i] }

// Players returns the full draftable player slice. Callers must not mutate it.
func (a *Auction) Players() []Player { return a.players }

// Roster returns the roster every owner must fill. Callers must not mutate it.
func (a *Auction) Roster() []RosterSlot { return a.roster }

// PlayerOwner returns the owner index that owns the given player, or -1.
func (a *Auction) PlayerOwner(playerIdx int) int { return a.playerOwner[playerIdx] }

// UndraftedPlayers returns the indices of all players not yet owned,
// in ascending index order.
func (a *Auction) UndraftedPlayers() []int {
	var out []int
	for i, o := range a.playerOwner {
		if o == -1 {
			out = append(out, i)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Nominate proposes the given player as the next lot with an opening bid.
// Legal only in the NOMINATE state, on the nominating owner's turn, for an
// undrafted player the owner can afford under the reserve rule.
func (a *Auction) Nominate(ownerIdx, playerIdx, bid int) error {
	return a.nominate(ownerIdx, playerIdx, bid, true)
}

// ForceNominate is Nominate without the turn-order check. It exists as a
// recovery path for a nomination turn that ended with no nomination (for
// example, the turn owner could not afford any undrafted player): the caller
// nominates on behalf of a different owner and the turn passes to them.
func (a *Auction) ForceNominate(ownerIdx, playerIdx, bid int) error {
	return a.nominate(ownerIdx, playerIdx, bid, false)
}

func (a *Auction) nominate(ownerIdx, playerIdx, bid int, enforceTurn bool) error {
	if ownerIdx < 0 || ownerIdx >= len(a.owners) {
		return &InvalidActionError{Op: "nominate", Owner: ownerIdx, Reason: "owner index out of range"}
	}
	if a.state != StateNominate {
		return &InvalidActionError{Op: "nominate", Owner: ownerIdx, Reason: fmt.Sprintf("state is %s, not NOMINATE", a.state)}
	}
	if enforceTurn && ownerIdx != a.turn {
		return &InvalidActionError{Op: "nominate", Owner: ownerIdx, Reason: fmt.Sprintf("it is owner %d's turn", a.turn)}
	}
	if a.nominee != -1 {
		return &InvalidActionError{Op: "nominate", Owner: ownerIdx, Reason: "a lot is already nominated"}
	}
	if playerIdx < 0 || playerIdx >= len(a.players) {
		return &InvalidActionError{Op: "nominate", Owner: ownerIdx, Reason: "player index out of range"}
	}
	if a.playerOwner[playerIdx] != -1 {
		return &InvalidActionError{Op: "nominate", Owner: ownerIdx, Reason: fmt.Sprintf("player %d is already drafted", playerIdx)}
	}
	if bid < 1 {
		return &InvalidActionError{Op: "nominate", Owner: ownerIdx, Reason: "opening bid must be at least 1"}
	}
	if !a.owners[ownerIdx].CanBuy(a.players[playerIdx], bid) {
		return &InvalidActionError{Op: "nominate", Owner: ownerIdx, Reason: fmt.Sprintf("cannot buy player %d for %d", playerIdx, bid)}
	}

	a.turn = ownerIdx
	a.nominee = playerIdx
	a.bid = bid
	a.leader = ownerIdx
	a.bids[ownerIdx] = bid
	a.raised = true
	return nil
}

// PlaceBid raises the leading bid on the active lot. Legal only in the BID
// state with an amount strictly above the leading bid and within the owner's
// reserve-rule maximum.
func (a *Auction) PlaceBid(ownerIdx, amount int) error {
	if ownerIdx < 0 || ownerIdx >= len(a.owners) {
		return &InvalidActionError{Op: "bid", Owner: ownerIdx, Reason: "owner index out of range"}
	}
	if a.state != StateBid {
		return &InvalidActionError{Op: "bid", Owner: ownerIdx, Reason: fmt.Sprintf("state is %s, not BID", a.state)}
	}
	if amount <= a.bid {
		return &InvalidActionError{Op: "bid", Owner: ownerIdx, Reason: fmt.Sprintf("bid %d does not exceed the leading bid %d", amount, a.bid)}
	}
	if !a.owners[ownerIdx].CanBuy(a.players[a.nominee], amount) {
		return &InvalidActionError{Op: "bid", Owner: ownerIdx, Reason: fmt.Sprintf("cannot buy the nominee for %d", amount)}
	}

	a.bid = amount
	a.leader = ownerIdx
	a.bids[ownerIdx] = amount
	a.raised = true
	return nil
}

// Tick advances the auction one turn.
//
// In the NOMINATE state it moves the nominated lot into bidding, or returns
// ErrNoNomination if nothing was nominated. In the BID state it either keeps
// the lot open (a raise happened since the previous tick) or resolves the
// sale to the leading bidder; the resolved Sale is returned so callers can
// update derived state at exactly that moment. A nil Sale means no purchase
// resolved on this tick.
func (a *Auction) Tick() (*Sale, error) {
	switch a.state {
	case StateDone:
		return nil, nil

	case StateNominate:
		if a.nominee == -1 {
			return nil, ErrNoNomination
		}
		a.state = StateBid
		a.raised = false
		return nil, nil

	default: // StateBid
		if a.raised {
			a.raised = false
			return nil, nil
		}
		sale := &Sale{Owner: a.leader, Player: a.nominee, Price: a.bid}
		a.owners[a.leader].buy(a.nominee, a.players[a.nominee], a.bid)
		a.playerOwner[a.nominee] = a.leader

		a.nominee = -1
		a.bid = 0
		a.leader = -1
		for i := range a.bids {
			a.bids[i] = 0
		}

		if a.allRostersFull() {
			a.state = StateDone
		} else {
			a.state = StateNominate
			a.advanceTurn()
		}
		return sale, nil
	}
}

// allRostersFull reports whether every owner has filled every roster slot.
func (a *Auction) allRostersFull() bool {
	for _, o := range a.owners {
		if o.OpenSlots() > 0 {
			return false
		}
	}
	return true
}

// advanceTurn passes the nomination turn to the next owner with open slots.
func (a *Auction) advanceTurn() {
	for i := 1; i <= len(a.owners); i++ {
		next := (a.turn + i) % len(a.owners)
		if a.owners[next].OpenSlots() > 0 {
			a.turn = next
			return
		}
	}
}
