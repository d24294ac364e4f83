package auction

// Owner is one draft participant: a remaining budget and a set of roster
// slots filled with purchased players. Slot assignments are parallel slices
// indexed by roster-slot position.
type Owner struct {
	players []Player     // shared, immutable
	roster  []RosterSlot // shared, immutable

	budget int

	// slotPlayers[i] is the player index filling roster slot i, -1 if open.
	// slotPrices[i] is the purchase price paid for that slot.
	slotPlayers []int
	slotPrices  []int
	open        int
}

func newOwner(players []Player, roster []RosterSlot, budget int) *Owner {
	o := &Owner{
		players:     players,
		roster:      roster,
		budget:      budget,
		slotPlayers: make([]int, len(roster)),
		slotPrices:  make([]int, len(roster)),
		open:        len(roster),
	}
	for i := range o.slotPlayers {
		o.slotPlayers[i] = -1
	}
	return o
}

// Budget returns the owner's remaining budget.
func (o *Owner) Budget() int { return o.budget }

// OpenSlots returns the number of unfilled roster slots.
func (o *Owner) OpenSlots() int { return o.open }

// SlotPlayer returns the player index filling roster slot i, or -1 if open.
func (o *Owner) SlotPlayer(i int) int { return o.slotPlayers[i] }

// SlotPrice returns the price paid for roster slot i, 0 if open.
func (o *Owner) SlotPrice(i int) int { return o.slotPrices[i] }

// MaxBid returns the most the owner may bid on any single player under the
// reserve rule: 1 unit must remain for every other open slot. Returns 0 when
// the roster is full.
func (o *Owner) MaxBid() int {
	if o.open == 0 {
		return 0
	}
	return o.budget - (o.open - 1)
}

// CanBuy reports whether the owner could legally buy the player for the
// given amount: an open slot accepts the player's position and the amount is
// within [1, MaxBid].
func (o *Owner) CanBuy(p Player, amount int) bool {
	if amount < 1 || amount > o.MaxBid() {
		return false
	}
	return o.hasOpenSlotFor(p)
}

func (o *Owner) hasOpenSlotFor(p Player) bool {
	for i, slot := range o.roster {
		if o.slotPlayers[i] == -1 && slot.AcceptsPlayer(p) {
			return true
		}
	}
	return false
}

// buy fills the first open compatible slot in roster order and deducts the
// price. The caller must have validated the purchase via CanBuy.
func (o *Owner) buy(playerIdx int, p Player, price int) {
	for i, slot := range o.roster {
		if o.slotPlayers[i] == -1 && slot.AcceptsPlayer(p) {
			o.slotPlayers[i] = playerIdx
			o.slotPrices[i] = price
			o.budget -= price
			o.open--
			return
		}
	}
}
