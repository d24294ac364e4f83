package auction

import (
	"fmt"
	"strings"
)

// String returns a human-readable dump of the auction state: the turn
// machine, the active lot, and each owner's budget and roster.
func (a *Auction) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "state: %s  turn: owner %d\n", a.state, a.turn)
	if a.nominee != -1 {
		fmt.Fprintf(&b, "lot: %s (%s) at %d to owner %d\n",
			a.players[a.nominee].Name, a.players[a.nominee].Pos, a.bid, a.leader)
	} else {
		b.WriteString("lot: none\n")
	}
	fmt.Fprintf(&b, "undrafted: %d players\n", len(a.UndraftedPlayers()))

	for i, o := range a.owners {
		fmt.Fprintf(&b, "owner %d  budget %d  open %d\n", i, o.budget, o.open)
		for s, slot := range a.roster {
			p := o.slotPlayers[s]
			if p == -1 {
				fmt.Fprintf(&b, "  %-5s --\n", slot.Name)
				continue
			}
			fmt.Fprintf(&b, "  %-5s %s ($%d)\n", slot.Name, a.players[p].Name, o.slotPrices[s])
		}
	}
	return b.String()
}
