package auction

// Position identifies a player's position category.
type Position uint8

const (
	QB Position = iota
	RB
	WR
	TE
	K
	DST

	NumPositions = 6
)

// String returns the conventional abbreviation for the position.
func (p Position) String() string {
	switch p {
	case QB:
		return "QB"
	case RB:
		return "RB"
	case WR:
		return "WR"
	case TE:
		return "TE"
	case K:
		return "K"
	case DST:
		return "DST"
	}
	return "?"
}

// ParsePosition maps an abbreviation to a Position. Trailing digits are
// ignored so ranked cheatsheet forms like "RB12" parse cleanly.
func ParsePosition(s string) (Position, bool) {
	// Strip trailing rank digits.
	end := len(s)
	for end > 0 && s[end-1] >= '0' && s[end-1] <= '9' {
		end--
	}
	switch s[:end] {
	case "QB":
		return QB, true
	case "RB":
		return RB, true
	case "WR":
		return WR, true
	case "TE":
		return TE, true
	case "K":
		return K, true
	case "DST", "DEF", "D/ST":
		return DST, true
	}
	return 0, false
}

// PositionMask is a bitmask over Position values, one bit per position.
type PositionMask uint8

// MaskOf builds a PositionMask from the given positions.
func MaskOf(positions ...Position) PositionMask {
	var m PositionMask
	for _, p := range positions {
		m |= 1 << p
	}
	return m
}

// Has reports whether the mask includes the given position.
func (m PositionMask) Has(p Position) bool { return m&(1<<p) != 0 }

// MaskAny accepts every position.
const MaskAny PositionMask = 1<<NumPositions - 1

// RosterSlot is one slot every owner must fill: a position constraint plus a
// starter/bench designation. A roster is an ordered slice of slots; sales fill
// the first open compatible slot in roster order, so specific slots should
// precede flex and bench slots.
type RosterSlot struct {
	Name    string
	Accepts PositionMask
	Starter bool
}

// AcceptsPlayer reports whether the slot's constraint admits the player.
func (s RosterSlot) AcceptsPlayer(p Player) bool { return s.Accepts.Has(p.Pos) }

// Standard slot definitions, mirroring common league formats.
var (
	SlotQB    = RosterSlot{Name: "QB", Accepts: MaskOf(QB), Starter: true}
	SlotRB    = RosterSlot{Name: "RB", Accepts: MaskOf(RB), Starter: true}
	SlotWR    = RosterSlot{Name: "WR", Accepts: MaskOf(WR), Starter: true}
	SlotTE    = RosterSlot{Name: "TE", Accepts: MaskOf(TE), Starter: true}
	SlotK     = RosterSlot{Name: "K", Accepts: MaskOf(K), Starter: true}
	SlotDST   = RosterSlot{Name: "DST", Accepts: MaskOf(DST), Starter: true}
	SlotFlex  = RosterSlot{Name: "W/R/T", Accepts: MaskOf(WR, RB, TE), Starter: true}
	SlotBench = RosterSlot{Name: "BN", Accepts: MaskAny, Starter: false}
)

// Player is one draftable player: identity, position, and a scalar value
// normalized to the reference budget (see ReferenceBudget). Immutable once
// loaded.
type Player struct {
	Name  string
	Pos   Position
	Value int
}

// ReferenceBudget is the budget player values are normalized against.
// Valuations for other starting budgets rescale by budget/ReferenceBudget.
const ReferenceBudget = 200
