package auction

import (
	"errors"
	"testing"
)

// helper: a small pool covering every position the test rosters need.
func testPlayers() []Player {
	return []Player{
		{Name: "QB A", Pos: QB, Value: 40}, // 0
		{Name: "QB B", Pos: QB, Value: 20}, // 1
		{Name: "WR A", Pos: WR, Value: 50}, // 2
		{Name: "WR B", Pos: WR, Value: 25}, // 3
		{Name: "RB A", Pos: RB, Value: 60}, // 4
		{Name: "RB B", Pos: RB, Value: 30}, // 5
	}
}

func testRoster() []RosterSlot {
	return []RosterSlot{SlotQB, SlotWR, SlotRB}
}

func newTestAuction(t *testing.T) *Auction {
	t.Helper()
	a, err := NewAuction(testPlayers(), 2, 100, testRoster())
	if err != nil {
		t.Fatalf("NewAuction: %v", err)
	}
	return a
}

// helper: nominate, move into BID, then let the lot resolve unchallenged.
func sellTo(t *testing.T, a *Auction, ownerIdx, playerIdx, bid int) *Sale {
	t.Helper()
	if err := a.ForceNominate(ownerIdx, playerIdx, bid); err != nil {
		t.Fatalf("nominate player %d: %v", playerIdx, err)
	}
	if _, err := a.Tick(); err != nil {
		t.Fatalf("tick into BID: %v", err)
	}
	sale, err := a.Tick()
	if err != nil {
		t.Fatalf("tick to resolve: %v", err)
	}
	if sale == nil {
		t.Fatalf("expected a sale for player %d", playerIdx)
	}
	return sale
}

func TestNewAuctionValidation(t *testing.T) {
	players := testPlayers()
	roster := testRoster()

	if _, err := NewAuction(players, 1, 100, roster); err == nil {
		t.Error("expected error for a single owner")
	}
	if _, err := NewAuction(players, 2, 100, nil); err == nil {
		t.Error("expected error for an empty roster")
	}
	if _, err := NewAuction(players, 2, 2, roster); err == nil {
		t.Error("expected error for budget below the roster floor")
	}
	if _, err := NewAuction(players[:3], 2, 100, roster); err == nil {
		t.Error("expected error for too few players")
	}
	// A roster slot no player can fill.
	bad := append(testRoster(), SlotK)
	padded := append(testPlayers(),
		Player{Name: "RB C", Pos: RB, Value: 5},
		Player{Name: "RB D", Pos: RB, Value: 3},
	)
	if _, err := NewAuction(padded, 2, 100, bad); err == nil {
		t.Error("expected error for a slot accepting no players")
	}
}

func TestNominateTurnOrder(t *testing.T) {
	a := newTestAuction(t)

	err := a.Nominate(1, 0, 1)
	if !IsInvalidAction(err) {
		t.Fatalf("out-of-turn nomination: got %v, want InvalidActionError", err)
	}
	if err := a.Nominate(0, 0, 1); err != nil {
		t.Fatalf("in-turn nomination: %v", err)
	}
	if a.NomineeIndex() != 0 || a.Bid() != 1 || a.WinningOwner() != 0 {
		t.Errorf("lot = (%d, %d, %d), want (0, 1, 0)",
			a.NomineeIndex(), a.Bid(), a.WinningOwner())
	}
	// Only one lot at a time.
	if err := a.Nominate(0, 1, 1); !IsInvalidAction(err) {
		t.Errorf("second nomination: got %v, want InvalidActionError", err)
	}
}

func TestNominateRejectsDraftedAndUnaffordable(t *testing.T) {
	a := newTestAuction(t)
	sellTo(t, a, 0, 0, 10)

	if err := a.ForceNominate(1, 0, 1); !IsInvalidAction(err) {
		t.Errorf("nominating a drafted player: got %v, want InvalidActionError", err)
	}
	// Owner 1 has budget 100 and 3 open slots: MaxBid is 98.
	if err := a.ForceNominate(1, 2, 99); !IsInvalidAction(err) {
		t.Errorf("nominating above MaxBid: got %v, want InvalidActionError", err)
	}
	if err := a.ForceNominate(1, 2, 0); !IsInvalidAction(err) {
		t.Errorf("zero opening bid: got %v, want InvalidActionError", err)
	}
}

func TestTickNoNomination(t *testing.T) {
	a := newTestAuction(t)

	if _, err := a.Tick(); !errors.Is(err, ErrNoNomination) {
		t.Fatalf("empty NOMINATE tick: got %v, want ErrNoNomination", err)
	}
	// The state must be unchanged so a recovery nomination can proceed.
	if a.State() != StateNominate {
		t.Errorf("state = %v, want NOMINATE", a.State())
	}
}

func TestBidLifecycle(t *testing.T) {
	a := newTestAuction(t)

	if err := a.Nominate(0, 4, 5); err != nil {
		t.Fatalf("nominate: %v", err)
	}
	if _, err := a.Tick(); err != nil {
		t.Fatalf("tick into BID: %v", err)
	}
	if a.State() != StateBid {
		t.Fatalf("state = %v, want BID", a.State())
	}

	if err := a.PlaceBid(1, 5); !IsInvalidAction(err) {
		t.Errorf("non-raising bid: got %v, want InvalidActionError", err)
	}
	if err := a.PlaceBid(1, 8); err != nil {
		t.Fatalf("raise: %v", err)
	}
	if a.Bid() != 8 || a.WinningOwner() != 1 {
		t.Errorf("lot = (%d, %d), want (8, 1)", a.Bid(), a.WinningOwner())
	}

	// A raise happened since the last tick, so the lot stays open.
	sale, err := a.Tick()
	if err != nil || sale != nil {
		t.Fatalf("tick after raise: sale %v, err %v", sale, err)
	}

	// No raise since the previous tick: the lot resolves to owner 1.
	sale, err = a.Tick()
	if err != nil {
		t.Fatalf("resolving tick: %v", err)
	}
	if sale == nil || sale.Owner != 1 || sale.Player != 4 || sale.Price != 8 {
		t.Fatalf("sale = %+v, want owner 1 buying player 4 for 8", sale)
	}
	if got := a.PlayerOwner(4); got != 1 {
		t.Errorf("PlayerOwner(4) = %d, want 1", got)
	}
	if got := a.Owner(1).Budget(); got != 92 {
		t.Errorf("owner 1 budget = %d, want 92", got)
	}
	// The lot is cleared and the turn advances.
	if a.NomineeIndex() != -1 || a.Bid() != 0 || a.WinningOwner() != -1 {
		t.Errorf("lot not cleared: (%d, %d, %d)",
			a.NomineeIndex(), a.Bid(), a.WinningOwner())
	}
	if a.State() != StateNominate || a.TurnIndex() != 1 {
		t.Errorf("state/turn = %v/%d, want NOMINATE/1", a.State(), a.TurnIndex())
	}
}

func TestReserveRule(t *testing.T) {
	a := newTestAuction(t)
	me := a.Owner(0)

	// Budget 100, 3 open slots: 2 units reserved for the other slots.
	if got := me.MaxBid(); got != 98 {
		t.Fatalf("MaxBid = %d, want 98", got)
	}
	if me.CanBuy(a.Players()[0], 99) {
		t.Error("CanBuy above MaxBid should be false")
	}
	if !me.CanBuy(a.Players()[0], 98) {
		t.Error("CanBuy at MaxBid should be true")
	}

	sellTo(t, a, 0, 0, 98)
	// Budget 2, 2 open slots: exactly 1 unit per remaining slot.
	if got := me.MaxBid(); got != 1 {
		t.Errorf("MaxBid after max spend = %d, want 1", got)
	}
}

func TestCanBuyRespectsPositions(t *testing.T) {
	a := newTestAuction(t)
	me := a.Owner(0)

	sellTo(t, a, 0, 0, 10)
	// The QB slot is filled; another QB no longer fits.
	if me.CanBuy(a.Players()[1], 1) {
		t.Error("CanBuy should be false with no open compatible slot")
	}
	if !me.CanBuy(a.Players()[2], 1) {
		t.Error("CanBuy should be true for an open WR slot")
	}
}

func TestFullDraftReachesDone(t *testing.T) {
	a := newTestAuction(t)

	// Alternate sales between the two owners until every roster is full.
	sales := []struct{ owner, player int }{
		{0, 0}, {1, 1}, {0, 2}, {1, 3}, {0, 4}, {1, 5},
	}
	for _, s := range sales {
		sellTo(t, a, s.owner, s.player, 1)
	}

	if a.State() != StateDone {
		t.Fatalf("state = %v, want DONE", a.State())
	}
	for i := 0; i < a.NumOwners(); i++ {
		if open := a.Owner(i).OpenSlots(); open != 0 {
			t.Errorf("owner %d has %d open slots after the draft", i, open)
		}
	}
	if und := a.UndraftedPlayers(); len(und) != 0 {
		t.Errorf("undrafted players after a full draft: %v", und)
	}

	// A finished draft ticks as a no-op.
	sale, err := a.Tick()
	if sale != nil || err != nil {
		t.Errorf("tick after DONE: sale %v, err %v", sale, err)
	}
	// And rejects further actions.
	if err := a.ForceNominate(0, 0, 1); !IsInvalidAction(err) {
		t.Errorf("nomination after DONE: got %v, want InvalidActionError", err)
	}
}

func TestBudgetsNeverNegative(t *testing.T) {
	a := newTestAuction(t)

	sellTo(t, a, 0, 0, 98)
	sellTo(t, a, 0, 2, 1)
	sellTo(t, a, 0, 4, 1)

	if got := a.Owner(0).Budget(); got != 0 {
		t.Errorf("budget = %d, want 0 after spending everything", got)
	}
}

func TestScores(t *testing.T) {
	roster := []RosterSlot{SlotQB, SlotRB, SlotBench}
	players := []Player{
		{Name: "QB A", Pos: QB, Value: 40},
		{Name: "QB B", Pos: QB, Value: 20},
		{Name: "RB A", Pos: RB, Value: 60},
		{Name: "RB B", Pos: RB, Value: 30},
		{Name: "WR A", Pos: WR, Value: 50},
		{Name: "WR B", Pos: WR, Value: 10},
	}
	a, err := NewAuction(players, 2, 100, roster)
	if err != nil {
		t.Fatalf("NewAuction: %v", err)
	}

	sellTo(t, a, 0, 0, 10) // QB A into the starter slot
	sellTo(t, a, 0, 4, 10) // WR A lands on the bench

	scores := a.Scores(0.8)
	want := 0.8*40 + 0.2*50
	if diff := scores[0] - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("scores[0] = %v, want %v", scores[0], want)
	}
	if scores[1] != 0 {
		t.Errorf("scores[1] = %v, want 0 for an empty roster", scores[1])
	}
}
