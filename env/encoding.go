package env

import "github.com/chairbender/gym-fantasy-football-auction/auction"

// Encoder flattens the auction into a fixed-length float32 vector. Monetary
// quantities are divided by the starting budget, everything else is 0/1.
//
// With n owners, p players, and q positions the layout is:
//
//	[0, n)          per-owner max affordable bid / money
//	[n]             leading bid / money (0 when no lot is up)
//	[n+1, 2n+1)     leading-owner one-hot (all zero when no standing bid)
//	[2n+1, 2n+1+p)  nominee one-hot (all zero outside BID)
//	A   = 2n+1+p
//	[A, A+n*p)      ownership bitmap, owner-major: cell o*p+j is 1 when
//	                owner o rosters player j
//	[A+n*p, A+2n*p) draftability bitmap, owner-major: cell o*p+j is 1 when
//	                player j is undrafted and owner o can open a bid on it
//	B   = A+2n*p
//	[B, B+p)        listed player value / money
//	[B+p, B+p+p*q)  player position one-hots, player-major
//	[B+p+p*q, end)  nomination-turn layer: all ones when the controlled
//	                owner must nominate (its turn, no lot pending), else
//	                all zeros
//
// The controlled owner is always owner 0. The ownership and draftability
// bitmaps only change when a lot is sold, so they are cached and patched
// per sale instead of rebuilt per step.
type Encoder struct {
	numOwners  int
	numPlayers int
	money      int

	ownership []uint8
	draftable []uint8
}

func newEncoder(a *auction.Auction, money int) *Encoder {
	e := &Encoder{
		numOwners:  a.NumOwners(),
		numPlayers: len(a.Players()),
		money:      money,
	}
	e.ownership = make([]uint8, e.numOwners*e.numPlayers)
	e.draftable = make([]uint8, e.numOwners*e.numPlayers)
	e.Reset(a)
	return e
}

// Size returns the observation vector length.
func (e *Encoder) Size() int {
	n, p := e.numOwners, e.numPlayers
	return 2*n + 1 + p + 2*n*p + p + p*int(auction.NumPositions) + p
}

// Reset rebuilds both cached bitmaps from scratch.
func (e *Encoder) Reset(a *auction.Auction) {
	e.recomputeInto(a, e.ownership, e.draftable)
}

// OnSale patches the caches after a resolved sale: the sold player becomes
// owned by the winner and undraftable by everyone, and the winner's
// draftability row is rebuilt since its budget and open slots changed.
func (e *Encoder) OnSale(a *auction.Auction, s auction.Sale) {
	p := e.numPlayers
	e.ownership[s.Owner*p+s.Player] = 1
	for o := 0; o < e.numOwners; o++ {
		e.draftable[o*p+s.Player] = 0
	}
	e.recomputeRow(a, s.Owner, e.draftable[s.Owner*p:(s.Owner+1)*p])
}

func (e *Encoder) recomputeRow(a *auction.Auction, ownerIdx int, row []uint8) {
	owner := a.Owner(ownerIdx)
	for j, p := range a.Players() {
		if a.PlayerOwner(j) == -1 && owner.CanBuy(p, 1) {
			row[j] = 1
		} else {
			row[j] = 0
		}
	}
}

// recomputeInto fills owner-major ownership and draftability bitmaps from
// the live auction state. Reset uses it against the caches; tests use it
// against scratch slices to check the caches never drift.
func (e *Encoder) recomputeInto(a *auction.Auction, ownership, draftable []uint8) {
	p := e.numPlayers
	for j := 0; j < p; j++ {
		for o := 0; o < e.numOwners; o++ {
			ownership[o*p+j] = 0
		}
		if w := a.PlayerOwner(j); w != -1 {
			ownership[w*p+j] = 1
		}
	}
	for o := 0; o < e.numOwners; o++ {
		e.recomputeRow(a, o, draftable[o*p:(o+1)*p])
	}
}

// Encode writes the observation for the current auction state into out,
// which must have length Size().
func (e *Encoder) Encode(a *auction.Auction, out []float32) {
	n, p := e.numOwners, e.numPlayers
	money := float32(e.money)
	for i := range out {
		out[i] = 0
	}

	for o := 0; o < n; o++ {
		out[o] = float32(a.Owner(o).MaxBid()) / money
	}
	out[n] = float32(a.Bid()) / money
	if w := a.WinningOwner(); w != -1 {
		out[n+1+w] = 1
	}
	if nom := a.NomineeIndex(); nom != -1 {
		out[2*n+1+nom] = 1
	}

	base := 2*n + 1 + p
	for i, v := range e.ownership {
		out[base+i] = float32(v)
	}
	base += n * p
	for i, v := range e.draftable {
		out[base+i] = float32(v)
	}
	base += n * p

	for j, pl := range a.Players() {
		out[base+j] = float32(pl.Value) / money
	}
	base += p
	q := int(auction.NumPositions)
	for j, pl := range a.Players() {
		out[base+j*q+int(pl.Pos)] = 1
	}
	base += p * q

	if a.State() == auction.StateNominate && a.TurnIndex() == 0 && a.NomineeIndex() == -1 {
		for j := 0; j < p; j++ {
			out[base+j] = 1
		}
	}
}
