package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chairbender/gym-fantasy-football-auction/auction"
)

func TestObservationInitialLayout(t *testing.T) {
	e := newTestEnv(t, "binary")
	obs := e.Observation()
	require.Len(t, obs, e.ObservationSize())

	n := e.Auction().NumOwners()
	p := len(e.Auction().Players())
	q := auction.NumPositions

	// Max affordable bids: 98/100 for everyone at the start.
	assert.InDelta(t, 0.98, float64(obs[0]), 1e-6)
	assert.InDelta(t, 0.98, float64(obs[1]), 1e-6)
	// No lot up: leading bid, leader one-hot, and nominee one-hot all zero.
	for i := n; i < 2*n+1+p; i++ {
		assert.Zero(t, obs[i], "index %d", i)
	}

	// Nothing owned, everything draftable by everyone.
	base := 2*n + 1 + p
	for i := 0; i < n*p; i++ {
		assert.Zero(t, obs[base+i], "ownership index %d", i)
		assert.Equal(t, float32(1), obs[base+n*p+i], "draftable index %d", i)
	}

	// Player values scaled by money: QB A is 40/100.
	base += 2 * n * p
	assert.InDelta(t, 0.40, float64(obs[base]), 1e-6)

	// Position one-hots: player 0 is a QB, player 3 a WR.
	base += p
	assert.Equal(t, float32(1), obs[base+0*q+int(auction.QB)])
	assert.Equal(t, float32(1), obs[base+3*q+int(auction.WR)])
	assert.Zero(t, obs[base+3*q+int(auction.QB)])

	// It is the controlled owner's nomination turn: the turn layer is ones.
	base += p * q
	for i := 0; i < p; i++ {
		assert.Equal(t, float32(1), obs[base+i], "turn layer index %d", i)
	}
}

func TestObservationTracksActiveLot(t *testing.T) {
	e := newTestEnv(t, "binary")
	a := e.Auction()
	require.NoError(t, a.ForceNominate(1, 4, 7))
	_, err := a.Tick()
	require.NoError(t, err)

	obs := e.Observation()
	n := a.NumOwners()
	p := len(a.Players())

	assert.InDelta(t, 0.07, float64(obs[n]), 1e-6, "leading bid")
	assert.Equal(t, float32(1), obs[n+1+1], "owner 1 leads")
	assert.Zero(t, obs[n+1+0])
	assert.Equal(t, float32(1), obs[2*n+1+4], "player 4 is the nominee")

	// Not a nomination turn anymore: the turn layer is zeros.
	tail := e.ObservationSize() - p
	for i := 0; i < p; i++ {
		assert.Zero(t, obs[tail+i], "turn layer index %d", i)
	}
}

func TestObservationTurnLayerDuringPendingNomination(t *testing.T) {
	e := newTestEnv(t, "binary")

	// A skipped nomination turn leaves a recovery lot pending in NOMINATE;
	// no nomination is possible, so the turn layer must read zeros.
	_, _, done, _ := e.Step(ActionNone)
	require.False(t, done)
	a := e.Auction()
	require.Equal(t, auction.StateNominate, a.State())
	require.NotEqual(t, -1, a.NomineeIndex())

	obs := e.Observation()
	p := len(a.Players())
	tail := e.ObservationSize() - p
	for i := 0; i < p; i++ {
		assert.Zero(t, obs[tail+i], "turn layer index %d", i)
	}
	// The pending lot itself is visible through the nominee one-hot.
	n := a.NumOwners()
	assert.Equal(t, float32(1), obs[2*n+1+a.NomineeIndex()])
}

func TestEncoderOnSalePatchesCaches(t *testing.T) {
	e := newTestEnv(t, "binary")
	a := e.Auction()
	p := len(a.Players())

	// Owner 1 buys QB A.
	require.NoError(t, a.ForceNominate(1, 0, 10))
	_, err := a.Tick()
	require.NoError(t, err)
	sale, err := a.Tick()
	require.NoError(t, err)
	require.NotNil(t, sale)
	e.enc.OnSale(a, *sale)

	assert.Equal(t, uint8(1), e.enc.ownership[1*p+0])
	assert.Equal(t, uint8(0), e.enc.ownership[0*p+0])
	// The sold player is draftable by nobody.
	assert.Equal(t, uint8(0), e.enc.draftable[0*p+0])
	assert.Equal(t, uint8(0), e.enc.draftable[1*p+0])
	// The winner's QB slot is filled, so the other QBs fall off its row.
	assert.Equal(t, uint8(0), e.enc.draftable[1*p+1])
	assert.Equal(t, uint8(1), e.enc.draftable[0*p+1])
	// Unrelated positions are untouched.
	assert.Equal(t, uint8(1), e.enc.draftable[1*p+4])
}
