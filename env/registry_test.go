package env

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chairbender/gym-fantasy-football-auction/players"
)

func TestRegistryStandardIDs(t *testing.T) {
	ids := IDs()
	require.NotEmpty(t, ids)

	for _, want := range []string{
		"FantasyFootballAuction-2OwnerSmallRosterSimpleScriptedOpponent-v0",
		"FantasyFootballAuction-4OwnerMediumRosterSimpleScriptedOpponent-v0.1",
		"FantasyFootballAuction-6OwnerFullRosterSimpleScriptedOpponent-Delta-v0",
		"FantasyFootballAuction-2OwnerSmallRosterRandomOpponent-v0",
	} {
		assert.Contains(t, ids, want)
	}
	// Sorted output.
	for i := 1; i < len(ids); i++ {
		assert.True(t, strings.Compare(ids[i-1], ids[i]) < 0, "IDs out of order at %d", i)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	spec := EnvSpec{
		ID:            "test-duplicate-v0",
		NumOwners:     2,
		Money:         200,
		Roster:        SmallRoster,
		StarterWeight: 0.9,
		Opponent:      "scripted",
		Reward:        "binary",
	}
	require.NoError(t, Register(spec))
	assert.Error(t, Register(spec))
	assert.Error(t, Register(EnvSpec{}))
}

func TestMake(t *testing.T) {
	e, err := Make("FantasyFootballAuction-2OwnerSmallRosterSimpleScriptedOpponent-v0",
		players.Sample(), 42)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Auction().NumOwners())
	assert.False(t, e.Done())
	assert.Positive(t, e.NumActions())

	_, err = Make("FantasyFootballAuction-NoSuchThing-v0", players.Sample(), 42)
	assert.Error(t, err)
}

func TestMakeFullRosterEpisode(t *testing.T) {
	e, err := Make("FantasyFootballAuction-6OwnerFullRosterSimpleScriptedOpponent-v0",
		players.Sample(), 7)
	require.NoError(t, err)
	assert.Equal(t, 6, e.Auction().NumOwners())
	assert.Equal(t, 11, len(e.Auction().Roster()))
}
