package env

import (
	"fmt"
	"sort"
	"sync"

	"github.com/chairbender/gym-fantasy-football-auction/agent"
	"github.com/chairbender/gym-fantasy-football-auction/auction"
)

// EnvSpec is a registered environment configuration, addressable by ID.
type EnvSpec struct {
	ID string

	NumOwners     int
	Money         int
	Roster        []auction.RosterSlot
	StarterWeight float64

	// Opponent selects the agent type for every non-controlled owner:
	// "scripted" or "random".
	Opponent string

	// Reward is a dotted reward key understood by ParseRewardSpec.
	Reward string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]EnvSpec{}
)

// Register adds a spec to the registry. Registering a duplicate or empty ID
// is an error.
func Register(spec EnvSpec) error {
	if spec.ID == "" {
		return fmt.Errorf("env: register: empty ID")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[spec.ID]; ok {
		return fmt.Errorf("env: register: duplicate ID %q", spec.ID)
	}
	registry[spec.ID] = spec
	return nil
}

// Lookup returns the spec registered under id.
func Lookup(id string) (EnvSpec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	spec, ok := registry[id]
	return spec, ok
}

// IDs returns every registered ID in sorted order.
func IDs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Make builds the environment registered under id with the given player
// pool. seed fixes the opponents' randomness; each opponent derives its own
// stream from it.
func Make(id string, players []auction.Player, seed uint64) (*Env, error) {
	spec, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("env: no environment registered as %q", id)
	}
	reward, err := ParseRewardSpec(spec.Reward)
	if err != nil {
		return nil, fmt.Errorf("env: %s: %w", id, err)
	}

	opponents := make([]agent.Agent, spec.NumOwners-1)
	for i := range opponents {
		oppSeed := seed + uint64(i+1)*0x9e3779b97f4a7c15
		switch spec.Opponent {
		case "random":
			opponents[i] = agent.NewRandom(oppSeed)
		default:
			opponents[i] = agent.NewScripted(spec.Money, 0.1, 0.1, oppSeed)
		}
	}

	return New(Config{
		Players:       players,
		Opponents:     opponents,
		Money:         spec.Money,
		Roster:        spec.Roster,
		StarterWeight: spec.StarterWeight,
		Reward:        reward,
	})
}

// Standard league formats.
var (
	SmallRoster = []auction.RosterSlot{
		auction.SlotQB, auction.SlotWR, auction.SlotRB,
	}
	MediumRoster = []auction.RosterSlot{
		auction.SlotQB, auction.SlotWR, auction.SlotWR,
		auction.SlotRB, auction.SlotRB, auction.SlotTE, auction.SlotFlex,
	}
	FullRoster = []auction.RosterSlot{
		auction.SlotQB, auction.SlotWR, auction.SlotWR,
		auction.SlotRB, auction.SlotRB, auction.SlotTE, auction.SlotFlex,
		auction.SlotK, auction.SlotDST, auction.SlotBench, auction.SlotBench,
	}
)

func mustRegister(spec EnvSpec) {
	if err := Register(spec); err != nil {
		panic(err)
	}
}

func init() {
	type format struct {
		name   string
		roster []auction.RosterSlot
		weight float64
	}
	formats := []format{
		{"SmallRoster", SmallRoster, 0.9},
		{"MediumRoster", MediumRoster, 0.8},
		{"FullRoster", FullRoster, 0.8},
	}

	for _, f := range formats {
		for _, owners := range []int{2, 4, 6} {
			base := fmt.Sprintf("FantasyFootballAuction-%dOwner%sSimpleScriptedOpponent", owners, f.name)
			common := EnvSpec{
				NumOwners:     owners,
				Money:         200,
				Roster:        f.roster,
				StarterWeight: f.weight,
				Opponent:      "scripted",
			}

			for _, v := range []struct{ id, reward string }{
				{base + "-v0", "binary"},
				{base + "-v0.1", "binary.1"},
				{base + "-v0.2", "binary.2"},
				{base + "-WinRatio-v0", "winratio.bonus"},
				{base + "-Rank-v0", "rank"},
				{base + "-Delta-v0", "delta.norm"},
				{base + "-DeltaSpend-v0", "deltaspend.norm"},
			} {
				spec := common
				spec.ID = v.id
				spec.Reward = v.reward
				mustRegister(spec)
			}

			random := common
			random.ID = fmt.Sprintf("FantasyFootballAuction-%dOwner%sRandomOpponent-v0", owners, f.name)
			random.Opponent = "random"
			random.Reward = "binary"
			mustRegister(random)
		}
	}
}
