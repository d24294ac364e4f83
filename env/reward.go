package env

import (
	"fmt"
	"strings"

	"github.com/chairbender/gym-fantasy-football-auction/auction"
)

// RewardKind selects how the controlled owner's roster quality becomes a
// scalar reward.
type RewardKind uint8

const (
	// RewardWinRatio pays myScore/maxScore at the end of the draft, plus a
	// bonus point when strictly ahead of every opponent (see RewardSpec.WinBonus).
	RewardWinRatio RewardKind = iota
	// RewardBinary pays +1 at the end of the draft when tied with or holding
	// the best roster, -1 otherwise.
	RewardBinary
	// RewardRank pays the final standing scaled into [-1, 1]: +1 for an
	// outright best roster, -1 for an outright worst.
	RewardRank
	// RewardDelta pays, every step, the change in the controlled owner's
	// score minus the combined change in the opponents' scores.
	RewardDelta
	// RewardDeltaSpend is RewardDelta with winning bids folded in: the
	// controlled owner's winning price is subtracted and an opponent's
	// winning price is added.
	RewardDeltaSpend
)

// IllegalPolicy selects how the environment treats an illegal action from
// the controlled owner.
type IllegalPolicy uint8

const (
	// IllegalIgnore drops the action and lets the draft continue.
	IllegalIgnore IllegalPolicy = iota
	// IllegalPunish ends the episode with a large negative reward.
	IllegalPunish
	// IllegalSubstitute replaces the action with a best-effort legal one.
	IllegalSubstitute
)

// RewardSpec is a parsed reward configuration key.
type RewardSpec struct {
	Kind    RewardKind
	Illegal IllegalPolicy

	// WinBonus adds +1 to a winratio reward when strictly ahead of every
	// opponent.
	WinBonus bool
	// Normalize divides the opponents' combined score delta by the opponent
	// count, so delta rewards stay comparable across league sizes.
	Normalize bool
}

// ParseRewardSpec parses a dotted reward key: a kind (winratio, binary,
// rank, delta, deltaspend) followed by optional modifiers. Modifier "1"
// selects the punish illegal policy and "2" the substitute policy; "bonus"
// and "norm" set the corresponding flags.
func ParseRewardSpec(key string) (RewardSpec, error) {
	parts := strings.Split(key, ".")
	var spec RewardSpec
	switch parts[0] {
	case "winratio":
		spec.Kind = RewardWinRatio
	case "binary":
		spec.Kind = RewardBinary
	case "rank":
		spec.Kind = RewardRank
	case "delta":
		spec.Kind = RewardDelta
	case "deltaspend":
		spec.Kind = RewardDeltaSpend
	default:
		return RewardSpec{}, fmt.Errorf("env: unknown reward kind %q", parts[0])
	}
	for _, mod := range parts[1:] {
		switch mod {
		case "1":
			spec.Illegal = IllegalPunish
		case "2":
			spec.Illegal = IllegalSubstitute
		case "bonus":
			spec.WinBonus = true
		case "norm":
			spec.Normalize = true
		default:
			return RewardSpec{}, fmt.Errorf("env: unknown reward modifier %q in %q", mod, key)
		}
	}
	return spec, nil
}

// rewardEngine turns roster scores into per-step rewards. It keeps the
// previous step's scores so the delta kinds can pay score movement.
type rewardEngine struct {
	spec          RewardSpec
	starterWeight float64
	penalty       float64
	prev          []float64
}

func newRewardEngine(spec RewardSpec, starterWeight, penalty float64, numOwners int) *rewardEngine {
	return &rewardEngine{
		spec:          spec,
		starterWeight: starterWeight,
		penalty:       penalty,
		prev:          make([]float64, numOwners),
	}
}

func (r *rewardEngine) reset(a *auction.Auction) {
	copy(r.prev, a.Scores(r.starterWeight))
}

// punishment is the reward paid when an illegal action ends the episode.
func (r *rewardEngine) punishment() float64 { return -r.penalty }

// step computes the reward for the step that just completed. sale is the
// lot resolved this step, if any; done reports whether the draft finished.
func (r *rewardEngine) step(a *auction.Auction, sale *auction.Sale, done bool) float64 {
	scores := a.Scores(r.starterWeight)
	defer copy(r.prev, scores)

	switch r.spec.Kind {
	case RewardWinRatio:
		if !done {
			return 0
		}
		best, strict := standing(scores)
		if best <= 0 {
			return 0
		}
		reward := scores[0] / best
		if r.spec.WinBonus && strict {
			reward++
		}
		return reward

	case RewardBinary:
		if !done {
			return 0
		}
		if best, _ := standing(scores); scores[0] >= best {
			return 1
		}
		return -1

	case RewardRank:
		if !done || len(scores) < 2 {
			return 0
		}
		rank := 0
		for _, s := range scores[1:] {
			if s > scores[0] {
				rank++
			}
		}
		return 1 - 2*float64(rank)/float64(len(scores)-1)

	default: // RewardDelta, RewardDeltaSpend
		dMine := scores[0] - r.prev[0]
		var dOpp float64
		for i := 1; i < len(scores); i++ {
			dOpp += scores[i] - r.prev[i]
		}
		if r.spec.Normalize {
			dOpp /= float64(len(scores) - 1)
		}
		reward := dMine - dOpp
		if r.spec.Kind == RewardDeltaSpend && sale != nil {
			if sale.Owner == 0 {
				reward -= float64(sale.Price)
			} else {
				reward += float64(sale.Price)
			}
		}
		return reward
	}
}

// standing returns the best score and whether the controlled owner holds it
// strictly ahead of every opponent.
func standing(scores []float64) (best float64, strict bool) {
	best = scores[0]
	strict = true
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
		if s >= scores[0] {
			strict = false
		}
	}
	return best, strict
}
