package env

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chairbender/gym-fantasy-football-auction/agent"
	"github.com/chairbender/gym-fantasy-football-auction/auction"
)

// Config holds everything needed to build an environment. Validate catches
// misconfiguration before any episode runs; player-pool problems surface in
// New when the auction is constructed.
type Config struct {
	// Players is the draftable pool. Players no roster slot accepts are
	// filtered out before the action space is sized.
	Players []auction.Player

	// Opponents act for owners 1..len(Opponents); the controlled owner is
	// always owner 0.
	Opponents []agent.Agent

	Money  int
	Roster []auction.RosterSlot

	// StarterWeight weights starter slots when scoring rosters; bench slots
	// get the complement. Must be in [0, 1].
	StarterWeight float64

	Reward RewardSpec

	// Logger receives per-step diagnostics. Defaults to the standard logger.
	Logger logrus.FieldLogger
}

// Validate reports the first misconfiguration found.
func (c *Config) Validate() error {
	if len(c.Players) == 0 {
		return errors.New("env: no players configured")
	}
	if len(c.Opponents) == 0 {
		return errors.New("env: need at least one opponent")
	}
	if c.Money <= 0 {
		return fmt.Errorf("env: money must be positive, got %d", c.Money)
	}
	if len(c.Roster) == 0 {
		return errors.New("env: roster must have at least one slot")
	}
	if c.StarterWeight < 0 || c.StarterWeight > 1 {
		return fmt.Errorf("env: starter weight %v outside [0, 1]", c.StarterWeight)
	}
	return nil
}

// Env runs auction draft episodes one controlled action at a time.
//
// Each Step applies the controlled owner's action, lets every opponent act
// once, advances the auction one tick, and returns the new observation, the
// reward, whether the episode is over, and a diagnostics map. Env is not
// safe for concurrent use; one goroutine owns it for the episode.
type Env struct {
	players   []auction.Player
	opponents []agent.Agent
	money     int
	roster    []auction.RosterSlot
	weight    float64

	auction *auction.Auction
	codec   ActionCodec
	enc     *Encoder
	rewards *rewardEngine

	base logrus.FieldLogger
	log  logrus.FieldLogger

	episodeID uuid.UUID
	turns     int
	lastErr   error

	done       bool
	termObs    []float32
	termReward float64
}

// New builds an environment from the config. The player pool is filtered to
// players at least one roster slot accepts, the action space and observation
// layout are sized from the filtered pool, and the first episode is started
// so observations are available immediately.
func New(cfg Config) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var pool []auction.Player
	for _, p := range cfg.Players {
		for _, slot := range cfg.Roster {
			if slot.AcceptsPlayer(p) {
				pool = append(pool, p)
				break
			}
		}
	}

	numOwners := len(cfg.Opponents) + 1
	a, err := auction.NewAuction(pool, numOwners, cfg.Money, cfg.Roster)
	if err != nil {
		return nil, err
	}

	maxValue := 0
	for _, p := range pool {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	penalty := float64(maxValue * len(cfg.Roster) * len(cfg.Opponents))

	base := cfg.Logger
	if base == nil {
		base = logrus.StandardLogger()
	}

	e := &Env{
		players:   pool,
		opponents: cfg.Opponents,
		money:     cfg.Money,
		roster:    cfg.Roster,
		weight:    cfg.StarterWeight,
		auction:   a,
		codec:     NewActionCodec(len(pool), cfg.Money, len(cfg.Roster)),
		enc:       newEncoder(a, cfg.Money),
		rewards:   newRewardEngine(cfg.Reward, cfg.StarterWeight, penalty, numOwners),
		base:      base,
	}
	e.startEpisode(a)
	return e, nil
}

// startEpisode points the environment at a fresh auction and clears all
// per-episode state.
func (e *Env) startEpisode(a *auction.Auction) {
	e.auction = a
	e.episodeID = uuid.New()
	e.log = e.base.WithField("episode_id", e.episodeID)
	e.turns = 0
	e.lastErr = nil
	e.done = false
	e.termObs = nil
	e.termReward = 0

	for _, opp := range e.opponents {
		opp.Reset()
	}
	e.enc.Reset(a)
	e.rewards.reset(a)
}

// Reset abandons the current episode, starts a fresh one, and returns the
// initial observation.
func (e *Env) Reset() []float32 {
	a, err := auction.NewAuction(e.players, len(e.opponents)+1, e.money, e.roster)
	if err != nil {
		// The same arguments already built an auction in New.
		panic("env: reset with validated config failed: " + err.Error())
	}
	e.startEpisode(a)
	return e.Observation()
}

// Step applies one controlled action and advances the draft one tick.
//
// The action is decoded and applied first; if it is illegal the configured
// illegal policy decides between dropping it, terminating with a penalty,
// and substituting a fallback. Then each opponent acts once in owner order
// (illegal opponent actions are dropped), the auction ticks, and any resolved
// sale updates the cached observation bitmaps. After the episode ends,
// further Steps return the cached terminal result unchanged.
func (e *Env) Step(action int) ([]float32, float64, bool, map[string]any) {
	if e.done {
		return e.termObs, e.termReward, true, e.diagnostics()
	}
	e.turns++

	if err := e.act(0, action); err != nil {
		e.lastErr = err
		switch e.rewards.spec.Illegal {
		case IllegalPunish:
			e.log.WithError(err).WithField("action", action).Warn("illegal action, terminating episode")
			return e.finish(e.Observation(), e.rewards.punishment())
		case IllegalSubstitute:
			if p, b := e.fallbackAction(); b > 0 {
				if serr := e.actPair(0, p, b); serr != nil {
					e.log.WithError(serr).Warn("fallback action rejected")
				}
			}
		default:
			e.log.WithError(err).WithField("action", action).Debug("illegal action ignored")
		}
	}

	if e.auction.State() != auction.StateDone {
		for i, opp := range e.opponents {
			p, b := opp.Act(e.auction, i+1)
			if err := e.actPair(i+1, p, b); err != nil {
				e.log.WithError(err).WithField("owner", i+1).Debug("opponent action rejected")
			}
		}
	}

	sale, err := e.auction.Tick()
	if errors.Is(err, auction.ErrNoNomination) {
		e.lastErr = err
		if !e.forceNominate() {
			e.log.Warn("no nomination possible for any owner, ending episode")
			return e.finish(e.Observation(), e.rewards.step(e.auction, nil, true))
		}
	}

	if sale != nil {
		e.enc.OnSale(e.auction, *sale)
		e.log.WithFields(logrus.Fields{
			"owner":  sale.Owner,
			"player": e.players[sale.Player].Name,
			"price":  sale.Price,
		}).Debug("sale resolved")
	}

	done := e.auction.State() == auction.StateDone
	reward := e.rewards.step(e.auction, sale, done)
	obs := e.Observation()
	if done {
		return e.finish(obs, reward)
	}
	return obs, reward, false, e.diagnostics()
}

// finish caches the terminal result so repeated Steps return it unchanged.
func (e *Env) finish(obs []float32, reward float64) ([]float32, float64, bool, map[string]any) {
	e.done = true
	e.termObs = obs
	e.termReward = reward
	return obs, reward, true, e.diagnostics()
}

// act decodes and applies a scalar action for the given owner.
func (e *Env) act(ownerIdx, action int) error {
	playerIdx, bid := e.codec.Decode(action)
	return e.actPair(ownerIdx, playerIdx, bid)
}

// actPair applies a (player, bid) pair for the given owner. Bid 0 is the
// no-op. In the BID state a bid on any player but the nominee is illegal
// rather than silently dropped.
func (e *Env) actPair(ownerIdx, playerIdx, bid int) error {
	if bid == 0 {
		return nil
	}
	switch e.auction.State() {
	case auction.StateNominate:
		return e.auction.Nominate(ownerIdx, playerIdx, bid)
	case auction.StateBid:
		if playerIdx != e.auction.NomineeIndex() {
			return &auction.InvalidActionError{Op: "bid", Owner: ownerIdx, Reason: fmt.Sprintf("player %d is not the active nominee", playerIdx)}
		}
		return e.auction.PlaceBid(ownerIdx, bid)
	default:
		return &auction.InvalidActionError{Op: "bid", Owner: ownerIdx, Reason: "the draft is over"}
	}
}

// fallbackAction picks a best-effort legal substitute for an illegal
// controlled action: the most valuable affordable nomination on the
// controlled owner's nomination turn, or the minimum raise during bidding.
// Returns bid 0 when nothing legal exists.
func (e *Env) fallbackAction() (playerIdx, bid int) {
	a := e.auction
	me := a.Owner(0)

	switch a.State() {
	case auction.StateNominate:
		if a.TurnIndex() != 0 {
			return 0, 0
		}
		best, bestValue := -1, -1
		for _, p := range a.UndraftedPlayers() {
			if me.CanBuy(e.players[p], 1) && e.players[p].Value > bestValue {
				best, bestValue = p, e.players[p].Value
			}
		}
		if best == -1 {
			return 0, 0
		}
		return best, 1

	case auction.StateBid:
		nominee := a.NomineeIndex()
		if me.CanBuy(e.players[nominee], a.Bid()+1) {
			return nominee, a.Bid() + 1
		}
	}
	return 0, 0
}

// forceNominate recovers from a nomination turn that produced no nomination
// by nominating on the controlled owner's behalf: the most valuable
// affordable undrafted player at its value, clamped to the owner's maximum
// bid. Reports whether a nomination was placed.
func (e *Env) forceNominate() bool {
	a := e.auction
	me := a.Owner(0)

	best, bestValue := -1, -1
	for _, p := range a.UndraftedPlayers() {
		if me.CanBuy(e.players[p], 1) && e.players[p].Value > bestValue {
			best, bestValue = p, e.players[p].Value
		}
	}
	if best == -1 {
		return false
	}

	bid := int(math.Max(1, math.Min(float64(bestValue), float64(me.MaxBid()))))
	if err := a.ForceNominate(0, best, bid); err != nil {
		e.log.WithError(err).Warn("forced nomination rejected")
		return false
	}
	e.log.WithFields(logrus.Fields{
		"player": e.players[best].Name,
		"bid":    bid,
	}).Debug("forced nomination")
	return true
}

func (e *Env) diagnostics() map[string]any {
	d := map[string]any{
		"episode_id": e.episodeID.String(),
		"turns":      e.turns,
	}
	if e.lastErr != nil {
		d["error"] = e.lastErr
	}
	return d
}

// Observation encodes and returns the current observation vector.
func (e *Env) Observation() []float32 {
	out := make([]float32, e.enc.Size())
	e.enc.Encode(e.auction, out)
	return out
}

// ObservationSize returns the observation vector length.
func (e *Env) ObservationSize() int { return e.enc.Size() }

// NumActions returns the size of the flattened action space.
func (e *Env) NumActions() int { return e.codec.NumActions() }

// Codec returns the action codec for this environment's action space.
func (e *Env) Codec() ActionCodec { return e.codec }

// Auction returns the live auction. Callers must treat it as read-only;
// mutating it bypasses the environment's caches.
func (e *Env) Auction() *auction.Auction { return e.auction }

// Done reports whether the current episode has ended.
func (e *Env) Done() bool { return e.done }

// Render writes a human-readable dump of the draft to w.
func (e *Env) Render(w io.Writer) {
	fmt.Fprint(w, e.auction.String())
	if e.lastErr != nil {
		fmt.Fprintf(w, "last rejected action: %v\n", e.lastErr)
	}
	if e.done {
		fmt.Fprintf(w, "final scores: %v\n", e.auction.Scores(e.weight))
	}
	fmt.Fprintf(w, "steps taken: %d\n", e.turns)
}
