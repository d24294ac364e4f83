// Command draftsim runs auction draft episodes against scripted opponents
// and reports per-episode rewards. It is the offline harness for sanity
// checking environments and datasets.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chairbender/gym-fantasy-football-auction/agent"
	"github.com/chairbender/gym-fantasy-football-auction/auction"
	"github.com/chairbender/gym-fantasy-football-auction/env"
	"github.com/chairbender/gym-fantasy-football-auction/players"
)

var rootCmd = &cobra.Command{
	Use:   "draftsim",
	Short: "Fantasy football auction draft simulator",
	Long: `draftsim runs complete auction draft episodes in a registered
environment, driving the controlled owner with a built-in policy while
scripted opponents bid against it.`,
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("env", "FantasyFootballAuction-2OwnerSmallRosterSimpleScriptedOpponent-v0", "Registered environment ID")
	flags.String("players", "", "Ranked cheatsheet CSV (name,position,value); built-in sample when empty")
	flags.Int("episodes", 10, "Number of episodes to run")
	flags.Uint64("seed", 1, "Base seed for all agent randomness")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("render", false, "Render the final state of each episode")
	flags.Int("max-steps", 100000, "Step cap per episode before aborting")
	flags.Bool("list", false, "List registered environment IDs and exit")
	flags.String("policy", "scripted", "Controlled owner policy (scripted, random)")
	flags.Int("policy-money", 200, "Budget the scripted policy valuates against")
	flags.Float64("policy-inaccuracy", 0.1, "Scripted policy valuation band half-width")
	flags.Float64("policy-stddev", 0.1, "Scripted policy valuation gaussian noise")

	// Every flag can come from a DRAFTSIM_* variable, with dashes mapped to
	// underscores (DRAFTSIM_MAX_STEPS).
	cobra.CheckErr(viper.BindPFlags(flags))
	viper.SetEnvPrefix("DRAFTSIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) error {
	if viper.GetBool("list") {
		for _, id := range env.IDs() {
			fmt.Println(id)
		}
		return nil
	}

	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetLevel(level)

	envID := viper.GetString("env")
	seed := viper.GetUint64("seed")
	episodes := viper.GetInt("episodes")
	maxSteps := viper.GetInt("max-steps")
	log := logrus.WithField("env", envID)

	pool, err := loadPlayers(viper.GetString("players"))
	if err != nil {
		return err
	}

	var policy agent.Agent
	switch name := strings.ToLower(viper.GetString("policy")); name {
	case "scripted":
		policy = agent.NewScripted(
			viper.GetInt("policy-money"),
			viper.GetFloat64("policy-inaccuracy"),
			viper.GetFloat64("policy-stddev"),
			seed)
	case "random":
		policy = agent.NewRandom(seed)
	default:
		return fmt.Errorf("unknown policy %q", name)
	}

	e, err := env.Make(envID, pool, seed)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"players":      len(e.Auction().Players()),
		"actions":      e.NumActions(),
		"observations": e.ObservationSize(),
	}).Info("environment ready")

	rewards := make([]float64, 0, episodes)
	for ep := 0; ep < episodes; ep++ {
		total, steps, err := runEpisode(e, policy, maxSteps)
		if err != nil {
			return fmt.Errorf("episode %d: %w", ep, err)
		}
		rewards = append(rewards, total)
		log.WithFields(logrus.Fields{
			"episode": ep,
			"steps":   steps,
			"reward":  total,
		}).Info("episode finished")
		if viper.GetBool("render") {
			e.Render(os.Stdout)
		}
		policy.Reset()
		e.Reset()
	}

	if len(rewards) == 0 {
		return nil
	}
	sort.Float64s(rewards)
	var sum float64
	for _, r := range rewards {
		sum += r
	}
	log.WithFields(logrus.Fields{
		"episodes": len(rewards),
		"mean":     sum / float64(len(rewards)),
		"min":      rewards[0],
		"max":      rewards[len(rewards)-1],
	}).Info("run complete")
	return nil
}

// runEpisode plays one episode to completion, driving the controlled owner
// with the given policy through the environment's action codec.
func runEpisode(e *env.Env, policy agent.Agent, maxSteps int) (total float64, steps int, err error) {
	codec := e.Codec()
	for !e.Done() {
		if steps >= maxSteps {
			return total, steps, fmt.Errorf("exceeded %d steps without terminating", maxSteps)
		}
		p, b := policy.Act(e.Auction(), 0)
		var action int
		if b > 0 {
			action = codec.Encode(p, b)
		} else {
			action = env.ActionNone
		}
		_, reward, _, _ := e.Step(action)
		total += reward
		steps++
	}
	return total, steps, nil
}

func loadPlayers(path string) ([]auction.Player, error) {
	if path == "" {
		return players.Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cheatsheet: %w", err)
	}
	defer f.Close()
	return players.FromCSV(f)
}

func main() {
	// A local .env can carry DRAFTSIM_* settings; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
