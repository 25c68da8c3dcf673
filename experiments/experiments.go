package experiments

import (
	"fmt"

	"pursuit/config"
	"pursuit/metrics"

	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per match up

// MatchUp pairs two entries of Experiment.Agents, runner first.
type MatchUp struct {
	Runner int
	Chaser int
}

type Experiment struct {
	Name     string
	Base     config.Config // Layout, move cap and seed shared by every game
	Agents   []config.AgentConfig
	MatchUps []MatchUp
	Games    int // Per match up, NumGames when zero
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// FromConfig plays the two agents of c against each other.
func FromConfig(name string, c config.Config, games int) Experiment {
	return Experiment{
		Name:     name,
		Base:     c,
		Agents:   c.Agents,
		MatchUps: []MatchUp{{Runner: 0, Chaser: 1}},
		Games:    games,
	}
}

// DepthExperiment pits a minimax runner searching each of depths against
// the base config's chaser.
func DepthExperiment(base config.Config, depths []int) Experiment {
	chaser := base.Agents[1]
	agents := []config.AgentConfig{chaser}
	var matchUps []MatchUp
	for _, depth := range depths {
		runner := base.Agents[0]
		runner.Kind = "minimax"
		runner.Depth = depth
		agents = append(agents, runner)
		matchUps = append(matchUps, MatchUp{Runner: len(agents) - 1, Chaser: 0})
	}
	return Experiment{
		Name:     "depth",
		Base:     base,
		Agents:   agents,
		MatchUps: matchUps,
	}
}

// Run plays every match up and collects the records. Game i of the
// experiment uses seed Base.Seed+i.
func Run(e Experiment) (Result, error) {
	games := e.Games
	if games <= 0 {
		games = NumGames
	}

	var result Result
	count := 0

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchUp := range e.MatchUps {
		if matchUp.Runner >= len(e.Agents) || matchUp.Chaser >= len(e.Agents) || matchUp.Runner < 0 || matchUp.Chaser < 0 {
			return result, fmt.Errorf("match up %d refers to an unknown agent", mi+1)
		}
		log.Info().Msgf("starting matchup %d of %d between runner=%+v and chaser=%+v...", mi+1, len(e.MatchUps), e.Agents[matchUp.Runner], e.Agents[matchUp.Chaser])

		for i := 0; i < games; i++ {
			c := e.Base
			c.Seed = e.Base.Seed + uint64(count)
			c.Agents = []config.AgentConfig{e.Agents[matchUp.Runner], e.Agents[matchUp.Chaser]}

			eng, err := c.NewEngine()
			if err != nil {
				return result, fmt.Errorf("match up %d: %w", mi+1, err)
			}
			gameMetric, moveMetrics, err := eng.Run()
			if err != nil {
				return result, fmt.Errorf("match up %d game %d: %w", mi+1, i+1, err)
			}

			count++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp.Runner,
				Agent2:     matchUp.Chaser,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(e.MatchUps), i+1, gameMetric.Outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", e.Name)
	return result, nil
}

// Write stores the agent configs and the records under root and returns the
// directory holding them.
func Write(root string, e Experiment, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	configs := make([]metrics.AgentConfig, len(e.Agents))
	for i, a := range e.Agents {
		configs[i] = a.Metric(i)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
