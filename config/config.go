package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"pursuit/agent"
	"pursuit/engine"
	"pursuit/game"
	"pursuit/metrics"
	"pursuit/search"
	"pursuit/searcher"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const DefaultSeed = 1

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("feature", validateFeature); err != nil {
		panic(fmt.Sprintf("failed to register feature validation: %v", err))
	}
}

func validateFeature(fl validator.FieldLevel) bool {
	_, err := game.ParseWeights(map[string]float64{fl.Field().String(): 0})
	return err == nil
}

// Config describes one match: where it is played and who plays it. Agents[0]
// is the runner and Agents[1] the chaser.
type Config struct {
	Layout   string        `yaml:"layout"` // Path to a layout file, the built-in layout when empty
	MaxMoves int           `yaml:"max_moves" validate:"gte=1"`
	Seed     uint64        `yaml:"seed"`
	Agents   []AgentConfig `yaml:"agents" validate:"len=2,dive"`
}

type AgentConfig struct {
	Kind       string             `yaml:"kind" validate:"required,oneof=minimax random path"`
	Depth      int                `yaml:"depth" validate:"gte=0"`
	Goroutines int                `yaml:"goroutines" validate:"gte=0"`
	Evaluation string             `yaml:"evaluation" validate:"omitempty,oneof=score weighted"`
	Weights    map[string]float64 `yaml:"weights" validate:"omitempty,dive,keys,feature,endkeys"`
	Discipline string             `yaml:"discipline" validate:"omitempty,oneof=dfs bfs ucs"`
	StepCost   bool               `yaml:"step_cost_priority"` // Order uniform-cost search by last edge cost
}

// Default pits a depth-2 minimax runner against a breadth-first chaser on
// the built-in layout.
func Default() Config {
	return Config{
		MaxMoves: engine.MaxMoves,
		Seed:     DefaultSeed,
		Agents: []AgentConfig{
			{Kind: agent.Minimax.String(), Depth: searcher.DefaultDepth, Evaluation: "weighted"},
			{Kind: agent.Planner.String(), Discipline: search.BreadthFirst.String()},
		},
	}
}

// Parse reads YAML over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}

func (c *Config) LoadLayout() (*game.Layout, error) {
	if c.Layout == "" {
		return game.DefaultLayout, nil
	}
	return game.LoadLayout(c.Layout)
}

// NewEngine builds the configured agents and an engine to play them.
func (c *Config) NewEngine(options ...engine.Option) (*engine.LocalEngine, error) {
	l, err := c.LoadLayout()
	if err != nil {
		return nil, err
	}
	runner, err := c.Agents[game.Runner].Build(game.Runner, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	chaser, err := c.Agents[game.Chaser].Build(game.Chaser, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("chaser: %w", err)
	}
	return engine.NewLocalEngine(l, runner, chaser, append([]engine.Option{engine.WithMaxMoves(c.MaxMoves)}, options...)...), nil
}

// Build returns the agent playing as index. Random agents draw from seed
// offset by their index so the two sides do not mirror each other.
func (a AgentConfig) Build(index int, seed uint64) (agent.Agent, error) {
	kind, err := agent.ParseKind(a.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case agent.Minimax:
		evaluate, err := a.evaluation(index)
		if err != nil {
			return nil, err
		}
		return agent.NewMinimaxAgent(searcher.NewMinimax(
			searcher.WithAgentIndex(index),
			searcher.WithDepth(a.Depth),
			searcher.WithGoroutines(a.Goroutines),
			searcher.WithEvaluationFn(evaluate),
			searcher.WithMetrics(),
		)), nil
	case agent.Random:
		return agent.NewRandomAgent(index, seed+uint64(index)), nil
	default:
		discipline, err := a.discipline()
		if err != nil {
			return nil, err
		}
		var options []search.Option
		if a.StepCost {
			options = append(options, search.WithStepCostPriority())
		}
		return agent.NewPlannerAgent(index, discipline, options...), nil
	}
}

func (a AgentConfig) evaluation(index int) (game.Evaluate, error) {
	if a.Evaluation == "" || a.Evaluation == "score" {
		return game.EvaluateScore, nil
	}

	weights := game.RunnerWeights
	if index == game.Chaser {
		weights = game.ChaserWeights
	}
	if len(a.Weights) > 0 {
		var err error
		if weights, err = game.ParseWeights(a.Weights); err != nil {
			return nil, err
		}
	}
	return game.NewWeightedEvaluation(weights, index), nil
}

func (a AgentConfig) discipline() (search.Discipline, error) {
	if a.Discipline == "" {
		return search.BreadthFirst, nil
	}
	return search.ParseDiscipline(a.Discipline)
}

// Metric describes the agent in experiment records.
func (a AgentConfig) Metric(id int) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:         id,
		Kind:       a.Kind,
		Depth:      a.Depth,
		Evaluation: a.Evaluation,
		Discipline: a.Discipline,
	}
}
