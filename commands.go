package main

import (
	"fmt"
	"strings"

	"pursuit/config"
	"pursuit/engine"
	"pursuit/experiments"
	"pursuit/game"
	"pursuit/search"

	"github.com/spf13/cobra"
)

func loadLayout(path string) (*game.Layout, error) {
	if path == "" {
		return game.DefaultLayout, nil
	}
	return game.LoadLayout(path)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newSearchCmd() *cobra.Command {
	var layoutPath, discipline string
	var stepCost bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Print the runner's path to the nearest food",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(layoutPath)
			if err != nil {
				return err
			}
			d, err := search.ParseDiscipline(discipline)
			if err != nil {
				return err
			}
			var options []search.Option
			if stepCost {
				options = append(options, search.WithStepCostPriority())
			}

			problem := game.NewFoodProblem(game.NewPursuitState(l), game.Runner)
			path, found := search.Find[game.Position, game.Direction](problem, d, options...)
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), game.Stop)
				return nil
			}
			cost, end, _ := search.PathCost[game.Position, game.Direction](problem, path)

			names := make([]string, len(path))
			for i, a := range path {
				names[i] = a.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "reached %s in %d moves, cost %g\n", end, len(path), cost)
			return nil
		},
	}
	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "Layout file, the built-in layout when empty")
	cmd.Flags().StringVarP(&discipline, "discipline", "d", search.BreadthFirst.String(), "Frontier discipline (dfs, bfs, ucs)")
	cmd.Flags().BoolVar(&stepCost, "step-cost-priority", false, "Order uniform-cost search by last edge cost")
	return cmd
}

func newPlayCmd() *cobra.Command {
	var configPath string
	var show bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game between the configured agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			var options []engine.Option
			if show {
				options = append(options, engine.WithObserver(func(step int, state *game.PursuitState) {
					fmt.Fprintf(cmd.OutOrStdout(), "step %d score %g\n%s\n", step, state.Score(), state)
				}))
			}
			e, err := c.NewEngine(options...)
			if err != nil {
				return err
			}

			gameMetric, _, err := e.Run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s with score %g after %d moves\n", gameMetric.Outcome, gameMetric.Score, gameMetric.Moves)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Match config, the default match when empty")
	cmd.Flags().BoolVar(&show, "show", false, "Print the board after every move")
	return cmd
}

func newExperimentCmd() *cobra.Command {
	var configPath, out, name string
	var games int
	var depths []int

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play repeated games and write the records as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			e := experiments.FromConfig(name, c, games)
			if len(depths) > 0 {
				e = experiments.DepthExperiment(c, depths)
				e.Games = games
			}

			result, err := experiments.Run(e)
			if err != nil {
				return err
			}
			dir, err := experiments.Write(out, e, result)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Match config, the default match when empty")
	cmd.Flags().StringVarP(&out, "out", "o", "results", "Directory to write the records under")
	cmd.Flags().StringVar(&name, "name", "matchup", "Experiment name")
	cmd.Flags().IntVarP(&games, "games", "n", experiments.NumGames, "Games per match up")
	cmd.Flags().IntSliceVar(&depths, "depths", nil, "Play a minimax runner at each depth against the configured chaser")
	return cmd
}
