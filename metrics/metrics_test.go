package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting concurrent expansions and evaluations", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddExpansion()
					c.AddEvaluation()
				}
			}()
		}
		wg.Wait()

		got := c.Complete(1.5)
		require.Equal(t, 800, got.Expansions)
		require.Equal(t, 800, got.Evaluations)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, 1.5, got.Value)
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddExpansion()
		c.Start(2)

		got := c.Complete(0)
		require.Zero(t, got.Expansions, "Start should reset counters from a previous search")
		require.Equal(t, 2, got.Depth)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4)
		c.AddExpansion()
		c.AddEvaluation()

		require.Equal(t, SearchMetric{}, c.Complete(7))
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "minimax", Depth: 2, Evaluation: "weighted"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Agent1: 1, Agent2: 2,
		GameMetric: GameMetric{Outcome: "win", Score: 512, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, Moves: 40},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Agent: 0, SearchMetric: SearchMetric{Depth: 2, Expansions: 10, Evaluations: 30, Value: -4}},
	}}))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "2", "win", "512", "40", "2026-01-02T03:04:05Z", "2026-01-02T03:04:06Z", "1s"}, rows[1])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "0", "0s", "2", "10", "30", "-4"}, rows[1])

	rows = readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"1", "minimax", "2", "weighted", ""}, rows[1])
}

// closeFailer is a CSV destination whose Close, and optionally Write, fails.
type closeFailer struct {
	bytes.Buffer
	failWrite bool
}

func (c *closeFailer) Write(p []byte) (int, error) {
	if c.failWrite {
		return 0, errors.New("disk full")
	}
	return c.Buffer.Write(p)
}

func (c *closeFailer) Close() error { return errors.New("close failed") }

func TestWriteCSV(t *testing.T) {
	t.Run("close error is returned", func(t *testing.T) {
		out := &closeFailer{}

		err := writeCSV(out, "game_records.csv", []string{"id"}, [][]string{{"1"}})

		require.ErrorContains(t, err, "failed to close game_records.csv")
		require.Equal(t, "id\n1\n", out.String())
	})

	t.Run("write error takes precedence over close error", func(t *testing.T) {
		err := writeCSV(&closeFailer{failWrite: true}, "move_records.csv", []string{"id"}, [][]string{{"1"}})

		require.ErrorContains(t, err, "failed to write move_records.csv")
		require.NotContains(t, err.Error(), "close")
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
