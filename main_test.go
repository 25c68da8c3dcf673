package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSearchCmd(t *testing.T) {
	t.Run("finding the nearest food", func(t *testing.T) {
		layout := writeFile(t, "corridor.lay", "%%%%%%\n%P .G%\n%%%%%%\n")

		out, err := execute(t, "search", "--layout", layout, "--discipline", "ucs")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Equal(t, "East East", lines[0])
		require.Contains(t, lines[1], "in 2 moves, cost 2")
	})

	t.Run("unreachable food", func(t *testing.T) {
		layout := writeFile(t, "walled.lay", "%%%%%%\n%P%.G%\n%%%%%%\n")

		out, err := execute(t, "search", "--layout", layout)

		require.NoError(t, err)
		require.Equal(t, "Stop\n", out)
	})

	t.Run("unknown discipline", func(t *testing.T) {
		_, err := execute(t, "search", "--discipline", "astar")

		require.Error(t, err)
	})
}

func TestPlayCmd(t *testing.T) {
	layout := writeFile(t, "isolated.lay", "%%%%%%%\n%P.%%G%\n%%%%%%%\n")
	cfg := writeFile(t, "match.yaml", "layout: "+layout+"\nagents: [{kind: path}, {kind: random}]\n")

	out, err := execute(t, "play", "--config", cfg)

	require.NoError(t, err)
	require.Equal(t, "win with score 509 after 1 moves\n", out)
}

func TestExperimentCmd(t *testing.T) {
	layout := writeFile(t, "isolated.lay", "%%%%%%%\n%P.%%G%\n%%%%%%%\n")
	cfg := writeFile(t, "match.yaml", "layout: "+layout+"\nagents: [{kind: minimax}, {kind: path}]\n")
	root := t.TempDir()

	out, err := execute(t, "experiment", "--config", cfg, "--games", "2", "--out", root, "--depths", "1,2")

	require.NoError(t, err)
	dir := strings.TrimSpace(out)
	require.True(t, strings.HasPrefix(dir, filepath.Join(root, "depth")))
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(dir, name))
	}
}
