package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/internal/cli"
	"github.com/massimo93/graph-priority-queue/internal/edgelist"
	"github.com/massimo93/graph-priority-queue/prim_kruskal"
)

const cities = `Londra,NewYork,5
Dubai,Londra,12
Parigi,NewYork,3
Roma,Londra,6
Roma,Dubai,2
Milano,NewYork,7
Manchester,Parigi,1
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "edges.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// run executes the command tree and returns stdout, stderr and the error.
func run(ctx context.Context, args ...string) (string, string, error) {
	cmd := cli.NewRootCommand(ctx, "test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestMST(t *testing.T) {
	path := writeFile(t, cities)
	want := "Vertex count: 7\nEdge count: 6\nTotal weight: 24.000\n"

	for _, algo := range []string{"prim", "kruskal", "KRUSKAL"} {
		out, logs, err := run(context.Background(), "-a", algo, path)
		require.NoError(t, err, algo)
		assert.Equal(t, want, out, algo)
		assert.Contains(t, logs, "spanning tree computed")
		assert.NotContains(t, logs, "edge loaded", "debug entries need --verbose")
	}
}

func TestMST_ScaleUnitStart(t *testing.T) {
	path := writeFile(t, cities)

	out, _, err := run(context.Background(), "--scale", "1000", "--unit", "km", "-s", "Roma", path)
	require.NoError(t, err)
	assert.Equal(t, "Vertex count: 7\nEdge count: 6\nTotal weight: 0.024 km\n", out)
}

func TestMST_Maximum(t *testing.T) {
	path := writeFile(t, cities)

	out, _, err := run(context.Background(), "-a", "kruskal", "--max", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total weight: 34.000")

	_, _, err = run(context.Background(), "--max", path)
	assert.ErrorContains(t, err, "--max requires --algorithm kruskal")
}

func TestMST_Verbose(t *testing.T) {
	path := writeFile(t, "# one edge\nA;B;2.5\n")

	out, logs, err := run(context.Background(), "-v", "-d", ";", path)
	require.NoError(t, err)
	assert.Equal(t, "Vertex count: 2\nEdge count: 1\nTotal weight: 2.500\n", out)
	assert.Contains(t, logs, "edge loaded")
	assert.Contains(t, logs, "line=2")
}

func TestMST_DisconnectedWarns(t *testing.T) {
	path := writeFile(t, cities+"Oslo,Bergen,4\n")

	out, logs, err := run(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Vertex count: 9\nEdge count: 7\nTotal weight: 28.000\n", out)
	assert.Contains(t, logs, "level=warning")
	assert.Contains(t, logs, "components=2")
}

func TestMST_Errors(t *testing.T) {
	path := writeFile(t, cities)

	_, _, err := run(context.Background(), "-a", "boruvka", path)
	assert.ErrorContains(t, err, `must be "prim" or "kruskal"`)

	_, _, err = run(context.Background(), "--scale", "0", path)
	assert.ErrorContains(t, err, "--scale")

	_, _, err = run(context.Background(), "-d", "##", path)
	assert.ErrorIs(t, err, edgelist.ErrBadDelimiter)

	_, _, err = run(context.Background(), "-s", "Tokyo", path)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = run(context.Background())
	assert.Error(t, err, "the edge list argument is required")

	_, _, err = run(context.Background(), writeFile(t, "A,B,1\nB,C\n"))
	assert.ErrorIs(t, err, edgelist.ErrMalformedLine)

	_, _, err = run(context.Background(), writeFile(t, "# nothing\n"))
	assert.ErrorContains(t, err, "holds no edges")

	_, _, err = run(context.Background(), writeFile(t, "A,B,1\nB,C,-1\n"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnsupportedNegativeWeight)
}

func TestMST_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := run(ctx, writeFile(t, cities))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPaths(t *testing.T) {
	path := writeFile(t, cities)

	out, logs, err := run(context.Background(), "paths", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "shortest paths computed")

	got := map[string][]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		require.Len(t, fields, 3, line)
		got[fields[0]] = fields[1:]
	}
	assert.Equal(t, map[string][]string{
		"Londra":     {"0.000", "-"},
		"NewYork":    {"5.000", "Londra"},
		"Dubai":      {"8.000", "Roma"},
		"Parigi":     {"8.000", "NewYork"},
		"Roma":       {"6.000", "Londra"},
		"Milano":     {"12.000", "NewYork"},
		"Manchester": {"9.000", "Parigi"},
	}, got)
}

func TestPaths_Directed(t *testing.T) {
	path := writeFile(t, "A,B,1\nB,C,2\n")

	out, _, err := run(context.Background(), "paths", "--directed", "-s", "B", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"A", "inf", "-"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"C", "2.000", "B"}, strings.Fields(lines[2]))

	_, _, err = run(context.Background(), "paths", "-s", "Z", path)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAlgorithmValue(t *testing.T) {
	var a cli.Algorithm
	require.NoError(t, a.Set(" Prim "))
	assert.Equal(t, "prim", a.String())
	assert.Equal(t, "algorithm", a.Type())
	assert.Error(t, a.Set("dfs"))
	assert.Equal(t, "prim", a.String(), "failed Set keeps the old value")
}
