package edgelist_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/internal/edgelist"
)

const cities = `# city distances
Londra,NewYork,5
Dubai,Londra,12

Parigi,NewYork,3
Roma, Londra, 6
Roma,Dubai,2
Milano,NewYork,7
Manchester,Parigi,1
`

func newLoader(delim rune) (*edgelist.Loader, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	return edgelist.NewLoader(delim, logger), hook
}

func TestLoad(t *testing.T) {
	loader, hook := newLoader(edgelist.DefaultDelimiter)
	g := core.NewGraph[string]()

	n, err := loader.Load(strings.NewReader(cities), g)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t, 36.0, g.Weight())
	assert.Equal(t, []string{"Londra", "NewYork", "Dubai", "Parigi", "Roma", "Milano", "Manchester"}, g.Vertices())

	w, err := g.EdgeWeight("Londra", "Roma")
	require.NoError(t, err)
	assert.Equal(t, 6.0, w, "whitespace around fields is ignored")

	require.Len(t, hook.AllEntries(), 7)
	first := hook.AllEntries()[0]
	assert.Equal(t, log.DebugLevel, first.Level)
	assert.Equal(t, 2, first.Data["line"])
	assert.Equal(t, "Londra", first.Data["src"])
}

func TestLoad_Delimiter(t *testing.T) {
	loader, _ := newLoader('\t')
	g := core.NewGraph[string]()

	n, err := loader.Load(strings.NewReader("a\tb\t1.5\nb\tc\t2\n"), g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3.5, g.Weight())
}

func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  string
	}{
		{"too few fields", "a,b,1\na,b\n", "line 2"},
		{"too many fields", "a,b,1,2\n", "line 1"},
		{"bad weight", "# header\na,b,x\n", "line 2"},
		{"nan weight", "a,b,NaN\n", "line 1"},
		{"empty label", "a,,1\n", "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loader, _ := newLoader(edgelist.DefaultDelimiter)
			_, err := loader.Load(strings.NewReader(tc.input), core.NewGraph[string]())
			require.ErrorIs(t, err, edgelist.ErrMalformedLine)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestLoad_GraphErrorCarriesLine(t *testing.T) {
	loader, _ := newLoader(edgelist.DefaultDelimiter)
	g := core.NewGraph[string]()

	n, err := loader.Load(strings.NewReader("a,b,1\nc,c,2\n"), g)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, n, "records before the failure stay loaded")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestLoad_BadDelimiter(t *testing.T) {
	loader, _ := newLoader('#')
	_, err := loader.Load(strings.NewReader("a#b#1\n"), core.NewGraph[string]())
	assert.ErrorIs(t, err, edgelist.ErrBadDelimiter)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte(cities), 0o600))

	loader, _ := newLoader(edgelist.DefaultDelimiter)
	g := core.NewGraph[string]()
	n, err := loader.LoadFile(path, g)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "missing.csv"), g)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseDelimiter(t *testing.T) {
	for in, want := range map[string]rune{",": ',', ";": ';', `\t`: '\t', "|": '|'} {
		got, err := edgelist.ParseDelimiter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", ",,", "#", `"`, "\n"} {
		_, err := edgelist.ParseDelimiter(in)
		assert.ErrorIs(t, err, edgelist.ErrBadDelimiter, "%q", in)
	}
}
