package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/massimo93/graph-priority-queue/internal/edgelist"
	"github.com/massimo93/graph-priority-queue/prim_kruskal"
)

// Algorithm names the spanning tree method. It implements pflag.Value so a
// typo is rejected while flags are parsed.
type Algorithm string

func (a *Algorithm) String() string { return string(*a) }

// Set accepts "prim" or "kruskal", case-insensitively.
func (a *Algorithm) Set(s string) error {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
		*a = Algorithm(v)
		return nil
	default:
		return errors.Errorf("must be %q or %q", prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal)
	}
}

func (a *Algorithm) Type() string { return "algorithm" }

// Config holds every flag of the command tree.
type Config struct {
	Start     string
	Delimiter string
	Algorithm Algorithm
	Maximize  bool
	Directed  bool
	Scale     float64
	Unit      string
	Verbose   bool

	delim rune
}

// NewConfig returns a Config holding the flag defaults.
func NewConfig() *Config {
	return &Config{
		Delimiter: string(edgelist.DefaultDelimiter),
		Algorithm: prim_kruskal.MethodPrim,
		Scale:     1,
	}
}

// bindPersistent registers the flags shared by every command.
func (c *Config) bindPersistent(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Start, "start", "s", c.Start, "start vertex (default: first vertex of the file)")
	fs.StringVarP(&c.Delimiter, "delimiter", "d", c.Delimiter, `field delimiter, a single character or \t`)
	fs.Float64Var(&c.Scale, "scale", c.Scale, "divide reported weights by this factor")
	fs.StringVar(&c.Unit, "unit", c.Unit, "unit suffix for reported weights")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "verbose output")
}

// bindMST registers the spanning tree flags.
func (c *Config) bindMST(fs *pflag.FlagSet) {
	fs.VarP(&c.Algorithm, "algorithm", "a", "spanning tree algorithm: prim or kruskal")
	fs.BoolVar(&c.Maximize, "max", c.Maximize, "compute a maximum spanning tree")
}

// bindPaths registers the shortest path flags.
func (c *Config) bindPaths(fs *pflag.FlagSet) {
	fs.BoolVar(&c.Directed, "directed", c.Directed, "read each line as a one-way edge")
}

// Validate checks flag values that pflag cannot check on its own.
func (c *Config) Validate() error {
	delim, err := edgelist.ParseDelimiter(c.Delimiter)
	if err != nil {
		return errors.Wrap(err, "--delimiter")
	}
	c.delim = delim

	if c.Scale <= 0 || math.IsInf(c.Scale, 0) || math.IsNaN(c.Scale) {
		return errors.Errorf("--scale must be a positive finite number, got %g", c.Scale)
	}

	// Prim seeds keys with the largest float, so only Kruskal can maximize.
	if c.Maximize && c.Algorithm != prim_kruskal.MethodKruskal {
		return errors.New("--max requires --algorithm kruskal")
	}

	return nil
}

// formatWeight renders w / Scale with three decimals and the unit suffix.
func (c *Config) formatWeight(w float64) string {
	if math.IsInf(w, 1) {
		return "inf"
	}
	s := fmt.Sprintf("%.3f", w/c.Scale)
	if c.Unit != "" {
		s += " " + c.Unit
	}

	return s
}
