// Package cli wires the graph algorithms to a cobra command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/massimo93/graph-priority-queue/bfs"
	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/internal/edgelist"
	"github.com/massimo93/graph-priority-queue/pqueue"
	"github.com/massimo93/graph-priority-queue/prim_kruskal"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		log.WithError(err).Error("prim failed")
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. The root command computes a
// spanning tree; the paths subcommand runs Dijkstra.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	cfg := NewConfig()

	rootCmd := &cobra.Command{
		Use:           "prim [flags] <edge-list-file>",
		Short:         "Compute the minimum spanning tree of a weighted edge list.",
		Args:          cobra.ExactArgs(1),
		RunE:          newMSTAction(ctx, cfg),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cfg.bindPersistent(rootCmd.PersistentFlags())
	cfg.bindMST(rootCmd.Flags())

	pathsCmd := &cobra.Command{
		Use:   "paths [flags] <edge-list-file>",
		Short: "Print the shortest distance from the start vertex to every vertex.",
		Args:  cobra.ExactArgs(1),
		RunE:  newPathsAction(ctx, cfg),
	}
	cfg.bindPaths(pathsCmd.Flags())
	rootCmd.AddCommand(pathsCmd)

	return rootCmd
}

// newLogger returns a logger writing to the command's stderr.
func newLogger(cmd *cobra.Command, cfg *Config) *log.Logger {
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

// loadGraph validates cfg, reads path into a new graph and resolves the start vertex.
func loadGraph(ctx context.Context, cfg *Config, path string, logger log.FieldLogger, opts ...core.GraphOption) (*core.Graph[string], string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	g := core.NewGraph[string](opts...)
	logger.WithField("file", path).Info("loading edge list")
	n, err := edgelist.NewLoader(cfg.delim, logger).LoadFile(path, g)
	if err != nil {
		return nil, "", err
	}
	logger.WithFields(log.Fields{
		"file":     path,
		"records":  n,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Info("edge list loaded")

	if err = ctx.Err(); err != nil {
		return nil, "", errors.Wrap(err, "interrupted")
	}

	start := cfg.Start
	switch {
	case start == "" && g.IsEmpty():
		return nil, "", errors.Errorf("%s holds no edges", path)
	case start == "":
		start = g.Vertices()[0]
	case !g.HasVertex(start):
		return nil, "", errors.Wrapf(core.ErrVertexNotFound, "start %q", start)
	}

	return g, start, nil
}

func newMSTAction(ctx context.Context, cfg *Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd, cfg)

		g, start, err := loadGraph(ctx, cfg, args[0], logger)
		if err != nil {
			return err
		}

		comps, err := bfs.Components(g)
		if err != nil {
			return errors.Wrap(err, "count components")
		}
		if len(comps) > 1 {
			logger.WithField("components", len(comps)).Warn("graph is disconnected, computing a spanning forest")
		}

		opts := []prim_kruskal.Option{prim_kruskal.WithMethod(string(cfg.Algorithm))}
		if cfg.Maximize {
			opts = append(opts, prim_kruskal.WithComparator(pqueue.Max[float64]))
		}
		tree, err := prim_kruskal.Compute(g, start, opts...)
		if err != nil {
			return errors.Wrapf(err, "compute %s spanning tree", cfg.Algorithm)
		}
		logger.WithFields(log.Fields{
			"algorithm": cfg.Algorithm,
			"start":     start,
		}).Info("spanning tree computed")

		return printSummary(cmd.OutOrStdout(), cfg, tree.Stats())
	}
}

// printSummary writes the vertex count, edge count and scaled total weight.
func printSummary(w io.Writer, cfg *Config, stats core.GraphStats) error {
	_, err := fmt.Fprintf(w, "Vertex count: %d\nEdge count: %d\nTotal weight: %s\n",
		stats.VertexCount, stats.EdgeCount, cfg.formatWeight(stats.Weight))

	return err
}
