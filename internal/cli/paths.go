package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/dijkstra"
)

func newPathsAction(ctx context.Context, cfg *Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd, cfg)

		g, start, err := loadGraph(ctx, cfg, args[0], logger, core.WithDirected(cfg.Directed))
		if err != nil {
			return err
		}

		dist, prev, err := dijkstra.Dijkstra(g, start, dijkstra.WithReturnPath())
		if err != nil {
			return errors.Wrapf(err, "shortest paths from %q", start)
		}
		logger.WithFields(log.Fields{
			"start":    start,
			"directed": cfg.Directed,
		}).Info("shortest paths computed")

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, v := range g.Vertices() {
			via := "-"
			if p, ok := prev[v]; ok {
				via = p
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", v, cfg.formatWeight(dist[v]), via)
		}

		return tw.Flush()
	}
}
