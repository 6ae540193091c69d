// Command routegen queries OSRM for the drive between each pair of
// consecutive cities in the trip plan and prints the result as a YAML
// "routes:" block, ready to review and paste into the plan file.
//
// Progress goes to stderr; stdout carries only the YAML.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/eeplog/backend/internal/config"
	"github.com/pkordes/eeplog/backend/internal/routing"
	"github.com/pkordes/eeplog/backend/internal/summary"
)

type options struct {
	planFile string
	osrmURL  string
	delay    time.Duration
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "routegen",
		Short:        "Generate driving route segments for the trip plan",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			return run(cmd.Context(), opts, cmd.OutOrStdout(), log)
		},
	}
	cmd.Flags().StringVar(&opts.planFile, "plan", "trip.yaml", "trip plan file to read cities from")
	cmd.Flags().StringVar(&opts.osrmURL, "osrm-url", routing.DefaultBaseURL, "OSRM server base URL")
	cmd.Flags().DurationVar(&opts.delay, "delay", time.Second, "pause between consecutive OSRM queries")
	return cmd
}

type routesDoc struct {
	Routes []config.RouteYAML `yaml:"routes"`
}

// run generates segments and writes them to out. Pairs that fail are left
// out of the YAML; run returns an error only when none succeed.
func run(ctx context.Context, opts options, out io.Writer, log *slog.Logger) error {
	plan, err := config.LoadPlan(opts.planFile)
	if err != nil {
		return err
	}
	if len(plan.Cities) < 2 {
		return fmt.Errorf("%s: need at least two cities, found %d", opts.planFile, len(plan.Cities))
	}

	gen := routing.NewGenerator(routing.NewClient(opts.osrmURL), opts.delay, log)
	segments, errs := gen.Generate(ctx, plan.Cities)
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := routesDoc{Routes: make([]config.RouteYAML, len(segments))}
	for i, s := range segments {
		doc.Routes[i] = config.RouteYAMLFrom(s)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode routes: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode routes: %w", err)
	}

	totals := summary.TripTotals(segments)
	_, _ = fmt.Fprintf(out, "# total: %s miles, %s hours\n", totals.MilesText(), totals.HoursText())

	want := len(plan.Cities) - 1
	if len(errs) > 0 {
		log.Warn("some routes failed", "ok", len(segments), "failed", len(errs), "pairs", want)
	}
	if len(segments) == 0 {
		return fmt.Errorf("all %d route queries failed", want)
	}
	return nil
}
