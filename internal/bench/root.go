package bench

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the lrubench CLI.
func NewRootCommand() *cobra.Command {
	opts := newDefaultOptions()
	cmd := &cobra.Command{
		Use:   "lrubench",
		Short: "Random-workload exerciser for the LRU cache",
		Long: `lrubench fills an LRU cache with random entries up to capacity, then
issues a much larger burst of random lookups drawn from a wider key space,
producing a realistic mix of hits and misses, and reports the cumulative
hit/miss statistics.

With --metrics-addr the run loops forever, re-issuing lookup bursts and
exposing Prometheus metrics, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Prepare(); err != nil {
				return err
			}

			// Signal-aware context is the root of ownership for the looping
			// mode; SIGINT/SIGTERM ends the run cleanly after the current burst.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return Run(ctx, cmd.OutOrStdout(), opts)
		},
	}
	cmd.SilenceUsage = true

	cmd.Flags().IntVar(&opts.Capacity, "capacity", opts.Capacity, "cache capacity (live entry bound)")
	cmd.Flags().IntVar(&opts.Keyspace, "keyspace", opts.Keyspace, "random keys are drawn from [0, keyspace)")
	cmd.Flags().IntVar(&opts.LookupFactor, "lookup-factor", opts.LookupFactor, "lookups per burst = capacity * lookup-factor")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "PRNG seed (0 derives one from the current time)")
	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address and loop until interrupted")

	return cmd
}
