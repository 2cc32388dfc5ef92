package main

import (
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"io"
	"omibyte.io/slvguard/slvguard"
	"sort"
	"time"
)

var (
	latencySamples  int
	latencyInterval time.Duration

	latencyCmd = &cobra.Command{
		Use:   "latency",
		Short: "Sample the measured transaction latencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if latencySamples <= 0 {
				return errors.New("--samples must be positive")
			}
			return withGuard(func(g *slvguard.Guard) error {
				writes, reads, err := sampleLatencies(g, latencySamples, latencyInterval)
				if err != nil {
					return err
				}
				printLatencyStats(cmd.OutOrStdout(), "write", summarize(writes))
				printLatencyStats(cmd.OutOrStdout(), "read", summarize(reads))
				return nil
			})
		},
	}
)

func init() {
	flags := latencyCmd.Flags()
	flags.IntVarP(&latencySamples, "samples", "n", 100, "number of samples")
	flags.DurationVarP(&latencyInterval, "interval", "i", 10*time.Millisecond, "time between samples")
}

// latencyStats summarizes latency samples in cycles.
type latencyStats struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	P50    float64
	P95    float64
}

func sampleLatencies(g *slvguard.Guard, n int, interval time.Duration) (writes, reads []float64, err error) {
	for i := 0; i < n; i++ {
		if i > 0 && interval > 0 {
			time.Sleep(interval)
		}
		l, err := g.Latencies()
		if err != nil {
			return nil, nil, err
		}
		writes = append(writes, float64(l.Write))
		reads = append(reads, float64(l.Read))
	}
	return writes, reads, nil
}

func summarize(samples []float64) latencyStats {
	if len(samples) == 0 {
		return latencyStats{}
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = 0
	}
	return latencyStats{
		N:      len(sorted),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Mean:   mean,
		StdDev: std,
		P50:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}

func printLatencyStats(w io.Writer, kind string, s latencyStats) {
	fmt.Fprintf(w, "%-5s n=%d min=%.0f max=%.0f mean=%.2f stddev=%.2f p50=%.0f p95=%.0f\n",
		kind, s.N, s.Min, s.Max, s.Mean, s.StdDev, s.P50, s.P95)
}
