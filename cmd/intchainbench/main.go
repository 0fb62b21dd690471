package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gostonefire/intchainmap/internal/bench"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	sizes      = flag.String("size", "256000,1000000", "comma separated bucket counts, one run per count")
	warmup     = flag.Int64("warmup", 1000000, "sequential keys inserted before timing")
	ops        = flag.Int64("ops", 5000000, "timed operations per phase")
	mask       = flag.Uint("mask", 1<<20-1, "mask applied to pseudo-random keys")
	seed       = flag.Uint("seed", 0, "generator seed, 0 derives one from the clock")
	hashAlg    = flag.String("hash", bench.HashMod, "bucket algorithm: mod or xxhash")
	impl       = flag.String("impl", bench.ImplIntChainMap, "table implementation: intchainmap or gomap")
	withStat   = flag.Bool("stat", false, "log chain statistics after each run")
	verboseLog = flag.Bool("v", false, "development logging")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*verboseLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	configs, err := configsFromFlags()
	if err != nil {
		zap.L().Fatal("invalid flags", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, os.Stdout, configs, *withStat); err != nil {
		zap.L().Fatal("benchmark failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// configsFromFlags - Builds one bench.Config per requested bucket count
func configsFromFlags() ([]bench.Config, error) {
	if *mask > math.MaxUint32 {
		return nil, fmt.Errorf("mask %d does not fit in 32 bits", *mask)
	}
	if *seed > math.MaxUint32 {
		return nil, fmt.Errorf("seed %d does not fit in 32 bits", *seed)
	}

	baseName := "intmap"
	if *impl == bench.ImplGoMap {
		baseName = "gomap"
	}

	var configs []bench.Config
	for i, s := range strings.Split(*sizes, ",") {
		size, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad bucket count %q: %w", s, err)
		}

		name := baseName
		if i > 0 {
			name = fmt.Sprintf("%s%d", baseName, i+1)
		}

		cfg := bench.NewConfig(name, size)
		cfg.WarmupKeys = *warmup
		cfg.Operations = *ops
		cfg.KeyMask = uint32(*mask)
		cfg.Seed = uint32(*seed)
		cfg.HashAlgorithm = *hashAlg
		cfg.Implementation = *impl
		if err = cfg.Validate(); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, nil
}

// run - Runs every config one at a time and reports to w, timings would interfere if runs overlapped
func run(ctx context.Context, w io.Writer, configs []bench.Config, includeStat bool) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(1)

	for _, cfg := range configs {
		cfg := cfg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			zap.L().Debug("starting run",
				zap.String("name", cfg.Name),
				zap.Int64("buckets", cfg.TableSize),
				zap.String("hash", cfg.HashAlgorithm),
				zap.String("implementation", cfg.Implementation),
				zap.Int64("warmup", cfg.WarmupKeys),
				zap.Int64("operations", cfg.Operations))

			result, err := bench.Run(ctx, cfg, bench.RunOptions{IncludeStat: includeStat})
			if err != nil {
				return fmt.Errorf("run %s: %w", cfg.Name, err)
			}
			if err = result.Report(w); err != nil {
				return err
			}

			zap.L().Debug("finished run", zap.String("name", cfg.Name), zap.Int64("checksum", result.Checksum))
			if result.Stat != nil {
				zap.L().Info("chain statistics",
					zap.String("name", cfg.Name),
					zap.Int64("buckets", result.Buckets),
					zap.Int64("records", result.Stat.Records),
					zap.Int64("usedBuckets", result.Stat.UsedBuckets),
					zap.Int64("longestChain", result.Stat.LongestChain),
					zap.Float64("averageChainLength", result.Stat.AverageChainLength))
			}

			return nil
		})
	}

	return g.Wait()
}
