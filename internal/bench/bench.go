// Package bench times inserts and lookups on an intchainmap.IntChainMap under a pseudo-random key stream.
package bench

import (
	"context"
	"fmt"
	"github.com/gostonefire/intchainmap"
	"github.com/gostonefire/intchainmap/hashfunc"
	"github.com/gostonefire/intchainmap/internal/xorshift"
	"io"
	"time"
)

// Result - Outcome of one benchmark run
//   - Checksum is the sum of all values returned by lookups in the get phase
//   - Buckets is zero for ImplGoMap
//   - Stat is only set when requested through RunOptions and only for ImplIntChainMap
type Result struct {
	Name       string
	Buckets    int64
	PutNsPerOp float64
	GetNsPerOp float64
	Checksum   int64
	Stat       *intchainmap.IntChainMapStat
}

// RunOptions - Optional behaviour of Run
//   - IncludeStat collects table statistics after the get phase, outside of timing
type RunOptions struct {
	IncludeStat bool
}

// Run - Builds a table according to cfg, inserts the warmup keys, then times Operations inserts followed by
// Operations lookups of masked xorshift keys. The context is checked between phases.
func Run(ctx context.Context, cfg Config, opts RunOptions) (result Result, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}

	var table Table
	var icm *intchainmap.IntChainMap
	switch cfg.Implementation {
	case ImplGoMap:
		table = NewGoMap()
	default:
		var ha hashfunc.HashAlgorithm
		var info intchainmap.IntChainMapInfo
		ha, err = cfg.hashAlgorithm()
		if err != nil {
			return
		}
		icm, info, err = intchainmap.NewIntChainMap(cfg.TableSize, ha)
		if err != nil {
			return
		}
		table = icm
		result.Buckets = info.NumberOfBuckets
	}

	result.Name = cfg.Name

	for i := int64(0); i < cfg.WarmupKeys; i++ {
		if err = table.Set(i, i); err != nil {
			err = fmt.Errorf("error while inserting warmup key %d: %w", i, err)
			return
		}
	}
	if err = ctx.Err(); err != nil {
		return
	}

	g := xorshift.NewGenerator(cfg.seed())

	start := time.Now()
	for i := int64(0); i < cfg.Operations; i++ {
		key := g.NextMasked(cfg.KeyMask)
		if err = table.Set(key, key); err != nil {
			err = fmt.Errorf("error while inserting key %d: %w", key, err)
			return
		}
	}
	result.PutNsPerOp = nsPerOp(time.Since(start), cfg.Operations)
	if err = ctx.Err(); err != nil {
		return
	}

	var checksum int64
	start = time.Now()
	for i := int64(0); i < cfg.Operations; i++ {
		checksum += table.Lookup(g.NextMasked(cfg.KeyMask))
	}
	result.GetNsPerOp = nsPerOp(time.Since(start), cfg.Operations)
	result.Checksum = checksum

	if opts.IncludeStat && icm != nil {
		result.Stat, err = icm.Stat(false)
		if err != nil {
			return
		}
	}

	return
}

// Report - Writes the put and get figures as human-readable lines to w
func (R Result) Report(w io.Writer) (err error) {
	if _, err = fmt.Fprintf(w, "%s put = %f ns/op\n", R.Name, R.PutNsPerOp); err != nil {
		return
	}
	_, err = fmt.Fprintf(w, "%s get = %f ns/op\n", R.Name, R.GetNsPerOp)

	return
}

func nsPerOp(elapsed time.Duration, operations int64) float64 {
	return float64(elapsed.Nanoseconds()) / float64(operations)
}
