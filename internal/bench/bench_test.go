//go:build unit

package bench

import (
	"bytes"
	"context"
	"github.com/gostonefire/intchainmap"
	"github.com/gostonefire/intchainmap/internal/xorshift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func smallConfig(hashAlgorithm string) Config {
	return Config{
		Name:          "small",
		TableSize:     64,
		WarmupKeys:    100,
		Operations:    5000,
		KeyMask:       1<<10 - 1,
		Seed:          7,
		HashAlgorithm: hashAlgorithm,
	}
}

// expectedChecksum - Replays the key stream of cfg against a plain map
func expectedChecksum(cfg Config) int64 {
	m := make(map[int64]int64)
	for i := int64(0); i < cfg.WarmupKeys; i++ {
		m[i] = i
	}

	g := xorshift.NewGenerator(cfg.Seed)
	for i := int64(0); i < cfg.Operations; i++ {
		key := g.NextMasked(cfg.KeyMask)
		m[key] = key
	}

	var checksum int64
	for i := int64(0); i < cfg.Operations; i++ {
		if v, ok := m[g.NextMasked(cfg.KeyMask)]; ok {
			checksum += v
		} else {
			checksum--
		}
	}

	return checksum
}

func TestRun(t *testing.T) {
	for _, alg := range []string{HashMod, HashXX} {
		t.Run("checksum matches replayed lookups for "+alg, func(t *testing.T) {
			// Prepare
			cfg := smallConfig(alg)

			// Execute
			result, err := Run(context.Background(), cfg, RunOptions{IncludeStat: true})

			// Check
			assert.NoError(t, err, "run benchmark")
			assert.Equal(t, "small", result.Name, "name preserved")
			assert.Equal(t, expectedChecksum(cfg), result.Checksum, "checksum")
			assert.GreaterOrEqual(t, result.PutNsPerOp, float64(0), "put figure")
			assert.GreaterOrEqual(t, result.GetNsPerOp, float64(0), "get figure")
			require.NotNil(t, result.Stat, "stat collected")
			assert.Equal(t, int64(64), result.Stat.UsedBuckets, "all buckets used")
			assert.LessOrEqual(t, result.Stat.Records, int64(1024), "records bounded by key range")
		})
	}

	t.Run("checksum matches replayed lookups for builtin map baseline", func(t *testing.T) {
		// Prepare
		cfg := smallConfig(HashMod)
		cfg.Implementation = ImplGoMap

		// Execute
		result, err := Run(context.Background(), cfg, RunOptions{IncludeStat: true})

		// Check
		assert.NoError(t, err, "run benchmark")
		assert.Equal(t, expectedChecksum(cfg), result.Checksum, "checksum")
		assert.Zero(t, result.Buckets, "no buckets for builtin map")
		assert.Nil(t, result.Stat, "no stat for builtin map")
	})

	t.Run("both implementations agree on checksum", func(t *testing.T) {
		// Prepare
		cfgChain := smallConfig(HashMod)
		cfgMap := smallConfig(HashMod)
		cfgMap.Implementation = ImplGoMap

		// Execute
		resultChain, errChain := Run(context.Background(), cfgChain, RunOptions{})
		resultMap, errMap := Run(context.Background(), cfgMap, RunOptions{})

		// Check
		require.NoError(t, errChain, "run int chain map")
		require.NoError(t, errMap, "run builtin map")
		assert.Equal(t, resultChain.Checksum, resultMap.Checksum, "same checksum")
	})

	t.Run("stat only when requested", func(t *testing.T) {
		// Execute
		result, err := Run(context.Background(), smallConfig(HashMod), RunOptions{})

		// Check
		assert.NoError(t, err, "run benchmark")
		assert.Nil(t, result.Stat, "no stat")
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		// Prepare
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Execute
		_, err := Run(ctx, smallConfig(HashMod), RunOptions{})

		// Check
		assert.ErrorIs(t, err, context.Canceled, "cancelled")
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		// Prepare
		cfg := smallConfig("crc32")

		// Execute
		_, err := Run(context.Background(), cfg, RunOptions{})

		// Check
		assert.ErrorContains(t, err, "unknown hash algorithm", "invalid algorithm")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("default configs are valid", func(t *testing.T) {
		for _, cfg := range DefaultConfigs() {
			assert.NoError(t, cfg.Validate(), "config %s", cfg.Name)
			assert.Equal(t, int64(1000000), cfg.WarmupKeys, "warmup keys")
			assert.Equal(t, int64(5000000), cfg.Operations, "operations")
			assert.Equal(t, uint32(1048575), cfg.KeyMask, "key mask")
		}
		assert.Equal(t, int64(256000), DefaultConfigs()[0].TableSize, "first table size")
		assert.Equal(t, int64(1000000), DefaultConfigs()[1].TableSize, "second table size")
	})

	t.Run("rejects bad values", func(t *testing.T) {
		tests := map[string]func(c *Config){
			"empty name":          func(c *Config) { c.Name = "" },
			"zero table size":     func(c *Config) { c.TableSize = 0 },
			"negative table size": func(c *Config) { c.TableSize = -4 },
			"negative warmup":     func(c *Config) { c.WarmupKeys = -1 },
			"zero operations":     func(c *Config) { c.Operations = 0 },
			"unknown algorithm":   func(c *Config) { c.HashAlgorithm = "sha1" },
			"unknown impl":        func(c *Config) { c.Implementation = "syncmap" },
		}

		for name, mutate := range tests {
			// Prepare
			cfg := smallConfig(HashMod)
			mutate(&cfg)

			// Execute
			err := cfg.Validate()

			// Check
			assert.Error(t, err, name)
		}
	})

	t.Run("zero seed derives a non-zero stream", func(t *testing.T) {
		// Prepare
		cfg := smallConfig(HashMod)
		cfg.Seed = 0

		// Execute
		g := xorshift.NewGenerator(cfg.seed())

		// Check
		assert.NotZero(t, g.Next(), "generator produces values")
	})
}

func TestResult_Report(t *testing.T) {
	t.Run("writes put and get lines", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		result := Result{Name: "intmap", PutNsPerOp: 12.5, GetNsPerOp: 7.25}

		// Execute
		err := result.Report(&buf)

		// Check
		assert.NoError(t, err, "report")
		assert.Equal(t, "intmap put = 12.500000 ns/op\nintmap get = 7.250000 ns/op\n", buf.String(), "report text")
	})
}

func TestGoMap(t *testing.T) {
	t.Run("round trips and reports missing keys", func(t *testing.T) {
		// Prepare
		m := NewGoMap()

		// Execute
		err1 := m.Set(5, 100)
		err2 := m.Set(5, 200)

		// Check
		assert.NoError(t, err1, "set key")
		assert.NoError(t, err2, "update key")
		assert.Equal(t, int64(200), m.Lookup(5), "updated value")
		assert.Equal(t, intchainmap.NotFound, m.Lookup(42), "missing key")
	})
}
