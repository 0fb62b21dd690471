//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestTruncatingModHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("non-negative keys use key modulo table size", func(t *testing.T) {
		// Prepare
		h := NewTruncatingModHashAlgorithm(4)

		// Execute & Check
		assert.Equal(t, int64(0), h.HashFunc(0), "key 0")
		assert.Equal(t, int64(1), h.HashFunc(1), "key 1")
		assert.Equal(t, int64(3), h.HashFunc(3), "key 3")
		assert.Equal(t, int64(0), h.HashFunc(4), "key 4 collides with key 0")
		assert.Equal(t, int64(1), h.HashFunc(9), "key 9")
	})

	t.Run("negative keys use negated truncating remainder", func(t *testing.T) {
		// Prepare
		h := NewTruncatingModHashAlgorithm(4)

		// Execute & Check
		assert.Equal(t, int64(1), h.HashFunc(-1), "key -1")
		assert.Equal(t, int64(3), h.HashFunc(-3), "key -3")
		assert.Equal(t, int64(0), h.HashFunc(-4), "key -4")
		assert.Equal(t, int64(1), h.HashFunc(-5), "key -5 mirrors key 5")
		assert.Equal(t, h.HashFunc(7), h.HashFunc(-7), "negative key mirrors positive key")
	})

	t.Run("extreme keys stay in range", func(t *testing.T) {
		sizes := []int64{1, 2, 3, 7, 256000, 1000000, math.MaxInt64}
		keys := []int64{math.MinInt64, math.MinInt64 + 1, -1, 0, 1, math.MaxInt64}

		for _, size := range sizes {
			h := NewTruncatingModHashAlgorithm(size)
			for _, key := range keys {
				// Execute
				bucketNo := h.HashFunc(key)

				// Check
				assert.GreaterOrEqual(t, bucketNo, int64(0), "bucket for key %d with size %d not negative", key, size)
				assert.Less(t, bucketNo, size, "bucket for key %d with size %d below size", key, size)
			}
		}
	})

	t.Run("minimum int64 key", func(t *testing.T) {
		// Prepare
		h := NewTruncatingModHashAlgorithm(10)

		// Execute
		bucketNo := h.HashFunc(math.MinInt64)

		// Check
		assert.Equal(t, int64(8), bucketNo, "-9223372036854775808 %% 10 is -8")
	})
}

func TestTruncatingModHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("table size is used as given", func(t *testing.T) {
		// Prepare
		h := NewTruncatingModHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")

		h.SetTableSize(23)
		assert.Equal(t, int64(23), h.GetTableSize(), "updated tableSize value")
	})
}

func TestXXHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size rounded to exponent of 2", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(16), tableSize, "correct tableSize value")
	})
}

func TestXXHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(10)

		// Execute
		h.SetTableSize(16 + 7)

		// Check
		assert.Equal(t, int64(32), h.GetTableSize(), "correct tableSize value")
	})
}

func TestXXHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("creates valid and stable bucket numbers", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(1000)
		keys := []int64{math.MinInt64, -42, -1, 0, 1, 42, 1 << 40, math.MaxInt64}

		for _, key := range keys {
			// Execute
			bucketNo := h.HashFunc(key)

			// Check
			assert.GreaterOrEqual(t, bucketNo, int64(0), "bucket for key %d not negative", key)
			assert.Less(t, bucketNo, h.GetTableSize(), "bucket for key %d below table size", key)
			assert.Equal(t, bucketNo, h.HashFunc(key), "same key gives same bucket")
		}
	})

	t.Run("spreads sequential keys over buckets", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(64)
		used := make(map[int64]struct{})

		// Execute
		for key := int64(0); key < 1024; key++ {
			used[h.HashFunc(key)] = struct{}{}
		}

		// Check
		assert.Equal(t, 64, len(used), "all buckets receive keys")
	})
}
