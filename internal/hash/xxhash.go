package hash

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/intchainmap/internal/utils"
)

// XXHashAlgorithm - Bucket selection algorithm using xxhash.Sum64 over the little endian bytes of the key and then
// applying bucket = hash & (actualTableSize - 1) to get the bucket number, where actualTableSize is the nearest
// bigger exponent of 2 of the requested table size.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
//   - tableSize is the number of buckets the map will address
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc(key int64) int64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(key))
	h := xxhash.Sum64(b[:])
	return int64(h & uint64(X.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
