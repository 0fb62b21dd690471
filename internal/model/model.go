package model

import (
	"github.com/gostonefire/intchainmap/hashfunc"
	"math"
)

// NilHandle - Handle value terminating a chain or marking an empty bucket
const NilHandle int64 = -1

// MaxBuckets - Largest number of buckets a table can be created with
const MaxBuckets int64 = math.MaxInt32

// Entry - Represents one key/value pair in a bucket chain
//   - Next is the arena handle of the next entry in the same bucket, or NilHandle
type Entry struct {
	Key   int64
	Value int64
	Next  int64
}

// StorageParameters - Represents parameters specific for the chained storage
type StorageParameters struct {
	NumberOfBuckets       int64
	NumberOfBucketsNeeded int64
	NumberOfEntries       int64
	InternalAlgorithm     bool
}

// CRTConf - Is a struct to be passed in the call to NewSCArena and contains configuration that affects
// the chained storage.
//   - NumberOfBucketsNeeded is the number of buckets to create
//   - InitialEntries is an optional capacity hint for the entry arena
//   - HashAlgorithm is the hash function to use, nil selects the internal algorithm
type CRTConf struct {
	NumberOfBucketsNeeded int64
	InitialEntries        int64
	HashAlgorithm         hashfunc.HashAlgorithm
}
