package intchainmap

import (
	"fmt"
	"github.com/gostonefire/intchainmap/hashfunc"
	"github.com/gostonefire/intchainmap/internal/chain"
	"github.com/gostonefire/intchainmap/internal/model"
	"github.com/gostonefire/intchainmap/internal/storage/separatechaining"
)

// NotFound - Value returned by Lookup when a key is not present. It can not be told apart from a stored value
// of -1, use Get when that distinction matters.
const NotFound int64 = -1

// MaxBuckets - Largest number of buckets accepted by NewIntChainMap, also after a custom hash algorithm has
// rounded the table size
const MaxBuckets = model.MaxBuckets

// ChainManagement - Interface for any chained storage implementation
type ChainManagement interface {
	Get(key int64) (entry model.Entry, err error)
	Set(key, value int64) (err error)
	GetBucketNo(key int64) (bucketNo int64, err error)
	GetBucket(bucketNo int64) (chainIterator *chain.Records, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// IntChainMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the total number of available buckets, it may be higher than requested if a custom
//     hash algorithm rounds the table size
//   - InternalAlgorithm is true when the built-in truncating modulo algorithm is used
type IntChainMapInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// IntChainMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of distinct keys stored
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the length of the longest bucket chain
//   - AverageChainLength is the average chain length over used buckets
//   - BucketDistribution is the number of records stored in each available bucket
type IntChainMapStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	AverageChainLength float64
	BucketDistribution []int64
}

// IntChainMap - The main implementation struct.
// An IntChainMap is not safe for concurrent use, callers sharing one between goroutines must provide their own
// mutual exclusion.
type IntChainMap struct {
	chainManagement ChainManagement
	numberOfBuckets int64
}

// NewIntChainMap - Returns a new integer keyed hash map with a fixed number of buckets. The number of buckets never
// changes, chains in each bucket grow with the number of distinct keys hashing to it.
//   - tableSize is the number of buckets, it must be a positive value no higher than MaxBuckets
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - intChainMap is a pointer to an IntChainMap struct
//   - intChainMapInfo is an IntChainMapInfo struct containing some data regarding the hash map created.
//   - err is either of type crt.InvalidTableSize or a normal go Error which should be nil if everything went ok
func NewIntChainMap(tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	intChainMap *IntChainMap,
	intChainMapInfo IntChainMapInfo,
	err error,
) {
	crtConf := model.CRTConf{
		NumberOfBucketsNeeded: tableSize,
		HashAlgorithm:         hashAlgorithm,
	}

	var cm ChainManagement
	cm, err = separatechaining.NewSCArena(crtConf)
	if err != nil {
		err = fmt.Errorf("error while creating chained storage: %w", err)
		return
	}

	sp := cm.GetStorageParameters()

	// Prepare return data
	intChainMap = &IntChainMap{
		chainManagement: cm,
		numberOfBuckets: sp.NumberOfBuckets,
	}

	intChainMapInfo = IntChainMapInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// NumberOfBuckets - Returns the fixed number of buckets in the map
func (I *IntChainMap) NumberOfBuckets() int64 {
	return I.numberOfBuckets
}

// Len - Returns the number of distinct keys stored
func (I *IntChainMap) Len() int64 {
	return I.chainManagement.GetStorageParameters().NumberOfEntries
}
