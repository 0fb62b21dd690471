package intchainmap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/intchainmap/crt"
)

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound, crt.BucketOutOfRange or a standard error, if something went wrong
func (I *IntChainMap) Get(key int64) (value int64, err error) {
	entry, err := I.chainManagement.Get(key)
	if err != nil {
		return
	}

	value = entry.Value

	return
}

// Lookup - Returns the value that corresponds to the given key, or NotFound if there is none.
// A stored value equal to NotFound is indistinguishable from a missing key, and a custom hash algorithm
// producing bucket numbers outside the table also gives NotFound.
func (I *IntChainMap) Lookup(key int64) int64 {
	entry, err := I.chainManagement.Get(key)
	if err != nil {
		return NotFound
	}

	return entry.Value
}

// Contains - Returns true if the key is stored in the map
func (I *IntChainMap) Contains(key int64) bool {
	_, err := I.chainManagement.Get(key)
	return err == nil
}

// Set - Updates an existing record with a new value or adds it if no existing is found with same key.
// New keys are linked in as head of their bucket chain, updates are made in place.
//   - key is the identifier of a record
//   - value is the value to store
//
// It returns:
//   - err is of type crt.BucketOutOfRange if a custom hash algorithm misbehaves, nothing is stored in that case
func (I *IntChainMap) Set(key, value int64) (err error) {
	return I.chainManagement.Set(key, value)
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record
func (I *IntChainMap) GetBucketNo(key int64) (bucketNo int64, err error) {
	return I.chainManagement.GetBucketNo(key)
}

// Chain - Returns an iterator over the records of a bucket, chain head first.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (I *IntChainMap) Chain(bucketNo int64) (chainRecords *ChainRecords, err error) {
	iter, err := I.chainManagement.GetBucket(bucketNo)
	if err != nil {
		return
	}

	chainRecords = &ChainRecords{iter: iter}

	return
}

// Stat - Walks through the entire set of buckets and produce an IntChainMapStat struct with information.
// For big tables the IntChainMapStat.BucketDistribution slice can be memory heavy (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set IntChainMapStat.BucketDistribution to nil.
func (I *IntChainMap) Stat(includeDistribution bool) (intChainMapStat *IntChainMapStat, err error) {
	var records *ChainRecords
	var ims IntChainMapStat

	if includeDistribution {
		ims.BucketDistribution = make([]int64, I.numberOfBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < I.numberOfBuckets; i++ {
		records, err = I.Chain(i)
		if err != nil {
			return
		}

		var chainLength int64
		for records.HasNext() {
			_, _, err = records.Next()
			if err != nil {
				err = fmt.Errorf("error while walking chain of bucket %d: %w", i, err)
				return
			}
			chainLength++
		}

		if chainLength > 0 {
			ims.UsedBuckets++
			ims.Records += chainLength
			if chainLength > ims.LongestChain {
				ims.LongestChain = chainLength
			}
		}
		if includeDistribution {
			ims.BucketDistribution[i] = chainLength
		}
	}

	if ims.UsedBuckets > 0 {
		ims.AverageChainLength = float64(ims.Records) / float64(ims.UsedBuckets)
	}

	intChainMapStat = &ims
	return
}

// IsNotFound - Returns true if err reports a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, crt.NoRecordFound{})
}
