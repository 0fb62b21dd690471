package separatechaining

import (
	"fmt"
	"github.com/gostonefire/intchainmap/crt"
	"github.com/gostonefire/intchainmap/hashfunc"
	"github.com/gostonefire/intchainmap/internal/chain"
	"github.com/gostonefire/intchainmap/internal/hash"
	"github.com/gostonefire/intchainmap/internal/model"
)

// SCArena - Represents an in-memory implementation of the Separate Chaining Collision Resolution Technique.
// Every entry lives in one arena slice and chains are linked through arena handles, each bucket holding the
// handle of its chain head. Entries are only ever appended, there is no delete, so handles stay valid for the
// lifetime of the arena.
type SCArena struct {
	buckets               []int64
	entries               []model.Entry
	numberOfBucketsNeeded int64
	numberOfBuckets       int64
	hashAlgorithm         hashfunc.HashAlgorithm
	internalAlgorithm     bool
}

// NewSCArena - Returns a pointer to a new instance of the Separate Chaining arena implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting the storage
//
// It returns:
//   - scArena which is a pointer to the created instance
//   - err which is of type crt.InvalidTableSize if the table size is not positive or exceeds model.MaxBuckets
func NewSCArena(crtConf model.CRTConf) (scArena *SCArena, err error) {
	if crtConf.NumberOfBucketsNeeded <= 0 {
		err = crt.InvalidTableSize{}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewTruncatingModHashAlgorithm(crtConf.NumberOfBucketsNeeded)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBucketsNeeded)
	}

	numberOfBuckets := crtConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = crt.InvalidTableSize{}
		return
	}
	if crtConf.NumberOfBucketsNeeded > model.MaxBuckets || numberOfBuckets > model.MaxBuckets {
		err = fmt.Errorf("table size of %d buckets exceeds maximum of %d: %w", numberOfBuckets, model.MaxBuckets, crt.InvalidTableSize{})
		return
	}

	var initialEntries int64
	if crtConf.InitialEntries > 0 {
		initialEntries = crtConf.InitialEntries
	}

	scArena = &SCArena{
		buckets:               newBuckets(numberOfBuckets),
		entries:               make([]model.Entry, 0, initialEntries),
		numberOfBucketsNeeded: crtConf.NumberOfBucketsNeeded,
		numberOfBuckets:       numberOfBuckets,
		hashAlgorithm:         crtConf.HashAlgorithm,
		internalAlgorithm:     internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCArena
func (S *SCArena) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets:       S.numberOfBuckets,
		NumberOfBucketsNeeded: S.numberOfBucketsNeeded,
		NumberOfEntries:       int64(len(S.entries)),
		InternalAlgorithm:     S.internalAlgorithm,
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of an entry
//
// It returns:
//   - bucketNo is the bucket the key belongs to
//   - err is of type crt.BucketOutOfRange if the hash algorithm returned a number outside the table
func (S *SCArena) GetBucketNo(key int64) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc(key)
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = crt.BucketOutOfRange{}
		return
	}

	return
}

// GetBucket - Returns an iterator over the chain of a bucket given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - chainIterator is a chain.Records struct that can be used to get all entries belonging to the bucket, head first.
//   - err is of type crt.BucketOutOfRange if bucketNo is outside the table
func (S *SCArena) GetBucket(bucketNo int64) (chainIterator *chain.Records, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = crt.BucketOutOfRange{}
		return
	}

	chainIterator = chain.NewRecords(S.getEntry, S.buckets[bucketNo])

	return
}

// Get - Gets the entry that corresponds to the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - entry is the matching entry if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound, crt.BucketOutOfRange or a standard error, if something went wrong
func (S *SCArena) Get(key int64) (entry model.Entry, err error) {
	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	handle := S.findInChain(S.buckets[bucketNo], key)
	if handle == model.NilHandle {
		err = crt.NoRecordFound{}
		return
	}

	entry = S.entries[handle]

	return
}

// Set - Updates an existing entry with a new value or adds it as new chain head if no existing is found with same key.
// An update never reorders the chain.
//   - key is the identifier of an entry
//   - value is the value to store with the key
//
// It returns:
//   - err is of type crt.BucketOutOfRange if the hash algorithm misbehaves, nothing is then changed
func (S *SCArena) Set(key, value int64) (err error) {
	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		err = fmt.Errorf("error while updating or adding entry to bucket: %w", err)
		return
	}

	head := S.buckets[bucketNo]
	if handle := S.findInChain(head, key); handle != model.NilHandle {
		S.entries[handle].Value = value
		return
	}

	S.buckets[bucketNo] = S.appendEntry(model.Entry{Key: key, Value: value, Next: head})

	return
}
