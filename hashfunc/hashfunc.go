package hashfunc

// HashAlgorithm - Interface that permits an implementation using the IntChainMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new IntChainMap. Hence, if a custom hash algorithm is supplied that implements
	// this interface and the instance is already having a table size, it will be overwritten by the number of
	// buckets that was supplied when creating the map.
	//   - tableSize is the number of buckets the map will address
	SetTableSize(tableSize int64)

	// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc(key int64) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// It is very important that this function return the actual table size and not just the table size given at
	// instantiating time or in a call to SetTableSize. Some algorithms are implemented by rounding up to nearest
	// 2 to the power of x, and if such operations are built in the implementation it must be covered here.
	GetTableSize() int64
}
