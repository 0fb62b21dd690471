package hash

// TruncatingModHashAlgorithm - The internally used bucket selection algorithm. Non-negative keys are placed in
// bucket = key % tableSize, negative keys in bucket = -(key % tableSize). Go's remainder truncates towards zero,
// so the remainder of a negative key lies in (-tableSize, 0] and its negation always fits in an int64, also for
// math.MinInt64.
type TruncatingModHashAlgorithm struct {
	tableSize int64
}

// NewTruncatingModHashAlgorithm - Returns a pointer to a new TruncatingModHashAlgorithm instance
func NewTruncatingModHashAlgorithm(tableSize int64) *TruncatingModHashAlgorithm {
	ha := &TruncatingModHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, the size is used as is.
//   - tableSize is the number of buckets the map will address
func (T *TruncatingModHashAlgorithm) SetTableSize(tableSize int64) {
	T.tableSize = tableSize
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
func (T *TruncatingModHashAlgorithm) HashFunc(key int64) int64 {
	if key < 0 {
		return -(key % T.tableSize)
	}
	return key % T.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (T *TruncatingModHashAlgorithm) GetTableSize() int64 {
	return T.tableSize
}
