package intchainmap

import (
	"github.com/gostonefire/intchainmap/internal/chain"
)

// ChainRecords - Is used to iterate over the records of one bucket chain, head first.
// The iterator reads the live chain, a Set of a new key in the same bucket during iteration is not seen since new
// keys are linked in ahead of the current position.
type ChainRecords struct {
	iter *chain.Records
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (C *ChainRecords) HasNext() bool {
	return C.iter.HasNext()
}

// Next - Returns the next record in the chain.
// It returns:
//   - key and value of the record.
//   - err is either a standard error or if there are no more records when calling this function an error of type crt.NoRecordFound is returned.
func (C *ChainRecords) Next() (key, value int64, err error) {
	entry, err := C.iter.Next()
	if err != nil {
		return
	}

	key, value = entry.Key, entry.Value

	return
}
