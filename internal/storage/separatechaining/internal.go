package separatechaining

import (
	"fmt"
	"github.com/gostonefire/intchainmap/internal/model"
)

// newBuckets - Returns a slice of empty bucket heads
func newBuckets(numberOfBuckets int64) []int64 {
	buckets := make([]int64, numberOfBuckets)
	for i := range buckets {
		buckets[i] = model.NilHandle
	}

	return buckets
}

// findInChain - Walks a chain from head and returns the handle of the entry holding key, or model.NilHandle
func (S *SCArena) findInChain(head, key int64) int64 {
	for h := head; h != model.NilHandle; h = S.entries[h].Next {
		if S.entries[h].Key == key {
			return h
		}
	}

	return model.NilHandle
}

// appendEntry - Appends an entry to the arena and returns its handle
func (S *SCArena) appendEntry(entry model.Entry) int64 {
	S.entries = append(S.entries, entry)
	return int64(len(S.entries) - 1)
}

// getEntry - Returns the entry with the given handle
func (S *SCArena) getEntry(handle int64) (entry model.Entry, err error) {
	if handle < 0 || handle >= int64(len(S.entries)) {
		err = fmt.Errorf("entry handle %d outside arena of %d entries", handle, len(S.entries))
		return
	}

	entry = S.entries[handle]

	return
}
