package chain

import (
	"fmt"
	"github.com/gostonefire/intchainmap/crt"
	"github.com/gostonefire/intchainmap/internal/model"
)

// Records - Is used to iterate over the entries of one bucket chain, head first.
type Records struct {
	getEntryFunc func(int64) (model.Entry, error)
	handle       int64
}

// NewRecords - Returns a pointer to a new Records struct
//   - getEntryFunc resolves an entry handle to the entry itself
//   - head is the handle of the first entry in the chain, or model.NilHandle for an empty bucket
func NewRecords(getEntryFunc func(int64) (model.Entry, error), head int64) *Records {

	return &Records{
		getEntryFunc: getEntryFunc,
		handle:       head,
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (C *Records) HasNext() bool {
	return C.handle != model.NilHandle
}

// Next - Returns entry.
// It returns:
//   - entry is the next entry in the chain.
//   - err is either a standard error or if there are no more entries when calling this function an error of type crt.NoRecordFound is returned.
func (C *Records) Next() (entry model.Entry, err error) {
	if C.handle == model.NilHandle {
		err = crt.NoRecordFound{}
		return
	}

	entry, err = C.getEntryFunc(C.handle)
	if err != nil {
		err = fmt.Errorf("error while retrieving entry from arena: %w", err)
		return
	}

	C.handle = entry.Next

	return
}
