package bench

import (
	"github.com/gostonefire/intchainmap"
)

// Table - The operations timed by Run, *intchainmap.IntChainMap and *GoMap both satisfy it
type Table interface {
	Set(key, value int64) error
	Lookup(key int64) int64
}

// GoMap - Single-threaded baseline on the builtin map, reports missing keys the same way as
// intchainmap.IntChainMap.Lookup so checksums of both implementations can be compared.
type GoMap struct {
	m map[int64]int64
}

// NewGoMap - Returns a pointer to a new empty GoMap
func NewGoMap() *GoMap {
	return &GoMap{m: make(map[int64]int64)}
}

// Set - Adds or updates key, it never fails
func (G *GoMap) Set(key, value int64) error {
	G.m[key] = value
	return nil
}

// Lookup - Returns the value of key or intchainmap.NotFound
func (G *GoMap) Lookup(key int64) int64 {
	value, ok := G.m[key]
	if !ok {
		return intchainmap.NotFound
	}
	return value
}
