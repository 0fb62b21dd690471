package bench

import (
	"errors"
	"fmt"
	"github.com/gostonefire/intchainmap/hashfunc"
	"github.com/gostonefire/intchainmap/internal/hash"
	"time"
)

const (
	// HashMod - Name of the built-in truncating modulo algorithm
	HashMod = "mod"
	// HashXX - Name of the xxhash based algorithm
	HashXX = "xxhash"
)

const (
	// ImplIntChainMap - Name of the chained hash table implementation
	ImplIntChainMap = "intchainmap"
	// ImplGoMap - Name of the single-threaded builtin map baseline
	ImplGoMap = "gomap"
)

const (
	defaultWarmupKeys = 1000000
	defaultOperations = 5000000
	defaultKeyMask    = 1<<20 - 1
)

// Config - Configuration of one benchmark run
//   - Name is printed in front of every reported figure
//   - TableSize is the number of buckets of the table under test
//   - WarmupKeys is the number of sequential keys 0..WarmupKeys-1 inserted before timing starts
//   - Operations is the number of timed operations in each of the put and get phases
//   - KeyMask is applied to every pseudo-random number to form a key
//   - Seed is the generator seed, zero derives one from the wall clock
//   - HashAlgorithm is either HashMod or HashXX, it only applies to ImplIntChainMap
//   - Implementation is either ImplIntChainMap or ImplGoMap, empty means ImplIntChainMap
type Config struct {
	Name           string
	TableSize      int64
	WarmupKeys     int64
	Operations     int64
	KeyMask        uint32
	Seed           uint32
	HashAlgorithm  string
	Implementation string
}

// DefaultConfigs - Returns the two standard runs, one table with 256000 buckets and one with 1000000
func DefaultConfigs() []Config {
	return []Config{
		NewConfig("intmap", 256000),
		NewConfig("intmap2", 1000000),
	}
}

// NewConfig - Returns a Config with default workload settings for a table with tableSize buckets
func NewConfig(name string, tableSize int64) Config {
	return Config{
		Name:           name,
		TableSize:      tableSize,
		WarmupKeys:     defaultWarmupKeys,
		Operations:     defaultOperations,
		KeyMask:        defaultKeyMask,
		HashAlgorithm:  HashMod,
		Implementation: ImplIntChainMap,
	}
}

// Validate - Returns an error if the configuration can not be run
func (C Config) Validate() error {
	if C.Name == "" {
		return errors.New("name can not be empty, it is used when reporting")
	}
	if C.TableSize <= 0 {
		return fmt.Errorf("table size for %s must be a positive value higher than 0 (zero)", C.Name)
	}
	if C.WarmupKeys < 0 {
		return fmt.Errorf("warmup keys for %s can not be negative", C.Name)
	}
	if C.Operations <= 0 {
		return fmt.Errorf("operations for %s must be a positive value higher than 0 (zero)", C.Name)
	}
	if _, err := C.hashAlgorithm(); err != nil {
		return err
	}
	switch C.Implementation {
	case "", ImplIntChainMap, ImplGoMap:
	default:
		return fmt.Errorf("unknown implementation %q for %s, use %q or %q", C.Implementation, C.Name, ImplIntChainMap, ImplGoMap)
	}

	return nil
}

// hashAlgorithm - Returns the algorithm to give the table, nil means the internal one
func (C Config) hashAlgorithm() (hashfunc.HashAlgorithm, error) {
	switch C.HashAlgorithm {
	case "", HashMod:
		return nil, nil
	case HashXX:
		return hash.NewXXHashAlgorithm(C.TableSize), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q, use %q or %q", C.HashAlgorithm, HashMod, HashXX)
	}
}

// seed - Returns the configured seed or one derived from the microseconds of the wall clock
func (C Config) seed() uint32 {
	if C.Seed != 0 {
		return C.Seed
	}
	return uint32(time.Now().Nanosecond() / 1000)
}
