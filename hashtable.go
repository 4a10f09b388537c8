package algokit

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// goldenFraction is (√5−1)/2 rounded to float64, the multiplier A of the
// multiplication method.
const goldenFraction = 0.6180339887498949

var (
	// ErrInvalidCapacity indicates a hash table capacity below 1.
	ErrInvalidCapacity = errors.New("algokit: hash table capacity must be positive")
	// ErrUnknownStrategy indicates a hash strategy other than Multiplication or MidSquare.
	ErrUnknownStrategy = errors.New("algokit: unknown hash strategy")
)

// Strategy selects how a HashTable maps a key to a bucket.
type Strategy uint8

const (
	// Multiplication indexes by floor(capacity * frac(k * A)).
	Multiplication Strategy = iota
	// MidSquare indexes by the middle digits of k², modulo capacity.
	MidSquare
)

func (s Strategy) String() string {
	switch s {
	case Multiplication:
		return "multiplication"
	case MidSquare:
		return "mid_square"
	default:
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStrategy returns the Strategy named by name. Both the snake_case
// names printed by String and their hyphenated or Portuguese aliases are
// accepted.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "multiplication", "multiplicacao":
		return Multiplication, nil
	case "mid_square", "midsquare", "meio_quadrado":
		return MidSquare, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// index maps key to a bucket in [0, capacity).
func (s Strategy) index(key string, capacity int) int {
	if s == MidSquare {
		return MidSquareIndex(KeyInt(key), capacity)
	}
	return MultiplicationIndex(KeyInt(key), capacity)
}

// KeyInt folds a key into an integer by summing its code points. The sum
// ignores order, so anagrams always share a value.
func KeyInt(key string) uint64 {
	var k uint64
	for _, r := range key {
		k += uint64(r)
	}
	return k
}

// MultiplicationIndex returns floor(capacity * frac(k * A)) with A the
// golden ratio conjugate.
func MultiplicationIndex(k uint64, capacity int) int {
	frac := math.Mod(float64(k)*goldenFraction, 1)
	idx := int(math.Floor(float64(capacity) * frac))
	// capacity*frac can round up to capacity when frac is within an ulp of 1
	return min(idx, capacity-1)
}

// MidSquareIndex squares k, takes the centered run of decimal digits as
// wide as capacity-1 has, and reduces it modulo capacity.
func MidSquareIndex(k uint64, capacity int) int {
	square := squareDigits(k)
	width := len(strconv.Itoa(capacity - 1))

	mid := square
	if len(square) >= width {
		start := max(0, len(square)/2-width/2)
		mid = square[start : start+width]
	}
	v, err := strconv.ParseUint(mid, 10, 64)
	if err != nil {
		// mid is at most as wide as a decimal int
		panic("algokit: mid-square digits out of range: " + mid)
	}
	return int(v % uint64(capacity))
}

func squareDigits(k uint64) string {
	hi, lo := bits.Mul64(k, k)
	if hi == 0 {
		return strconv.FormatUint(lo, 10)
	}
	b := new(big.Int).SetUint64(k)
	return b.Mul(b, b).String()
}

// Entry is one key/value pair of a bucket chain.
type Entry[V any] struct {
	Key   string
	Value V
}

// Config configures a HashTable.
type Config struct {
	// Capacity is the fixed number of buckets. Must be positive.
	Capacity int

	// Strategy selects the hash function. The zero value is Multiplication.
	Strategy Strategy

	// Logger receives a debug record for every insert and update. If nil,
	// a no-op logger is used.
	Logger *slog.Logger
}

// HashTable is a fixed-capacity hash table resolving collisions by chaining.
// It never resizes. A HashTable is not safe for concurrent use; callers that
// share one across goroutines must synchronize access themselves.
type HashTable[V any] struct {
	buckets  [][]Entry[V]
	strategy Strategy
	size     int
	logger   *slog.Logger
}

// NewHashTable returns an empty table with cfg.Capacity buckets.
func NewHashTable[V any](cfg Config) (*HashTable[V], error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, cfg.Capacity)
	}
	if cfg.Strategy != Multiplication && cfg.Strategy != MidSquare {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, cfg.Strategy)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &HashTable[V]{
		buckets:  make([][]Entry[V], cfg.Capacity),
		strategy: cfg.Strategy,
		logger:   logger.With("strategy", cfg.Strategy.String()),
	}, nil
}

// Index returns the bucket key maps to.
func (h *HashTable[V]) Index(key string) int {
	return h.strategy.index(key, len(h.buckets))
}

// Insert stores value under key. If key is already present its value is
// overwritten in place and updated is true; otherwise the pair is appended
// to the end of its bucket's chain. index is the bucket used.
func (h *HashTable[V]) Insert(key string, value V) (index int, updated bool) {
	index = h.Index(key)
	chain := h.buckets[index]
	for i := range chain {
		if chain[i].Key == key {
			chain[i].Value = value
			h.logger.Debug("hash table entry updated", "key", key, "index", index)
			return index, true
		}
	}
	h.buckets[index] = append(chain, Entry[V]{Key: key, Value: value})
	h.size++
	h.logger.Debug("hash table entry inserted", "key", key, "index", index, "chain_length", len(h.buckets[index]))
	return index, false
}

// Lookup returns the value stored under key and whether it was present.
func (h *HashTable[V]) Lookup(key string) (V, bool) {
	for _, e := range h.buckets[h.Index(key)] {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of stored keys.
func (h *HashTable[V]) Len() int { return h.size }

// Capacity returns the fixed number of buckets.
func (h *HashTable[V]) Capacity() int { return len(h.buckets) }

// Strategy returns the hash strategy the table was built with.
func (h *HashTable[V]) Strategy() Strategy { return h.strategy }

// LoadFactor returns Len()/Capacity(). It may exceed 1.
func (h *HashTable[V]) LoadFactor() float64 {
	return float64(h.size) / float64(len(h.buckets))
}

// Chain returns a copy of bucket i in insertion order.
func (h *HashTable[V]) Chain(i int) []Entry[V] {
	return append([]Entry[V](nil), h.buckets[i]...)
}
