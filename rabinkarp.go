package algokit

import (
	"errors"
	"math/bits"
)

// Rolling hash defaults.
const (
	DefaultBase    uint64 = 256 // one digit per byte value
	DefaultModulus uint64 = 103 // small prime; collisions are common and verified away
)

var (
	// ErrInvalidModulus indicates a rolling-hash modulus below 2.
	ErrInvalidModulus = errors.New("algokit: rolling hash modulus must be at least 2")
	// ErrInvalidBase indicates a zero rolling-hash base.
	ErrInvalidBase = errors.New("algokit: rolling hash base must be positive")
)

var defaultMatcher = &Matcher{base: DefaultBase, modulus: DefaultModulus}

// MatchResult holds the confirmed start offsets of a pattern in a text
// together with the work done to find them. Offsets ascend.
//
// Offsets and counters are in bytes, not runes: for non-ASCII text an offset
// is a byte index into the text, so text[off:off+len(pattern)] == pattern,
// and it differs from the position counted in code points.
type MatchResult struct {
	Offsets         []int
	HashComparisons int // windows whose hash was compared to the pattern's
	CharComparisons int // bytes compared while verifying hash hits
}

// Found reports whether at least one occurrence was confirmed.
func (r MatchResult) Found() bool { return len(r.Offsets) > 0 }

// Matcher finds substrings with the Rabin-Karp rolling hash. A Matcher is
// immutable and safe for concurrent use.
type Matcher struct {
	base    uint64
	modulus uint64
}

// NewMatcher returns a Matcher hashing with the given base and modulus.
func NewMatcher(base, modulus uint64) (*Matcher, error) {
	if modulus < 2 {
		return nil, ErrInvalidModulus
	}
	if base == 0 {
		return nil, ErrInvalidBase
	}
	return &Matcher{base: base, modulus: modulus}, nil
}

// FindAll reports every occurrence of pattern in text using DefaultBase and
// DefaultModulus.
func FindAll(text, pattern string) MatchResult {
	return defaultMatcher.FindAll(text, pattern)
}

// Base returns the radix of the rolling hash.
func (m *Matcher) Base() uint64 { return m.base }

// Modulus returns the modulus of the rolling hash.
func (m *Matcher) Modulus() uint64 { return m.modulus }

// FindAll reports every occurrence of pattern in text, overlapping ones
// included. Hash hits are verified byte by byte, so the offsets are exact.
// The empty pattern occurs at every offset from 0 through len(text), each
// window costing one hash comparison and no byte comparisons. A pattern
// longer than text yields an empty result with zero counters.
func (m *Matcher) FindAll(text, pattern string) MatchResult {
	var (
		n   = len(text)
		w   = len(pattern)
		res MatchResult
	)
	if w > n {
		return res
	}
	if w == 0 {
		res.Offsets = make([]int, n+1)
		for i := range res.Offsets {
			res.Offsets[i] = i
		}
		res.HashComparisons = n + 1
		return res
	}

	mod := m.modulus
	base := m.base % mod
	// weight of the byte leaving the window
	lead := powMod(base, uint64(w-1), mod)

	var patternHash, windowHash uint64
	for i := 0; i < w; i++ {
		patternHash = addMod(mulMod(patternHash, base, mod), uint64(pattern[i])%mod, mod)
		windowHash = addMod(mulMod(windowHash, base, mod), uint64(text[i])%mod, mod)
	}

	for i := 0; i <= n-w; i++ {
		res.HashComparisons++
		if patternHash == windowHash {
			match := true
			for j := 0; j < w; j++ {
				res.CharComparisons++
				if text[i+j] != pattern[j] {
					match = false
					break
				}
			}
			if match {
				res.Offsets = append(res.Offsets, i)
			}
		}
		if i < n-w {
			windowHash = m.roll(windowHash, text[i], text[i+w], lead, base)
		}
	}
	return res
}

// roll drops out from the front of the window and appends in at the back.
func (m *Matcher) roll(h uint64, out, in byte, lead, base uint64) uint64 {
	mod := m.modulus
	h = subMod(h, mulMod(uint64(out)%mod, lead, mod), mod)
	h = mulMod(h, base, mod)
	return addMod(h, uint64(in)%mod, mod)
}

// mulMod returns a*b mod m without overflowing, for any m > 0.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	return bits.Rem64(hi, lo, m)
}

// addMod returns a+b mod m for a, b already reduced below m.
func addMod(a, b, m uint64) uint64 {
	s := a + b
	if s >= m || s < a {
		s -= m
	}
	return s
}

// subMod returns a-b mod m in [0, m) for a, b already reduced below m.
func subMod(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}
	return m - (b - a)
}

func powMod(b, e, m uint64) uint64 {
	result := uint64(1) % m
	b %= m
	for e > 0 {
		if e&1 == 1 {
			result = mulMod(result, b, m)
		}
		b = mulMod(b, b, m)
		e >>= 1
	}
	return result
}
