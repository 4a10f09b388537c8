package algokit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// treeVersion tags the serialized frequency-table format.
const treeVersion uint64 = 20240601

// treeEntrySize is the encoded size of one (symbol, weight) pair.
const treeEntrySize = 4 + 8

var (
	// ErrBadVersion indicates the serialized tree version is not supported.
	ErrBadVersion = errors.New("algokit: unsupported Huffman tree version")
	// ErrCorruptTree indicates a serialized tree that cannot be rebuilt.
	ErrCorruptTree = errors.New("algokit: corrupt serialized Huffman tree")
)

// WriteTo serializes the tree to w. Only the frequency table is stored;
// ReadFrom rebuilds the identical tree because construction is
// deterministic.
// Layout:
// - 8 bytes version word: (version<<32)|symbolCount
// - per symbol, ascending: 4 bytes code point, 8 bytes weight (little-endian)
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	var (
		n   int64
		buf [treeEntrySize]byte
	)
	binary.LittleEndian.PutUint64(buf[:8], (treeVersion<<32)|uint64(t.Len()))
	nn, err := w.Write(buf[:8])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	for _, leaf := range t.nodes[:t.Len()] {
		binary.LittleEndian.PutUint32(buf[:4], uint32(leaf.symbol))
		binary.LittleEndian.PutUint64(buf[4:], uint64(leaf.weight))
		nn, err := w.Write(buf[:])
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadFrom deserializes a tree written by WriteTo, replacing t.
func (t *Tree) ReadFrom(r io.Reader) (int64, error) {
	var (
		n   int64
		buf [treeEntrySize]byte
	)
	if _, err := io.ReadFull(r, buf[:8]); err != nil {
		return n, err
	}
	n += 8
	ver := binary.LittleEndian.Uint64(buf[:8])
	if ver>>32 != treeVersion {
		return n, ErrBadVersion
	}
	count := int(ver & math.MaxUint32)
	if count == 0 || count > utf8.MaxRune+1 {
		return n, fmt.Errorf("%w: %d symbols", ErrCorruptTree, count)
	}

	freqs := make(map[rune]int, min(count, 1<<12))
	prev := rune(-1)
	total := 0
	for range count {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return n, err
		}
		n += treeEntrySize
		sym := rune(binary.LittleEndian.Uint32(buf[:4]))
		weight := binary.LittleEndian.Uint64(buf[4:])
		if sym <= prev || sym > utf8.MaxRune {
			return n, fmt.Errorf("%w: symbol %U invalid or out of order", ErrCorruptTree, sym)
		}
		if weight == 0 || weight > uint64(math.MaxInt-total) {
			return n, fmt.Errorf("%w: weight %d for %U", ErrCorruptTree, weight, sym)
		}
		total += int(weight)
		freqs[sym] = int(weight)
		prev = sym
	}

	rebuilt, err := NewTree(freqs)
	if err != nil {
		return n, err
	}
	*t = *rebuilt
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Tree) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Tree) UnmarshalBinary(data []byte) error {
	_, err := t.ReadFrom(bytes.NewReader(data))
	return err
}
