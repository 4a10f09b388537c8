package algokit

import (
	"container/heap"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

var (
	// ErrEmptyInput indicates a Huffman tree was requested for no symbols.
	ErrEmptyInput = errors.New("algokit: cannot build a Huffman tree from empty input")
	// ErrSymbolNotFound indicates encoding a symbol the tree was not built with.
	ErrSymbolNotFound = errors.New("algokit: symbol not in Huffman tree")
	// ErrMalformedCode indicates a bit sequence the tree cannot decode.
	ErrMalformedCode = errors.New("algokit: malformed Huffman code")
	// ErrInvalidUTF8 indicates text holding a byte sequence that is not UTF-8.
	ErrInvalidUTF8 = errors.New("algokit: text is not valid UTF-8")
)

type nodeKind uint8

const (
	leafNode nodeKind = iota
	internalNode
)

// node is one arena slot. Leaves use symbol; internal nodes use left/right,
// which are indices into Tree.nodes.
type node struct {
	kind        nodeKind
	symbol      rune
	weight      int
	left, right int32
}

// Tree is a Huffman code tree. Nodes live in a flat arena: leaves occupy
// [0, Len()) in ascending symbol order and internal nodes follow in the
// order they were merged, so the root is always the last node.
//
// A Tree is immutable once built and safe for concurrent use. It is the only
// authority for both Encode and Decode; codes from two trees built from
// different frequency tables are not interchangeable.
type Tree struct {
	nodes []node
	root  int32
	codes map[rune]string
}

// Frequencies counts how often each rune occurs in text. Bytes that are not
// valid UTF-8 are skipped; use Build to reject such text instead.
func Frequencies(text string) map[rune]int {
	freqs := make(map[rune]int)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != utf8.RuneError || size > 1 {
			freqs[r]++
		}
		i += size
	}
	return freqs
}

// Build constructs the Huffman tree for the symbol frequencies of text. It
// fails with ErrInvalidUTF8 if text is not valid UTF-8.
func Build(text string) (*Tree, error) {
	if err := validUTF8(text); err != nil {
		return nil, err
	}
	return NewTree(Frequencies(text))
}

// validUTF8 reports the first byte of text that does not start a valid
// UTF-8 sequence. A literal U+FFFD is valid.
func validUTF8(text string) error {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w: byte %#x at %d", ErrInvalidUTF8, text[i], i)
		}
		i += size
	}
	return nil
}

// NewTree constructs a Huffman tree from a frequency table. Symbols with a
// non-positive weight are ignored. Construction is deterministic: the same
// table always yields the same tree.
func NewTree(freqs map[rune]int) (*Tree, error) {
	symbols := make([]rune, 0, len(freqs))
	for r, w := range freqs {
		if w > 0 {
			symbols = append(symbols, r)
		}
	}
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}
	slices.Sort(symbols)

	t := &Tree{nodes: make([]node, 0, 2*len(symbols)-1)}
	q := make(nodeQueue, 0, len(symbols))
	for _, r := range symbols {
		t.nodes = append(t.nodes, node{kind: leafNode, symbol: r, weight: freqs[r]})
		q = append(q, queued{weight: freqs[r], id: int32(len(t.nodes) - 1)})
	}
	heap.Init(&q)

	for q.Len() > 1 {
		left := heap.Pop(&q).(queued)
		right := heap.Pop(&q).(queued)
		t.nodes = append(t.nodes, node{
			kind:   internalNode,
			weight: left.weight + right.weight,
			left:   left.id,
			right:  right.id,
		})
		heap.Push(&q, queued{weight: left.weight + right.weight, id: int32(len(t.nodes) - 1)})
	}
	t.root = heap.Pop(&q).(queued).id
	t.codes = t.buildCodes()
	return t, nil
}

// Len returns the number of distinct symbols in the tree.
func (t *Tree) Len() int { return (len(t.nodes) + 1) / 2 }

// Weight returns the total weight of the tree, which for a tree built from a
// text is the text's length in runes. A zero Tree weighs 0.
func (t *Tree) Weight() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.nodes[t.root].weight
}

// Frequencies returns a copy of the frequency table the tree was built from.
func (t *Tree) Frequencies() map[rune]int {
	freqs := make(map[rune]int, t.Len())
	for _, n := range t.nodes[:t.Len()] {
		freqs[n.symbol] = n.weight
	}
	return freqs
}

// Symbols returns the tree's symbols in ascending order.
func (t *Tree) Symbols() []rune {
	out := make([]rune, t.Len())
	for i, n := range t.nodes[:t.Len()] {
		out[i] = n.symbol
	}
	return out
}

type queued struct {
	weight int
	id     int32
}

// nodeQueue is a min-heap of tree nodes ordered by weight, with ties broken
// by arena index so that older nodes are merged first.
type nodeQueue []queued

// Len implements heap.Interface and returns the number of elements.
func (q nodeQueue) Len() int { return len(q) }

// Less implements heap.Interface ordering by ascending weight, then by
// ascending arena index.
func (q nodeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].id < q[j].id
}

// Swap implements heap.Interface swap.
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push implements heap.Interface push.
func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queued)) }

// Pop implements heap.Interface pop.
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[0 : n-1]
	return x
}
