package algokit

import (
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"
)

// singleSymbolCode is the code of the only symbol of a one-leaf tree. An
// empty code would leave Decode unable to make progress.
const singleSymbolCode = "0"

// buildCodes walks the tree depth-first, appending '0' for every left step
// and '1' for every right step.
func (t *Tree) buildCodes() map[rune]string {
	codes := make(map[rune]string, t.Len())
	if t.nodes[t.root].kind == leafNode {
		codes[t.nodes[t.root].symbol] = singleSymbolCode
		return codes
	}
	var walk func(id int32, path []byte)
	walk = func(id int32, path []byte) {
		n := &t.nodes[id]
		if n.kind == leafNode {
			codes[n.symbol] = string(path)
			return
		}
		walk(n.left, append(path, '0'))
		walk(n.right, append(path, '1'))
	}
	walk(t.root, make([]byte, 0, t.Len()))
	return codes
}

// Codes returns a copy of the symbol to code table. No code is a prefix of
// another.
func (t *Tree) Codes() map[rune]string {
	return maps.Clone(t.codes)
}

// Code returns the code for r and whether r is in the tree.
func (t *Tree) Code(r rune) (string, bool) {
	c, ok := t.codes[r]
	return c, ok
}

// Encode returns the concatenated codes of the runes of text as a string of
// '0' and '1'. It fails with ErrSymbolNotFound if text holds a rune the tree
// was not built with and with ErrInvalidUTF8 if text is not valid UTF-8; no
// partial output is returned. A zero Tree fails with ErrEmptyInput.
func (t *Tree) Encode(text string) (string, error) {
	size, err := t.EncodedLen(text)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(size)
	for _, r := range text {
		sb.WriteString(t.codes[r])
	}
	return sb.String(), nil
}

// EncodedLen returns the number of bits Encode would produce for text.
func (t *Tree) EncodedLen(text string) (int, error) {
	if len(t.nodes) == 0 {
		return 0, ErrEmptyInput
	}
	size := 0
	for i, r := range text {
		if r == utf8.RuneError {
			if _, n := utf8.DecodeRuneInString(text[i:]); n == 1 {
				return 0, fmt.Errorf("%w: byte %#x at %d", ErrInvalidUTF8, text[i], i)
			}
		}
		c, ok := t.codes[r]
		if !ok {
			return 0, fmt.Errorf("%w: %q at byte %d", ErrSymbolNotFound, r, i)
		}
		size += len(c)
	}
	return size, nil
}

// Decode walks the tree from the root for every code in bits, emitting a
// symbol at each leaf. It fails with ErrMalformedCode when bits holds
// anything but '0' and '1' or ends in the middle of a code, and with
// ErrEmptyInput on a zero Tree.
func (t *Tree) Decode(bits string) (string, error) {
	if len(t.nodes) == 0 {
		return "", ErrEmptyInput
	}
	var sb strings.Builder
	root := &t.nodes[t.root]

	if root.kind == leafNode {
		for i := 0; i < len(bits); i++ {
			if bits[i] != singleSymbolCode[0] {
				return "", fmt.Errorf("%w: bit %q at %d", ErrMalformedCode, bits[i], i)
			}
			sb.WriteRune(root.symbol)
		}
		return sb.String(), nil
	}

	cur := t.root
	for i := 0; i < len(bits); i++ {
		n := &t.nodes[cur]
		switch bits[i] {
		case '0':
			cur = n.left
		case '1':
			cur = n.right
		default:
			return "", fmt.Errorf("%w: bit %q at %d", ErrMalformedCode, bits[i], i)
		}
		if leaf := &t.nodes[cur]; leaf.kind == leafNode {
			sb.WriteRune(leaf.symbol)
			cur = t.root
		}
	}
	if cur != t.root {
		return "", fmt.Errorf("%w: input ends inside a code", ErrMalformedCode)
	}
	return sb.String(), nil
}
