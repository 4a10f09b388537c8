// Package algokit implements four classic algorithms over in-memory data:
// keyed search, Rabin-Karp substring matching, Huffman coding, and a chained
// hash table with two hash functions.
//
// # Overview
//
// The components are independent and share no state:
//   - SequentialSearch and BinarySearch locate a Keyed record by its string
//     key and report how many key comparisons they made.
//   - Matcher finds every occurrence of a pattern with a modular rolling
//     hash, verifying each hash hit byte by byte.
//   - Tree is a Huffman code built from symbol frequencies; it encodes text
//     to a string of '0' and '1' and decodes it back.
//   - HashTable maps string keys to values in a fixed number of buckets,
//     chaining collisions, with the Multiplication or MidSquare strategy.
//
// Everything except HashTable is immutable or pure and safe for concurrent
// use. A HashTable must not be shared between goroutines without external
// locking.
//
// # Results, not errors
//
// A missing key or pattern is an ordinary outcome: SearchResult.Found,
// MatchResult.Found and the ok result of HashTable.Lookup report it. Errors
// are reserved for inputs that cannot be processed, such as encoding a
// symbol absent from a Tree (ErrSymbolNotFound) or decoding a bit string
// that does not follow its codes (ErrMalformedCode).
//
// # Basic Usage
//
//	// Search a catalog sorted by ID
//	res := algokit.BinarySearch(catalog, "ID_0000042")
//	if res.Found() {
//	    _ = catalog[res.Index]
//	}
//
//	// Find overlapping occurrences
//	m := algokit.FindAll("aaaa", "aa") // m.Offsets == [0 1 2]
//
//	// Compress and restore with the same tree
//	tree, _ := algokit.Build(text)
//	bits, _ := tree.Encode(text)
//	original, _ := tree.Decode(bits)
//
//	// Keep the tree for later
//	data, _ := tree.MarshalBinary()
//	var tree2 algokit.Tree
//	if err := tree2.UnmarshalBinary(data); err != nil {
//	    return err
//	}
//
//	// Chained hash table
//	h, _ := algokit.NewHashTable[string](algokit.Config{Capacity: 10, Strategy: algokit.MidSquare})
//	h.Insert("FRG_ABC", "value")
//	v, ok := h.Lookup("FRG_ABC")
//
// # Performance Characteristics
//
// SequentialSearch: O(n) comparisons. BinarySearch: at most ⌊log₂ n⌋+1.
// FindAll: O(n+m) expected, O(n·m) when the modulus makes hashes collide.
// Build: O(k log k) for k distinct symbols. Encode/Decode: O(output).
// HashTable: O(1+α) per operation for load factor α; the table never grows.
package algokit
