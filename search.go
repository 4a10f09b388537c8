package algokit

import "strings"

// NotFound is the Index of a SearchResult whose key was not located.
const NotFound = -1

// Keyed is implemented by anything searchable by a string key.
type Keyed interface {
	Key() string
}

// Record pairs an opaque payload with the string identifier it is searched by.
type Record[T any] struct {
	ID      string
	Payload T
}

// Key implements Keyed.
func (r Record[T]) Key() string { return r.ID }

// SearchResult reports where a key was found and how many key comparisons
// the search performed to get there.
type SearchResult struct {
	Index       int // NotFound when the key is absent
	Comparisons int
}

// Found reports whether the search located the key.
func (r SearchResult) Found() bool { return r.Index != NotFound }

// SequentialSearch scans records from the start and returns the first index
// whose key equals id. Every examined record counts as one comparison, so a
// miss always costs len(records) comparisons.
func SequentialSearch[R Keyed](records []R, id string) SearchResult {
	comparisons := 0
	for i := range records {
		comparisons++
		if records[i].Key() == id {
			return SearchResult{Index: i, Comparisons: comparisons}
		}
	}
	return SearchResult{Index: NotFound, Comparisons: comparisons}
}

// BinarySearch locates id in records, which must be sorted ascending by key
// (byte-wise, as strings.Compare orders them). The precondition is not
// checked: on unsorted input the result is unspecified but the call still
// terminates. One comparison is counted per probed midpoint.
func BinarySearch[R Keyed](sorted []R, id string) SearchResult {
	low, high := 0, len(sorted)-1
	comparisons := 0
	for low <= high {
		mid := (low + high) / 2
		comparisons++
		switch c := strings.Compare(sorted[mid].Key(), id); {
		case c == 0:
			return SearchResult{Index: mid, Comparisons: comparisons}
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return SearchResult{Index: NotFound, Comparisons: comparisons}
}

// IsSortedByKey reports whether records are in ascending key order, the
// precondition of BinarySearch.
func IsSortedByKey[R Keyed](records []R) bool {
	for i := 1; i < len(records); i++ {
		if records[i-1].Key() > records[i].Key() {
			return false
		}
	}
	return true
}
