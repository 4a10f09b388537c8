package algokit

import (
	"fmt"
)

func Example() {
	tree, _ := Build("AAAB")
	bits, _ := tree.Encode("AAAB")
	text, _ := tree.Decode(bits)
	fmt.Println(bits, text)
	// Output:
	// 1110 AAAB
}

func ExampleBinarySearch() {
	catalog := []Record[string]{
		{ID: "ID_0000000", Payload: "first"},
		{ID: "ID_0000001", Payload: "second"},
		{ID: "ID_0000002", Payload: "third"},
	}
	res := BinarySearch(catalog, "ID_0000002")
	fmt.Println(res.Index, res.Comparisons, catalog[res.Index].Payload)
	// Output:
	// 2 2 third
}

func ExampleFindAll() {
	m, _ := NewMatcher(256, 101)
	res := m.FindAll("aaaa", "aa")
	fmt.Println(res.Offsets, res.HashComparisons, res.CharComparisons)
	// Output:
	// [0 1 2] 3 6
}

func ExampleHashTable() {
	h, _ := NewHashTable[string](Config{Capacity: 10, Strategy: Multiplication})
	for _, key := range []string{"FRG_ABC", "FRG_BCA", "FRG_CAB"} {
		idx, _ := h.Insert(key, "value of "+key)
		fmt.Println(key, idx)
	}
	v, ok := h.Lookup("FRG_BCA")
	fmt.Println(v, ok)
	// Output:
	// FRG_ABC 9
	// FRG_BCA 9
	// FRG_CAB 9
	// value of FRG_BCA true
}
