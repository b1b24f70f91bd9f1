package median_test

import (
	"fmt"

	"github.com/oskaritimperi/leven/median"
	"github.com/oskaritimperi/leven/symbols"
)

// ExampleMedian demonstrates the greedy consensus over noisy variants.
//
// Scenario:
//
//	Six corrupted spellings of "Spam"; the consensus recovers the
//	original even though it appears only once in the set.
//
// Complexity: O(Σ len(sᵢ) · |median| · |Σ|)
func ExampleMedian() {
	variants := [][]byte{
		symbols.Bytes("SpSm"),
		symbols.Bytes("mpamm"),
		symbols.Bytes("Spam"),
		symbols.Bytes("Spa"),
		symbols.Bytes("Sua"),
		symbols.Bytes("hSam"),
	}

	consensus, err := median.Median(variants, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("median:", symbols.BytesString(consensus))
	// Output:
	// median: Spam
}

// ExampleSetMedian demonstrates picking the most central member of a set.
func ExampleSetMedian() {
	variants := [][]byte{
		symbols.Bytes("ehee"),
		symbols.Bytes("cceaes"),
		symbols.Bytes("chees"),
		symbols.Bytes("chreesc"),
		symbols.Bytes("chees"),
		symbols.Bytes("cheesee"),
		symbols.Bytes("cseese"),
		symbols.Bytes("chetese"),
	}

	center, err := median.SetMedian(variants, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("set median:", symbols.BytesString(center))
	// Output:
	// set median: chees
}
