package bitmap_test

import (
	"fmt"
	"log"

	"github.com/arloliu/saxbitmap/bitmap"
)

func Example() {
	combos := bitmap.Combinations("abcd", 2)

	lead, err := bitmap.Build(bitmap.CountFrequencies([]string{"abcd", "abcd"}, combos))
	if err != nil {
		log.Fatal(err)
	}
	lag, err := bitmap.Build(bitmap.CountFrequencies([]string{"abcd", "dcba"}, combos))
	if err != nil {
		log.Fatal(err)
	}

	score, err := bitmap.Dissimilarity(lead, lag)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("side=%d score=%.1f\n", lead.Side(), score)

	// Output:
	// side=4 score=3.0
}
