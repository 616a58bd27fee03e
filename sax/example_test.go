package sax_test

import (
	"fmt"
	"log"

	"github.com/arloliu/saxbitmap/sax"
)

func ExampleEncoder_Encode() {
	enc, err := sax.NewEncoder(4, 4)
	if err != nil {
		log.Fatal(err)
	}

	word, err := enc.Encode([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(word)

	// Output:
	// abcd
}

func ExampleEncoder_Words() {
	enc, err := sax.NewEncoder(4, 2)
	if err != nil {
		log.Fatal(err)
	}

	window := []float64{1, 2, 3, 4, 4, 3, 2, 1, 1, 4, 1, 4}
	words, err := enc.Words(window, 4)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(words)

	// Output:
	// [ad da cc]
}
