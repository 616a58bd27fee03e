package detector_test

import (
	"fmt"
	"time"

	"github.com/arloliu/saxbitmap/detector"
	"github.com/arloliu/saxbitmap/format"
)

func ExampleDetector_Detect() {
	d, err := detector.New(
		detector.WithWordSize(2),
		detector.WithWindowFactor(2),
		detector.WithLeadWindowFactor(1),
		detector.WithLagWindowFactor(1),
	)
	if err != nil {
		panic(err)
	}

	results, err := d.Detect([]float64{1, 2, 3, 4, 4, 3, 2, 1, 1}, time.Now())
	if err != nil {
		panic(err)
	}

	for _, r := range results {
		fmt.Printf("%.1f\n", r.Score)
	}
	// Output:
	// 2.0
	// 2.0
}

func ExampleParseConfig() {
	cfg, err := detector.ParseConfig([]byte(`
word_size: 5
window_factor: 20
lead_window_factor: 2
lag_window_factor: 10
`))
	if err != nil {
		panic(err)
	}

	fmt.Println(cfg.WindowSize(), cfg.LeadCapacity(), cfg.LagCapacity())
	// Output: 100 200 1000
}

func ExampleDetector_Snapshot() {
	opts := []detector.Option{
		detector.WithWordSize(2),
		detector.WithWindowFactor(2),
	}

	d, err := detector.New(opts...)
	if err != nil {
		panic(err)
	}
	if _, err := d.Detect([]float64{1, 2, 3, 4, 5}, time.Time{}); err != nil {
		panic(err)
	}

	data, err := d.Snapshot(format.CompressionZstd)
	if err != nil {
		panic(err)
	}

	restored, err := detector.NewFromSnapshot(data, opts...)
	if err != nil {
		panic(err)
	}

	fmt.Println(restored.LeadValues())
	// Output: [1 2 3 4 5]
}
