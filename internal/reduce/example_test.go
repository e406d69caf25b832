package reduce

import "fmt"

// ExampleSequentialSum demonstrates the sequential baseline over a small
// array of powers of two.
func ExampleSequentialSum() {
	fmt.Println(SequentialSum([]float64{1, 2, 4}))
	// Output:
	// 1.75
}

// ExampleFixedFanoutSum demonstrates splitting a reduction across a fixed
// number of concurrent tasks.
func ExampleFixedFanoutSum() {
	input := []float64{1, 2, 4, 8}
	fmt.Println(FixedFanoutSum(input, 2))
	// Output:
	// 1.875
}

// ExamplePartitionRanges demonstrates the ceiling-division chunking policy:
// the first chunks are equal-sized and the last absorbs the remainder.
func ExamplePartitionRanges() {
	for _, r := range PartitionRanges(3, 10) {
		fmt.Println(r)
	}
	// Output:
	// [0,4)
	// [4,8)
	// [8,10)
}

// ExampleNewDefaultFactory demonstrates resolving strategies by identifier.
func ExampleNewDefaultFactory() {
	factory := NewDefaultFactory()
	fmt.Println(factory.List())

	reducer, _ := factory.Get("forkjoin")
	fmt.Println(reducer.Name())
	// Output:
	// [sequential forkjoin fanout]
	// Fork/Join
}
