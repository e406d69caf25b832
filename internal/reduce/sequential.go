package reduce

// sumRange computes the reciprocal sum over r by straight ascending
// iteration into a single accumulator. The fixed order makes the result
// deterministic for a given range; summing the same elements in a different
// order may differ by rounding error, which is an accepted floating-point
// property, not a defect.
func sumRange(input []float64, r Range) float64 {
	r.validate(len(input))
	var sum float64
	for i := r.Start; i < r.End; i++ {
		sum += 1 / input[i]
	}
	return sum
}

// SequentialSum computes the sum of reciprocals of input in a single
// sequential pass. It is the base case of both parallel strategies and the
// correctness oracle they are compared against.
func SequentialSum(input []float64) float64 {
	return sumRange(input, FullRange(input))
}
