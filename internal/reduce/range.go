package reduce

import "fmt"

// Range is a half-open interval [Start, End) of indices into a shared input
// slice. A Range with Start == End is empty and contributes zero to a sum.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by r.
func (r Range) Len() int { return r.End - r.Start }

// IsEmpty reports whether r covers no indices.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// String renders r in interval notation, for logs and panic messages.
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// validate panics if r is not a well-formed range over n elements. Ranges
// are always constructed internally, never user-supplied, so a violation is
// a programming error and failing fast beats silently clamping.
func (r Range) validate(n int) {
	if r.Start < 0 || r.Start > r.End || r.End > n {
		panic(fmt.Sprintf("reduce: invalid range %s over %d elements", r, n))
	}
}

// FullRange returns the Range covering all of input.
func FullRange(input []float64) Range { return Range{Start: 0, End: len(input)} }

// ChunkSize returns the size of each chunk when dividing nElements across
// nChunks, computed as the integer ceiling of nElements / nChunks. With this
// policy the first chunks are equal-sized and the last chunk absorbs the
// remainder, ending up the same size or smaller.
func ChunkSize(nChunks, nElements int) int {
	return (nElements + nChunks - 1) / nChunks
}

// ChunkStart returns the inclusive element index the given chunk starts at.
// For excess chunks (nChunks > nElements) the raw start may lie beyond
// nElements; PartitionRanges clamps it when building well-formed ranges.
func ChunkStart(chunk, nChunks, nElements int) int {
	return chunk * ChunkSize(nChunks, nElements)
}

// ChunkEnd returns the exclusive element index the given chunk ends at,
// clamped to nElements so the final chunk always ends exactly at the input
// length.
func ChunkEnd(chunk, nChunks, nElements int) int {
	end := (chunk + 1) * ChunkSize(nChunks, nElements)
	if end > nElements {
		return nElements
	}
	return end
}

// PartitionRanges splits [0, nElements) into nChunks contiguous, gap-free,
// pairwise disjoint ranges in ascending order. When nChunks exceeds
// nElements the trailing ranges are empty; callers must tolerate empty
// ranges rather than treat them as errors.
//
// PartitionRanges panics if nChunks < 1.
func PartitionRanges(nChunks, nElements int) []Range {
	if nChunks < 1 {
		panic(fmt.Sprintf("reduce: partition requires at least one chunk, got %d", nChunks))
	}
	ranges := make([]Range, nChunks)
	for chunk := range ranges {
		start := ChunkStart(chunk, nChunks, nElements)
		if start > nElements {
			start = nElements
		}
		ranges[chunk] = Range{Start: start, End: ChunkEnd(chunk, nChunks, nElements)}
	}
	return ranges
}
