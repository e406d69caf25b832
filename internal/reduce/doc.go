// Package reduce implements the reciprocal-sum reduction engine.
//
// The package provides one sequential baseline and two parallel
// decomposition strategies over a shared, read-only []float64:
//
//   - SequentialSum: a single ascending pass, used as the base case of both
//     parallel strategies and as the correctness oracle in tests.
//   - ForkJoinSum: recursive binary splitting down to a leaf threshold, one
//     new concurrent task per split.
//   - FixedFanoutSum: a caller-chosen number of equal top-level chunks, all
//     submitted up front.
//
// Concurrent tasks operate on pairwise disjoint index ranges, so the input
// is shared without copies or locks. Each task hands its partial sum back
// to its creator through a one-shot Future; the channel transfer provides
// the happens-before edge between the child's write and the parent's read.
//
// Division by a zero element is not trapped: it produces ±Inf or NaN, which
// poisons the final sum through the remaining additions. Callers wanting
// strict validation must pre-check the input.
package reduce
