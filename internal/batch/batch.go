// Package batch partitions a row range into contiguous minibatches.
package batch

import "iter"

// Range is a contiguous block of rows [Offset, Offset+Size).
type Range struct {
	Offset int // First row of the batch.
	Size   int // Number of rows in the batch.
}

// End returns the exclusive upper bound of the range.
func (r Range) End() int {
	return r.Offset + r.Size
}

// Count returns the number of non-empty batches needed to cover n rows
// with batches of at most size rows, i.e. ceil(n/size).
// Returns 0 if n or size is not positive.
func Count(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n-1)/size + 1
}

// Ranges yields the batches covering rows [0, n) in increasing order.
// Every batch holds size rows except the last, which holds the remainder.
// An empty remainder is never yielded.
//
// The sequence is lazy and can be ranged over any number of times.
// It is empty if n or size is not positive.
func Ranges(n, size int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if n <= 0 || size <= 0 {
			return
		}
		for start := 0; start < n; {
			end := start + min(size, n-start)
			if !yield(Range{Offset: start, Size: end - start}) {
				return
			}
			start = end
		}
	}
}

// Sizes returns the size of every batch covering n rows.
func Sizes(n, size int) []int {
	sizes := make([]int, 0, Count(n, size))
	for r := range Ranges(n, size) {
		sizes = append(sizes, r.Size)
	}
	return sizes
}
