package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single
// iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Index yields (first+n, item) for every item of a slice, numbering
// from first.
func IterSeq2Index[T any](first int, items []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for n, item := range items {
			if !yield(first+n, item) {
				return
			}
		}
	}
}
