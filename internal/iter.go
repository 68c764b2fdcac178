package internal

import (
	"iter"
)

// Concat2 concatenates multiple dual-return iterators into a single iterator
// sequence. Later keys do not hide earlier ones; callers collecting into a
// map get last-wins behavior.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}
