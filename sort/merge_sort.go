package sort

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSequence is returned when Sort is called without a sequence
	ErrNilSequence = errors.New("nil sequence")
	// ErrInvalidRange is returned when [first,last) is not a valid range of the sequence
	ErrInvalidRange = errors.New("invalid range")
)

// Stats carries counters collected during a single sort.
type Stats struct {
	// Comparisons between two real elements
	Comparisons int
	// Moves counts writes back into the sorted sequence
	Moves int
	// Merges counts merge steps
	Merges int
	// MaxDepth is the deepest recursion level which performed a merge, the
	// top level range being 1.
	MaxDepth int
}

type sorter[T Number] struct {
	seq      Sequence[T]
	sentinel T
	stats    *Stats
}

// Sort sorts [first,last) of seq in ascending order. Elements outside of the
// range are not touched. Equal elements keep their relative order.
func Sort[T Number](seq Sequence[T], first, last int) error {
	return sortRange(seq, first, last, nil)
}

// SortStats is Sort which also returns counters of the run.
func SortStats[T Number](seq Sequence[T], first, last int) (*Stats, error) {
	st := &Stats{}
	if err := sortRange(seq, first, last, st); err != nil {
		return nil, err
	}
	return st, nil
}

// SortSlice sorts the whole slice and returns it.
func SortSlice[T Number](s []T) []T {
	// A full slice range is always valid
	_ = sortRange[T](Slice[T](s), 0, len(s), nil)
	return s
}

// IsSorted reports whether [first,last) of seq is ascending.
func IsSorted[T Number](seq Sequence[T], first, last int) bool {
	for i := first + 1; i < last; i++ {
		if seq.At(i) < seq.At(i-1) {
			return false
		}
	}
	return true
}

func validateRange[T Number](seq Sequence[T], first, last int) error {
	if seq == nil {
		return ErrNilSequence
	}
	if first < 0 || first > last || last > seq.Len() {
		return fmt.Errorf("%w: [%d,%d) of sequence of length %d", ErrInvalidRange, first, last, seq.Len())
	}
	return nil
}

func sortRange[T Number](seq Sequence[T], first, last int, st *Stats) error {
	if err := validateRange(seq, first, last); err != nil {
		return err
	}
	s := &sorter[T]{
		seq:      seq,
		sentinel: Max[T](),
		stats:    st,
	}
	s.mergeSort(first, last, 1)
	return nil
}

// mergeSort splits [first,last) at first+(last-first)/2, the left half gets
// the floor of the half length, the right half the ceiling.
func (s *sorter[T]) mergeSort(first, last, depth int) {
	if last-first < 2 {
		return
	}
	mid := first + (last-first)/2
	s.mergeSort(first, mid, depth+1)
	s.mergeSort(mid, last, depth+1)
	s.merge(first, mid, last)
	if s.stats != nil && depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
}

// merge combines ascending [first,mid) and [mid,last) into ascending [first,last).
// Both buffers end with the sentinel, the left cursor also stops at n1 so a
// real element equal to the sentinel is never taken for it.
func (s *sorter[T]) merge(first, mid, last int) {
	n1 := mid - first
	n2 := last - mid
	left := make([]T, n1+1)
	right := make([]T, n2+1)
	for i := 0; i < n1; i++ {
		left[i] = s.seq.At(first + i)
	}
	for j := 0; j < n2; j++ {
		right[j] = s.seq.At(mid + j)
	}
	left[n1] = s.sentinel
	right[n2] = s.sentinel

	i, j := 0, 0
	comparisons := 0
	for k := first; k < last; k++ {
		if i < n1 && j < n2 {
			comparisons++
		}
		if i < n1 && left[i] <= right[j] {
			s.seq.Set(k, left[i])
			i++
		} else {
			s.seq.Set(k, right[j])
			j++
		}
	}
	if s.stats != nil {
		s.stats.Comparisons += comparisons
		s.stats.Moves += last - first
		s.stats.Merges++
	}
}
