package sort

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types the merge sort works on. Every member
// has a well defined maximum value which is used as the merge sentinel.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sequence is a fixed size, randomly addressable container of numbers.
// The sort only reads and writes positions, it never resizes the sequence.
type Sequence[T Number] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
}

var _ Sequence[float64] = Slice[float64]{}
var _ Sequence[float64] = Bounded[float64]{}

// Slice binds a plain Go slice to Sequence.
type Slice[T Number] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) At(i int) T {
	return s[i]
}

func (s Slice[T]) Set(i int, v T) {
	s[i] = v
}

// Bounded is a random access view of Length elements of Seq starting at Base.
// Positions passed to At and Set are relative to Base.
type Bounded[T Number] struct {
	Seq    Sequence[T]
	Base   int
	Length int
}

// Bound returns a view of [first,last) of seq.
func Bound[T Number](seq Sequence[T], first, last int) (Bounded[T], error) {
	if err := validateRange(seq, first, last); err != nil {
		return Bounded[T]{}, err
	}
	return Bounded[T]{Seq: seq, Base: first, Length: last - first}, nil
}

func (b Bounded[T]) Len() int {
	return b.Length
}

func (b Bounded[T]) At(i int) T {
	if i < 0 || i >= b.Length {
		panic("sort: bounded index out of range")
	}
	return b.Seq.At(b.Base + i)
}

func (b Bounded[T]) Set(i int, v T) {
	if i < 0 || i >= b.Length {
		panic("sort: bounded index out of range")
	}
	b.Seq.Set(b.Base+i, v)
}

// Max returns the largest value of T, +Inf for floating point types.
func Max[T Number]() T {
	var m T
	v := reflect.ValueOf(&m).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(math.MaxInt64 >> (64 - v.Type().Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(math.MaxUint64 >> (64 - v.Type().Bits()))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(1))
	}
	return m
}
