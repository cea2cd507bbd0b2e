package container

import (
	"fmt"
	"iter"
	"slices"

	"github.com/goccy/go-json"
	"github.com/samber/mo"
)

// NewStack copies vals, the last one ends up on top.
func NewStack[T any](vals ...T) *Stack[T] {
	return &Stack[T]{
		vals: slices.Clone(vals),
	}
}

// Stack is a LIFO sequence with ordinal access, index 0 is the bottom.
// The zero value is an empty stack.
//
// Do not copy a Stack by value: the copy shares storage with the original and
// Pop on either one zeroes the slot the other still reads. Use Clone instead.
type Stack[T any] struct {
	vals []T
}

func (s *Stack[T]) Empty() bool {
	return len(s.vals) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.vals)
}

func (s *Stack[T]) Push(v T) {
	s.vals = append(s.vals, v)
}

func (s *Stack[T]) Append(v T) {
	s.Push(v)
}

func (s *Stack[T]) Top() mo.Option[T] {
	if s.Empty() {
		return mo.None[T]()
	}

	return mo.Some(s.vals[len(s.vals)-1])
}

func (s *Stack[T]) Pop() mo.Option[T] {
	top := s.Top()
	if top.IsAbsent() {
		return top
	}

	var zero T

	s.vals[len(s.vals)-1] = zero
	s.vals = s.vals[:len(s.vals)-1]

	return top
}

// At panics unless 0 <= i < Len().
func (s *Stack[T]) At(i int) T {
	if i < 0 || i >= len(s.vals) {
		panic(fmt.Sprintf("stack index %d out of range [0:%d]", i, len(s.vals)))
	}

	return s.vals[i]
}

// Suffix returns a snapshot of the top n elements, bottom first.
// It panics unless 0 <= n <= Len().
func (s *Stack[T]) Suffix(n int) *Stack[T] {
	if n < 0 || n > len(s.vals) {
		panic(fmt.Sprintf("stack suffix size %d out of range [0:%d]", n, len(s.vals)))
	}

	return &Stack[T]{
		vals: slices.Clone(s.vals[len(s.vals)-n:]),
	}
}

func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{
		vals: slices.Clone(s.vals),
	}
}

func (s *Stack[T]) Values() []T {
	return slices.Clone(s.vals)
}

func (s *Stack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.vals {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward walks from the top down, the order Pop would return.
func (s *Stack[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.vals) - 1; i >= 0; i-- {
			if !yield(i, s.vals[i]) {
				return
			}
		}
	}
}

func (s *Stack[T]) String() string {
	return fmt.Sprintf("stack%v", s.vals)
}

func (s *Stack[T]) MarshalJSON() ([]byte, error) {
	if s.vals == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.vals)
}

func (s *Stack[T]) UnmarshalJSON(data []byte) error {
	var vals []T

	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}

	s.vals = vals

	return nil
}
