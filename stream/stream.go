package stream

import (
	"fmt"
	"strings"

	"github.com/davecarr1024/pysh4/rerr"
)

// Stream is an immutable, finite, ordered sequence of T. The zero value is
// the empty stream.
type Stream[T any] struct {
	items []T
}

// New builds a Stream from the given items. The Stream takes ownership of
// the slice's contents; callers should not mutate items after passing it
// here.
func New[T any](items ...T) Stream[T] {
	return Stream[T]{items: items}
}

// Len returns the number of items remaining in the stream.
func (s Stream[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the stream has no items.
func (s Stream[T]) Empty() bool {
	return len(s.items) == 0
}

// Head returns the first item of the stream, failing with an
// rerr.EmptyStream error if the stream is empty.
func (s Stream[T]) Head() (T, error) {
	if s.Empty() {
		var zero T
		return zero, rerr.New(rerr.EmptyStream, "empty stream")
	}
	return s.items[0], nil
}

// Tail returns a new Stream of every item but the first, failing with an
// rerr.EmptyStream error if the stream is empty. The returned Stream
// shares backing storage with s; neither is mutated.
func (s Stream[T]) Tail() (Stream[T], error) {
	if s.Empty() {
		return Stream[T]{}, rerr.New(rerr.EmptyStream, "empty stream")
	}
	return Stream[T]{items: s.items[1:]}, nil
}

// Items returns the stream's remaining items as a plain slice, for
// callers that want to range over them directly. The returned slice must
// not be mutated.
func (s Stream[T]) Items() []T {
	return s.items
}

// Concat concatenates streams in order into a single new Stream. It is
// associative with the empty Stream as its identity on both sides.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	n := 0
	for _, s := range streams {
		n += len(s.items)
	}
	items := make([]T, 0, n)
	for _, s := range streams {
		items = append(items, s.items...)
	}
	return Stream[T]{items: items}
}

// String renders the stream's items via fmt's default formatting,
// concatenated with no separator, primarily so Stream can serve as the state snapshot
// attached to an rerr.Error (see rerr.Error.WithState).
func (s Stream[T]) String() string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fmt.Sprintf("%v", item)
	}
	return strings.Join(parts, "")
}
