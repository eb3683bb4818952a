package atom

// LazyStream is a pull-based, purely functional lazy sequence: a head value
// plus a thunk producing the rest. Because a LazyStream value never mutates
// (advancing it returns a *new* LazyStream rather than changing the
// receiver), the same stream value can be iterated any number of times, from
// any point, independently, with no shared cursor state between readers.
// This is the representation used for the matcher's binding streams and
// the atomspace's query results: the classic SICP-style cons-stream, chosen
// here over a channel-based stream since match results are produced and
// consumed synchronously on one goroutine.
type LazyStream[T any] struct {
	next func() (T, LazyStream[T], bool)
}

// Next returns the head of the stream, the remaining stream, and whether a
// head was available at all.
func (s LazyStream[T]) Next() (T, LazyStream[T], bool) {
	if s.next == nil {
		var zero T
		return zero, LazyStream[T]{}, false
	}
	return s.next()
}

// ToSlice materializes every element of the stream. Intended for tests and
// for callers (like the top-level interpreter driver) that need to collect
// a bounded result set.
func (s LazyStream[T]) ToSlice() []T {
	var out []T
	cur := s
	for {
		v, rest, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, v)
		cur = rest
	}
}

// Nil returns the empty stream.
func Nil[T any]() LazyStream[T] {
	return LazyStream[T]{}
}

// Single returns a one-element stream.
func Single[T any](v T) LazyStream[T] {
	return LazyStream[T]{next: func() (T, LazyStream[T], bool) {
		return v, Nil[T](), true
	}}
}

// Cons prepends head to a lazily-computed rest.
func Cons[T any](head T, rest func() LazyStream[T]) LazyStream[T] {
	return LazyStream[T]{next: func() (T, LazyStream[T], bool) {
		return head, rest(), true
	}}
}

// Concat appends a lazily-computed continuation stream after a.
func Concat[T any](a LazyStream[T], tail func() LazyStream[T]) LazyStream[T] {
	head, rest, ok := a.Next()
	if !ok {
		return tail()
	}
	return Cons(head, func() LazyStream[T] { return Concat(rest, tail) })
}

// FlatMap is the chain(seq, f) combinator: flat-map respecting
// laziness. It enumerates seq in order and, for each element, fully
// enumerates f(element) before moving to the next — this is what gives
// Product its documented lexicographic-on-(index in a, index in b) order,
// since Product is defined directly in terms of FlatMap.
func FlatMap[T any](seq LazyStream[T], f func(T) LazyStream[T]) LazyStream[T] {
	head, rest, ok := seq.Next()
	if !ok {
		return Nil[T]()
	}
	return Concat(f(head), func() LazyStream[T] { return FlatMap(rest, f) })
}

// Stream is the matcher's native currency: a lazy sequence of MatchResult.
type Stream = LazyStream[MatchResult]

// EmptyStream returns a stream with no results.
func EmptyStream() Stream { return Nil[MatchResult]() }

// SingleStream returns a one-result stream.
func SingleStream(mr MatchResult) Stream { return Single(mr) }

// ConsStream prepends a result to a lazily-computed rest.
func ConsStream(head MatchResult, rest func() Stream) Stream { return Cons(head, rest) }

// Product is the product(a, b) combinator: the cartesian merge of
// two lazy binding-result sequences, emitting a merged MatchResult only
// where the merge succeeds, in lexicographic order on (index in a, index in
// b).
func Product(a, b Stream) Stream {
	return FlatMap(a, func(left MatchResult) Stream {
		return FlatMap(b, func(right MatchResult) Stream {
			merged, ok := left.Merge(right)
			if !ok {
				return EmptyStream()
			}
			return SingleStream(merged)
		})
	})
}

// BindingStream is a lazy sequence of plain Bindings, the currency of
// Atomspace.Query once a MatchResult has been projected back to the
// caller's namespace.
type BindingStream = LazyStream[Bindings]

// EmptyBindingStream returns a binding stream with no results.
func EmptyBindingStream() BindingStream { return Nil[Bindings]() }

// SingleBindingStream returns a one-result binding stream.
func SingleBindingStream(b Bindings) BindingStream { return Single(b) }
