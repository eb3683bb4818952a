// Package space implements the Atomspace: an ordered, mutable multiset of
// atoms supporting query-by-pattern. An Atomspace is also a grounded
// atom.Value in its own right, so that it can be bound to the symbol &self
// inside a running program and passed to stdlib operators such as
// get-type and match.
package space

import (
	"sync"

	"github.com/google/uuid"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

// Space is an ordered collection of atoms representing facts and equality
// rules. Storage preserves insertion order because both atomspace query
// iteration order and get-type's collection of "(: x T)" equalities are
// order-sensitive for reproducible output.
//
// Space is interior-mutable: Add and Remove may be called while a query
// issued earlier is still being consumed, since a grounded reference to the
// space can be threaded into the very evaluation that mutates it. Access is
// serialized with a mutex even though the reduction driver itself is
// single-threaded, guarding against a grounded operator spawning a
// goroutine that calls Add concurrently with an in-flight Query.
type Space struct {
	mu      sync.RWMutex
	atoms   []atom.Atom
	id      uuid.UUID
	name    string
}

// New creates an empty, named Space. The name is cosmetic (used by
// String/logging); the id is a process-unique diagnostic handle.
func New(name string) *Space {
	return &Space{id: uuid.New(), name: name}
}

// ID returns the space's diagnostic instance identifier. It plays no part
// in atom equality or matching — two distinct Space values are never equal
// as grounded atoms regardless of id, since Space does not implement
// EqValue by id (see EqValue below).
func (s *Space) ID() uuid.UUID {
	return s.id
}

func (s *Space) String() string {
	if s.name != "" {
		return s.name
	}
	return "<space " + s.id.String() + ">"
}

// EqValue implements atom.Value: two spaces are equal only if they are the
// same instance. Spaces never compare equal by content, matching the
// original's treatment of a space-as-atom as an opaque handle.
func (s *Space) EqValue(other atom.Value) bool {
	o, ok := other.(*Space)
	return ok && o == s
}

// CloneValue implements atom.Value by returning the same instance rather
// than a deep copy. A space embedded into an atom bound to &self must be a
// non-owning, shared handle: cloning the atom that wraps a space must not
// fork the space itself, or add/remove performed through one clone would
// silently diverge from another.
func (s *Space) CloneValue() atom.Value {
	return s
}

// AsAtom wraps the space as a grounded atom with default match/execute
// semantics, suitable for binding to the symbol &self.
func (s *Space) AsAtom() atom.Atom {
	return atom.NewGrounded(s)
}

// Add appends atom a to the space.
func (s *Space) Add(a atom.Atom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.atoms = append(s.atoms, a.Clone())
}

// Remove deletes the first structurally-equal occurrence of a, reporting
// whether anything was removed. Only the first match is removed, not all
// occurrences.
func (s *Space) Remove(a atom.Atom) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, stored := range s.atoms {
		if stored.Equal(a) {
			s.atoms = append(s.atoms[:i:i], s.atoms[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of atoms currently stored.
func (s *Space) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.atoms)
}

// Snapshot returns a copy of the currently stored atoms, in insertion
// order. Intended for diagnostics/iteration by callers (such as get-type)
// that need to look at every stored atom rather than issue a pattern query.
func (s *Space) Snapshot() []atom.Atom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]atom.Atom, len(s.atoms))
	copy(out, s.atoms)
	return out
}

// Query iterates stored atoms in insertion order; for each,
// freshen its variables, run atom.DoMatch(pattern, stored), and yield the
// resulting bindings projected back into pattern's namespace. Bindings are
// returned as a lazy atom.BindingStream so that a caller may stop early
// without paying for unmatched atoms further down the space.
func (s *Space) Query(pattern atom.Atom) atom.BindingStream {
	return s.queryFrom(pattern, s.Snapshot())
}

func (s *Space) queryFrom(pattern atom.Atom, remaining []atom.Atom) atom.BindingStream {
	if len(remaining) == 0 {
		return atom.EmptyBindingStream()
	}
	stored := remaining[0]
	rest := remaining[1:]

	tag := atom.NextTag()
	freshened := atom.Freshen(stored, tag)

	matches := atom.DoMatch(pattern, freshened)
	here := projectAll(matches)

	return atom.Concat(here, func() atom.BindingStream {
		return s.queryFrom(pattern, rest)
	})
}

// projectAll converts a stream of MatchResult into a stream of plain
// Bindings, combining both sides of the match (the query's own variables
// bound in Candidate, the freshened rule's variables bound in Pattern) so
// that callers see every binding produced by the match, including cases
// where both pattern-side and candidate-side variables are observed in one
// result map. Each bound value is resolved through the other bindings, so a
// query variable bound to a freshened rule variable reports that variable's
// value.
func projectAll(s atom.Stream) atom.BindingStream {
	results := s.ToSlice()
	out := atom.EmptyBindingStream()
	for i := len(results) - 1; i >= 0; i-- {
		mr := results[i]
		merged, ok := atom.Merge(mr.Candidate, mr.Pattern)
		if !ok {
			continue
		}
		projected := make(atom.Bindings, len(merged))
		for k, val := range merged {
			projected[k] = atom.Substitute(val, merged)
		}
		merged = projected
		rest := out // snapshot before reassigning, so each closure keeps its own tail
		out = atom.Cons(merged, func() atom.BindingStream { return rest })
	}
	return out
}
