package atom

import (
	"sort"
	"strings"
)

// Bindings maps a Variable to the Atom it is bound to. It is the substitution
// produced by matching. Bindings are immutable once returned by
// the matcher; combinators build new maps rather than mutating shared ones.
type Bindings map[Variable]Atom

// EmptyBindings returns a fresh, empty binding set.
func EmptyBindings() Bindings { return Bindings{} }

// Clone returns a shallow copy (values are themselves immutable atoms, so a
// shallow copy is sufficient to make the result independently mutable).
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// With returns a copy of b with v bound to value. It does not check for
// conflicts with an existing binding; callers that need conflict detection
// should use Merge.
func (b Bindings) With(v Variable, value Atom) Bindings {
	out := b.Clone()
	out[v] = value
	return out
}

// Equal reports whether two binding maps are equal as maps.
func (b Bindings) Equal(other Bindings) bool {
	if len(b) != len(other) {
		return false
	}
	for k, v := range b {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String renders bindings as "{v1: atom1, v2: atom2, …}" with keys sorted by
// name.
func (b Bindings) String() string {
	if len(b) == 0 {
		return "{}"
	}
	keys := make([]Variable, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Tag < keys[j].Tag
	})
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k.String())
		sb.WriteString(": ")
		sb.WriteString(b[k].String())
	}
	sb.WriteString("}")
	return sb.String()
}

// Merge combines a and b, succeeding iff for every variable bound by both,
// the two bound values are themselves unifiable under the bindings
// accumulated so far; conflicting merges yield (nil, false).
func Merge(a, b Bindings) (Bindings, bool) {
	result := a.Clone()
	for k, v := range b {
		merged, ok := bindOne(result, k, v)
		if !ok {
			return nil, false
		}
		result = merged
	}
	return result, true
}

// bindOne adds (k -> v) to acc, resolving a conflict with any existing
// binding for k by unifying the two values and folding the resulting
// bindings back in.
func bindOne(acc Bindings, k Variable, v Atom) (Bindings, bool) {
	existing, has := acc[k]
	if !has {
		return acc.With(k, v), true
	}
	if existing.Equal(v) {
		return acc, true
	}
	stream := DoMatch(existing, v)
	mr, _, ok := stream.Next()
	if !ok {
		return nil, false
	}
	result := acc
	var merged bool
	result, merged = Merge(result, mr.Candidate)
	if !merged {
		return nil, false
	}
	result, merged = Merge(result, mr.Pattern)
	if !merged {
		return nil, false
	}
	return result, true
}

// MatchResult is a pair of binding maps, one per side of a match: Candidate
// holds bindings for variables occurring in the atom being matched against a
// stored pattern, Pattern holds bindings for variables occurring in the
// pattern itself. Most callers only use Candidate; both are kept so that
// matches between two atoms that each contain variables (e.g.
// atoms_are_equivalent, or a grounded container matching a variable-bearing
// query) can report bindings for either side.
type MatchResult struct {
	Candidate Bindings
	Pattern   Bindings
}

// NewMatchResult returns a MatchResult with two empty binding maps.
func NewMatchResult() MatchResult {
	return MatchResult{Candidate: EmptyBindings(), Pattern: EmptyBindings()}
}

// MatchResultFrom builds a MatchResult from explicit candidate/pattern maps.
func MatchResultFrom(candidate, pattern Bindings) MatchResult {
	return MatchResult{Candidate: candidate, Pattern: pattern}
}

// Merge combines two match results, merging both sides independently.
func (m MatchResult) Merge(other MatchResult) (MatchResult, bool) {
	cand, ok := Merge(m.Candidate, other.Candidate)
	if !ok {
		return MatchResult{}, false
	}
	pat, ok := Merge(m.Pattern, other.Pattern)
	if !ok {
		return MatchResult{}, false
	}
	return MatchResultFrom(cand, pat), true
}

// Substitute applies bindings to a, replacing bound variables with their
// values and recursively resolving chains of bindings (e.g. $x -> $y,
// $y -> A substitutes $x to A). Unbound variables, and variables that would
// form a cycle, are returned unchanged.
func Substitute(a Atom, b Bindings) Atom {
	return substitute(a, b, map[Variable]bool{})
}

func substitute(a Atom, b Bindings, seen map[Variable]bool) Atom {
	switch v := a.(type) {
	case Variable:
		if seen[v] {
			return v
		}
		val, ok := b[v]
		if !ok {
			return v
		}
		next := make(map[Variable]bool, len(seen)+1)
		for k := range seen {
			next[k] = true
		}
		next[v] = true
		return substitute(val, b, next)
	case Expression:
		children := make([]Atom, len(v.Children))
		for i, c := range v.Children {
			children[i] = substitute(c, b, seen)
		}
		return Expression{Children: children}
	default:
		return a
	}
}
