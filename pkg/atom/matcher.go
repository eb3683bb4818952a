package atom

import "sync/atomic"

// DoMatch implements structural unification, returning
// the lazy sequence of all unifiers. The dispatch is ordered by the kind of
// the atoms involved:
//
//  1. Variable on either side (checked first, since a variable unifies with
//     anything, including another variable).
//  2. Symbol/Symbol: equal names.
//  3. Expression/Expression: equal length, pointwise product-merge.
//  4. Grounded on the left: delegate to its Match hook, with a symmetric
//     retry through the right side's Match hook when the left side's
//     match was empty and the right side is also Grounded.
//  5. Anything else: no match.
func DoMatch(a, b Atom) Stream {
	if av, ok := a.(Variable); ok {
		if bv, ok2 := b.(Variable); ok2 && av.Equal(bv) {
			return SingleStream(NewMatchResult())
		}
		return SingleStream(MatchResultFrom(Bindings{av: b}, EmptyBindings()))
	}
	if bv, ok := b.(Variable); ok {
		return SingleStream(MatchResultFrom(EmptyBindings(), Bindings{bv: a}))
	}

	switch av := a.(type) {
	case Symbol:
		if bs, ok := b.(Symbol); ok && bs.Name == av.Name {
			return SingleStream(NewMatchResult())
		}
		return EmptyStream()

	case Expression:
		be, ok := b.(Expression)
		if !ok || len(be.Children) != len(av.Children) {
			return EmptyStream()
		}
		result := SingleStream(NewMatchResult())
		for i := range av.Children {
			result = Product(result, DoMatch(av.Children[i], be.Children[i]))
		}
		return result

	case Grounded:
		forward := av.Match(b)
		if _, _, ok := forward.Next(); ok {
			return forward
		}
		if bg, ok := b.(Grounded); ok {
			return bg.Match(av)
		}
		return forward

	default:
		return EmptyStream()
	}
}

var freshnessCounter uint64

// NextTag returns a process-wide monotonically increasing freshness tag,
// used to alpha-rename a stored rule's variables before it is unified
// against a query. A single global counter — rather than one reset per
// application — guarantees that matching a rule twice against the same
// query never produces variables that alias across calls: two
// instantiations racing for the value "0" would alias, a monotonic
// counter cannot.
func NextTag() uint64 {
	return atomic.AddUint64(&freshnessCounter, 1)
}

// Freshen returns a copy of a with every Variable's Tag set to tag, leaving
// Symbol, Expression structure, and Grounded atoms otherwise untouched
// (Expression children are freshened recursively).
func Freshen(a Atom, tag uint64) Atom {
	switch v := a.(type) {
	case Variable:
		return Variable{Name: v.Name, Tag: tag}
	case Expression:
		children := make([]Atom, len(v.Children))
		for i, c := range v.Children {
			children[i] = Freshen(c, tag)
		}
		return Expression{Children: children}
	default:
		return a
	}
}

// AtomsAreEquivalent implements an equivalence test: true iff both
// do_match(a, b) and do_match(b, a) succeed, and every binding either
// direction produces maps a variable to a variable — i.e. the two atoms
// differ, at most, by a bijective variable renaming.
func AtomsAreEquivalent(a, b Atom) bool {
	fwd, _, ok := DoMatch(a, b).Next()
	if !ok {
		return false
	}
	bwd, _, ok := DoMatch(b, a).Next()
	if !ok {
		return false
	}
	return isRenaming(fwd.Candidate) && isRenaming(fwd.Pattern) &&
		isRenaming(bwd.Candidate) && isRenaming(bwd.Pattern)
}

// isRenaming reports whether b maps variables one-to-one onto variables that
// are not themselves keys of b.
func isRenaming(b Bindings) bool {
	targets := make(map[Variable]bool, len(b))
	for _, v := range b {
		tv, ok := v.(Variable)
		if !ok || targets[tv] {
			return false
		}
		if _, isKey := b[tv]; isKey {
			return false
		}
		targets[tv] = true
	}
	return true
}
