package interpreter

import "github.com/gitrdm/gokanlogic/pkg/atom"

// chainStep implements chain(expr, $v, body): reduce expr to its fixpoint
// values with Reduce; for each resulting value r, substitute $v -> r into
// body. When expr is already irreducible, it chains through unchanged as the
// single value.
func (d *Driver) chainStep(exprArg, varArg, body atom.Atom) ([]atom.Atom, bool) {
	results := d.Reduce(exprArg)

	v, isVar := varArg.(atom.Variable)
	var out []atom.Atom
	for _, r := range results {
		if atom.IsEmptySymbol(r) {
			continue
		}
		if _, _, isErr := atom.IsError(r); isErr {
			out = append(out, r)
			continue
		}
		if isVar {
			out = append(out, atom.Substitute(body, atom.Bindings{v: r}))
		} else {
			out = append(out, body)
		}
	}
	if len(out) == 0 {
		out = []atom.Atom{atom.EmptySymbol}
	}
	return out, true
}

// matchStep implements match(atom, pattern, then, else): run the
// matcher; for every binding produced, substitute it into then; with no
// binding at all, return else unchanged.
func (d *Driver) matchStep(subject, pattern, thenAtom, elseAtom atom.Atom) ([]atom.Atom, bool) {
	results := atom.DoMatch(subject, pattern).ToSlice()
	if len(results) == 0 {
		return []atom.Atom{elseAtom}, true
	}
	var out []atom.Atom
	for _, mr := range results {
		merged, ok := atom.Merge(mr.Candidate, mr.Pattern)
		if !ok {
			continue
		}
		out = append(out, atom.Substitute(thenAtom, merged))
	}
	if len(out) == 0 {
		out = []atom.Atom{elseAtom}
	}
	return out, true
}

// consStep implements cons(head, tail): build an expression whose
// first child is head and whose remaining children are tail's children.
func (d *Driver) consStep(head, tail atom.Atom) ([]atom.Atom, bool) {
	te, ok := tail.(atom.Expression)
	if !ok {
		return []atom.Atom{atom.ErrorAtom(atom.Expr(atom.Sym("cons"), head, tail),
			"cons expects an expression as its second argument")}, true
	}
	children := make([]atom.Atom, 0, len(te.Children)+1)
	children = append(children, head)
	children = append(children, te.Children...)
	return []atom.Atom{atom.ExprSlice(children)}, true
}

// deconsStep implements decons(expr): split a non-empty expression
// into (head (tail...)). An empty expression (or a non-expression argument)
// yields no results at all rather than an error atom, so that a sibling
// equality pattern-matching the original (empty) shape can supply whatever
// error is appropriate to its own caller — see car's bootstrap equality.
func (d *Driver) deconsStep(expr atom.Atom) ([]atom.Atom, bool) {
	ex, ok := expr.(atom.Expression)
	if !ok || len(ex.Children) == 0 {
		return nil, true
	}
	pair := atom.Expr(ex.Children[0], atom.ExprSlice(ex.Children[1:]))
	return []atom.Atom{pair}, true
}
