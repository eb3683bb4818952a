// Package interpreter implements the meta-circular reduction driver: a
// small, fixed set of primitive reducers (eval, chain, match, cons,
// decons, get-metatype, get-type, if-equal) hosted in Go, plus the
// interpretation rules built from them (interpret, interpret-tuple,
// interpret-func, interpret-args, interpret-args-tail, call, switch,
// type-cast, is-function, car, reduce, subst, and the if-* helpers) which
// are themselves ordinary equalities authored in the object language and
// loaded into the atomspace at construction time.
package interpreter

import (
	"go.uber.org/zap"

	"github.com/gitrdm/gokanlogic/pkg/atom"
	"github.com/gitrdm/gokanlogic/pkg/space"
)

// Driver evaluates atoms against a single Space, tracing its rewrite steps
// through an optional logger. A nil logger is replaced with a no-op one,
// following the usual "construct once, defer sync" idiom for a zap-based
// service.
type Driver struct {
	Space *space.Space
	log   *zap.Logger
}

// New returns a Driver over s. If log is nil, trace events are discarded.
func New(s *space.Space, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{Space: s, log: log}
}

// Step performs exactly one rewrite of x: either a reserved primitive form
// (eval/chain/match/cons/decons/get-metatype/get-type/if-equal), or the
// generic mechanism implementing eval(X) — the set of equalities in
// the space whose LHS matches X, falling back to a grounded call when X's
// head is an executable grounded atom with no matching equality. The bool
// result reports whether any rewrite applied at all; false means x is
// already irreducible data and should be treated as a final value by the
// caller, not conflated with the Empty sentinel.
func (d *Driver) Step(x atom.Atom) ([]atom.Atom, bool) {
	if expr, ok := x.(atom.Expression); ok && len(expr.Children) >= 1 {
		if head, ok := expr.Children[0].(atom.Symbol); ok {
			if results, handled, matched := d.stepPrimitive(head.Name, expr.Children[1:]); handled {
				return results, matched
			}
		}
	}
	return d.genericStep(x)
}

// stepPrimitive dispatches the reserved special forms. handled reports
// whether name named a reserved primitive with the right arity at all (if
// not, the caller falls through to the generic equality/grounded-call
// mechanism, so that user equalities can still be written with a head
// symbol that happens to collide in name but not arity).
func (d *Driver) stepPrimitive(name string, args []atom.Atom) (results []atom.Atom, handled, matched bool) {
	switch name {
	case "eval":
		if len(args) == 1 {
			r, m := d.Step(args[0])
			return r, true, m
		}
	case "chain":
		if len(args) == 3 {
			r, m := d.chainStep(args[0], args[1], args[2])
			return r, true, m
		}
	case "match":
		if len(args) == 4 {
			r, m := d.matchStep(args[0], args[1], args[2], args[3])
			return r, true, m
		}
	case "cons":
		if len(args) == 2 {
			r, m := d.consStep(args[0], args[1])
			return r, true, m
		}
	case "decons":
		if len(args) == 1 {
			r, m := d.deconsStep(args[0])
			return r, true, m
		}
	case "get-metatype":
		if len(args) == 1 {
			return []atom.Atom{space.GetMetaType(args[0])}, true, true
		}
	case "get-type":
		if len(args) == 2 {
			if sp, ok := asSpace(args[1]); ok {
				return space.GetType(args[0], sp), true, true
			}
		}
	case "if-equal":
		if len(args) == 4 {
			if atom.AtomsAreEquivalent(args[0], args[1]) {
				return []atom.Atom{args[2]}, true, true
			}
			return []atom.Atom{args[3]}, true, true
		}
	}
	return nil, false, false
}

// genericStep implements the default clause of eval(X): collect the
// substituted RHS of every stored equality "(= X $rhs)" matching x; failing
// that, execute x as a grounded call if its head is executable.
func (d *Driver) genericStep(x atom.Atom) ([]atom.Atom, bool) {
	rhsVar := atom.Variable{Name: "__eqRHS", Tag: atom.NextTag()}
	pattern := atom.Expr(atom.Sym("="), x, rhsVar)

	var results []atom.Atom
	for _, b := range d.Space.Query(pattern).ToSlice() {
		if rhs, ok := b[rhsVar]; ok {
			results = append(results, atom.Substitute(rhs, b))
		}
	}
	if len(results) > 0 {
		d.log.Debug("eval.rule.match", zap.String("atom", x.String()), zap.Int("results", len(results)))
		return results, true
	}

	if expr, ok := x.(atom.Expression); ok && len(expr.Children) >= 1 {
		if g, ok := expr.Children[0].(atom.Grounded); ok && g.Executable() {
			out, err := g.Execute(expr.Children[1:])
			if err != nil {
				d.log.Debug("eval.execute", zap.String("atom", x.String()), zap.Error(err))
				return []atom.Atom{atom.ErrorAtom(x, err.Error())}, true
			}
			d.log.Debug("eval.execute", zap.String("atom", x.String()), zap.Int("results", len(out)))
			return out, true
		}
	}

	d.log.Debug("eval.empty", zap.String("atom", x.String()))
	return nil, false
}

// Reduce evaluates x to a fixpoint by applying the interpretation rules
// through eval until no further reduction occurs, collecting non-Empty
// atoms: irreducible atoms are returned as-is; results of a genuine rewrite
// are recursively reduced again, fanning out over every branch; Empty
// results are dropped, and (Error ...) results are propagated without
// further reduction.
func (d *Driver) Reduce(x atom.Atom) []atom.Atom {
	results, matched := d.Step(x)
	if !matched {
		return []atom.Atom{x}
	}
	var out []atom.Atom
	for _, r := range results {
		if atom.IsEmptySymbol(r) {
			continue
		}
		if _, _, isErr := atom.IsError(r); isErr {
			out = append(out, r)
			continue
		}
		out = append(out, d.Reduce(r)...)
	}
	return out
}

func asSpace(a atom.Atom) (*space.Space, bool) {
	g, ok := a.(atom.Grounded)
	if !ok {
		return nil, false
	}
	sp, ok := g.Value.(*space.Space)
	return sp, ok
}
