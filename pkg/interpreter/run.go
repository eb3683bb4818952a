package interpreter

import (
	"go.uber.org/zap"

	"github.com/gitrdm/gokanlogic/pkg/atom"
	"github.com/gitrdm/gokanlogic/pkg/space"
)

// NewBootstrapped returns a Space pre-loaded with the meta-circular
// reduction rules (interpret, interpret-tuple, interpret-func,
// interpret-args, call, switch, type-cast, is-function, car, reduce, subst,
// and the if-* helpers). Callers add their own equalities/type declarations
// on top via s.Add.
func NewBootstrapped(name string) *space.Space {
	s := space.New(name)
	for _, e := range bootstrapEqualities() {
		s.Add(e)
	}
	return s
}

// Run evaluates top, a top-level "!expr" item, to a fixpoint against s,
// logging trace events through log (nil-safe). It is the entry point
// cmd/metta and package tests drive directly.
func Run(s *space.Space, log *zap.Logger, top atom.Atom) []atom.Atom {
	return New(s, log).Reduce(top)
}

// InterpretCall builds the (interpret target type &self) expression used to
// drive type-directed reduction explicitly, binding &self to s itself.
func InterpretCall(target, typ atom.Atom, s *space.Space) atom.Atom {
	return atom.Expr(atom.Sym("interpret"), target, typ, s.AsAtom())
}

// EvalCall builds the (eval target) expression for callers that invoke the
// eval primitive directly rather than through interpret.
func EvalCall(target atom.Atom) atom.Atom {
	return atom.Expr(atom.Sym("eval"), target)
}
