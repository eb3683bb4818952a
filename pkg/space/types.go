package space

import "github.com/gitrdm/gokanlogic/pkg/atom"

// arrowSymbol is the head symbol of an arrow (function) type expression,
// e.g. (-> A B C) meaning "takes A, B, returns C".
const arrowSymbol = "->"

// GetType collects the RHS of every equality "(: x T)" in s matching x,
// plus, for expression atoms, the arrow-application type obtained from the
// head's arrow type when the number of declared argument types matches the
// number of arguments supplied. When nothing is found, the single type
// %Undefined% is returned.
func GetType(a atom.Atom, s *Space) []atom.Atom {
	typeVar := atom.Variable{Name: "__type", Tag: atom.NextTag()}
	pattern := atom.Expr(atom.Sym(":"), a, typeVar)

	var types []atom.Atom
	seen := map[string]bool{}
	add := func(t atom.Atom) {
		key := t.String()
		if !seen[key] {
			seen[key] = true
			types = append(types, t)
		}
	}

	for _, b := range s.Query(pattern).ToSlice() {
		if t, ok := b[typeVar]; ok {
			add(t)
		}
	}

	if expr, ok := a.(atom.Expression); ok && len(expr.Children) > 0 {
		for _, headType := range GetType(expr.Children[0], s) {
			arrow, ok := headType.(atom.Expression)
			if !ok || len(arrow.Children) < 1 {
				continue
			}
			headSym, ok := arrow.Children[0].(atom.Symbol)
			if !ok || headSym.Name != arrowSymbol {
				continue
			}
			argTypes := arrow.Children[1 : len(arrow.Children)-1]
			returnType := arrow.Children[len(arrow.Children)-1]
			if len(argTypes) == len(expr.Children)-1 {
				add(returnType)
			}
		}
	}

	if len(types) == 0 {
		return []atom.Atom{atom.Sym("%Undefined%")}
	}
	return types
}

// GetMetaType implements get-metatype(x): the syntactic category of x, one
// of the four symbols Symbol, Variable, Expression, Grounded.
func GetMetaType(a atom.Atom) atom.Atom {
	return atom.Sym(a.Kind().String())
}

// IsFunctionType reports whether t is an arrow-type expression, i.e. its
// head (via get-type/car) is the symbol "->". Grounds the is-function
// equality of the bootstrap program in a direct Go check usable from tests.
func IsFunctionType(t atom.Atom) bool {
	expr, ok := t.(atom.Expression)
	if !ok || len(expr.Children) == 0 {
		return false
	}
	head, ok := expr.Children[0].(atom.Symbol)
	return ok && head.Name == arrowSymbol
}
