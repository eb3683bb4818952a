package interpreter

import "github.com/gitrdm/gokanlogic/pkg/atom"

// Bootstrap equalities are authored directly as atom.Atom literals rather
// than parsed from source text: the tokenizer (pkg/tokenizer) is a separate
// boundary component, and hand-building the bootstrap program here keeps
// the core interpreter independent of parser availability, the same way a
// host language's interpreter core doesn't need its own source text to be
// self-hosting at the lexical level. The equalities below ARE the
// meta-circular rules (interpret, interpret-tuple, interpret-func,
// interpret-args, interpret-args-tail, call, switch, type-cast, is-function,
// car, reduce, subst) and the if-* helpers; a user program parsed by
// pkg/tokenizer loads more equalities the same way (Space.Add), these are
// simply pre-loaded.

func sym(name string) atom.Atom    { return atom.Sym(name) }
func v(name string) atom.Atom      { return atom.Var(name) }
func expr(cs ...atom.Atom) atom.Atom { return atom.ExprSlice(cs) }

func eq(lhs, rhs atom.Atom) atom.Atom {
	return expr(sym("="), lhs, rhs)
}

// badType builds the (Error atom BadType) atom: the message is the bare
// symbol BadType, not a quoted string.
func badType(subject atom.Atom) atom.Atom {
	return expr(sym("Error"), subject, sym("BadType"))
}

// "if" and friends are expressed directly in terms of match, since match's
// own then/else already gives exactly their semantics; they are kept as
// named equalities anyway so that bootstrap-authored rules (and any user
// program) can spell `if`, `if-empty`, `if-non-empty-expression`,
// `if-decons` as named calls rather than re-deriving them from match inline
// every time.
func bootstrapEqualities() []atom.Atom {
	var eqs []atom.Atom

	// if(cond, then, else): cond must reduce to True or False.
	eqs = append(eqs,
		eq(expr(sym("if"), sym("True"), v("then"), v("else")), v("then")),
		eq(expr(sym("if"), sym("False"), v("then"), v("else")), v("else")),
	)

	// if-empty(x, then, else): then if x is the Empty sentinel, else otherwise.
	eqs = append(eqs,
		eq(expr(sym("if-empty"), sym("Empty"), v("then"), v("else")), v("then")),
		eq(expr(sym("if-empty"), v("x"), v("then"), v("else")),
			expr(sym("match"), v("x"), sym("Empty"), v("then"), v("else"))),
	)

	// if-error(x, then, else): then if x is an (Error subject msg) atom, else
	// otherwise. The general equality yields the dropped Empty marker for an
	// error, so only the specific equality's then survives.
	eqs = append(eqs,
		eq(expr(sym("if-error"), expr(sym("Error"), v("subject"), v("msg")), v("then"), v("else")), v("then")),
		eq(expr(sym("if-error"), v("x"), v("then"), v("else")),
			expr(sym("match"), v("x"), expr(sym("Error"), v("__subject"), v("__msg")), sym("Empty"), v("else"))),
	)

	// if-decons(xs, $h, $t, then, else): decons xs and bind $h/$t into then,
	// or take else if xs has no elements to decons.
	eqs = append(eqs,
		eq(expr(sym("if-decons"), v("xs"), v("h"), v("t"), v("then"), v("else")),
			expr(sym("chain"), expr(sym("decons"), v("xs")), v("__pair"),
				expr(sym("if-empty"), v("__pair"), v("else"),
					expr(sym("match"), v("__pair"), expr(v("h"), v("t")), v("then"), v("else"))))),
	)

	// if-non-empty-expression(x, then, else): then if x is a non-empty
	// expression, else otherwise (covers both "x is not an expression" and
	// "x is the empty expression ()").
	eqs = append(eqs,
		eq(expr(sym("if-non-empty-expression"), v("x"), v("then"), v("else")),
			expr(sym("chain"), expr(sym("get-metatype"), v("x")), v("__meta"),
				expr(sym("if-equal"), v("__meta"), sym("Expression"),
					expr(sym("if-equal"), v("x"), expr(), v("else"), v("then")),
					v("else")))),
	)

	// car(xs): see package doc; the specific empty-expression equality
	// supplies the one required error atom, the general equality supplies
	// every non-empty case via decons+match.
	eqs = append(eqs,
		eq(expr(sym("car"), expr()),
			expr(sym("Error"), expr(sym("car"), expr()),
				atom.Sym(`"car expects a non-empty expression as an argument"`))),
		eq(expr(sym("car"), v("xs")),
			expr(sym("chain"), expr(sym("decons"), v("xs")), v("__pair"),
				expr(sym("match"), v("__pair"), expr(v("__h"), v("__t")), v("__h"),
					expr(sym("Error"), v("xs"), atom.Sym(`"car expects a non-empty expression as an argument"`))))),
	)

	// switch(val, cases): cases is an expression of (pattern template)
	// pairs; walk them via decons, taking the first pattern that matches
	// val, substituting its bindings into the matching template.
	eqs = append(eqs,
		eq(expr(sym("switch"), v("val"), v("cases")),
			expr(sym("chain"), expr(sym("decons"), v("cases")), v("__headRest"),
				expr(sym("match"), v("__headRest"), expr(v("__case"), v("__restCases")),
					expr(sym("chain"), expr(sym("decons"), v("__case")), v("__patTmpl"),
						expr(sym("match"), v("__patTmpl"), expr(v("__pat"), v("__tmplRest")),
							expr(sym("chain"), expr(sym("decons"), v("__tmplRest")), v("__tmplPair"),
								expr(sym("match"), v("__tmplPair"), expr(v("__tmpl"), v("__ignored")),
									expr(sym("match"), v("val"), v("__pat"), v("__tmpl"),
										expr(sym("switch"), v("val"), v("__restCases"))),
									expr(sym("Error"), v("cases"), atom.Sym(`"malformed switch case"`)))),
							expr(sym("Error"), v("cases"), atom.Sym(`"malformed switch case"`)))),
					sym("Empty")))),
	)

	// reduce(e, $x, body): evaluate e to a fixpoint, then bind $x -> that
	// fixed value inside body. chain already reduces its first argument, so
	// e is passed bare: wrapping it in eval(e) would make the "no further
	// step applies" fallback bind $__r to the literal
	// atom (eval e) instead of e, and the fixpoint check below would never
	// see equal atoms once e is genuinely terminal.
	eqs = append(eqs,
		eq(expr(sym("reduce"), v("e"), v("x"), v("body")),
			expr(sym("chain"), v("e"), v("__r"),
				expr(sym("if-equal"), v("__r"), v("e"),
					expr(sym("chain"), v("e"), v("x"), v("body")),
					expr(sym("reduce"), v("__r"), v("x"), v("body"))))),
	)

	// is-function(atom, space): True iff the head's declared type is an
	// arrow expression (-> ... ); limited to arities 0-3, sufficient for
	// every stdlib/bootstrap operator this repository defines (see
	// DESIGN.md for the general-arity simplification note).
	eqs = append(eqs,
		eq(expr(sym("is-function"), v("atom"), v("space")),
			expr(sym("chain"), expr(sym("decons"), v("atom")), v("__headRest"),
				expr(sym("match"), v("__headRest"), expr(v("__head"), v("__argsRest")),
					expr(sym("chain"), expr(sym("get-type"), v("__head"), v("space")), v("__headType"),
						expr(sym("match"), v("__headType"), expr(sym("->"), v("__r0")),
							sym("True"),
							expr(sym("match"), v("__headType"), expr(sym("->"), v("__a1"), v("__r1")),
								sym("True"),
								expr(sym("match"), v("__headType"), expr(sym("->"), v("__a1"), v("__a2"), v("__r2")),
									sym("True"),
									expr(sym("match"), v("__headType"), expr(sym("->"), v("__a1"), v("__a2"), v("__a3"), v("__r3")),
										sym("True"), sym("False")))))),
					sym("False")))),
	)

	// interpret-args-tuple(args, space): interpret every element of args
	// under %Undefined%, reassembling the same-shaped list of results.
	eqs = append(eqs,
		eq(expr(sym("interpret-args-tuple"), expr(), v("space")), expr()),
		eq(expr(sym("interpret-args-tuple"), v("args"), v("space")),
			expr(sym("chain"), expr(sym("decons"), v("args")), v("__headRest"),
				expr(sym("match"), v("__headRest"), expr(v("__h"), v("__t")),
					expr(sym("chain"), expr(sym("interpret"), v("__h"), sym("%Undefined%"), v("space")), v("__newH"),
						expr(sym("chain"), expr(sym("interpret-args-tuple"), v("__t"), v("space")), v("__newT"),
							expr(sym("cons"), v("__newH"), v("__newT")))),
					expr()))),
	)

	// call(expr, type, space): reduce expr through chain; recurse through
	// interpret under the same type only if progress was made, else identity.
	// expr is passed bare to chain for the same reason reduce passes e bare:
	// chain already reduces its first argument, and wrapping expr in eval(expr)
	// would make the "already irreducible" fallback compare (eval expr)
	// against expr instead of expr against itself.
	eqs = append(eqs,
		eq(expr(sym("call"), v("expr"), v("type"), v("space")),
			expr(sym("chain"), v("expr"), v("__r"),
				expr(sym("if-equal"), v("__r"), v("expr"),
					v("expr"),
					expr(sym("interpret"), v("__r"), v("type"), v("space"))))),
	)

	// type-cast(atom, type, space): identity when either side is
	// %Undefined% or the types agree structurally, else BadType.
	eqs = append(eqs,
		eq(expr(sym("type-cast"), v("atom"), v("type"), v("space")),
			expr(sym("chain"), expr(sym("get-type"), v("atom"), v("space")), v("__actual"),
				expr(sym("switch"), expr(v("__actual"), v("type")),
					expr(
						expr(expr(v("__actual"), sym("%Undefined%")), v("atom")),
						expr(expr(sym("%Undefined%"), v("type")), v("atom")),
						expr(expr(v("type"), v("type")), v("atom")),
						expr(v("__any"), badType(v("atom"))),
					)))),
	)

	// interpret-tuple(atom, type, space): reduce children pointwise under
	// %Undefined%, then hand the reassembled expression to call.
	eqs = append(eqs,
		eq(expr(sym("interpret-tuple"), v("atom"), v("type"), v("space")),
			expr(sym("chain"), expr(sym("decons"), v("atom")), v("__headRest"),
				expr(sym("match"), v("__headRest"), expr(v("__head"), v("__argsRest")),
					expr(sym("chain"), expr(sym("interpret"), v("__head"), sym("%Undefined%"), v("space")), v("__newHead"),
						expr(sym("chain"), expr(sym("interpret-args-tuple"), v("__argsRest"), v("space")), v("__newArgs"),
							expr(sym("chain"), expr(sym("cons"), v("__newHead"), v("__newArgs")), v("__reassembled"),
								expr(sym("call"), v("__reassembled"), v("type"), v("space"))))),
					v("atom")))),
	)

	// subst(atom, var, templ): substitute var -> atom into templ via match;
	// var that is not actually a Variable falls through to match's
	// structural failure case, yielding the same error the general
	// pattern-match would.
	eqs = append(eqs,
		eq(expr(sym("subst"), v("atom"), v("var"), v("templ")),
			expr(sym("match"), v("atom"), v("var"), v("templ"),
				expr(sym("Error"), expr(sym("subst"), v("atom"), v("var"), v("templ")),
					atom.Sym(`"subst expects a variable as a second argument"`)))),
	)

	// interpret-args(atom, args, arg-types, space): reduce each argument
	// against its corresponding declared arrow arg-type, pointwise. An
	// argument is preserved literally (and short-circuits further type
	// checking) when interpreting it made no change at all, so that an
	// Error or Empty atom passed deliberately as data is not mistaken for a
	// reduction failure; arg-types always carries one more element than the
	// arrow's true argument count (the trailing return type), so running
	// out of args with more than that one element left over is BadType.
	eqs = append(eqs,
		eq(expr(sym("interpret-args"), v("atom"), v("args"), v("arg-types"), v("space")),
			expr(sym("if-non-empty-expression"), v("args"),
				expr(sym("chain"), expr(sym("decons"), v("args")), v("__headRest"),
					expr(sym("match"), v("__headRest"), expr(v("__head"), v("__tail")),
						expr(sym("chain"), expr(sym("decons"), v("arg-types")), v("__typeHeadRest"),
							expr(sym("match"), v("__typeHeadRest"), expr(v("__headType"), v("__tailTypes")),
								expr(sym("chain"), expr(sym("interpret"), v("__head"), v("__headType"), v("space")), v("__reducedHead"),
									expr(sym("if-equal"), v("__reducedHead"), v("__head"),
										expr(sym("interpret-args-tail"), v("atom"), v("__reducedHead"), v("__tail"), v("__tailTypes"), v("space")),
										expr(sym("if-error"), v("__reducedHead"), v("__reducedHead"),
											expr(sym("interpret-args-tail"), v("atom"), v("__reducedHead"), v("__tail"), v("__tailTypes"), v("space"))))),
								badType(v("atom")))),
						expr(sym("Error"), v("atom"), atom.Sym(`"Non-empty expression atom is expected"`)))),
				expr(sym("match"), v("arg-types"), expr(v("__ret")), expr(), badType(v("atom"))))),
	)

	// interpret-args-tail(atom, head, args-tail, arg-types-tail, space): cons
	// the already-reduced head onto the recursively reduced tail,
	// propagating any error the tail reduction produced instead of
	// wrapping it further.
	eqs = append(eqs,
		eq(expr(sym("interpret-args-tail"), v("atom"), v("head"), v("args-tail"), v("arg-types-tail"), v("space")),
			expr(sym("chain"), expr(sym("interpret-args"), v("atom"), v("args-tail"), v("arg-types-tail"), v("space")), v("__reducedTail"),
				expr(sym("if-error"), v("__reducedTail"), v("__reducedTail"),
					expr(sym("cons"), v("head"), v("__reducedTail"))))),
	)

	// interpret-func(atom, type, space): decons head/args, fetch the head's
	// own declared arrow type, reduce each argument against its
	// corresponding declared arg-type via interpret-args, reassemble, and
	// hand the reassembled expression to call under the caller's context
	// type, mirroring interpret-tuple's call-at-the-end shape.
	eqs = append(eqs,
		eq(expr(sym("interpret-func"), v("atom"), v("type"), v("space")),
			expr(sym("chain"), expr(sym("decons"), v("atom")), v("__headRest"),
				expr(sym("match"), v("__headRest"), expr(v("__head"), v("__args")),
					expr(sym("chain"), expr(sym("get-type"), v("__head"), v("space")), v("__headType"),
						expr(sym("chain"), expr(sym("interpret"), v("__head"), v("__headType"), v("space")), v("__reducedHead"),
							expr(sym("if-error"), v("__reducedHead"), v("__reducedHead"),
								expr(sym("if-decons"), v("__headType"), v("__arrow"), v("__argTypes"),
									expr(sym("chain"), expr(sym("interpret-args"), v("atom"), v("__args"), v("__argTypes"), v("space")), v("__reducedArgs"),
										expr(sym("if-error"), v("__reducedArgs"), v("__reducedArgs"),
											expr(sym("chain"), expr(sym("cons"), v("__reducedHead"), v("__reducedArgs")), v("__reassembled"),
												expr(sym("call"), v("__reassembled"), v("type"), v("space"))))),
									expr(sym("Error"), v("type"), atom.Sym(`"Function type expected"`)))))),
					expr(sym("Error"), v("atom"), atom.Sym(`"Non-empty expression atom is expected"`))))),
	)

	// interpret(atom, type, space): the top-level type-directed dispatch.
	eqs = append(eqs,
		eq(expr(sym("interpret"), v("atom"), sym("Atom"), v("space")), v("atom")),
		eq(expr(sym("interpret"), v("atom"), v("type"), v("space")),
			expr(sym("chain"), expr(sym("get-metatype"), v("atom")), v("__meta"),
				expr(sym("switch"), v("__meta"),
					expr(
						expr(sym("Variable"), v("atom")),
						expr(sym("Symbol"), expr(sym("type-cast"), v("atom"), v("type"), v("space"))),
						expr(sym("Grounded"), expr(sym("type-cast"), v("atom"), v("type"), v("space"))),
						expr(sym("Expression"),
							expr(sym("chain"), expr(sym("is-function"), v("atom"), v("space")), v("__isFn"),
								expr(sym("if"), v("__isFn"),
									expr(sym("interpret-func"), v("atom"), v("type"), v("space")),
									expr(sym("interpret-tuple"), v("atom"), v("type"), v("space"))))),
					)))),
	)

	return eqs
}
