package stdlib

import (
	"github.com/gitrdm/gokanlogic/pkg/atom"
	"github.com/gitrdm/gokanlogic/pkg/space"
	"github.com/gitrdm/gokanlogic/pkg/tokenizer"
)

// RegisterCommonTokens registers the reserved special-form names that the
// interpreter driver dispatches by symbol (get-type, get-metatype,
// if-equal, eval, chain, match, cons, decons) as plain symbols, mirroring
// register_common_tokens in the original stdlib2.rs. Unlike the original,
// these are not boxed as grounded operator atoms: the driver recognizes
// their head symbol directly (pkg/interpreter/driver.go's stepPrimitive),
// so a plain Symbol is all the tokenizer needs to produce.
func RegisterCommonTokens(t *tokenizer.Tokenizer) {
	for _, name := range []string{
		"get-type", "get-metatype", "if-equal",
		"eval", "chain", "match", "cons", "decons",
	} {
		n := name
		t.MustRegisterToken(regexpEscape(n), func(string) atom.Atom { return atom.Sym(n) })
	}
}

// RegisterRunnerTokens registers the &self token bound to s, the way
// register_runner_tokens binds &self to the running Metta instance's space.
func RegisterRunnerTokens(t *tokenizer.Tokenizer, s *space.Space) {
	self := s.AsAtom()
	t.MustRegisterToken(`&self`, func(string) atom.Atom { return self })
}

// RegisterArithTokens registers number literals, True/False, and the
// arithmetic/comparison operators as grounded, executable tokens, mirroring
// register_rust_tokens. Callers typically MoveFront this table's rules in
// front of a generic symbol tokenizer so numeric literals are not swallowed
// by a catch-all symbol rule.
func RegisterArithTokens(t *tokenizer.Tokenizer) {
	t.MustRegisterToken(`[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?`, func(tok string) atom.Atom {
		n, err := ParseNumber(tok)
		if err != nil {
			return atom.Sym(tok)
		}
		return n.AsAtom()
	})
	t.MustRegisterToken(`[0-9]+`, func(tok string) atom.Atom {
		n, err := ParseNumber(tok)
		if err != nil {
			return atom.Sym(tok)
		}
		return n.AsAtom()
	})
	t.MustRegisterToken(`True|False`, func(tok string) atom.Atom {
		b, _ := FromStr(tok)
		return b.AsAtom()
	})

	registerOp(t, `\+`, Add)
	registerOp(t, `-`, Sub)
	registerOp(t, `\*`, Mul)
	registerOp(t, `/`, Div)
	registerOp(t, `%`, Mod)
	registerOp(t, `<=`, Le)
	registerOp(t, `>=`, Ge)
	registerOp(t, `<`, Lt)
	registerOp(t, `>`, Gt)
}

func registerOp(t *tokenizer.Tokenizer, pattern string, op atom.Grounded) {
	t.MustRegisterToken(pattern, func(string) atom.Atom { return op })
}

func regexpEscape(literal string) string {
	out := make([]byte, 0, len(literal)*2)
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		switch c {
		case '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
