// Package tokenizer implements a pluggable table of regex token rules
// (register_token / move_front ordering) plus an S-expression reader that
// turns surface syntax into atom.Atom values.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

// Builder constructs an atom from the literal text a rule's pattern matched.
type Builder func(token string) atom.Atom

// rule pairs a compiled pattern with its Builder. Patterns are anchored at
// the start of the remaining input when tried (see Tokenizer.next).
type rule struct {
	pattern *regexp.Regexp
	build   Builder
}

// Tokenizer holds an ordered list of token rules, tried in order; the first
// rule whose pattern matches at the current position wins. New rules are
// normally appended (RegisterToken), but a rule table assembled separately
// (as register_rust_tokens builds its own Tokenizer before splicing it in)
// can be spliced in front of another's rules with MoveFront, so a caller's
// custom tokens take priority over the defaults.
type Tokenizer struct {
	rules []rule
}

// New returns an empty Tokenizer with no rules registered.
func New() *Tokenizer {
	return &Tokenizer{}
}

// RegisterToken appends a rule matching pattern, rendering it via build.
// pattern is automatically anchored at the start of the match.
func (t *Tokenizer) RegisterToken(pattern string, build Builder) error {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return fmt.Errorf("tokenizer: bad pattern %q: %w", pattern, err)
	}
	t.rules = append(t.rules, rule{pattern: re, build: build})
	return nil
}

// MustRegisterToken is RegisterToken for call sites (stdlib registration at
// process startup) that treat a malformed literal pattern as a programming
// error rather than a runtime one.
func (t *Tokenizer) MustRegisterToken(pattern string, build Builder) {
	if err := t.RegisterToken(pattern, build); err != nil {
		panic(err)
	}
}

// MoveFront splices other's rules in front of t's own, giving them priority;
// other is left with no rules, matching the move-semantics of the original's
// Tokenizer::move_front.
func (t *Tokenizer) MoveFront(other *Tokenizer) {
	t.rules = append(other.rules, t.rules...)
	other.rules = nil
}

// next tries the registered rules against the start of input in priority
// order and takes the first rule that matches, using that rule's full regex
// match; a later rule is not consulted even if its match would be longer.
// It reports the atom built from the matched token text and the number of
// bytes consumed.
func (t *Tokenizer) next(input string) (atom.Atom, int, bool) {
	for _, r := range t.rules {
		loc := r.pattern.FindStringIndex(input)
		if loc == nil || loc[0] != 0 {
			continue
		}
		token := input[:loc[1]]
		return r.build(token), loc[1], true
	}
	return nil, 0, false
}

var (
	varPattern    = regexp.MustCompile(`\A\$[A-Za-z_][A-Za-z0-9_\-]*`)
	stringPattern = regexp.MustCompile(`\A"(?:[^"\\]|\\.)*"`)
	symPattern    = regexp.MustCompile(`\A[^\s()]+`)
)

// lexeme is one raw token or parenthesis marker. lex splits text into a
// flat list of them, skipping whitespace and ';'-to-end-of-line comments; it
// is the unexported layer beneath Parse.
type lexeme struct {
	text   string
	isOpen bool
	isClose bool
}

func lex(text string) []lexeme {
	var out []lexeme
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == ';':
			for i < len(text) && text[i] != '\n' {
				i++
			}
		case c == '(':
			out = append(out, lexeme{isOpen: true})
			i++
		case c == ')':
			out = append(out, lexeme{isClose: true})
			i++
		case c == '"':
			if loc := stringPattern.FindString(text[i:]); loc != "" {
				out = append(out, lexeme{text: loc})
				i += len(loc)
			} else {
				i++
			}
		default:
			tok := symPattern.FindString(text[i:])
			if tok == "" {
				i++
				continue
			}
			out = append(out, lexeme{text: tok})
			i += len(tok)
		}
	}
	return out
}

// Parse reads every top-level expression in text and returns them as atoms,
// resolving each leaf lexeme through t's registered rules, falling back to
// the built-in $var / "string" / bare-Symbol forms when no rule claims it.
func (t *Tokenizer) Parse(text string) ([]atom.Atom, error) {
	lexemes := lex(text)
	pos := 0
	var out []atom.Atom
	for pos < len(lexemes) {
		a, next, err := t.parseOne(lexemes, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
		pos = next
	}
	return out, nil
}

func (t *Tokenizer) parseOne(lexemes []lexeme, pos int) (atom.Atom, int, error) {
	if pos >= len(lexemes) {
		return nil, pos, fmt.Errorf("tokenizer: unexpected end of input")
	}
	lx := lexemes[pos]
	switch {
	case lx.isOpen:
		pos++
		var children []atom.Atom
		for pos < len(lexemes) && !lexemes[pos].isClose {
			a, next, err := t.parseOne(lexemes, pos)
			if err != nil {
				return nil, pos, err
			}
			children = append(children, a)
			pos = next
		}
		if pos >= len(lexemes) {
			return nil, pos, fmt.Errorf("tokenizer: unbalanced parentheses")
		}
		return atom.ExprSlice(children), pos + 1, nil
	case lx.isClose:
		return nil, pos, fmt.Errorf("tokenizer: unexpected ')'")
	default:
		return t.atomFor(lx.text), pos + 1, nil
	}
}

func (t *Tokenizer) atomFor(token string) atom.Atom {
	if a, _, ok := t.next(token); ok {
		return a
	}
	if varPattern.MatchString(token) {
		return atom.Var(strings.TrimPrefix(token, "$"))
	}
	if stringPattern.MatchString(token) {
		return atom.Sym(token)
	}
	return atom.Sym(token)
}
