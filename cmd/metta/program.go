package main

import (
	"go.uber.org/zap"

	"github.com/gitrdm/gokanlogic/pkg/atom"
	"github.com/gitrdm/gokanlogic/pkg/interpreter"
	"github.com/gitrdm/gokanlogic/pkg/space"
	"github.com/gitrdm/gokanlogic/pkg/stdlib"
	"github.com/gitrdm/gokanlogic/pkg/tokenizer"
)

// newSession builds a bootstrapped space and a tokenizer loaded with the
// common/runner/arithmetic token tables, in the same order the original's
// Metta::new assembles its default Tokenizer (register_common_tokens,
// register_runner_tokens, then register_rust_tokens spliced to the front).
func newSession() (*space.Space, *tokenizer.Tokenizer) {
	s := interpreter.NewBootstrapped("main")
	tok := tokenizer.New()
	stdlib.RegisterCommonTokens(tok)
	stdlib.RegisterRunnerTokens(tok, s)

	arith := tokenizer.New()
	stdlib.RegisterArithTokens(arith)
	tok.MoveFront(arith)

	return s, tok
}

// loadAndRun parses text, loads every non-directive atom into s, and
// reduces every "!expr" directive in source order, returning the results
// grouped per directive.
func loadAndRun(s *space.Space, tok *tokenizer.Tokenizer, log *zap.Logger, text string) ([][]atom.Atom, error) {
	atoms, err := tok.Parse(text)
	if err != nil {
		return nil, err
	}

	var allResults [][]atom.Atom
	for i := 0; i < len(atoms); i++ {
		if sym, ok := atoms[i].(atom.Symbol); ok && sym.Name == "!" && i+1 < len(atoms) {
			i++
			allResults = append(allResults, interpreter.Run(s, log, atoms[i]))
			continue
		}
		s.Add(atoms[i])
	}
	return allResults, nil
}
