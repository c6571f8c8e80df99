// Package grammar adapts the tokenizer to participle so a grammar can be
// built directly over the finalized token stream.
package grammar

import (
	"errors"
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
	"github.com/aledsdavies/eslex/pkgs/tokenizer"
)

// Definition implements lexer.Definition. Token types are the tokenizer's
// terminal tags, so grammars refer to them by name: @IDENT, @NUMBER, @STRNEQ.
// Token values are the raw source text.
type Definition struct {
	tok     *tokenizer.Tokenizer
	symbols map[string]lexer.TokenType
}

var _ lexer.StringDefinition = (*Definition)(nil)

// New creates a definition backed by tok, or by a default tokenizer when nil
func New(tok *tokenizer.Tokenizer) *Definition {
	if tok == nil {
		tok = tokenizer.New()
	}
	symbols := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for _, term := range tokenizer.Terminals() {
		symbols[term.String()] = lexer.TokenType(term)
	}
	return &Definition{tok: tok, symbols: symbols}
}

// Symbols returns the name of every token type
func (d *Definition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

// Lex reads all of r and tokenizes it
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, lexerrors.NewInputError("failed to read "+filename, err)
	}
	return d.LexString(filename, string(data))
}

// LexString tokenizes input up front; the returned lexer replays the tokens
func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	raw, err := d.tok.RawTokens(input)
	if err != nil {
		return nil, withFilename(err, filename)
	}

	lines := tokenizer.NewLineIndex(input)
	position := func(offset int) lexer.Position {
		pos := lines.Position(offset)
		return lexer.Position{Filename: filename, Offset: offset, Line: pos.Line, Column: pos.Column}
	}

	tokens := make([]lexer.Token, 0, len(raw)+1)
	for _, rt := range raw {
		tokens = append(tokens, lexer.Token{
			Type:  lexer.TokenType(tokenizer.Finalize(rt).Tag),
			Value: rt.Text,
			Pos:   position(rt.Range.Start),
		})
	}
	tokens = append(tokens, lexer.Token{Type: lexer.EOF, Pos: position(len(input))})
	return &replay{tokens: tokens}, nil
}

// withFilename records filename on the LexError inside err, if there is one
func withFilename(err error, filename string) error {
	var lexErr *lexerrors.LexError
	if errors.As(err, &lexErr) {
		lexErr.WithContext("filename", filename)
	}
	return err
}

// replay hands out pre-scanned tokens, then EOF forever
type replay struct {
	tokens []lexer.Token
	next   int
}

func (r *replay) Next() (lexer.Token, error) {
	if r.next >= len(r.tokens)-1 {
		return r.tokens[len(r.tokens)-1], nil
	}
	tok := r.tokens[r.next]
	r.next++
	return tok, nil
}
