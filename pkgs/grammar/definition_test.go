package grammar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
	"github.com/aledsdavies/eslex/pkgs/tokenizer"
)

func newTestDefinition() *Definition {
	return New(tokenizer.New(tokenizer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))))
}

func TestSymbols(t *testing.T) {
	symbols := newTestDefinition().Symbols()

	assert.Equal(t, lexer.EOF, symbols["EOF"])
	assert.Equal(t, lexer.TokenType(tokenizer.IDENT), symbols["IDENT"])
	assert.Equal(t, lexer.TokenType(tokenizer.URSHIFTEQUAL), symbols["URSHIFTEQUAL"])
	assert.Len(t, symbols, len(tokenizer.Terminals())+1)
}

type tokenExpectation struct {
	Type   string
	Value  string
	Line   int
	Column int
}

func TestLexPositions(t *testing.T) {
	def := newTestDefinition()
	lex, err := def.Lex("in.js", strings.NewReader("if (a)\n  b >>= 1"))
	require.NoError(t, err)

	tokens, err := lexer.ConsumeAll(lex)
	require.NoError(t, err)

	names := make(map[lexer.TokenType]string)
	for name, tt := range def.Symbols() {
		names[tt] = name
	}

	var actual []tokenExpectation
	for _, tok := range tokens {
		actual = append(actual, tokenExpectation{names[tok.Type], tok.Value, tok.Pos.Line, tok.Pos.Column})
	}

	expected := []tokenExpectation{
		{"IF", "if", 1, 1},
		{"WHITESPACE", " ", 1, 3},
		{"SYMBOL", "(", 1, 4},
		{"IDENT", "a", 1, 5},
		{"SYMBOL", ")", 1, 6},
		{"WHITESPACE", "\n  ", 1, 7},
		{"IDENT", "b", 2, 3},
		{"WHITESPACE", " ", 2, 4},
		{"RSHIFTEQUAL", ">>=", 2, 5},
		{"WHITESPACE", " ", 2, 8},
		{"NUMBER", "1", 2, 9},
		{"EOF", "", 2, 10},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("token mismatch (-expected +actual):\n%s", diff)
	}
	assert.Equal(t, "in.js", tokens[0].Pos.Filename)
}

func TestEOFRepeats(t *testing.T) {
	lex, err := newTestDefinition().LexString("", "x")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = lex.Next()
		require.NoError(t, err)
	}
	tok, err := lex.Next()
	require.NoError(t, err)
	assert.True(t, tok.EOF())
}

func TestLexError(t *testing.T) {
	_, err := newTestDefinition().LexString("bad.js", "var s = 'open")
	require.Error(t, err)
	assert.True(t, lexerrors.IsErrorType(err, lexerrors.ErrNoRuleMatched))

	var lexErr *lexerrors.LexError
	require.True(t, errors.As(err, &lexErr))
	filename, _ := lexErr.GetContext("filename")
	assert.Equal(t, "bad.js", filename)
}

func TestWithFilenameFindsWrappedError(t *testing.T) {
	inner := lexerrors.NewNoRuleMatchedError(3, '"', 1, 4)
	wrapped := fmt.Errorf("scanning: %w", inner)

	assert.Same(t, wrapped, withFilename(wrapped, "main.js"))
	filename, ok := inner.GetContext("filename")
	require.True(t, ok)
	assert.Equal(t, "main.js", filename)

	plain := errors.New("not a lex error")
	assert.Equal(t, plain, withFilename(plain, "main.js"))
}

type program struct {
	Decls []*decl `parser:"@@*"`
}

type decl struct {
	Name  string `parser:"\"var\" @IDENT \"=\""`
	Value *value `parser:"@@ \";\""`
}

type value struct {
	Number *float64 `parser:"  @NUMBER"`
	String *string  `parser:"| @STRING"`
	Regexp *string  `parser:"| @REGEXP"`
	Ident  *string  `parser:"| @IDENT"`
}

func TestParticipleGrammar(t *testing.T) {
	parser := participle.MustBuild[program](
		participle.Lexer(newTestDefinition()),
		participle.Elide("WHITESPACE", "COMMENT"),
	)

	src := `var a = 1.5; // first
var b = /x\/y/g; /* regex */
var c = 'str';
var d = a;`
	prog, err := parser.ParseString("decls.js", src)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 4)

	assert.Equal(t, "a", prog.Decls[0].Name)
	require.NotNil(t, prog.Decls[0].Value.Number)
	assert.Equal(t, 1.5, *prog.Decls[0].Value.Number)

	require.NotNil(t, prog.Decls[1].Value.Regexp)
	assert.Equal(t, `/x\/y/g`, *prog.Decls[1].Value.Regexp)

	require.NotNil(t, prog.Decls[2].Value.String)
	assert.Equal(t, "'str'", *prog.Decls[2].Value.String)

	require.NotNil(t, prog.Decls[3].Value.Ident)
	assert.Equal(t, "a", *prog.Decls[3].Value.Ident)
}

func TestParticipleRejectsReservedName(t *testing.T) {
	parser := participle.MustBuild[program](
		participle.Lexer(newTestDefinition()),
		participle.Elide("WHITESPACE", "COMMENT"),
	)

	_, err := parser.ParseString("", "var class = 1;")
	assert.Error(t, err)
}
