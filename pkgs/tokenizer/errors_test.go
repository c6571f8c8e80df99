package tokenizer

import (
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
)

func TestUnterminatedStringFails(t *testing.T) {
	tokens, err := newTestTokenizer().RawTokens("\"abc")
	require.Error(t, err)
	assert.Nil(t, tokens, "no partial result on failure")
	assert.True(t, lexerrors.IsErrorType(err, lexerrors.ErrNoRuleMatched))

	var lexErr *lexerrors.LexError
	require.True(t, errors.As(err, &lexErr))
	offset, ok := lexErr.Offset()
	require.True(t, ok)
	assert.Equal(t, 0, offset)
	ch, _ := lexErr.GetContext("char")
	assert.Equal(t, '"', ch)
}

func TestUnterminatedStringAfterTokens(t *testing.T) {
	_, err := newTestTokenizer().RawTokens("x = 'abc\n")
	require.Error(t, err)
	assert.True(t, lexerrors.IsErrorType(err, lexerrors.ErrNoRuleMatched))

	offset, ok := err.(*lexerrors.LexError).Offset()
	require.True(t, ok)
	assert.Equal(t, 4, offset)
	assert.Contains(t, err.Error(), "1:5")
}

func TestUnmatchedCharacter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		char   rune
	}{
		{"non-ascii identifier", "a = é", 4, 'é'},
		{"vertical tab", "a\vb", 1, '\v'},
		{"nul byte", "\x00", 0, 0},
		{"delete", "x\x7f", 1, 0x7f},
		{"invalid utf-8", "\xff", 0, 0xfffd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := newTestTokenizer().RawTokens(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.True(t, lexerrors.IsErrorType(err, lexerrors.ErrUnmatchedCharacter), "got %v", err)

			lexErr := err.(*lexerrors.LexError)
			offset, _ := lexErr.Offset()
			assert.Equal(t, tt.offset, offset)
			ch, _ := lexErr.GetContext("char")
			assert.Equal(t, tt.char, ch)
		})
	}
}

func TestTokenizeReturnsNilOnError(t *testing.T) {
	final, err := newTestTokenizer().Tokenize("ok 'broken")
	require.Error(t, err)
	assert.Nil(t, final)
}

func TestMalformedLiteral(t *testing.T) {
	failing := &Rule{
		Category: NUMBER,
		Pattern:  regexp.MustCompile(`^\d+`),
		Triggers: digitChars,
		Transform: func(text string) (any, error) {
			return nil, strconv.ErrSyntax
		},
	}
	tok := &Tokenizer{
		table: &ruleTable{
			rules: []*Rule{failing},
			index: buildDispatchIndex([]*Rule{failing}),
		},
		config: Config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
	}

	_, err := tok.RawTokens("123")
	require.Error(t, err)
	assert.True(t, lexerrors.IsErrorType(err, lexerrors.ErrMalformedLiteral))
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	text, _ := err.(*lexerrors.LexError).GetContext("text")
	assert.Equal(t, "123", text)
}

func TestNumberTransformsRejectGarbage(t *testing.T) {
	_, err := parseFraction("1.2.3")
	assert.Error(t, err)

	_, err = parseInteger("0xZZ")
	assert.Error(t, err)
}
