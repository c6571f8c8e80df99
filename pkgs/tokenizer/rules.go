package tokenizer

import (
	"errors"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Transform turns matched text into a token value
type Transform func(text string) (any, error)

// Rule pairs an anchored pattern with the category it produces.
// Triggers lists every byte a match can begin with.
type Rule struct {
	Category  Category
	Pattern   *regexp.Regexp
	Triggers  string
	Transform Transform
}

// match returns the text matched at pos, or "" when the rule does not apply
func (r *Rule) match(input string, pos int) string {
	loc := r.Pattern.FindStringIndex(input[pos:])
	if loc == nil {
		return ""
	}
	return input[pos : pos+loc[1]]
}

const (
	digitChars = "0123456789"
	spaceChars = " \t\r\n\f"
)

var (
	wordChars = charRange('a', 'z') + charRange('A', 'Z') + "_$"

	// Quotes are left to the STRING rule alone so an unterminated string
	// fails instead of degrading into a lone symbol.
	symbolChars = "!#$%&" + charRange('(', '/') + charRange(':', '@') + charRange('[', '^') + "`" + charRange('{', '~')

	// A dot followed by a non-digit, as in "5.e3"
	dotBeforeExponent = regexp.MustCompile(`\.(\D)`)
)

// ruleTable is the compiled rule set and its dispatch index. It is never
// mutated after construction.
type ruleTable struct {
	rules []*Rule
	index *dispatchIndex
}

var defaultTable = sync.OnceValue(func() *ruleTable {
	rules := buildRules()
	return &ruleTable{rules: rules, index: buildDispatchIndex(rules)}
})

// buildRules registers the lexical rules. Registration order breaks ties
// between matches of equal length.
func buildRules() []*Rule {
	var rules []*Rule
	add := func(cat Category, pattern, triggers string, transform Transform) {
		rules = append(rules, &Rule{
			Category:  cat,
			Pattern:   regexp.MustCompile(`^(?:` + pattern + `)`),
			Triggers:  triggers,
			Transform: transform,
		})
	}

	add(COMMENT, `/\*(?s:.)*?\*/|//[^\n]*`, "/", nil)
	add(STRING, `(?s)"[^"\\]*(?:\\.[^"\\]*)*"|'[^'\\]*(?:\\.[^'\\]*)*'`, `"'`, nil)

	exponent := `[eE][-+]?\d+`
	add(NUMBER,
		`\d+\.\d*(?:`+exponent+`)?|\d+(?:\.\d*)?`+exponent+`|\.\d+(?:`+exponent+`)?`,
		digitChars+".", parseFraction)
	add(NUMBER, `0[xX][0-9a-fA-F]+|0[0-7]*|\d+`, digitChars, parseInteger)

	add(OPERATOR, operatorPattern(), operatorTriggers(), nil)
	add(WORD, `[A-Za-z_$][A-Za-z0-9_$]*`, wordChars, nil)

	// A leading '*' is refused so "/**/" can only be a comment, and the body
	// must be non-empty so "//" can only be a comment.
	add(REGEXP, `/(?:[^/\r\n\\*]|\\[^\r\n])[^/\r\n\\]*(?:\\[^\r\n][^/\r\n\\]*)*/[gim]*`, "/", nil)

	add(WHITESPACE, `[ \t\r\n\f]+`, spaceChars, nil)
	add(SYMBOL, `(?s:.)`, symbolChars, nil)

	return rules
}

// operatorPattern builds one alternation with the longest operators first so
// that leftmost-first matching yields the maximal munch.
func operatorPattern() string {
	ops := Operators()
	quoted := make([]string, len(ops))
	for i, op := range ops {
		quoted[i] = regexp.QuoteMeta(op)
	}
	return strings.Join(quoted, "|")
}

func operatorTriggers() string {
	var b strings.Builder
	seen := make(map[byte]bool)
	for _, op := range Operators() {
		if !seen[op[0]] {
			seen[op[0]] = true
			b.WriteByte(op[0])
		}
	}
	return b.String()
}

// normalizeFraction rewrites the degenerate decimal forms "5.", "5.e3" and
// ".5" into "5.0", "5.0e3" and "0.5".
func normalizeFraction(text string) string {
	text = dotBeforeExponent.ReplaceAllString(text, ".0${1}")
	if strings.HasSuffix(text, ".") {
		text += "0"
	}
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	}
	return text
}

// parseFraction evaluates a fractional literal. Exponents out of range
// evaluate to an infinity or zero rather than failing.
func parseFraction(text string) (any, error) {
	f, err := strconv.ParseFloat(normalizeFraction(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, err
	}
	return f, nil
}

// parseInteger evaluates hex, octal and decimal integer literals. Values
// beyond int64 fall back to the nearest float64, the language's only
// number representation.
func parseInteger(text string) (any, error) {
	digits, base := text, 10
	switch {
	case len(text) > 1 && (text[1] == 'x' || text[1] == 'X'):
		digits, base = text[2:], 16
	case len(text) > 1 && text[0] == '0':
		digits, base = text[1:], 8
	}

	n, err := strconv.ParseInt(digits, base, 64)
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return nil, err
	}
	wide, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, err
	}
	f, _ := new(big.Float).SetInt(wide).Float64()
	return f, nil
}

func charRange(lo, hi byte) string {
	var b strings.Builder
	for c := lo; c <= hi; c++ {
		b.WriteByte(c)
	}
	return b.String()
}
