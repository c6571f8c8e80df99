package tokenizer

import "fmt"

// Category is the lexical class a rule produces
type Category int

const (
	COMMENT Category = iota
	STRING
	NUMBER
	OPERATOR
	WORD
	REGEXP
	WHITESPACE
	SYMBOL
)

var categoryNames = [...]string{
	COMMENT:    "COMMENT",
	STRING:     "STRING",
	NUMBER:     "NUMBER",
	OPERATOR:   "OPERATOR",
	WORD:       "WORD",
	REGEXP:     "REGEXP",
	WHITESPACE: "WHITESPACE",
	SYMBOL:     "SYMBOL",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) && int(c) >= 0 {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Terminal is the parser-facing tag of a finalized token
type Terminal int

const (
	// Category pass-through tags
	TComment Terminal = iota
	TString
	TNumber
	TOperator
	TWord
	TRegexp
	TWhitespace
	TSymbol

	// Word classes
	IDENT
	RESERVED

	// Keywords
	BREAK
	CASE
	CATCH
	CONTINUE
	DEFAULT
	DELETE
	DO
	ELSE
	FINALLY
	FOR
	FUNCTION
	IF
	IN
	INSTANCEOF
	NEW
	RETURN
	SWITCH
	THIS
	THROW
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH
	CONST
	TRUE
	FALSE
	NULL
	DEBUGGER

	// Punctuators
	EQEQ         // ==
	NE           // !=
	STREQ        // ===
	STRNEQ       // !==
	LE           // <=
	GE           // >=
	OR           // ||
	AND          // &&
	PLUSPLUS     // ++
	MINUSMINUS   // --
	LSHIFT       // <<
	LSHIFTEQUAL  // <<=
	RSHIFT       // >>
	RSHIFTEQUAL  // >>=
	URSHIFT      // >>>
	URSHIFTEQUAL // >>>=
	ANDEQUAL     // &=
	MODEQUAL     // %=
	XOREQUAL     // ^=
	OREQUAL      // |=
	PLUSEQUAL    // +=
	MINUSEQUAL   // -=
	MULTEQUAL    // *=
	DIVEQUAL     // /=

	terminalCount
)

var terminalNames = [...]string{
	TComment:     "COMMENT",
	TString:      "STRING",
	TNumber:      "NUMBER",
	TOperator:    "OPERATOR",
	TWord:        "WORD",
	TRegexp:      "REGEXP",
	TWhitespace:  "WHITESPACE",
	TSymbol:      "SYMBOL",
	IDENT:        "IDENT",
	RESERVED:     "RESERVED",
	BREAK:        "BREAK",
	CASE:         "CASE",
	CATCH:        "CATCH",
	CONTINUE:     "CONTINUE",
	DEFAULT:      "DEFAULT",
	DELETE:       "DELETE",
	DO:           "DO",
	ELSE:         "ELSE",
	FINALLY:      "FINALLY",
	FOR:          "FOR",
	FUNCTION:     "FUNCTION",
	IF:           "IF",
	IN:           "IN",
	INSTANCEOF:   "INSTANCEOF",
	NEW:          "NEW",
	RETURN:       "RETURN",
	SWITCH:       "SWITCH",
	THIS:         "THIS",
	THROW:        "THROW",
	TRY:          "TRY",
	TYPEOF:       "TYPEOF",
	VAR:          "VAR",
	VOID:         "VOID",
	WHILE:        "WHILE",
	WITH:         "WITH",
	CONST:        "CONST",
	TRUE:         "TRUE",
	FALSE:        "FALSE",
	NULL:         "NULL",
	DEBUGGER:     "DEBUGGER",
	EQEQ:         "EQEQ",
	NE:           "NE",
	STREQ:        "STREQ",
	STRNEQ:       "STRNEQ",
	LE:           "LE",
	GE:           "GE",
	OR:           "OR",
	AND:          "AND",
	PLUSPLUS:     "PLUSPLUS",
	MINUSMINUS:   "MINUSMINUS",
	LSHIFT:       "LSHIFT",
	LSHIFTEQUAL:  "LSHIFTEQUAL",
	RSHIFT:       "RSHIFT",
	RSHIFTEQUAL:  "RSHIFTEQUAL",
	URSHIFT:      "URSHIFT",
	URSHIFTEQUAL: "URSHIFTEQUAL",
	ANDEQUAL:     "ANDEQUAL",
	MODEQUAL:     "MODEQUAL",
	XOREQUAL:     "XOREQUAL",
	OREQUAL:      "OREQUAL",
	PLUSEQUAL:    "PLUSEQUAL",
	MINUSEQUAL:   "MINUSEQUAL",
	MULTEQUAL:    "MULTEQUAL",
	DIVEQUAL:     "DIVEQUAL",
}

func (t Terminal) String() string {
	if int(t) < len(terminalNames) && int(t) >= 0 {
		return terminalNames[t]
	}
	return fmt.Sprintf("Terminal(%d)", int(t))
}

// Terminals returns every terminal tag in declaration order
func Terminals() []Terminal {
	out := make([]Terminal, 0, terminalCount)
	for t := Terminal(0); t < terminalCount; t++ {
		out = append(out, t)
	}
	return out
}

// LookupTerminal resolves a tag name such as "IF" or "EQEQ"
func LookupTerminal(name string) (Terminal, bool) {
	for t, n := range terminalNames {
		if n == name {
			return Terminal(t), true
		}
	}
	return 0, false
}

// RawToken is a token as emitted by the scanner, before finalization.
// Value is the matched text unless the rule's transform replaced it: NUMBER
// tokens carry a float64 (fractional form) or int64 (integer form).
type RawToken struct {
	Category Category
	Text     string
	Value    any
	Range    Range
}

// FinalToken is the (tag, value) pair handed to a grammar
type FinalToken struct {
	Tag   Terminal
	Value any
}

func (t FinalToken) String() string {
	return fmt.Sprintf("%s(%v)", t.Tag, t.Value)
}
