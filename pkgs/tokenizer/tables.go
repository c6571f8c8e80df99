package tokenizer

import "sort"

var keywords = map[string]Terminal{
	"break":      BREAK,
	"case":       CASE,
	"catch":      CATCH,
	"continue":   CONTINUE,
	"default":    DEFAULT,
	"delete":     DELETE,
	"do":         DO,
	"else":       ELSE,
	"finally":    FINALLY,
	"for":        FOR,
	"function":   FUNCTION,
	"if":         IF,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"new":        NEW,
	"return":     RETURN,
	"switch":     SWITCH,
	"this":       THIS,
	"throw":      THROW,
	"try":        TRY,
	"typeof":     TYPEOF,
	"var":        VAR,
	"void":       VOID,
	"while":      WHILE,
	"with":       WITH,
	"const":      CONST,
	"true":       TRUE,
	"false":      FALSE,
	"null":       NULL,
	"debugger":   DEBUGGER,
}

var reservedWords = map[string]bool{
	"abstract":     true,
	"boolean":      true,
	"byte":         true,
	"char":         true,
	"class":        true,
	"double":       true,
	"enum":         true,
	"export":       true,
	"extends":      true,
	"final":        true,
	"float":        true,
	"goto":         true,
	"implements":   true,
	"import":       true,
	"int":          true,
	"interface":    true,
	"long":         true,
	"native":       true,
	"package":      true,
	"private":      true,
	"protected":    true,
	"public":       true,
	"short":        true,
	"static":       true,
	"super":        true,
	"synchronized": true,
	"throws":       true,
	"transient":    true,
	"volatile":     true,
}

var operators = map[string]Terminal{
	"==":   EQEQ,
	"!=":   NE,
	"===":  STREQ,
	"!==":  STRNEQ,
	"<=":   LE,
	">=":   GE,
	"||":   OR,
	"&&":   AND,
	"++":   PLUSPLUS,
	"--":   MINUSMINUS,
	"<<":   LSHIFT,
	"<<=":  LSHIFTEQUAL,
	">>":   RSHIFT,
	">>=":  RSHIFTEQUAL,
	">>>":  URSHIFT,
	">>>=": URSHIFTEQUAL,
	"&=":   ANDEQUAL,
	"%=":   MODEQUAL,
	"^=":   XOREQUAL,
	"|=":   OREQUAL,
	"+=":   PLUSEQUAL,
	"-=":   MINUSEQUAL,
	"*=":   MULTEQUAL,
	"/=":   DIVEQUAL,
}

// Keywords that evaluate to a value; a '/' after them is division.
var valueKeywords = map[string]bool{
	"this":  true,
	"true":  true,
	"false": true,
	"null":  true,
}

// Classify returns the terminal for an identifier-shaped word
func Classify(word string) Terminal {
	if tag, ok := keywords[word]; ok {
		return tag
	}
	if reservedWords[word] {
		return RESERVED
	}
	return IDENT
}

// impliesRegex reports whether a word leaves the scanner expecting an operand
func impliesRegex(word string) bool {
	_, isKeyword := keywords[word]
	return isKeyword && !valueKeywords[word]
}

// Keywords returns the keyword set, sorted
func Keywords() []string {
	return sortedKeys(keywords)
}

// ReservedWords returns the future reserved word set, sorted
func ReservedWords() []string {
	return sortedKeys(reservedWords)
}

// Operators returns the multi-character punctuators ordered longest first
func Operators() []string {
	ops := sortedKeys(operators)
	sort.SliceStable(ops, func(i, j int) bool {
		return len(ops[i]) > len(ops[j])
	})
	return ops
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
