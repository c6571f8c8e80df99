package tokenizer

var categoryTerminals = [...]Terminal{
	COMMENT:    TComment,
	STRING:     TString,
	NUMBER:     TNumber,
	OPERATOR:   TOperator,
	WORD:       TWord,
	REGEXP:     TRegexp,
	WHITESPACE: TWhitespace,
	SYMBOL:     TSymbol,
}

// Finalize maps a raw token to the tag a grammar consumes. Words become a
// keyword tag, RESERVED or IDENT; operators get their punctuator tag; all
// other categories keep their own tag. The value is carried over.
func Finalize(tok RawToken) FinalToken {
	tag := categoryTerminals[tok.Category]
	switch tok.Category {
	case WORD:
		tag = Classify(tok.Text)
	case OPERATOR:
		if op, ok := operators[tok.Text]; ok {
			tag = op
		}
	}
	return FinalToken{Tag: tag, Value: tok.Value}
}

// FinalizeAll finalizes a raw token stream
func FinalizeAll(tokens []RawToken) []FinalToken {
	out := make([]FinalToken, len(tokens))
	for i, tok := range tokens {
		out[i] = Finalize(tok)
	}
	return out
}
