package tokenizer

import (
	"fmt"
	"unicode/utf8"
)

// dispatchIndex maps an ASCII start byte to the rules that may match there,
// in registration order. Bytes with no entry cannot start any token.
type dispatchIndex [utf8.RuneSelf][]*Rule

// buildDispatchIndex files every rule under each of its trigger bytes
func buildDispatchIndex(rules []*Rule) *dispatchIndex {
	var idx dispatchIndex
	for _, rule := range rules {
		for i := 0; i < len(rule.Triggers); i++ {
			ch := rule.Triggers[i]
			if ch >= utf8.RuneSelf {
				panic(fmt.Sprintf("tokenizer: %s rule declares non-ASCII trigger %#x", rule.Category, ch))
			}
			idx[ch] = append(idx[ch], rule)
		}
	}
	return &idx
}

// candidates returns the rules that can begin with ch
func (d *dispatchIndex) candidates(ch byte) []*Rule {
	if ch >= utf8.RuneSelf {
		return nil
	}
	return d[ch]
}
