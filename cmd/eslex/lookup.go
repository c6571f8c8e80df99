package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/eslex/pkgs/tokenizer"
)

const maxSuggestions = 3

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show how a word is classified, with suggestions for near misses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookup(cmd.OutOrStdout(), args[0])
		},
	}
}

func lookup(w io.Writer, word string) error {
	tag := tokenizer.Classify(word)
	switch tag {
	case tokenizer.IDENT:
		fmt.Fprintf(w, "%s: identifier\n", word)
	case tokenizer.RESERVED:
		fmt.Fprintf(w, "%s: reserved word\n", word)
		return nil
	default:
		fmt.Fprintf(w, "%s: keyword %s\n", word, tag)
		return nil
	}

	for _, s := range suggest(word) {
		fmt.Fprintf(w, "  did you mean %q?\n", s)
	}
	return nil
}

// suggest returns keywords and reserved words close to word, nearest first
func suggest(word string) []string {
	candidates := append(tokenizer.Keywords(), tokenizer.ReservedWords()...)
	ranks := fuzzy.RankFindFold(word, candidates)
	sort.Sort(ranks)

	var out []string
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.Target)
	}
	return out
}
