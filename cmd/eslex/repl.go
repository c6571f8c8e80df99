package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/eslex/pkgs/tokenizer"
)

const historyFile = ".eslex_history"

func newReplCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Tokenize lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.OutOrStdout(), newTokenizer(cmd.ErrOrStderr(), *debug))
		},
	}
}

func runRepl(w io.Writer, tok *tokenizer.Tokenizer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(w, "eslex repl. :final toggles finalized output, :quit exits.")
	session := &replSession{tok: tok}
	for {
		input, err := line.Prompt(session.prompt())
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		if session.eval(w, input) {
			return nil
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

// replSession carries state between prompts. Each line is tokenized on its
// own; regex context does not carry over from the previous line.
type replSession struct {
	tok   *tokenizer.Tokenizer
	final bool
}

func (s *replSession) prompt() string {
	if s.final {
		return "eslex(final)> "
	}
	return "eslex> "
}

// eval handles one line of input and reports whether the session should end
func (s *replSession) eval(w io.Writer, input string) bool {
	switch strings.TrimSpace(input) {
	case ":quit", ":q":
		return true
	case ":final":
		s.final = !s.final
		return false
	}

	raw, err := s.tok.RawTokens(input)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return false
	}

	if s.final {
		for _, ft := range tokenizer.FinalizeAll(raw) {
			fmt.Fprintf(w, "  %s\n", ft)
		}
		return false
	}
	for _, rt := range raw {
		if rt.Category == tokenizer.WHITESPACE {
			continue
		}
		fmt.Fprintf(w, "  %-10s %-8s %q\n", rt.Category, rt.Range, rt.Text)
	}
	return false
}
