package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
	"github.com/aledsdavies/eslex/pkgs/tokenizer"
)

// Exit code constants
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitTokenizeError    = 3
	ExitEncodeError      = 4
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(ExitSuccess)
}

func newRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "eslex",
		Short:         "Tokenize ECMAScript-like source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	rootCmd.AddCommand(
		newTokensCmd(&debug),
		newVerifyCmd(),
		newWatchCmd(&debug),
		newReplCmd(&debug),
		newLookupCmd(),
	)
	return rootCmd
}

// newTokenizer builds a tokenizer logging to stderr; --debug lowers the level
func newTokenizer(stderr io.Writer, debug bool, opts ...tokenizer.Opt) *tokenizer.Tokenizer {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return tokenizer.New(append([]tokenizer.Opt{tokenizer.WithLogger(logger)}, opts...)...)
}

// exitCode maps structured errors onto process exit codes
func exitCode(err error) int {
	var lexErr *lexerrors.LexError
	if !errors.As(err, &lexErr) {
		return ExitInvalidArguments
	}
	switch lexErr.Type {
	case lexerrors.ErrInputRead:
		return ExitIOError
	case lexerrors.ErrEncode:
		return ExitEncodeError
	default:
		return ExitTokenizeError
	}
}
