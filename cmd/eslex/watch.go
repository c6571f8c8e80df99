package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
)

func newWatchCmd(debug *bool) *cobra.Command {
	opts := tokensOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-tokenize a file every time it is written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			tok := newTokenizer(cmd.ErrOrStderr(), *debug)
			stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
			path := args[0]

			return watchFile(ctx, path, stderr, func() error {
				src, err := readFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "== %s\n", path)
				return runTokens(stdout, stderr, tok, src, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json, yaml or cbor")
	cmd.Flags().BoolVar(&opts.final, "final", false, "Print finalized (tag, value) pairs instead of raw tokens")
	cmd.Flags().BoolVar(&opts.skipTrivia, "skip-trivia", false, "Drop whitespace and comment tokens")
	cmd.Flags().BoolVar(&opts.digest, "digest", false, "Print only the BLAKE2b-256 digest of the stream")
	return cmd
}

// watchFile runs onChange once, then again after every write to path, until
// ctx is cancelled. The parent directory is watched so editors that replace
// the file on save are still seen. Failures from onChange are reported and
// watching continues.
func watchFile(ctx context.Context, path string, stderr io.Writer, onChange func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return lexerrors.NewInputError(fmt.Sprintf("error resolving %s", path), err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return lexerrors.NewInputError("error creating file watcher", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return lexerrors.NewInputError(fmt.Sprintf("error watching %s", path), err)
	}

	report := func() {
		if err := onChange(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}
	report()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				report()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(stderr, "watch error: %v\n", err)
		}
	}
}
