package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
	"github.com/aledsdavies/eslex/pkgs/tokenio"
	"github.com/aledsdavies/eslex/pkgs/tokenizer"
)

type tokensOptions struct {
	format     string
	final      bool
	skipTrivia bool
	digest     bool
	stats      bool
}

func newTokensCmd(debug *bool) *cobra.Command {
	opts := tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a source file (stdin when omitted or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			var tokOpts []tokenizer.Opt
			if opts.stats {
				tokOpts = append(tokOpts, tokenizer.WithTelemetryTiming())
			}
			tok := newTokenizer(cmd.ErrOrStderr(), *debug, tokOpts...)
			return runTokens(cmd.OutOrStdout(), cmd.ErrOrStderr(), tok, src, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json, yaml or cbor")
	cmd.Flags().BoolVar(&opts.final, "final", false, "Print finalized (tag, value) pairs instead of raw tokens")
	cmd.Flags().BoolVar(&opts.skipTrivia, "skip-trivia", false, "Drop whitespace and comment tokens")
	cmd.Flags().BoolVar(&opts.digest, "digest", false, "Print only the BLAKE2b-256 digest of the stream")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print per-category counts and timings to stderr")
	return cmd
}

// readSource reads the named file, or stdin for no argument or "-"
func readSource(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", lexerrors.NewInputError("error reading stdin", err)
		}
		return string(data), nil
	}

	return readFile(args[0])
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", lexerrors.NewInputError(fmt.Sprintf("error reading file %s", path), err)
	}
	return string(data), nil
}

func runTokens(stdout, stderr io.Writer, tok *tokenizer.Tokenizer, src string, opts tokensOptions) error {
	format, err := tokenio.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	scanner := tok.NewScanner(src)
	raw, err := scanner.Scan()
	if err != nil {
		return err
	}
	if opts.stats {
		printStats(stderr, scanner.Telemetry())
	}

	if opts.skipTrivia {
		raw = tokenio.WithoutTrivia(raw)
	}

	stream := tokenio.FromRaw(raw)
	if opts.final {
		stream = tokenio.FromFinal(tokenizer.FinalizeAll(raw))
	}

	if opts.digest {
		sum, err := tokenio.Digest(stream)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, sum)
		return err
	}
	return tokenio.Encode(stdout, stream, format)
}

func printStats(w io.Writer, telemetry map[tokenizer.Category]*tokenizer.CategoryTelemetry) {
	cats := make([]tokenizer.Category, 0, len(telemetry))
	for cat := range telemetry {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	for _, cat := range cats {
		tel := telemetry[cat]
		fmt.Fprintf(w, "%-10s %6d tokens  avg %v  max %v\n", cat, tel.Count, tel.AvgTime, tel.MaxTime)
	}
}
