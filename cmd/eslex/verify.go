package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
	"github.com/aledsdavies/eslex/pkgs/tokenio"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <dump.json>",
		Short: "Check a JSON token dump against the stream schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return lexerrors.NewInputError(fmt.Sprintf("error reading file %s", args[0]), err)
			}
			if err := tokenio.ValidateJSON(data); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return err
		},
	}
}
