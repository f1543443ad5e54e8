package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediashelf/internal/catalog"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "lookup <kind> <id-kind> <value>",
		Short: "Resolve an external identifier into catalog metadata",
		Long: `Resolve a barcode or ISBN into catalog metadata without storing anything.

Kinds: book, movie, game, music. Identifier kinds: isbn (books),
upc/ean (movies, games, music).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}

			dispatcher, err := ctx.newDispatcher()
			if err != nil {
				return err
			}

			response, err := dispatcher.Resolve(cmd.Context(), kind, args[1], args[2])
			if err != nil {
				return fmt.Errorf("lookup failed: %w", err)
			}
			if response == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No match found.")
				return nil
			}

			if jsonOut {
				return writeJSON(cmd, response.Entity())
			}
			printRows(cmd, []string{"Field", "Value"}, entityFieldRows(response.Entity()), nil)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}
