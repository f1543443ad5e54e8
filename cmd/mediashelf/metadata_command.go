package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediashelf/internal/catalog"
)

func newMetadataCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "metadata <kind> <field>",
		Short: "List the distinct values of a field across the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}

			catalogStore, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer catalogStore.Close()

			aggregator, err := ctx.newAggregator(catalogStore)
			if err != nil {
				return err
			}

			values, err := aggregator.DistinctValues(cmd.Context(), kind, args[1])
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, values)
			}
			out := cmd.OutOrStdout()
			if len(values) == 0 {
				fmt.Fprintf(out, "No %s values recorded for %s items.\n", args[1], kind)
				return nil
			}
			for _, value := range values {
				fmt.Fprintln(out, value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}
