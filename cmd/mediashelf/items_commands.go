package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mediashelf/internal/catalog"
	"mediashelf/internal/catalog/store"
)

func newItemsCommand(ctx *commandContext) *cobra.Command {
	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "Manage catalog items",
	}

	itemsCmd.AddCommand(newItemsListCommand(ctx))
	itemsCmd.AddCommand(newItemsShowCommand(ctx))
	itemsCmd.AddCommand(newItemsAddCommand(ctx))
	itemsCmd.AddCommand(newItemsRemoveCommand(ctx))

	return itemsCmd
}

func withStore(ctx *commandContext, fn func(*store.Store) error) error {
	catalogStore, err := ctx.openStore()
	if err != nil {
		return err
	}
	defer catalogStore.Close()
	return fn(catalogStore)
}

func newItemsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List catalog items of a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}
			return withStore(ctx, func(catalogStore *store.Store) error {
				items, err := catalogStore.List(cmd.Context(), kind)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, items)
				}
				if len(items) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No %s items in the catalog.\n", kind)
					return nil
				}
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rows = append(rows, entitySummaryRow(item))
				}
				printRows(cmd, []string{"ID", "Title", "Format", "Detail"}, rows, nil)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}

func newItemsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Show a single catalog item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}
			return withStore(ctx, func(catalogStore *store.Store) error {
				entity, err := catalogStore.Get(cmd.Context(), kind, args[1])
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, entity)
				}
				printRows(cmd, []string{"Field", "Value"}, entityFieldRows(entity), nil)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON output")
	return cmd
}

func newItemsAddCommand(ctx *commandContext) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "add <kind>",
		Short: "Add an item from a JSON document",
		Long: `Add a catalog item of the given kind from a JSON document read from
--file or standard input. The document shape matches the JSON emitted by
"mediashelf lookup --json".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}

			var source io.Reader = cmd.InOrStdin()
			if path := strings.TrimSpace(filePath); path != "" {
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open item file: %w", err)
				}
				defer file.Close()
				source = file
			}

			entity, err := catalog.New(kind)
			if err != nil {
				return err
			}
			if err := json.NewDecoder(source).Decode(entity); err != nil {
				return fmt.Errorf("decode item document: %w", err)
			}
			if strings.TrimSpace(entity.EntityTitle()) == "" {
				return fmt.Errorf("item document has no title")
			}

			return withStore(ctx, func(catalogStore *store.Store) error {
				id, err := catalogStore.Add(cmd.Context(), entity)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q as %s\n", kind, entity.EntityTitle(), id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read the item document from a file instead of stdin")
	return cmd
}

func newItemsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <kind> <id>",
		Short: "Remove an item from the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}
			return withStore(ctx, func(catalogStore *store.Store) error {
				if err := catalogStore.Remove(cmd.Context(), kind, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s\n", kind, args[1])
				return nil
			})
		},
	}
}
