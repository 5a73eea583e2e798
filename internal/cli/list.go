// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var recipeHeader = table.Row{
	"Name",
	"Default Version",
	"Versions",
	"Dependencies",
	"Sanitizes",
}

func newRecipesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Inspect package recipes",
	}
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newInfoCmd(opts))
	cmd.AddCommand(newSyncCmd(opts))
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available recipes",
		Long:  `List builtin recipes and those found in the configured recipe directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd, opts)
			if err != nil {
				return err
			}

			names, err := m.Recipes()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.AppendHeader(recipeHeader)
			for _, name := range names {
				rec, err := m.Recipe(name)
				if err != nil {
					loggerFromContext(cmd.Context()).Warn("skipping recipe", "name", name, "err", err)
					continue
				}
				def := ""
				if v := rec.DefaultVersion(); v != nil {
					def = v.Name
				}
				t.AppendRow(table.Row{
					rec.Name,
					def,
					len(rec.Versions),
					len(rec.DependenciesFor(opts.config.Generator)),
					len(rec.Sanitize),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
