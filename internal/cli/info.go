// internal/cli/info.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [recipe]",
		Short: "Show information about a recipe",
		Long:  `Display versions, variants and dependencies of a recipe for the active generator.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager(cmd, opts)
			if err != nil {
				return err
			}

			rec, err := m.Recipe(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Package: %s\n", rec.Name)
			if rec.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", rec.Description)
			}
			if rec.Homepage != "" {
				fmt.Fprintf(out, "Homepage: %s\n", rec.Homepage)
			}

			def := rec.DefaultVersion()
			fmt.Fprintf(out, "\nVersions:\n")
			for _, v := range rec.Versions {
				marker := " "
				if def != nil && v.Name == def.Name {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %s\n", marker, v.Name)
			}
			if def != nil {
				url, err := rec.URLFor(*def)
				if err != nil {
					return err
				}
				if url != "" {
					fmt.Fprintf(out, "Source: %s\n", url)
				}
			}

			if len(rec.Variants) > 0 {
				fmt.Fprintf(out, "\nVariants:\n")
				for _, v := range rec.Variants {
					fmt.Fprintf(out, "  %s=%s [%s]", v.Name, v.Default, strings.Join(v.Values, ", "))
					if v.Description != "" {
						fmt.Fprintf(out, "  %s", v.Description)
					}
					fmt.Fprintln(out)
				}
			}

			deps := rec.DependenciesFor(opts.config.Generator)
			if len(deps) > 0 {
				fmt.Fprintf(out, "\nDependencies:\n")
				for _, d := range deps {
					fmt.Fprintf(out, "  %s\n", d)
				}
			}

			if len(rec.Sanitize) > 0 {
				fmt.Fprintf(out, "\nSanitizes: %s\n", strings.Join(rec.Sanitize, ", "))
			}

			return nil
		},
	}
}
