// internal/cli/cmake.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eflumerf/fnal-art/pkg/buildenv"
	"github.com/eflumerf/fnal-art/pkg/recipe"
)

func newCMakeArgsCmd(opts *options) *cobra.Command {
	var (
		version   string
		variants  []string
		graphFile string
	)

	cmd := &cobra.Command{
		Use:   "cmake-args [recipe]",
		Short: "Print the CMake arguments a recipe passes to its build",
		Long: `Expand a recipe's CMake arguments, one per line.

Examples:
  fnalenv cmake-args gallery --variant cxxstd=20
  fnalenv cmake-args dk2nugenie --graph dk2nugenie.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := recipe.ParseVariantArgs(variants)
			if err != nil {
				return err
			}

			var g *buildenv.Graph
			if graphFile != "" {
				if g, err = buildenv.LoadGraph(graphFile); err != nil {
					return err
				}
			}

			m, err := newManager(cmd, opts)
			if err != nil {
				return err
			}

			cmakeArgs, err := m.CMakeArgs(args[0], version, overrides, g)
			if err != nil {
				return err
			}
			for _, a := range cmakeArgs {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "recipe version (default: preferred or highest)")
	cmd.Flags().StringArrayVar(&variants, "variant", nil, "variant override name=value (repeatable)")
	cmd.Flags().StringVar(&graphFile, "graph", "", "resolved graph supplying prefixes for ${dep:NAME}")

	return cmd
}
