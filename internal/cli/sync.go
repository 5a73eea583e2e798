// internal/cli/sync.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eflumerf/fnal-art/pkg/core"
	"github.com/eflumerf/fnal-art/pkg/index"
)

func newSyncCmd(opts *options) *cobra.Command {
	var syncOpts index.Options

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch recipes from a git repository",
		Long: `Clone a recipe repository and install its recipes into the recipe
directory. Installed recipes shadow the builtin ones of the same name.

When no recipe_path is configured, recipes go to
$HOME/.config/fnalenv/recipes and the config file is updated to use it.

Examples:
  fnalenv recipes sync
  fnalenv recipes sync --url https://github.com/example/site-recipes --dir packages`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := opts.config.RecipePath
			persist := dest == ""
			if persist {
				p, err := core.DefaultRecipePath()
				if err != nil {
					return err
				}
				dest = p
			}

			syncOpts.Logger = loggerFromContext(cmd.Context())
			res, err := index.Sync(cmd.Context(), dest, syncOpts)
			if err != nil {
				return err
			}

			// only point the config at dest once it exists
			if persist {
				if err := persistRecipePath(opts.cfgFile, dest); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, name := range res.Recipes {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintf(out, "Installed %d recipes into %s\n", len(res.Recipes), dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&syncOpts.URL, "url", index.DefaultURL, "recipe repository")
	cmd.Flags().StringVar(&syncOpts.Branch, "branch", index.DefaultBranch, "branch to fetch")
	cmd.Flags().StringVar(&syncOpts.Dir, "dir", index.DefaultDir, "directory in the repository holding <name>/recipe.toml")

	return cmd
}

// persistRecipePath records dir in the config file, leaving flag and
// environment overrides out of what gets saved
func persistRecipePath(cfgFile, dir string) error {
	cfg, err := core.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	cfg.RecipePath = dir
	return core.SaveConfig(cfg, cfgFile)
}
