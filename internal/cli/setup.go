// internal/cli/setup.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eflumerf/fnal-art/pkg/buildenv"
	"github.com/eflumerf/fnal-art/pkg/env"
)

func newSetupCmd(opts *options) *cobra.Command {
	var (
		phase  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "setup [graph.yaml]",
		Short: "Print the build or run environment for a resolved package",
		Long: `Apply recipe environment hooks for the package described in a resolved
dependency graph and print the resulting environment.

Examples:
  fnalenv setup gallery.yaml
  fnalenv setup larsim.yaml --phase run --format csh
  fnalenv setup art-root-io.yaml --generator Ninja`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, opts)
			if err != nil {
				return err
			}

			g, err := buildenv.LoadGraph(args[0])
			if err != nil {
				return err
			}

			m, err := newManager(cmd, opts)
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			res, err := m.Setup(cmd.Context(), g)
			if err != nil {
				return err
			}

			e, err := res.Environment(buildenv.Phase(phase))
			if err != nil {
				return err
			}
			if err := env.Render(cmd.OutOrStdout(), e, f); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Set up %s %s environment with %d variables", g.Package.Name, phase, e.Len()))
			return nil
		},
	}

	cmd.Flags().StringVar(&phase, "phase", string(buildenv.PhaseBuild), "environment to print (build, run)")
	cmd.Flags().StringVar(&format, "format", "", "output format (sh, bash, csh, dotenv)")

	return cmd
}

// resolveFormat prefers the flag, then the configured default
func resolveFormat(flag string, opts *options) (env.Format, error) {
	if flag == "" {
		flag = opts.config.Format
	}
	if flag == "" {
		flag = string(env.FormatSh)
	}
	return env.ParseFormat(flag)
}
