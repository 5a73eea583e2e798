// internal/cli/sanitize.go
package cli

import (
	"os"

	"github.com/spf13/cobra"

	fnalart "github.com/eflumerf/fnal-art"
	"github.com/eflumerf/fnal-art/pkg/env"
)

func newSanitizeCmd(opts *options) *cobra.Command {
	var (
		envFile string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "sanitize [VAR...]",
		Short: "Dedupe path-list variables and move system paths last",
		Long: `Read the current environment (or a dotenv file), remove duplicate entries
from the named path-list variables keeping the first occurrence, move
entries under system prefixes behind all others, and print the result.

With no variables, the sanitize_vars from the config file are used.

Examples:
  eval "$(fnalenv sanitize PATH LD_LIBRARY_PATH)"
  fnalenv sanitize --env-file build.env --format dotenv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, opts)
			if err != nil {
				return err
			}

			var in *env.Environment
			if envFile != "" {
				file, err := os.Open(envFile)
				if err != nil {
					return err
				}
				defer file.Close()
				if in, err = env.ReadDotenv(file); err != nil {
					return err
				}
			} else {
				in = env.FromPairs(opts.environ())
			}

			m, err := newManager(cmd, opts)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = opts.config.SanitizeVars
			}
			m.Sanitize([]*fnalart.Environment{in}, names...)

			out := env.NewEnvironmentWithSeparator(in.ListSeparator())
			for _, name := range names {
				if v, ok := in.Lookup(name); ok {
					out.Set(name, v)
				}
			}
			return env.Render(cmd.OutOrStdout(), out, f)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "read variables from a dotenv file instead of the process environment")
	cmd.Flags().StringVar(&format, "format", "", "output format (sh, bash, csh, dotenv)")

	return cmd
}
