// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eflumerf/fnal-art/pkg/platform"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fnalenv version %s\n", appVersion)
			fmt.Fprintln(out, "Build environments for art-suite package recipes")
			if plat, err := platform.Detect(); err == nil {
				fmt.Fprintf(out, "Platform: %s\n", plat)
			}
		},
	}
}
