// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	fnalart "github.com/eflumerf/fnal-art"
	"github.com/eflumerf/fnal-art/pkg/core"
)

const appVersion = "0.1.0"

// options holds global flags plus the hooks tests replace
type options struct {
	cfgFile   string
	generator string
	recipes   string
	debug     bool

	config *core.Config

	environ   func() []string
	lookupEnv func(string) (string, bool)
}

func newOptions() *options {
	return &options{
		environ:   os.Environ,
		lookupEnv: os.LookupEnv,
	}
}

// Execute executes the root command
func Execute() error {
	return newRootCmd(newOptions()).ExecuteContext(context.Background())
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fnalenv",
		Short: "Build environments for art-suite package recipes",
		Long: `fnalenv - build environments for art-suite package recipes

Applies the environment hooks of FNAL art-suite recipes (gallery,
art-root-io, larsim, ...) to a resolved dependency graph, and keeps
path-list variables such as CET_PLUGIN_PATH and ROOT_INCLUDE_PATH free
of duplicates with system directories last.`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(opts); err != nil {
				return err
			}
			level := log.InfoLevel
			if opts.config.Debug {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/fnalenv/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.generator, "generator", "", "CMake generator (overrides config and SPACK_CMAKE_GENERATOR)")
	rootCmd.PersistentFlags().StringVar(&opts.recipes, "recipes", "", "directory of extra recipes (<name>/recipe.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(newSetupCmd(opts))
	rootCmd.AddCommand(newSanitizeCmd(opts))
	rootCmd.AddCommand(newRecipesCmd(opts))
	rootCmd.AddCommand(newCMakeArgsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func initConfig(opts *options) error {
	cfg, err := core.LoadConfig(opts.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if opts.recipes != "" {
		cfg.RecipePath = opts.recipes
	}
	if opts.debug {
		cfg.Debug = true
	}
	cfg.Generator = core.ResolveGenerator(opts.generator, cfg, opts.lookupEnv)

	opts.config = cfg
	return nil
}

func newManager(cmd *cobra.Command, opts *options) (*fnalart.Manager, error) {
	logger := loggerFromContext(cmd.Context())
	if opts.config.Generator != "" {
		logger.Debug("using generator", "generator", opts.config.Generator)
	}
	return fnalart.NewManager(opts.config, fnalart.Options{
		Generator: opts.config.Generator,
		Logger:    logger,
	})
}
