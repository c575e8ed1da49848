// Package cli implements the sqltidy and sqlgrepdoc command-line tools.
//
// Both tools share one configuration surface (flags, SQLSCRIPT_*
// environment variables, sqlscript.yaml) and one processing pipeline:
// scan, segment, then either reformat or extract. Formatted SQL goes to
// stdout; diagnostics and logs go to stderr so output stays pipeable.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/sqlscript/internal/cli/config"
	"github.com/leapstack-labs/sqlscript/internal/cli/output"
	"github.com/leapstack-labs/sqlscript/pkg/dialect"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	cfg      *config.Config
	logClose func()
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// rendererKey is used to store renderer in context.
type rendererKey struct{}

// newRootCommand builds the command skeleton shared by both tools:
// persistent flags, config loading, and the logger/renderer wiring.
func newRootCommand(use, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger, closer, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logClose = closer

			// Store config, logger, and renderer in context
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)

			mode := output.Mode(cfg.Output)
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
			ctx = context.WithValue(ctx, rendererKey{}, renderer)
			cmd.SetContext(ctx)

			// Print config file used (if verbose)
			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	cmd.SetVersionTemplate(`{{.Name}} {{.Version}}
SQL script tools for DB2 for LUW
`)

	// Global persistent flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./sqlscript.yaml)")
	pf.StringP("terminator", "t", config.DefaultTerminator, "Statement terminator")
	pf.String("dialect", config.DefaultDialect, "SQL dialect for scanning quirks and keywords")
	pf.BoolP("quiet", "q", false, "Report errors only")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.Bool("debug", false, "Debug logging with source locations")
	pf.StringP("log-file", "l", "", "Also write log output to this file")
	pf.StringP("output", "o", "", "Diagnostics format (auto|text|json)")

	// Register completion for output flag
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for dialect flag
	_ = cmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// execute runs a root command, printing any error the way the tools
// report failure: a single Error: line on stderr and a non-zero exit
// for the caller to apply.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if logClose != nil {
		logClose()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// ExecuteTidy runs the sqltidy command.
func ExecuteTidy() error {
	return execute(NewTidyCommand())
}

// ExecuteGrepDoc runs the sqlgrepdoc command.
func ExecuteGrepDoc() error {
	return execute(NewGrepDocCommand())
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return &config.Config{
		Terminator:    config.DefaultTerminator,
		Dialect:       config.DefaultDialect,
		KeywordCase:   config.DefaultKeywordCase,
		ListThreshold: config.DefaultListThreshold,
		Output:        config.DefaultOutput,
	}
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	// Return default renderer if none in context
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// NewVersionCommand creates the version subcommand for a tool.
func NewVersionCommand(name, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", name, version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "build %s (%s)\n", GitCommit, BuildDate)
		},
	}
}
