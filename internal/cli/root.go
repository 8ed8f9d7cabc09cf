package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// configKey is the context key for the loaded Config.
type configKey struct{}

// configFromContext returns the Config installed by Execute, or the
// defaults when none is present.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey{}).(Config); ok {
		return cfg
	}
	return defaultConfig()
}

// Execute runs the jsoncanvas CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The root command registers the validate, fmt, stats, and new
// subcommands, loads the optional .jsoncanvas.toml config, and installs
// a logger on the command context.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "jsoncanvas",
		Short:        "jsoncanvas inspects and rewrites JSON Canvas files",
		Long:         `jsoncanvas is a CLI for JSON Canvas documents: it validates referential integrity, normalizes formatting, summarizes contents, and scaffolds new canvases.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("jsoncanvas %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+configFile+")")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newNewCmd())

	return root.ExecuteContext(ctx)
}
