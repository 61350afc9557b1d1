// Package commands implements the reqtrace CLI: project scaffolding,
// document validation, listing, creation, traceability export, test
// coverage analysis, and a watch mode.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/reqtrace/config"
)

// App carries the resolved configuration and logger into every command.
type App struct {
	Config *config.Config
	Logger *slog.Logger
}

// Root builds the reqtrace root command.
func Root(version string) *cobra.Command {
	var (
		configPath string
		directory  string
		logLevel   string
	)

	app := &App{}

	cmd := &cobra.Command{
		Use:   "reqtrace",
		Short: "Requirements and specifications traceability",
		Long: `Reqtrace manages traceability between requirements and specifications
for regulated software projects.

Requirements (REQ-*) and specifications (SPEC-*) live as YAML documents
in a project directory. Reqtrace validates their cross-references,
detects circular specification dependencies, exports an Excel
traceability matrix, and checks which specification-declared unit tests
a test run actually exercised.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if directory != "" {
				cfg.Project.Dir = directory
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			app.Config = cfg
			app.Logger = newLogger(cfg.Log.Level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVarP(&directory, "directory", "d", "", "Project directory holding the documents")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newInitCommand(app),
		newValidateCommand(app),
		newListCommand(app),
		newCreateCommand(app),
		newExportCommand(app),
		newCoverageCommand(app),
		newWatchCommand(app),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("reqtrace version %s\n", version)
			},
		},
	)

	return cmd
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.NewLoader(slog.Default()).Load()
}

func newLogger(level string) *slog.Logger {
	l := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
