package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/activity-recap/internal"
	"github.com/iksnae/activity-recap/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	dbPath     string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"

	// cfg is loaded before every subcommand runs
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "activity-recap",
	Short: "Turn captured activity sessions into structured recaps",
	Long: `A CLI tool that stores captured browsing and work sessions and turns them
into recaps: a title, summary, insights, takeaways, action items, related
topics, a timeline and tags.

Recaps are tailored to a profile (student, developer, support, researcher
or custom) and can be rendered in the terminal, exported to Markdown, HTML,
JSON, YAML or JSONL, or served over HTTP.

Quick Start:
  activity-recap import session.json            # Store a recorder export
  activity-recap list                           # List stored sessions
  activity-recap generate <session-id>          # Render a recap
  activity-recap export --format html --out dir # Export every recap
  activity-recap delete <session-id>            # Remove a session
  activity-recap serve                          # Run the HTTP service`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbPath != "" {
			loaded.DBPath = dbPath
		}
		cfg = loaded

		level, err := internal.ParseLogLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		internal.SetLogLevel(level)
		internal.SetVerbose(verbose)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStorage opens the configured event store. The returned func closes it.
func openStorage() (*internal.Storage, func(), error) {
	db, err := internal.OpenDatabase(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open event store: %w", err)
	}
	closeFn := func() {
		if err := db.Close(); err != nil {
			internal.LogWarn("Failed to close event store: %v", err)
		}
	}
	return internal.NewStorage(db), closeFn, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/activity-recap/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Event store database file (overrides db_path)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
