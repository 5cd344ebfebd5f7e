// Package cli is the presentation layer: it collects and validates
// input at the edge, renders service results, and reports errors.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
	"task-tracker/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	store   repository.Store
	service services.TaskService

	// persistent flag values, applied as config overrides
	flagBackend string
	flagStore   string
	flagLevel   string
	flagVerbose bool
}

// NewRootCommand creates the root cobra command with global flags.
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "A command-line task tracker",
		Long: `Tasks is a command-line application for tracking tasks with
categories, priorities, statuses and due dates, persisted as a JSON
snapshot file (or optionally a sqlite database).

EXAMPLES:
  tasks add "Write report" --due 2026-09-01 --category Work --priority HIGH
  tasks list                               # List all tasks
  tasks list --category work               # Filter by category (case-insensitive)
  tasks list --group-by status             # Group tasks by status
  tasks done 1b9f42a0                      # Mark a task completed (id prefix)
  tasks update 1b9f42a0 --title "New title" --due 2026-10-01
  tasks backup .bak                        # Back up the snapshot file
  tasks menu                               # Interactive task browser

CONFIGURATION:
  Priority order: command-line flags > environment variables >
  tasks.toml (working directory, then user config directory) > defaults.

    TASKS_STORAGE_BACKEND    "json" (default) or "sqlite"
    TASKS_STORAGE_PATH       Snapshot path (default: tasks.json)
    TASKS_LOG_LEVEL          debug, info, warn, error (default: info)
    TASKS_LOG_FORMAT         text, logfmt or json (default: text)
    TASKS_DEBUG              Any value enables debug printing`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if root.store != nil {
				root.store.Close()
			}
		},
	}

	flags := root.cmd.PersistentFlags()
	flags.StringVar(&root.flagBackend, "backend", "", "storage backend (json or sqlite)")
	flags.StringVar(&root.flagStore, "store", "", "path of the snapshot file")
	flags.StringVar(&root.flagLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVarP(&root.flagVerbose, "verbose", "v", false, "enable verbose output")

	root.cmd.AddCommand(
		newAddCommand(root),
		newListCommand(root),
		newGetCommand(root),
		newUpdateCommand(root),
	)
	root.cmd.AddCommand(newSetCommands(root)...)
	root.cmd.AddCommand(
		newDeleteCommand(root),
		newBackupCommand(root),
		newInfoCommand(root),
		newMenuCommand(root),
		newDemoCommand(root),
	)

	return root
}

// initialize loads configuration, opens the store and builds the
// service. A store that fails to load is reported by the service
// itself, which starts empty; only an unusable backend is fatal here.
func (r *RootCommand) initialize(cmd *cobra.Command) error {
	overrides := &config.ConfigOverrides{}
	if cmd.Flags().Changed("backend") {
		overrides.StorageBackend = &r.flagBackend
	}
	if cmd.Flags().Changed("store") {
		overrides.StoragePath = &r.flagStore
	}
	if cmd.Flags().Changed("log-level") {
		overrides.LogLevel = &r.flagLevel
	}
	if cmd.Flags().Changed("verbose") {
		overrides.Verbose = &r.flagVerbose
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg

	level := cfg.Logging.Level
	if cfg.Application.Verbose || logging.DebugEnabled() {
		level = "debug"
	}
	logger := logging.NewConsoleLoggerFromConfig(level, cfg.Logging.Format, cfg.Logging.Timestamps)

	store, err := config.CreateStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	logging.Debugf("using %s store at %s\n", cfg.Storage.Backend, store.Path())
	r.store = store
	r.service = services.NewTaskService(store, logger)

	return nil
}

// Service returns the task service built for this invocation.
func (r *RootCommand) Service() services.TaskService {
	return r.service
}

// Execute runs the root command with the process arguments.
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Run executes the CLI and exits non-zero on error.
func Run() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
