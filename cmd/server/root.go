package main

import (
	"fmt"

	"github.com/liftlog/internal/config"
	"github.com/liftlog/internal/db"
	"github.com/liftlog/internal/logging"
	"github.com/liftlog/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	databasePath string
}

// newRootCmd 构建命令树；不带子命令时等同于 serve
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "liftlog",
		Short: "Personal workout tracker",
		Long: `Liftlog keeps workouts, their exercises and the weights you lifted.

QUICK START:

  $ liftlog                          # Start the HTTP API (same as 'serve')
  $ liftlog workouts                 # List saved workouts
  $ liftlog recent                   # Latest session per workout
  $ liftlog export json -o dump.json # Write a full snapshot
  $ liftlog import dump.json         # Replace everything from a snapshot

CONFIGURATION:

  Settings come from CONFIG_FILE (YAML) and are overridden by PORT,
  LISTEN_ADDR, DATABASE_PATH, GIN_MODE, LOG_LEVEL, LOG_FORMAT and
  BACKUP_PATH. The --db flag wins over both.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.databasePath, "db", "", "SQLite database path (overrides DATABASE_PATH)")

	cmd.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newWorkoutsCmd(opts),
		newRecentCmd(opts),
	)
	return cmd
}

// runtime 是一次命令执行期间共享的依赖
type runtime struct {
	cfg    config.AppConfig
	logger *zap.Logger
	store  *service.Store
	close  func()
}

func (o *rootOptions) loadConfig() (config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if o.databasePath != "" {
		cfg.DatabasePath = o.databasePath
	}
	return cfg, nil
}

func (o *rootOptions) open() (*runtime, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Open(cfg.DatabasePath, logging.Gorm(logger))
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store := service.NewStore(gdb,
		service.WithLogger(logger),
		service.WithSnapshotWriter(service.NewSnapshotWriter(cfg.BackupPath)),
	)

	return &runtime{
		cfg:    cfg,
		logger: logger,
		store:  store,
		close: func() {
			if err := db.Close(gdb); err != nil {
				logger.Warn("failed to close database", zap.Error(err))
			}
			_ = logger.Sync()
		},
	}, nil
}
