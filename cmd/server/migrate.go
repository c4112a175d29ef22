package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/persona-writer-agent/internal/config"
	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/store"
)

func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the persona and blog_post tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log, err := logger.New(cfg.Log.Mode)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := store.Open(cfg.DB.Driver, cfg.DB.DSN, log)
			if err != nil {
				return err
			}
			if err := store.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			log.Info("Migration complete", "driver", cfg.DB.Driver)
			return nil
		},
	}
}
