// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-plan/cliparse"
	"github.com/danielhkuo/quickly-plan/db"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:                "migrate [flags]",
	Short:              "Create the database schema and exit",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliparse.ParseFlags(args)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(newLogHandler(os.Stderr, cfg.LogFormat)))

		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			return err
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		return nil
	},
}
