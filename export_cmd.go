// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-plan/db"
	"github.com/danielhkuo/quickly-plan/export"
	"github.com/danielhkuo/quickly-plan/store"
	"github.com/danielhkuo/quickly-plan/tally"
)

var exportOpts struct {
	format       string
	databaseURL  string
	databaseType string
}

func init() {
	exportCmd.Flags().StringVarP(&exportOpts.format, "format", "f", export.FormatText, "Output format (csv or text)")
	exportCmd.Flags().StringVarP(&exportOpts.databaseURL, "database-url", "d", os.Getenv("DATABASE_URL"), "Database URL")
	exportCmd.Flags().StringVarP(&exportOpts.databaseType, "database-type", "t", envOr("DATABASE_TYPE", db.TypeSQLite), "Database type (sqlite or postgres)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <poll-id>",
	Short: "Print a poll's results to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOpts.databaseURL == "" {
			return fmt.Errorf("database URL required (use -d or DATABASE_URL env)")
		}
		dbConn, err := db.Open(exportOpts.databaseType, exportOpts.databaseURL)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		return writeExport(cmd.Context(), cmd.OutOrStdout(), dbConn, args[0], exportOpts.format, time.Now())
	},
}

func writeExport(ctx context.Context, w io.Writer, q store.Queryer, pollID, format string, now time.Time) error {
	if format != export.FormatCSV && format != export.FormatText {
		return fmt.Errorf("unsupported export format %q", format)
	}

	poll, err := store.GetPollByID(ctx, q, pollID)
	if err != nil {
		return err
	}
	data, err := store.LoadPollData(ctx, q, poll)
	if err != nil {
		return err
	}

	results := tally.Summarize(data.Poll, data.Options, data.Votes)
	if format == export.FormatCSV {
		return export.WriteCSV(w, results)
	}
	return export.WriteText(w, data.Poll, results, now)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
