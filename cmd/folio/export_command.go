package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the archive snapshot to SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			arc, err := ctx.ensureArchive()
			if err != nil {
				return err
			}

			target := cfg.Paths.ExportDB
			if path := strings.TrimSpace(dbPath); path != "" {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return fmt.Errorf("resolve database path: %w", err)
				}
				target = expanded
			}

			store, err := export.Open(target)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Replace(cmd.Context(), arc); err != nil {
				return err
			}
			sum, err := store.Summary(cmd.Context())
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, sum); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				rows := [][]string{
					{"Volumes", strconv.Itoa(sum.Volumes)},
					{"Papers", strconv.Itoa(sum.Papers)},
					{"Venue links", strconv.Itoa(sum.Venues)},
					{"SIG links", strconv.Itoa(sum.SIGs)},
					{"Source files", strconv.Itoa(sum.SourceFiles)},
				}
				fmt.Fprintln(out, renderTable([]string{"Table", "Rows"}, rows, 1))
				statusLine(out, "exported to %s (run %s)", target, sum.RunID)
			}

			if _, tracker, err := ctx.ensureLogger(); err == nil && tracker.SawErrors() {
				return errors.New("export finished with logged errors; check the log output")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Destination database path (defaults to the configured export database)")
	return cmd
}
