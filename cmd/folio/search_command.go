package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/search"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Rank papers by title similarity to a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := ctx.ensureArchive()
			if err != nil {
				return err
			}

			idx := search.NewIndex(arc)
			results := idx.Query(strings.Join(args, " "), limit)

			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No matching papers")
				return nil
			}

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{
					result.PaperID,
					result.Title,
					strconv.FormatFloat(result.Score, 'f', 3, 64),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Score"}, rows, 2))
			statusLine(out, "%d of %d papers matched", len(results), idx.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results (0 for all)")
	return cmd
}
