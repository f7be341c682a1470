package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type venueView struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Letter  string `json:"letter,omitempty"`
	Volumes int    `json:"volumes"`
}

func newVenuesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "List the venue registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := ctx.ensureArchive()
			if err != nil {
				return err
			}

			idx := arc.Venues()
			views := make([]venueView, 0)
			for _, code := range idx.Codes() {
				venue, _ := idx.ByCode(code)
				views = append(views, venueView{
					Code:    code,
					Name:    venue.Name,
					Letter:  venue.OldStyleLetter,
					Volumes: len(idx.VolumeIDs(code)),
				})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "Venue registry is empty")
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{view.Code, view.Name, view.Letter, strconv.Itoa(view.Volumes)})
			}
			fmt.Fprintln(out, renderTable([]string{"Code", "Name", "Letter", "Volumes"}, rows, 3))
			return nil
		},
	}
}

type sigView struct {
	ShortName string `json:"shortname"`
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
	Meetings  int    `json:"meetings"`
}

func newSIGsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sigs",
		Short: "List the special interest group registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := ctx.ensureArchive()
			if err != nil {
				return err
			}

			idx := arc.SIGs()
			views := make([]sigView, 0)
			for _, short := range idx.ShortNames() {
				sig, _ := idx.ByShortName(short)
				views = append(views, sigView{
					ShortName: short,
					Name:      sig.Name,
					URL:       sig.URL,
					Meetings:  len(idx.MeetingIDs(short)),
				})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "SIG registry is empty")
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{view.ShortName, view.Name, view.URL, strconv.Itoa(view.Meetings)})
			}
			fmt.Fprintln(out, renderTable([]string{"Short Name", "Name", "URL", "Meetings"}, rows, 3))
			return nil
		},
	}
}
