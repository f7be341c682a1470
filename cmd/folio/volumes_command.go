package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/volume"
)

type volumeView struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Venues []string `json:"venues"`
	SIGs   []string `json:"sigs"`
	Papers int      `json:"papers"`
}

func newVolumeView(vol *volume.Volume) volumeView {
	title, _ := vol.Attrib.GetString("title")
	venues, _ := vol.Attrib.Get("venues").([]string)
	sigs, _ := vol.Attrib.Get("sigs").([]string)
	return volumeView{
		ID:     vol.FullID(),
		Title:  title,
		Venues: venues,
		SIGs:   sigs,
		Papers: len(vol.PaperIDs()),
	}
}

func newVolumesCommand(ctx *commandContext) *cobra.Command {
	var collection string

	cmd := &cobra.Command{
		Use:   "volumes",
		Short: "List proceedings volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := ctx.ensureArchive()
			if err != nil {
				return err
			}

			filter := strings.TrimSpace(collection)
			views := make([]volumeView, 0)
			for _, id := range arc.VolumeIDs() {
				vol, _ := arc.Volume(id)
				if filter != "" && vol.TopLevelID != filter {
					continue
				}
				views = append(views, newVolumeView(vol))
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No volumes loaded")
				return nil
			}

			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					view.ID,
					view.Title,
					strings.Join(view.Venues, " "),
					strings.Join(view.SIGs, " "),
					strconv.Itoa(view.Papers),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Venues", "SIGs", "Papers"}, rows, 4))
			statusLine(out, "%d volumes", len(views))
			return nil
		},
	}

	cmd.Flags().StringVar(&collection, "collection", "", "Only list volumes from this collection (e.g. P18)")
	return cmd
}
