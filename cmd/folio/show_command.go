package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/paper"
	"folio/internal/people"
)

type paperView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Pages string `json:"pages,omitempty"`
	URL   string `json:"url,omitempty"`
}

type volumeDetail struct {
	volumeView
	Attributes map[string]any `json:"attributes"`
	Members    []paperView    `json:"members"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <volume-id>",
		Short: "Show one volume and its papers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := ctx.ensureArchive()
			if err != nil {
				return err
			}

			id := strings.TrimSpace(args[0])
			vol, ok := arc.Volume(id)
			if !ok {
				return fmt.Errorf("volume %s not found", id)
			}

			members := make([]paperView, 0, len(vol.Papers()))
			for _, p := range vol.Papers() {
				title, _ := p.Attrib.GetString("title")
				pages, _ := p.Attrib.GetString("pages")
				url, _ := p.Attrib.GetString("url")
				members = append(members, paperView{
					ID:    p.FullID(),
					Title: title,
					Pages: pages,
					URL:   url,
				})
			}

			if ctx.jsonOutput() {
				attributes := make(map[string]any, vol.Attrib.Len())
				for _, key := range vol.Attrib.Keys() {
					attributes[key] = vol.Attrib.Get(key)
				}
				return writeJSON(cmd, volumeDetail{
					volumeView: newVolumeView(vol),
					Attributes: attributes,
					Members:    members,
				})
			}

			out := cmd.OutOrStdout()
			title, _ := vol.Attrib.GetString("title")
			statusLine(out, "%s: %s", vol.FullID(), title)

			attrRows := make([][]string, 0, vol.Attrib.Len())
			for _, key := range vol.Attrib.Keys() {
				if strings.HasPrefix(key, "xml_") {
					continue
				}
				attrRows = append(attrRows, []string{key, formatAttrValue(vol.Attrib.Get(key))})
			}
			fmt.Fprintln(out, renderTable([]string{"Attribute", "Value"}, attrRows))

			if len(members) == 0 {
				fmt.Fprintln(out, "No papers recorded")
				return nil
			}
			paperRows := make([][]string, 0, len(members))
			for _, member := range members {
				paperRows = append(paperRows, []string{member.ID, member.Title, member.Pages})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Pages"}, paperRows))
			return nil
		},
	}
	return cmd
}

// formatAttrValue flattens an attribute value for table display.
func formatAttrValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	case people.Name:
		return v.Full()
	case []people.Name:
		names := make([]string, 0, len(v))
		for _, name := range v {
			names = append(names, name.Full())
		}
		return strings.Join(names, ", ")
	case paper.Attachment:
		return v.Filename
	case []paper.Attachment:
		files := make([]string, 0, len(v))
		for _, att := range v {
			files = append(files, att.Filename)
		}
		return strings.Join(files, " ")
	case []paper.Correction:
		ids := make([]string, 0, len(v))
		for _, corr := range v {
			ids = append(ids, corr.ID)
		}
		return strings.Join(ids, " ")
	default:
		return fmt.Sprintf("%v", value)
	}
}
