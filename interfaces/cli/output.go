package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"eventdeck/application/queries"
	"eventdeck/domain/core/entities"
	"eventdeck/pkg/utils"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printEventTable writes events as an aligned text table.
func printEventTable(w io.Writer, views []queries.EventView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tSTARTS\tCREATED BY\tCATEGORIES")
	for _, v := range views {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			v.Title,
			v.Location,
			utils.FormatRFC3339(v.StartTime),
			v.CreatedByName,
			strings.Join(v.CategoryNames, ", "),
		)
	}
	return tw.Flush()
}

// printEventDetail writes a single event in long form.
func printEventDetail(w io.Writer, v *queries.EventView) {
	fmt.Fprintf(w, "ID:          %d\n", v.ID)
	fmt.Fprintf(w, "Title:       %s\n", v.Title)
	fmt.Fprintf(w, "Description: %s\n", v.Description)
	fmt.Fprintf(w, "Location:    %s\n", v.Location)
	fmt.Fprintf(w, "Starts:      %s\n", utils.FormatRFC3339(v.StartTime))
	fmt.Fprintf(w, "Ends:        %s\n", utils.FormatRFC3339(v.EndTime))
	fmt.Fprintf(w, "Created by:  %s\n", v.CreatedByName)
	fmt.Fprintf(w, "Categories:  %s\n", strings.Join(v.CategoryNames, ", "))
	if v.Image != "" {
		fmt.Fprintf(w, "Image:       %s\n", v.Image)
	}
}

// printCategoryTable writes categories as an aligned text table.
func printCategoryTable(w io.Writer, categories []entities.Category) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Name)
	}
	return tw.Flush()
}

// printUserTable writes users as an aligned text table.
func printUserTable(w io.Writer, users []entities.User) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\n", u.ID, u.Name)
	}
	return tw.Flush()
}
