package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mediashelf/internal/catalog"
)

// printRows renders a table on terminals and tab-separated lines otherwise,
// so output stays pipeable.
func printRows(cmd *cobra.Command, headers []string, rows [][]string, aligns []columnAlignment) {
	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprintln(out, renderTable(headers, rows, aligns))
		return
	}
	for _, row := range rows {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
}

// entityFieldRows lists an entity's populated fields as label/value pairs.
func entityFieldRows(entity catalog.Entity) [][]string {
	var rows [][]string
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			rows = append(rows, []string{label, value})
		}
	}
	addInt := func(label string, value *int) {
		if value != nil {
			rows = append(rows, []string{label, strconv.Itoa(*value)})
		}
	}

	add("Title", entity.EntityTitle())
	switch v := entity.(type) {
	case *catalog.Book:
		add("Authors", strings.Join(v.Authors, ", "))
		add("Publisher", v.Publisher)
		add("Published", v.PublishDate)
		add("Genres", strings.Join(v.Genres, ", "))
		add("Format", v.Format)
		addInt("Pages", v.Pages)
		add("ISBN", v.ISBN)
	case *catalog.Movie:
		add("Studios", strings.Join(v.Studios, ", "))
		add("Genres", strings.Join(v.Genres, ", "))
		add("Format", v.Format)
		addInt("Runtime", v.Runtime)
		add("Released", v.ReleaseDate)
		add("Rating", v.Rating)
		if v.IsTVSeries {
			add("TV series", "yes")
		}
		add("Overview", v.Overview)
		add("Barcode", v.Barcode)
	case *catalog.Game:
		add("Studios", strings.Join(v.Studios, ", "))
		add("Genres", strings.Join(v.Genres, ", "))
		add("Platform", v.Platform)
		add("Format", v.Format)
		add("Released", v.ReleaseDate)
		add("Barcode", v.Barcode)
	case *catalog.Music:
		add("Artist", v.Artist)
		add("Genres", strings.Join(v.Genres, ", "))
		add("Format", v.Format)
		addInt("Tracks", v.Tracks)
		add("Released", v.ReleaseDate)
		add("Barcode", v.Barcode)
	}
	if id := entity.EntityID(); id != "" {
		rows = append(rows, []string{"ID", id})
	}
	return rows
}

// entitySummaryRow is the one-line listing form: id, title, format, detail.
func entitySummaryRow(entity catalog.Entity) []string {
	var format, detail string
	switch v := entity.(type) {
	case *catalog.Book:
		format = v.Format
		detail = strings.Join(v.Authors, ", ")
	case *catalog.Movie:
		format = v.Format
		detail = v.ReleaseDate
	case *catalog.Game:
		format = v.Format
		detail = v.Platform
	case *catalog.Music:
		format = v.Format
		detail = v.Artist
	}
	return []string{entity.EntityID(), entity.EntityTitle(), format, detail}
}
