package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/biblio/internal/book"
)

// Output formats accepted by --format.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

func writeResolution(w io.Writer, res *book.Resolution, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		_, err := fmt.Fprintln(w, resolutionTable(res))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// valueWidth wraps long values such as descriptions and cover URLs.
const valueWidth = 80

func resolutionTable(res *book.Resolution) string {
	rec := res.Record
	fields := [][]string{
		{"Title", rec.Title},
		{"Subtitle", rec.Subtitle},
		{"Author", rec.Author},
		{"Publisher", rec.Publisher},
		{"Published", rec.PublicationDate},
		{"Pages", pages(rec.PageCount)},
		{"Language", rec.Language},
		{"Category", rec.Category},
		{"Edition", rec.Edition},
		{"Format", rec.Format},
		{"Audience", rec.TargetAudience},
		{"Place", strings.Join(nonEmpty(rec.City, rec.State, rec.Country), ", ")},
		{"Keywords", strings.Join(rec.Keywords, ", ")},
		{"Tags", strings.Join(rec.Tags, ", ")},
		{"Code", rec.ClassificationCode},
		{"Cover", rec.CoverURL},
		{"Description", rec.Description},
	}

	rows := make([][]string, 0, len(fields)+2)
	for _, f := range fields {
		if f[1] != "" {
			rows = append(rows, f)
		}
	}
	rows = append(rows, []string{"Provenance", res.Provenance}, []string{"Request", res.RequestID})

	out := fieldTable("Field", res.Query, rows)
	if len(res.Attempts) > 0 {
		out += "\n" + attemptTable(res.Attempts)
	}
	return out
}

// fieldTable renders two-column name/value rows under the given headers.
// Values are wrapped so descriptions stay readable in a terminal.
func fieldTable(name, value string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{name, value})
	for _, r := range rows {
		tw.AppendRow(table.Row{r[0], r[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: valueWidth},
	})
	return tw.Render()
}

// attemptTable lists every adapter call in the order it was issued, with
// durations right-aligned and rounded to the millisecond.
func attemptTable(attempts []book.Attempt) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Source", "ISBN", "Outcome", "Reason", "Duration"})
	for _, a := range attempts {
		tw.AppendRow(table.Row{a.Source, a.ISBN, a.Outcome, a.Reason, a.Duration.Round(time.Millisecond).String()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: valueWidth},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func pages(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
