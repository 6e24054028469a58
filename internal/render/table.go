package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"animesh/internal/schedule"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a user supplied output format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table or json)", s)
	}
}

var (
	titleColor   = text.Colors{text.FgCyan}
	episodeColor = text.Colors{text.FgYellow}
	timeColor    = text.Colors{text.FgGreen}
	pastColor    = text.Colors{text.FgRed}
	futureColor  = text.Colors{text.FgBlue}
)

// Renderer writes schedule results to an output stream.
type Renderer struct {
	Out   io.Writer
	Color bool
}

// Render writes res in the requested format.
func (r Renderer) Render(res *schedule.Result, format Format) error {
	switch format {
	case FormatJSON:
		return r.JSON(res)
	default:
		r.Table(res)
		return nil
	}
}

// Table prints res as a table with one row per airing.
func (r Renderer) Table(res *schedule.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{
		fmt.Sprintf("Schedule (%s)", res.Timezone.Label()),
		"Episode",
		"Time",
		"Status",
	})

	for _, row := range res.Rows {
		status := futureColor
		if row.Past {
			status = pastColor
		}
		t.AppendRow(table.Row{
			r.paint(titleColor, row.Title),
			r.paint(episodeColor, strconv.Itoa(row.Episode)),
			r.paint(timeColor, row.Time),
			r.paint(status, row.Status),
		})
	}

	if len(res.Rows) == 0 {
		t.SetCaption("No airings in this window.")
	}

	t.Render()
}

// JSON writes res as indented JSON.
func (r Renderer) JSON(res *schedule.Result) error {
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func (r Renderer) paint(c text.Colors, s string) string {
	if !r.Color {
		return s
	}
	return c.Sprint(s)
}
