package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/isseis/go-ip-sec-score/internal/color"
	"github.com/isseis/go-ip-sec-score/internal/scoring"
)

const (
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
)

// TableRenderer prints one row per practice followed by the total and the band legend
type TableRenderer struct {
	palette color.Palette
}

// NewTableRenderer creates a TableRenderer
func NewTableRenderer(opts Options) *TableRenderer {
	return &TableRenderer{palette: opts.Palette}
}

// Render writes the board as a table
func (r *TableRenderer) Render(w io.Writer, b scoring.Board) error {
	summary := scoring.Evaluate(b)

	var buf strings.Builder
	fmt.Fprintln(&buf, r.palette.Use(color.Bold)("IP Security Score Calculator"))

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Category", "Practice", "Enabled", "Score", "Risk"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	number := 0
	for _, result := range summary.Categories {
		paint := r.palette.Use(BandColor(result.Risk))
		for i, fs := range result.State.Flags {
			number++
			row := []string{strconv.Itoa(number), "", fs.Flag.Label(), r.checkbox(fs.Enabled), "", ""}
			if i == 0 {
				row[1] = result.State.Category.Title()
				row[4] = paint(FormatScore(result.Score))
				row[5] = paint(result.Risk.String())
			}
			table.Append(row)
		}
	}
	table.Render()

	paint := r.palette.Use(BandColor(summary.TotalRisk))
	fmt.Fprintf(&buf, "Total Security Score: %s / %s (%s)\n",
		paint(FormatScore(summary.Total)), FormatScore(scoring.MaxTotal), paint(summary.TotalRisk.String()))
	fmt.Fprintln(&buf, r.legend())

	_, err := io.WriteString(w, buf.String())
	return err
}

func (r *TableRenderer) legend() string {
	bounds := map[scoring.RiskBand]string{
		scoring.RiskBandHigh:     "≤ 1",
		scoring.RiskBandModerate: "≤ 2",
		scoring.RiskBandLow:      "≤ 3",
		scoring.RiskBandSecure:   "> 3",
	}
	parts := make([]string, 0, len(bounds))
	for _, band := range scoring.RiskBands() {
		parts = append(parts, r.palette.Use(BandColor(band))(bounds[band]+": "+band.String()))
	}
	return "Score ranges: " + strings.Join(parts, "  ")
}

// checkbox dims unanswered practices so the enabled ones stand out
func (r *TableRenderer) checkbox(enabled bool) string {
	if enabled {
		return checkedBox
	}
	return r.palette.Use(color.Gray)(uncheckedBox)
}
