package render

import (
	"encoding/json"
	"io"

	"github.com/isseis/go-ip-sec-score/internal/scoring"
)

// Report is the JSON document produced by JSONRenderer
type Report struct {
	Categories []CategoryReport `json:"categories"`
	Total      TotalReport      `json:"total"`
}

// CategoryReport is one category of a Report
type CategoryReport struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Score float64          `json:"score"`
	Risk  scoring.RiskBand `json:"risk"`
	Flags []FlagReport     `json:"flags"`
}

// FlagReport is one practice of a CategoryReport
type FlagReport struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// TotalReport is the aggregate score of a Report
type TotalReport struct {
	Score float64          `json:"score"`
	Max   float64          `json:"max"`
	Risk  scoring.RiskBand `json:"risk"`
}

// JSONRenderer writes a machine readable report
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// NewReport builds the JSON document for a board
func NewReport(b scoring.Board) Report {
	summary := scoring.Evaluate(b)
	report := Report{
		Categories: make([]CategoryReport, 0, len(summary.Categories)),
		Total: TotalReport{
			Score: summary.Total,
			Max:   scoring.MaxTotal,
			Risk:  summary.TotalRisk,
		},
	}
	for _, result := range summary.Categories {
		cr := CategoryReport{
			ID:    result.State.Category.String(),
			Title: result.State.Category.Title(),
			Score: result.Score,
			Risk:  result.Risk,
			Flags: make([]FlagReport, 0, len(result.State.Flags)),
		}
		for _, fs := range result.State.Flags {
			cr.Flags = append(cr.Flags, FlagReport{
				ID:      fs.Flag.String(),
				Label:   fs.Flag.Label(),
				Enabled: fs.Enabled,
			})
		}
		report.Categories = append(report.Categories, cr)
	}
	return report
}

// Render writes the board as indented JSON
func (r *JSONRenderer) Render(w io.Writer, b scoring.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(b))
}
