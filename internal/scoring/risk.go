package scoring

import "fmt"

// RiskBand is the qualitative rating derived from a score
type RiskBand int

const (
	// RiskBandHigh is assigned to scores up to 1
	RiskBandHigh RiskBand = iota
	// RiskBandModerate is assigned to scores above 1 and up to 2
	RiskBandModerate
	// RiskBandLow is assigned to scores above 2 and up to 3
	RiskBandLow
	// RiskBandSecure is assigned to scores above 3
	RiskBandSecure
)

// Upper bounds (inclusive) of the banded score ranges.
const (
	highRiskCeiling     = 1.0
	moderateRiskCeiling = 2.0
	lowRiskCeiling      = 3.0
)

// String returns the display name of the band
func (r RiskBand) String() string {
	switch r {
	case RiskBandHigh:
		return "High Risk"
	case RiskBandModerate:
		return "Moderate Risk"
	case RiskBandLow:
		return "Low Risk"
	case RiskBandSecure:
		return "Secure"
	default:
		return fmt.Sprintf("RiskBand(%d)", int(r))
	}
}

// MarshalText implements encoding.TextMarshaler so bands serialize by name
func (r RiskBand) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RiskBands returns all bands from highest to lowest risk
func RiskBands() []RiskBand {
	return []RiskBand{RiskBandHigh, RiskBandModerate, RiskBandLow, RiskBandSecure}
}

// Classify maps a score to its risk band.
// The same thresholds apply to a single category score and to the total;
// callers pass whichever value they want rated.
func Classify(score float64) RiskBand {
	switch {
	case score <= highRiskCeiling:
		return RiskBandHigh
	case score <= moderateRiskCeiling:
		return RiskBandModerate
	case score <= lowRiskCeiling:
		return RiskBandLow
	default:
		return RiskBandSecure
	}
}

// CategoryResult is the evaluated score of one category
type CategoryResult struct {
	State CategoryState
	Score float64
	Risk  RiskBand
}

// Summary is the fully evaluated board handed to renderers
type Summary struct {
	Categories []CategoryResult
	Total      float64
	TotalRisk  RiskBand
}

// Evaluate scores every category of the board and the total
func Evaluate(b Board) Summary {
	summary := Summary{Categories: make([]CategoryResult, 0, numCategories)}
	for _, c := range Categories() {
		score := b.Score(c)
		summary.Categories = append(summary.Categories, CategoryResult{
			State: b.State(c),
			Score: score,
			Risk:  Classify(score),
		})
		summary.Total += score
	}
	summary.TotalRisk = Classify(summary.Total)
	return summary
}
