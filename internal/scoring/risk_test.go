package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score    float64
		expected RiskBand
	}{
		{0, RiskBandHigh},
		{0.5, RiskBandHigh},
		{1.0, RiskBandHigh},
		{1.01, RiskBandModerate},
		{2.0, RiskBandModerate},
		{2.5, RiskBandLow},
		{3.0, RiskBandLow},
		{3.01, RiskBandSecure},
		{5.0, RiskBandSecure},
	}

	for _, tt := range tests {
		got := Classify(tt.score)
		assert.Equal(t, tt.expected, got, "Classify(%v)", tt.score)
	}
}

func TestRiskBand_String(t *testing.T) {
	assert.Equal(t, "High Risk", RiskBandHigh.String())
	assert.Equal(t, "Moderate Risk", RiskBandModerate.String())
	assert.Equal(t, "Low Risk", RiskBandLow.String())
	assert.Equal(t, "Secure", RiskBandSecure.String())
	assert.Equal(t, "RiskBand(9)", RiskBand(9).String())
}

func TestRiskBand_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Risk RiskBand `json:"risk"`
	}{Risk: RiskBandModerate})
	require.NoError(t, err)
	assert.JSONEq(t, `{"risk":"Moderate Risk"}`, string(data))
}

func TestEvaluate(t *testing.T) {
	b := NewBoard().
		Set(UseOSSMessenger, true).
		Set(SelfHostMessenger, true).
		Set(EncryptFirstEmail, true).
		Set(SelfHostRepo, true)

	summary := Evaluate(b)

	require.Len(t, summary.Categories, len(Categories()))
	for i, c := range Categories() {
		result := summary.Categories[i]
		assert.Equal(t, c, result.State.Category)
		assert.Equal(t, b.Score(c), result.Score)
		assert.Equal(t, Classify(result.Score), result.Risk)
	}
	assert.Equal(t, b.Total(), summary.Total)
	assert.InDelta(t, 2.75, summary.Total, scoreDelta)
	assert.Equal(t, RiskBandLow, summary.TotalRisk)
}
