package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-ip-sec-score/internal/color"
	"github.com/isseis/go-ip-sec-score/internal/scoring"
)

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		want    Renderer
		wantErr bool
	}{
		{"", &TableRenderer{}, false},
		{"table", &TableRenderer{}, false},
		{"JSON", &JSONRenderer{}, false},
		{"yaml", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := New(tt.format, Options{})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestBandColor(t *testing.T) {
	assert.Equal(t, color.Red("x"), BandColor(scoring.RiskBandHigh)("x"))
	assert.Equal(t, color.Orange("x"), BandColor(scoring.RiskBandModerate)("x"))
	assert.Equal(t, color.Yellow("x"), BandColor(scoring.RiskBandLow)("x"))
	assert.Equal(t, color.Green("x"), BandColor(scoring.RiskBandSecure)("x"))
}

func TestTableRenderer_Plain(t *testing.T) {
	b := scoring.NewBoard().Toggle(scoring.Communication, scoring.UseOSSMessenger)

	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer(Options{}).Render(&buf, b))
	out := buf.String()

	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, "IP Security Score Calculator")
	for _, c := range scoring.Categories() {
		assert.Contains(t, out, c.Title())
	}
	for _, f := range scoring.AllFlags() {
		assert.Contains(t, out, f.Label())
	}
	assert.Contains(t, out, "0.40")
	assert.Contains(t, out, checkedBox)
	assert.Contains(t, out, "Total Security Score: 1.65 / 5.00 (Moderate Risk)")
	assert.Contains(t, out, "Score ranges: ≤ 1: High Risk  ≤ 2: Moderate Risk  ≤ 3: Low Risk  > 3: Secure")
	assert.Equal(t, 1, strings.Count(out, checkedBox))
}

func TestTableRenderer_Colored(t *testing.T) {
	var buf bytes.Buffer
	r := NewTableRenderer(Options{Palette: color.NewPalette(true)})
	require.NoError(t, r.Render(&buf, scoring.NewBoard()))

	out := buf.String()
	assert.Contains(t, out, color.Red("0.00"))
	assert.Contains(t, out, color.Orange("1.25"))
	assert.Contains(t, out, color.Green("> 3: Secure"))
	assert.Contains(t, out, color.Gray(uncheckedBox))
}

func TestJSONRenderer(t *testing.T) {
	b := scoring.NewBoard().
		Set(scoring.BuildOwnHardware, true).
		Set(scoring.UseOSSHardware, true)

	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(&buf, b))

	var report struct {
		Categories []struct {
			ID    string  `json:"id"`
			Title string  `json:"title"`
			Score float64 `json:"score"`
			Risk  string  `json:"risk"`
			Flags []struct {
				ID      string `json:"id"`
				Enabled bool   `json:"enabled"`
			} `json:"flags"`
		} `json:"categories"`
		Total struct {
			Score float64 `json:"score"`
			Max   float64 `json:"max"`
			Risk  string  `json:"risk"`
		} `json:"total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	require.Len(t, report.Categories, 5)
	hw := report.Categories[4]
	assert.Equal(t, "hardware", hw.ID)
	assert.Equal(t, "Hardware Security", hw.Title)
	assert.InDelta(t, 1.0, hw.Score, 1e-9)
	assert.Equal(t, "High Risk", hw.Risk)
	require.Len(t, hw.Flags, 2)
	assert.Equal(t, "buildOwnHardware", hw.Flags[0].ID)
	assert.True(t, hw.Flags[0].Enabled)

	assert.InDelta(t, 2.25, report.Total.Score, 1e-9)
	assert.InDelta(t, 5.0, report.Total.Max, 1e-9)
	assert.Equal(t, "Low Risk", report.Total.Risk)
}
