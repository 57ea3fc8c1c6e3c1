package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDoughnutConfig(t *testing.T) {
	cfg := NewDoughnutConfig([]string{"Food"}, []float64{1}, []string{"#FF6384"})

	assert.Equal(t, TypeDoughnut, cfg.Type)
	assert.Equal(t, 1.0, cfg.BorderWidth)
	assert.Equal(t, "bottom", cfg.LegendPosition)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  error
	}{
		{"empty", NewDoughnutConfig(nil, nil, nil), ErrEmptyConfig},
		{"short data", NewDoughnutConfig([]string{"a", "b"}, []float64{1}, []string{"#000", "#111"}), ErrSeriesMismatch},
		{"short colors", NewDoughnutConfig([]string{"a"}, []float64{1}, nil), ErrSeriesMismatch},
		{"bar", Config{Type: "bar", Labels: []string{"a"}, Data: []float64{1}, Colors: []string{"#000"}}, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), tt.err)
		})
	}
}

func TestSVGRenderer_Render(t *testing.T) {
	r := NewSVGRenderer()

	c, err := r.Render(NewDoughnutConfig(
		[]string{"Food", "Transport", "Other"},
		[]float64{250, 0, 50},
		[]string{"#FF6384", "#36A2EB", "#C9CBCF"},
	))
	require.NoError(t, err)

	svg := string(c.Bytes())
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 2, strings.Count(svg, "<path"))
	assert.Contains(t, svg, `fill="#FF6384"`)
	assert.Contains(t, svg, ">Transport</text>")
	assert.Equal(t, "image/svg+xml", c.ContentType())
}

func TestSVGRenderer_SingleSliceDrawsRing(t *testing.T) {
	c, err := NewSVGRenderer().Render(NewDoughnutConfig([]string{"Food", "Other"}, []float64{10, 0}, []string{"#FF6384", "#C9CBCF"}))
	require.NoError(t, err)

	svg := string(c.Bytes())
	assert.NotContains(t, svg, "<path")
	assert.Contains(t, svg, `stroke="#FF6384"`)
}

func TestSVGRenderer_ZeroSeries(t *testing.T) {
	c, err := NewSVGRenderer().Render(NewDoughnutConfig([]string{"Food"}, []float64{0}, []string{"#FF6384"}))
	require.NoError(t, err)
	assert.Contains(t, string(c.Bytes()), `stroke="#e0e0e0"`)
}

func TestSVGRenderer_EscapesLabels(t *testing.T) {
	c, err := NewSVGRenderer().Render(NewDoughnutConfig([]string{"<b>&"}, []float64{1}, []string{"#000"}))
	require.NoError(t, err)
	assert.Contains(t, string(c.Bytes()), "&lt;b&gt;&amp;")
}

func TestSVGChart_Destroy(t *testing.T) {
	c, err := NewSVGRenderer().Render(NewDoughnutConfig([]string{"Food"}, []float64{1}, []string{"#000"}))
	require.NoError(t, err)

	assert.False(t, c.Destroyed())
	c.Destroy()
	assert.True(t, c.Destroyed())
	assert.Nil(t, c.Bytes())
}

func TestSVGRenderer_InvalidConfig(t *testing.T) {
	_, err := NewSVGRenderer().Render(Config{})
	assert.Error(t, err)
}
