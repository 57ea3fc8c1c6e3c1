package chart

import "errors"

// TypeDoughnut is the only chart type the dashboard draws
const TypeDoughnut = "doughnut"

var (
	ErrEmptyConfig     = errors.New("chart config has no labels")
	ErrSeriesMismatch  = errors.New("chart labels, data and colors differ in length")
	ErrUnsupportedType = errors.New("unsupported chart type")
)

// Config describes one chart instance
type Config struct {
	Type           string
	Labels         []string
	Data           []float64
	Colors         []string
	BorderWidth    float64
	LegendPosition string
}

// NewDoughnutConfig builds the dashboard's doughnut configuration
func NewDoughnutConfig(labels []string, data []float64, colors []string) Config {
	return Config{
		Type:           TypeDoughnut,
		Labels:         labels,
		Data:           data,
		Colors:         colors,
		BorderWidth:    1,
		LegendPosition: "bottom",
	}
}

// Validate checks that the series line up
func (c Config) Validate() error {
	if c.Type != TypeDoughnut {
		return ErrUnsupportedType
	}
	if len(c.Labels) == 0 {
		return ErrEmptyConfig
	}
	if len(c.Data) != len(c.Labels) || len(c.Colors) != len(c.Labels) {
		return ErrSeriesMismatch
	}
	return nil
}

// Chart is a rendered chart instance. It must be destroyed before a
// replacement is rendered.
type Chart interface {
	Bytes() []byte
	ContentType() string
	Destroy()
	Destroyed() bool
}

// Renderer turns a Config into a Chart
type Renderer interface {
	Render(cfg Config) (Chart, error)
}
