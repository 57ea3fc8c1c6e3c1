package chart

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"sync"
)

const (
	svgWidth       = 320
	svgRingRadius  = 110
	svgInnerRadius = 60
	svgLegendRow   = 20
	svgContentType = "image/svg+xml"
)

// SVGRenderer draws doughnut charts as standalone SVG documents
type SVGRenderer struct{}

// NewSVGRenderer creates a new SVG chart renderer
func NewSVGRenderer() Renderer {
	return &SVGRenderer{}
}

// Render draws cfg. A series summing to zero renders an empty grey ring.
func (r *SVGRenderer) Render(cfg Config) (Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cx := float64(svgWidth) / 2
	cy := float64(svgRingRadius) + 10
	legendTop := cy + svgRingRadius + 20
	height := int(legendTop) + len(cfg.Labels)*svgLegendRow + 10

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		svgWidth, height, svgWidth, height)

	total := 0.0
	for _, v := range cfg.Data {
		if v > 0 {
			total += v
		}
	}

	if total == 0 {
		fmt.Fprintf(&buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="#e0e0e0" stroke-width="%d"/>`,
			cx, cy, float64(svgRingRadius+svgInnerRadius)/2, svgRingRadius-svgInnerRadius)
	} else {
		start := -math.Pi / 2
		for i, v := range cfg.Data {
			if v <= 0 {
				continue
			}
			sweep := v / total * 2 * math.Pi
			writeSlice(&buf, cx, cy, start, sweep, cfg.Colors[i], cfg.BorderWidth)
			start += sweep
		}
	}

	for i, label := range cfg.Labels {
		y := legendTop + float64(i*svgLegendRow)
		fmt.Fprintf(&buf, `<rect x="20" y="%.2f" width="12" height="12" fill="%s"/>`, y-10, html.EscapeString(cfg.Colors[i]))
		fmt.Fprintf(&buf, `<text x="40" y="%.2f" font-family="sans-serif" font-size="12">%s</text>`, y, html.EscapeString(label))
	}

	buf.WriteString(`</svg>`)

	return &svgChart{content: buf.Bytes()}, nil
}

func writeSlice(buf *bytes.Buffer, cx, cy, start, sweep float64, color string, border float64) {
	// a full ring cannot be drawn as a single arc
	if sweep >= 2*math.Pi-1e-9 {
		fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%d"/>`,
			cx, cy, float64(svgRingRadius+svgInnerRadius)/2, html.EscapeString(color), svgRingRadius-svgInnerRadius)
		return
	}

	end := start + sweep
	large := 0
	if sweep > math.Pi {
		large = 1
	}

	ox1, oy1 := polar(cx, cy, svgRingRadius, start)
	ox2, oy2 := polar(cx, cy, svgRingRadius, end)
	ix1, iy1 := polar(cx, cy, svgInnerRadius, end)
	ix2, iy2 := polar(cx, cy, svgInnerRadius, start)

	fmt.Fprintf(buf,
		`<path d="M %.2f %.2f A %d %d 0 %d 1 %.2f %.2f L %.2f %.2f A %d %d 0 %d 0 %.2f %.2f Z" fill="%s" stroke="#fff" stroke-width="%.1f"/>`,
		ox1, oy1, svgRingRadius, svgRingRadius, large, ox2, oy2,
		ix1, iy1, svgInnerRadius, svgInnerRadius, large, ix2, iy2,
		html.EscapeString(color), border)
}

func polar(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}

type svgChart struct {
	mu        sync.RWMutex
	content   []byte
	destroyed bool
}

func (c *svgChart) Bytes() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.content
}

func (c *svgChart) ContentType() string {
	return svgContentType
}

// Destroy releases the rendered content
func (c *svgChart) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = nil
	c.destroyed = true
}

func (c *svgChart) Destroyed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.destroyed
}
