package export

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/cargostow/pkg/cargo"
)

// SVGOptions configures a container's top-down packing diagram.
type SVGOptions struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	Margin     int    // Canvas margin in pixels
	ShowLabels bool   // Show item id labels
	Title      string // Optional title
}

// DefaultSVGOptions returns sensible default export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      900,
		Height:     700,
		Margin:     40,
		ShowLabels: true,
		Title:      "Container Layout",
	}
}

// RenderContainerSVG draws a top-down (X/Z plane) view of a container's
// packed items, one rectangle per item, scaled to fit the canvas.
func RenderContainerSVG(c *cargo.Container, opts SVGOptions) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("container cannot be nil")
	}
	if opts.Width <= 0 {
		opts.Width = 900
	}
	if opts.Height <= 0 {
		opts.Height = 700
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#f4f4f8")

	drawHeader(canvas, c, opts)

	plotW := opts.Width - 2*opts.Margin
	plotH := opts.Height - 2*opts.Margin
	scaleX := 1.0
	scaleZ := 1.0
	if c.Dimensions.Width > 0 {
		scaleX = float64(plotW) / c.Dimensions.Width
	}
	if c.Dimensions.Depth > 0 {
		scaleZ = float64(plotH) / c.Dimensions.Depth
	}

	canvas.Rect(opts.Margin, opts.Margin, plotW, plotH, "fill:none;stroke:#333;stroke-width:2")

	for _, item := range c.Items {
		drawItem(canvas, item, opts, scaleX, scaleZ)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawHeader(canvas *svg.SVG, c *cargo.Container, opts SVGOptions) {
	title := opts.Title
	if title == "" {
		title = "Container Layout"
	}
	canvas.Text(opts.Margin, opts.Margin/2, fmt.Sprintf("%s: %s (zone %s)", title, c.ID, c.Zone), "font-size:18px;font-family:sans-serif;fill:#222")
}

func drawItem(canvas *svg.SVG, item *cargo.Item, opts SVGOptions, scaleX, scaleZ float64) {
	if item.Position == nil {
		return
	}
	x := opts.Margin + int(item.Position.X*scaleX)
	y := opts.Margin + int(item.Position.Z*scaleZ)
	w := int(item.Dimensions.Width * scaleX)
	d := int(item.Dimensions.Depth * scaleZ)
	if w < 1 {
		w = 1
	}
	if d < 1 {
		d = 1
	}

	color := zoneColor(item.PreferredZone)
	canvas.Rect(x, y, w, d, fmt.Sprintf("fill:%s;stroke:#111;stroke-width:1;fill-opacity:0.8", color))

	if opts.ShowLabels {
		canvas.Text(x+2, y+12, item.ID, "font-size:10px;font-family:sans-serif;fill:#000")
	}
}

var zonePalette = map[string]string{
	"A": "#e07a5f",
	"B": "#81b29a",
	"C": "#f2cc8f",
}

func zoneColor(zone string) string {
	if c, ok := zonePalette[zone]; ok {
		return c
	}
	return "#3d405b"
}
