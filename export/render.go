// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Default image sizes in pixels.
const (
	DefaultChartWidth    = 900
	DefaultChartHeight   = 500
	DefaultDiagramWidth  = 640
	DefaultDiagramHeight = 420

	minImageSide = 100
)

// RenderOption configures RenderChart and RenderStackDiagram.
type RenderOption func(*renderOptions)

type renderOptions struct {
	width, height int
	title         string
	fontSize      float64
}

// WithSize sets the output image size. It panics if either side is below
// 100 px.
func WithSize(width, height int) RenderOption {
	if width < minImageSide || height < minImageSide {
		panic(fmt.Sprintf("export: WithSize(%d, %d): sides must be ≥ %d px", width, height, minImageSide))
	}

	return func(o *renderOptions) { o.width, o.height = width, height }
}

// WithTitle draws a title above the plot.
func WithTitle(title string) RenderOption {
	return func(o *renderOptions) { o.title = title }
}

func gatherRenderOptions(w, h int, user ...RenderOption) renderOptions {
	o := renderOptions{width: w, height: h, fontSize: 12}
	for _, set := range user {
		set(&o)
	}

	return o
}

// The regular Go font is parsed once per process and shared by all faces.
var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// canvas opens a white context with the shared font at size pt.
func canvas(o renderOptions) (*gg.Context, error) {
	src, err := fontSource()
	if err != nil {
		return nil, fmt.Errorf("export: load font: %w", err)
	}
	dc := gg.NewContext(o.width, o.height)
	dc.ClearWithColor(gg.White)
	dc.SetFont(src.Face(o.fontSize))

	return dc, nil
}

func encode(dc *gg.Context, w io.Writer) error {
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}

	return nil
}

// materialColor falls back to mid gray for materials without a display color.
func materialColor(hex string) gg.RGBA {
	if hex == "" {
		return gg.Hex("#9e9e9e")
	}

	return gg.Hex(hex)
}
