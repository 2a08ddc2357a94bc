// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/filmcalc/spectrum"
)

// Curve colors.
const (
	colorR = "#d62828"
	colorT = "#1d4ed8"
	colorA = "#2a9d8f"
)

type plotArea struct {
	x0, y0, x1, y1 float64 // pixel corners, y0 at top
	lo, hi         float64 // wavelength domain
}

func (p plotArea) px(lambda float64) float64 {
	return p.x0 + (lambda-p.lo)/(p.hi-p.lo)*(p.x1-p.x0)
}

// py maps a fraction in [0,1] to a pixel row.
func (p plotArea) py(v float64) float64 {
	return p.y1 - v*(p.y1-p.y0)
}

// RenderChart draws R, T and A (in percent) versus wavelength as a PNG.
// Non-finite samples leave gaps in the curves.
func RenderChart(w io.Writer, points []spectrum.Point, opts ...RenderOption) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty spectrum", ErrNoData)
	}
	o := gatherRenderOptions(DefaultChartWidth, DefaultChartHeight, opts...)
	dc, err := canvas(o)
	if err != nil {
		return err
	}
	defer dc.Close()

	area := plotArea{
		x0: 64, y0: 40, x1: float64(o.width) - 24, y1: float64(o.height) - 52,
		lo: points[0].WavelengthNm, hi: points[len(points)-1].WavelengthNm,
	}
	if area.hi <= area.lo {
		area.lo, area.hi = area.lo-1, area.lo+1
	}

	if err := drawAxes(dc, area); err != nil {
		return err
	}
	curves := []struct {
		color string
		label string
		value func(spectrum.Point) float64
	}{
		{colorR, "R", func(p spectrum.Point) float64 { return p.R }},
		{colorT, "T", func(p spectrum.Point) float64 { return p.T }},
		{colorA, "A", func(p spectrum.Point) float64 { return p.A }},
	}
	for i, c := range curves {
		if err := drawCurve(dc, area, points, c.color, c.value); err != nil {
			return err
		}
		// Legend swatch and label.
		lx := area.x1 - 120 + float64(i)*40
		dc.SetHexColor(c.color)
		dc.SetLineWidth(3)
		dc.DrawLine(lx, area.y0-16, lx+14, area.y0-16)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("export: legend: %w", err)
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(c.label, lx+18, area.y0-16, 0, 0.5)
	}
	if o.title != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(o.title, area.x0, area.y0-16, 0, 0.5)
	}

	return encode(dc, w)
}

func drawAxes(dc *gg.Context, a plotArea) error {
	// Horizontal grid every 10 %.
	dc.SetLineWidth(1)
	for pct := 0; pct <= 100; pct += 10 {
		y := a.py(float64(pct) / 100)
		dc.SetHexColor("#e0e0e0")
		dc.DrawLine(a.x0, y, a.x1, y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("export: grid: %w", err)
		}
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%d", pct), a.x0-8, y, 1, 0.5)
	}

	step := tickStep(a.hi - a.lo)
	for l := math.Ceil(a.lo/step) * step; l <= a.hi+1e-9; l += step {
		x := a.px(l)
		dc.SetHexColor("#e0e0e0")
		dc.DrawLine(x, a.y0, x, a.y1)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("export: grid: %w", err)
		}
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%g", l), x, a.y1+14, 0.5, 0.5)
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(a.x0, a.y0, a.x1-a.x0, a.y1-a.y0)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("export: frame: %w", err)
	}
	dc.DrawStringAnchored("Wavelength (nm)", (a.x0+a.x1)/2, a.y1+36, 0.5, 0.5)
	dc.DrawStringAnchored("%", a.x0-40, a.y0, 0.5, 0.5)

	return nil
}

func drawCurve(dc *gg.Context, a plotArea, points []spectrum.Point, color string, value func(spectrum.Point) float64) error {
	dc.SetHexColor(color)
	dc.SetLineWidth(2)
	penDown := false
	for _, p := range points {
		v := value(p)
		if math.IsNaN(v) || math.IsInf(v, 0) || math.IsNaN(p.WavelengthNm) {
			penDown = false
			continue
		}
		x, y := a.px(p.WavelengthNm), a.py(math.Min(math.Max(v, 0), 1))
		if penDown {
			dc.LineTo(x, y)
		} else {
			dc.MoveTo(x, y)
			penDown = true
		}
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("export: curve: %w", err)
	}

	return nil
}

// tickStep picks a round spacing giving at most ten ticks over span.
func tickStep(span float64) float64 {
	for _, s := range []float64{1, 2, 5, 10, 20, 25, 50, 100, 200, 250, 500, 1000} {
		if span/s <= 10 {
			return s
		}
	}

	return math.Pow(10, math.Ceil(math.Log10(span/10)))
}
