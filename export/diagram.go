// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/filmcalc/material"
	"github.com/katalvlaran/filmcalc/tmm"
)

// Fixed band heights of the stack diagram, in pixels.
const (
	diagramMargin   = 20.0
	incidentBand    = 40.0
	substrateBand   = 60.0
	minLayerBand    = 6.0
	diagramBarRatio = 0.45
)

type band struct {
	y, h  float64
	color gg.RGBA
	label string
}

// RenderStackDiagram draws stack as horizontal bands, incident medium on top
// and substrate at the bottom, colored by material. Layer band heights are
// proportional to physical thickness, with a small minimum so thin layers
// stay visible.
func RenderStackDiagram(w io.Writer, reg *material.Registry, stack tmm.Stack, opts ...RenderOption) error {
	o := gatherRenderOptions(DefaultDiagramWidth, DefaultDiagramHeight, opts...)
	bands, err := layoutStack(reg, stack, o)
	if err != nil {
		return err
	}
	dc, err := canvas(o)
	if err != nil {
		return err
	}
	defer dc.Close()

	barW := float64(o.width) * diagramBarRatio
	for _, b := range bands {
		dc.SetColor(b.color.Color())
		dc.DrawRectangle(diagramMargin, b.y, barW, b.h)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("export: band: %w", err)
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(b.label, diagramMargin+barW+16, b.y+b.h/2, 0, 0.5)
	}
	if o.title != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(o.title, diagramMargin, diagramMargin/2, 0, 0.5)
	}

	return encode(dc, w)
}

// layoutStack resolves materials and assigns each band its vertical extent.
func layoutStack(reg *material.Registry, stack tmm.Stack, o renderOptions) ([]band, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	incident, err := reg.Get(stack.IncidentID())
	if err != nil {
		return nil, fmt.Errorf("incident medium: %w", err)
	}
	substrate, err := reg.Get(stack.Substrate)
	if err != nil {
		return nil, fmt.Errorf("substrate: %w", err)
	}

	top := diagramMargin
	bottom := float64(o.height) - diagramMargin
	avail := bottom - top - incidentBand - substrateBand

	heights := make([]float64, len(stack.Layers))
	if total := stack.TotalThicknessNm(); total > 0 {
		var sum float64
		for i, l := range stack.Layers {
			heights[i] = max(l.ThicknessNm/total*avail, minLayerBand)
			sum += heights[i]
		}
		if sum > avail {
			for i := range heights {
				heights[i] *= avail / sum
			}
		}
	}

	bands := make([]band, 0, len(stack.Layers)+2)
	bands = append(bands, band{y: top, h: incidentBand, color: materialColor(incident.Color), label: incident.Name})
	y := top + incidentBand
	for i, l := range stack.Layers {
		def, err := reg.Get(l.MaterialID)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
		bands = append(bands, band{
			y: y, h: heights[i],
			color: materialColor(def.Color),
			label: fmt.Sprintf("%d. %s  %g nm", i+1, def.ID, l.ThicknessNm),
		})
		y += heights[i]
	}
	bands = append(bands, band{y: bottom - substrateBand, h: substrateBand, color: materialColor(substrate.Color), label: substrate.Name})

	return bands, nil
}
