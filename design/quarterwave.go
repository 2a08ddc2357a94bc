// SPDX-License-Identifier: MIT

package design

import (
	"fmt"
	"math"

	"github.com/katalvlaran/filmcalc/material"
	"github.com/katalvlaran/filmcalc/tmm"
)

// QuarterWaveThickness returns λ/(4n), the physical thickness whose optical
// thickness is a quarter of lambdaNm.
func QuarterWaveThickness(lambdaNm, n float64) (float64, error) {
	if err := checkPositive("wavelength", lambdaNm); err != nil {
		return 0, err
	}
	if err := checkPositive("index", n); err != nil {
		return 0, err
	}

	return lambdaNm / (4 * n), nil
}

// QuarterWaveAR returns a single quarter-wave layer of layerID on substrateID,
// in air, tuned to designNm for a layer index nLayer.
func QuarterWaveAR(layerID, substrateID string, designNm, nLayer float64) (tmm.Stack, error) {
	d, err := QuarterWaveThickness(designNm, nLayer)
	if err != nil {
		return tmm.Stack{}, err
	}

	return tmm.Stack{
		Incident:  material.AirID,
		Layers:    []tmm.Layer{{MaterialID: layerID, ThicknessNm: d}},
		Substrate: substrateID,
	}, nil
}

// AnalyticalQWReflectance is the reflectance of a lossless quarter-wave layer
// at its design wavelength:
//
//	R = ((nL² − n0·ns) / (nL² + n0·ns))²
//
// It is zero when nL = √(n0·ns).
func AnalyticalQWReflectance(n0, nLayer, nSub float64) float64 {
	num := nLayer*nLayer - n0*nSub
	den := nLayer*nLayer + n0*nSub

	return (num / den) * (num / den)
}

// HighReflectorStack returns the quarter-wave mirror (H L)^pairs H on
// substrateID, in air. pairs = 0 yields a single high-index layer.
func HighReflectorStack(highID, lowID, substrateID string, designNm, nH, nL float64, pairs int) (tmm.Stack, error) {
	if pairs < 0 {
		return tmm.Stack{}, fmt.Errorf("%w: pairs %d must be ≥ 0", ErrInvalidDesign, pairs)
	}
	dH, err := QuarterWaveThickness(designNm, nH)
	if err != nil {
		return tmm.Stack{}, fmt.Errorf("high layer: %w", err)
	}
	dL, err := QuarterWaveThickness(designNm, nL)
	if err != nil {
		return tmm.Stack{}, fmt.Errorf("low layer: %w", err)
	}

	layers := make([]tmm.Layer, 0, 2*pairs+1)
	for range pairs {
		layers = append(layers,
			tmm.Layer{MaterialID: highID, ThicknessNm: dH},
			tmm.Layer{MaterialID: lowID, ThicknessNm: dL},
		)
	}
	layers = append(layers, tmm.Layer{MaterialID: highID, ThicknessNm: dH})

	return tmm.Stack{Incident: material.AirID, Layers: layers, Substrate: substrateID}, nil
}

// AnalyticalHRReflectance is the reflectance of a lossless (H L)^N H stack at
// its design wavelength:
//
//	Y = nH^(2N+2) / nL^(2N)
//	R = ((n0·ns − Y) / (n0·ns + Y))²
func AnalyticalHRReflectance(n0, nH, nL, nSub float64, pairs int) float64 {
	y := math.Pow(nH, float64(2*pairs+2)) / math.Pow(nL, float64(2*pairs))
	num := n0*nSub - y
	den := n0*nSub + y

	return (num / den) * (num / den)
}

func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s %g must be finite and > 0", ErrInvalidDesign, name, v)
	}

	return nil
}
