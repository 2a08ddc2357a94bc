// SPDX-License-Identifier: MIT

package spectrum

import "math"

// Visible band bounds used by Summarize, inclusive.
const (
	VisibleStartNm = 400
	VisibleEndNm   = 700
)

// Peak is an extreme sample of one quantity.
type Peak struct {
	WavelengthNm float64 `json:"wavelength"`
	Value        float64 `json:"value"`
}

// Summary condenses a spectrum.
type Summary struct {
	PeakR       Peak    `json:"peakR"`
	PeakT       Peak    `json:"peakT"`
	MinR        Peak    `json:"minR"`
	AvgRVisible float64 `json:"avgR_visible"`
	AvgTVisible float64 `json:"avgT_visible"`
	Samples     int     `json:"samples"`
	Visible     int     `json:"visibleSamples"`
}

// Summarize reduces points in a single pass.
//
//   - PeakR / PeakT: maximum sample; on ties the first occurrence wins.
//   - MinR: minimum reflectance sample; on ties the first occurrence wins.
//   - AvgRVisible / AvgTVisible: means over samples with 400 ≤ λ ≤ 700 nm,
//     0 when no sample falls in that band.
//
// An empty input yields the zero Summary. A peak no sample could reach
// (every value NaN) is the zero Peak.
func Summarize(points []Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	s := Summary{
		PeakR:   Peak{Value: math.Inf(-1)},
		PeakT:   Peak{Value: math.Inf(-1)},
		MinR:    Peak{Value: math.Inf(1)},
		Samples: len(points),
	}
	var sumR, sumT float64
	for _, p := range points {
		if p.R > s.PeakR.Value {
			s.PeakR = Peak{WavelengthNm: p.WavelengthNm, Value: p.R}
		}
		if p.T > s.PeakT.Value {
			s.PeakT = Peak{WavelengthNm: p.WavelengthNm, Value: p.T}
		}
		if p.R < s.MinR.Value {
			s.MinR = Peak{WavelengthNm: p.WavelengthNm, Value: p.R}
		}
		if p.WavelengthNm >= VisibleStartNm && p.WavelengthNm <= VisibleEndNm {
			sumR += p.R
			sumT += p.T
			s.Visible++
		}
	}
	// All-NaN quantities leave the sentinels in place; report them as zero.
	for _, pk := range []*Peak{&s.PeakR, &s.PeakT, &s.MinR} {
		if math.IsInf(pk.Value, 0) && pk.WavelengthNm == 0 {
			*pk = Peak{}
		}
	}
	if s.Visible > 0 {
		s.AvgRVisible = sumR / float64(s.Visible)
		s.AvgTVisible = sumT / float64(s.Visible)
	}

	return s
}
