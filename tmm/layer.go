// SPDX-License-Identifier: MIT

package tmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/filmcalc/cmatrix"
)

// CharacteristicMatrix builds a layer's 2×2 matrix from its complex index eta
// (η = n − i·k), thickness and the vacuum wavelength.
//
// δ is complex whenever k > 0, so cos δ and sin δ use complex trigonometry.
// Complexity: O(1).
func CharacteristicMatrix(eta complex128, thicknessNm, lambdaNm float64) cmatrix.Mat2 {
	delta := cmatrix.Scale(2*math.Pi*thicknessNm/lambdaNm, eta)
	cosD := cmatrix.Cos(delta)
	sinD := cmatrix.Sin(delta)

	return cmatrix.New(
		cosD, 1i*sinD/eta,
		1i*eta*sinD, cosD,
	)
}

// LayerMatrix resolves materialID at lambdaNm and returns its characteristic
// matrix for the given thickness.
//
// Errors:
//   - material.ErrUnknownMaterial — materialID is not registered.
//   - ErrInvalidThickness         — thickness ≤ 0 or non-finite.
//   - ErrInvalidWavelength        — wavelength ≤ 0 or non-finite.
func (s *Solver) LayerMatrix(materialID string, thicknessNm, lambdaNm float64) (cmatrix.Mat2, error) {
	if err := checkWavelength(lambdaNm); err != nil {
		return cmatrix.Mat2{}, err
	}
	if !(thicknessNm > 0) || math.IsInf(thicknessNm, 0) {
		return cmatrix.Mat2{}, fmt.Errorf("%s %gnm: %w", materialID, thicknessNm, ErrInvalidThickness)
	}
	idx, err := s.materials.Index(materialID, lambdaNm)
	if err != nil {
		return cmatrix.Mat2{}, err
	}

	return CharacteristicMatrix(idx.Complex(), thicknessNm, lambdaNm), nil
}

func checkWavelength(lambdaNm float64) error {
	if !(lambdaNm > 0) || math.IsInf(lambdaNm, 0) {
		return fmt.Errorf("%g nm: %w", lambdaNm, ErrInvalidWavelength)
	}

	return nil
}
