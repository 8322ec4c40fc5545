// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package granular

import (
	"github.com/befriko/rockphypy/diag"
	"github.com/befriko/rockphypy/mdl/bounds"
)

// interpMHS interpolates between an end member (Ke,Ge) at porosity φe
// and the mineral point (K0,G0) at zero porosity along a
// Hashin-Shtrikman functional with auxiliary moduli (Ka,Ga):
//  K = [ (φ/φe)/(Ke+4Ga/3) + (1-φ/φe)/(K0+4Ga/3) ]⁻¹ - 4Ga/3
//  G = [ (φ/φe)/(Ge+ζa)    + (1-φ/φe)/(G0+ζa)    ]⁻¹ - ζa
// Both endpoints are reproduced exactly for any choice of (Ka,Ga).
func interpMHS(K0, G0, Ke, Ge, Ka, Ga, φ, φe float64) (K, G float64) {
	x := φ / φe
	t := 4.0 * Ga / 3.0
	z := bounds.Zeta(Ka, Ga)
	K = 1.0/(x/(Ke+t)+(1.0-x)/(K0+t)) - t
	G = 1.0/(x/(Ge+z)+(1.0-x)/(G0+z)) - z
	return
}

// SoftSand computes the dry moduli of an unconsolidated (friable) sand
// at porosity φ ≤ φc: the Hertz-Mindlin pack at critical porosity is
// connected to the mineral point by the modified lower Hashin-Shtrikman
// bound (sorting trend, porosity reduced by smaller grains in the pore
// space).
//  Input:
//   K0,G0 -- mineral moduli [GPa]
//   φ     -- porosity, 0 ≤ φ ≤ φc
//   φc    -- critical porosity
//   n     -- coordination number
//   P     -- confining pressure [MPa]
//   fr    -- reduced shear factor in [0,1]
//  Output:
//   K,G -- dry moduli [GPa]; exactly (K0,G0) at φ=0 and exactly the
//          Hertz-Mindlin end member at φ=φc
//   sts -- Ok, or OutOfDomain when φ < 0 or φ > φc (no extrapolation)
//   err -- invalid pack parameters
func SoftSand(K0, G0, φ, φc, n, P, fr float64) (K, G float64, sts diag.Status, err error) {
	Khm, Ghm, err := HertzMindlin(K0, G0, φc, n, P, fr)
	if err != nil {
		return
	}
	if φ < 0 || φ > φc {
		sts = diag.OutOfDomain
		return
	}
	K, G = interpMHS(K0, G0, Khm, Ghm, Khm, Ghm, φ, φc)
	return
}

// StiffSand computes the dry moduli of a stiff (diagenetic trend) sand
// at porosity φ ≤ φc: the same Hertz-Mindlin end member connected to
// the mineral point by the modified upper Hashin-Shtrikman bound. Same
// contract as SoftSand.
func StiffSand(K0, G0, φ, φc, n, P, fr float64) (K, G float64, sts diag.Status, err error) {
	Khm, Ghm, err := HertzMindlin(K0, G0, φc, n, P, fr)
	if err != nil {
		return
	}
	if φ < 0 || φ > φc {
		sts = diag.OutOfDomain
		return
	}
	K, G = interpMHS(K0, G0, Khm, Ghm, K0, G0, φ, φc)
	return
}
