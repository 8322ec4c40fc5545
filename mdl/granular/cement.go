// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package granular

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/befriko/rockphypy/diag"
	"github.com/befriko/rockphypy/mdl/bounds"
	"github.com/befriko/rockphypy/nonlin"
)

// Cement deposition schemes of the Dvorkin-Nur model
const (
	// SchemeContact deposits all cement at grain contacts
	SchemeContact = 1

	// SchemeUniform deposits cement in a uniform layer around grains
	SchemeUniform = 2
)

// ContactCement computes the dry moduli of a cemented sphere pack with
// the Dvorkin-Nur contact-cement model. Cementation reduces porosity
// from φc down to φ while stiffening the contacts; the normal and
// shear contact stiffnesses Sn, Sτ use the Dvorkin-Nur polynomial fits.
//  Input:
//   K0,G0  -- grain mineral moduli [GPa]
//   Kc,Gc  -- cement moduli [GPa]
//   φ      -- porosity after cementation, 0 < φ ≤ φc
//   φc     -- critical porosity of the uncemented pack
//   n      -- coordination number
//   scheme -- SchemeContact or SchemeUniform
//  Output:
//   K,G -- dry moduli [GPa]
//   sts -- Ok, or OutOfDomain when φ > φc or φ ≤ 0
//   err -- invalid input
func ContactCement(K0, G0, Kc, Gc, φ, φc, n float64, scheme int) (K, G float64, sts diag.Status, err error) {

	// input
	if err = checkPack(K0, G0, φc, n, 0); err != nil {
		return
	}
	if Kc <= 0 || Gc <= 0 {
		err = chk.Err("cement moduli must be positive: Kc=%g Gc=%g", Kc, Gc)
		return
	}
	if scheme != SchemeContact && scheme != SchemeUniform {
		err = chk.Err("cement scheme %d is unknown", scheme)
		return
	}
	if φ <= 0 || φ > φc {
		sts = diag.OutOfDomain
		return
	}

	// cement layer radius ratio
	var α float64
	if scheme == SchemeContact {
		α = 2.0 * math.Pow((φc-φ)/(3.0*n*(1.0-φc)), 0.25)
	} else {
		α = math.Sqrt(2.0 * (φc - φ) / (3.0 * (1.0 - φc)))
	}

	ν := bounds.PoissonRatio(K0, G0)
	νc := bounds.PoissonRatio(Kc, Gc)

	// normal stiffness fit
	Λn := 2.0 * Gc * (1.0 - ν) * (1.0 - νc) / (math.Pi * G0 * (1.0 - 2.0*νc))
	An := -0.024153 * math.Pow(Λn, -1.3646)
	Bn := 0.20405 * math.Pow(Λn, -0.89008)
	Cn := 0.00024649 * math.Pow(Λn, -1.9864)
	Sn := An*α*α + Bn*α + Cn

	// shear stiffness fit
	Λτ := Gc / (math.Pi * G0)
	Aτ := -1e-2 * (2.26*ν*ν + 2.07*ν + 2.3) * math.Pow(Λτ, 0.079*ν*ν+0.1754*ν-1.342)
	Bτ := (0.0573*ν*ν + 0.0937*ν + 0.202) * math.Pow(Λτ, 0.0274*ν*ν+0.0529*ν-0.8765)
	Cτ := 1e-4 * (9.654*ν*ν + 4.945*ν + 3.1) * math.Pow(Λτ, 0.01867*ν*ν+0.4011*ν-1.8186)
	Sτ := Aτ*α*α + Bτ*α + Cτ

	// effective dry moduli
	Mc := Kc + 4.0*Gc/3.0
	K = n * (1.0 - φc) * Mc * Sn / 6.0
	G = 3.0/5.0*K + 3.0*n*(1.0-φc)*Gc*Sτ/20.0
	return
}

// ConstantCement computes the dry moduli of a sand with a constant
// amount of cement: the contact-cement model sets the end member at the
// cemented porosity φb, and lower porosities follow the soft-sand
// (modified lower HS) interpolation between that end member and the
// mineral point.
//  Input:
//   K0,G0  -- grain mineral moduli [GPa]
//   Kc,Gc  -- cement moduli [GPa]
//   φ      -- porosity, 0 ≤ φ ≤ φb
//   φb     -- porosity of the cemented end member, 0 < φb ≤ φc
//   φc     -- critical porosity of the uncemented pack
//   n      -- coordination number of the uncemented pack
//   scheme -- cement deposition scheme
//  Output: same contract as SoftSand
func ConstantCement(K0, G0, Kc, Gc, φ, φb, φc, n float64, scheme int) (K, G float64, sts diag.Status, err error) {
	if φb <= 0 || φb > φc {
		err = chk.Err("cemented end-member porosity φb=%g is outside (0,φc=%g]", φb, φc)
		return
	}
	Kb, Gb, sts, err := ContactCement(K0, G0, Kc, Gc, φb, φc, n, scheme)
	if err != nil || sts != diag.Ok {
		return
	}
	if φ < 0 || φ > φb {
		sts = diag.OutOfDomain
		return
	}
	K, G = interpMHS(K0, G0, Kb, Gb, Kb, Gb, φ, φb)
	return
}

// FitCementPorosity finds the cemented end-member porosity φb of the
// constant-cement model whose curve passes through a measured dry-rock
// point (φd,Kd). The implicit relation between φb, the coordination
// number and the effective modulus has no closed form, so it is solved
// by bracketed root finding over φb ∈ (φd,φc). The coordination number
// of the cemented pack follows Murphy's correlation at φb.
//  Output:
//   φb  -- fitted end-member porosity (best iterate if not converged)
//   res -- root-finder convergence data
//   err -- invalid input, or no constant-cement curve through the point
func FitCementPorosity(K0, G0, Kc, Gc, φd, Kd, φc float64, scheme int) (φb float64, res nonlin.Result, err error) {

	// input
	if φd <= 0 || φd >= φc {
		err = chk.Err("data porosity φd=%g is outside (0,φc=%g)", φd, φc)
		return
	}
	if Kd <= 0 {
		err = chk.Err("data modulus Kd=%g must be positive", Kd)
		return
	}

	// residual of the constant-cement prediction at the data point
	f := func(x float64) float64 {
		K, _, _, e := ConstantCement(K0, G0, Kc, Gc, φd, x, φc, CoordNumber(x), scheme)
		if e != nil {
			return math.MaxFloat64
		}
		return K - Kd
	}

	// bracket: end member marginally above the data porosity (most
	// cement) down to the uncemented pack at φc (least cement)
	ε := 1e-6 * (φc - φd)
	φb, res, err = nonlin.Solve(f, φd+ε, φc-ε, 1e-10, 200)
	if err != nil {
		err = chk.Err("no constant-cement curve passes through (φ=%g, K=%g): %v", φd, Kd, err)
	}
	return
}
