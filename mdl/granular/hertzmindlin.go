// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package granular implements contact-theory models for the dry moduli
// of grain packs: Hertz-Mindlin and Walton end members at critical
// porosity, the soft-sand and stiff-sand modified Hashin-Shtrikman
// interpolations, and the Dvorkin-Nur contact-cement and
// constant-cement schemes. Moduli are in GPa and confining pressure in
// MPa.
//  References:
//   [1] Mindlin RD (1949) Compliance of elastic bodies in contact,
//       J Appl Mech, 16, 259-268
//   [2] Walton K (1987) The effective elastic moduli of a random
//       packing of spheres, J Mech Phys Solids, 35, 213-226
//   [3] Dvorkin J and Nur A (1996) Elasticity of high-porosity
//       sandstones: theory for two North Sea data sets, Geophysics,
//       61(5), 1363-1370
//   [4] Mavko G, Mukerji T and Dvorkin J (2020) The Rock Physics
//       Handbook, Cambridge University Press
package granular

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/befriko/rockphypy/mdl/bounds"
)

// CoordNumber estimates the coordination number (average grain
// contacts per grain) from porosity with Murphy's (1982) correlation
//  n = 20 - 34φ + 14φ²
func CoordNumber(φ float64) float64 {
	return 20.0 - 34.0*φ + 14.0*φ*φ
}

// checkPack verifies the grain-pack inputs shared by the end members
func checkPack(K0, G0, φc, n, P float64) (err error) {
	if K0 <= 0 || G0 <= 0 {
		return chk.Err("mineral moduli must be positive: K0=%g G0=%g", K0, G0)
	}
	if φc <= 0 || φc >= 1 {
		return chk.Err("critical porosity φc=%g is outside (0,1)", φc)
	}
	if n <= 0 {
		return chk.Err("coordination number n=%g must be positive", n)
	}
	if P < 0 {
		return chk.Err("confining pressure P=%g must be non-negative", P)
	}
	return
}

// HertzMindlin computes the dry moduli of a random identical-sphere
// pack at critical porosity under confining pressure:
//  K = [ n²(1-φc)²G0²P / (18π²(1-ν)²) ]^(1/3)
//  G = (2+3fr-ν(1+3fr))/(5(2-ν))・[ 3n²(1-φc)²G0²P / (2π²(1-ν)²) ]^(1/3)
// The reduced shear factor fr mixes no-slip (fr=1, the classical
// Mindlin result) and frictionless (fr=0) grain contacts.
//  Input:
//   K0,G0 -- mineral moduli [GPa]
//   φc    -- critical porosity
//   n     -- coordination number (use CoordNumber(φc) when unknown)
//   P     -- confining pressure [MPa]
//   fr    -- reduced shear factor in [0,1]
//  Output:
//   K,G -- dry-pack moduli [GPa]
func HertzMindlin(K0, G0, φc, n, P, fr float64) (K, G float64, err error) {
	if err = checkPack(K0, G0, φc, n, P); err != nil {
		return
	}
	if fr < 0 || fr > 1 {
		err = chk.Err("reduced shear factor fr=%g is outside [0,1]", fr)
		return
	}
	p := P / 1000.0 // MPa to GPa
	ν := bounds.PoissonRatio(K0, G0)
	c := n * n * (1.0 - φc) * (1.0 - φc) * G0 * G0 / (math.Pi * math.Pi * (1.0 - ν) * (1.0 - ν))
	K = math.Cbrt(p * c / 18.0)
	G = (2.0 + 3.0*fr - ν*(1.0+3.0*fr)) / (5.0 * (2.0 - ν)) * math.Cbrt(p*3.0*c/2.0)
	return
}

// Walton computes the dry moduli of a random sphere pack from Walton's
// integral solution, mixing the infinitely-rough (fr=1) and
// infinitely-smooth (fr=0) limits. With the same reduced shear factor
// it reproduces HertzMindlin exactly.
func Walton(K0, G0, φc, n, P, fr float64) (K, G float64, err error) {
	if err = checkPack(K0, G0, φc, n, P); err != nil {
		return
	}
	if fr < 0 || fr > 1 {
		err = chk.Err("reduced shear factor fr=%g is outside [0,1]", fr)
		return
	}
	p := P / 1000.0 // MPa to GPa
	λ := K0 - 2.0*G0/3.0
	A := (1.0/G0 - 1.0/(G0+λ)) / (4.0 * math.Pi)
	B := (1.0/G0 + 1.0/(G0+λ)) / (4.0 * math.Pi)
	K = math.Cbrt(3.0*(1.0-φc)*(1.0-φc)*n*n*p/(math.Pi*math.Pi*math.Pi*math.Pi*B*B)) / 6.0
	Grough := 3.0 / 5.0 * K * (5.0*B + A) / (2.0*B + A)
	Gsmooth := 3.0 / 5.0 * K
	G = fr*Grough + (1.0-fr)*Gsmooth
	return
}
