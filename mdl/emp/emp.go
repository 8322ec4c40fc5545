// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package emp implements empirical velocity-porosity relations and the
// critical-porosity model. Velocities are in km/s, moduli in GPa and
// densities in g/cm³.
//  References:
//   [1] Han D-H (1986) Effects of porosity and clay content on acoustic
//       properties of sandstones and unconsolidated sediments, PhD
//       thesis, Stanford University
//   [2] Nur A, Mavko G, Dvorkin J and Galmudi D (1998) Critical
//       porosity: a key to relating physical properties to porosity in
//       rocks, The Leading Edge, 17(3), 357-362
package emp

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/befriko/rockphypy/diag"
)

// Velocity computes P- and S-wave velocities from moduli and bulk density
//  Vp = √((K + 4G/3)/ρ)    Vs = √(G/ρ)
func Velocity(K, G, ρ float64) (Vp, Vs float64, err error) {
	if ρ <= 0 {
		return 0, 0, chk.Err("density ρ=%g must be positive", ρ)
	}
	if K < 0 || G < 0 {
		return 0, 0, chk.Err("moduli must be non-negative: K=%g G=%g", K, G)
	}
	Vp = math.Sqrt((K + 4.0*G/3.0) / ρ)
	Vs = math.Sqrt(G / ρ)
	return
}

// Han computes the water-saturated sandstone velocities from porosity
// and clay content with Han's (40 MPa) regressions:
//  Vp = 5.59 - 6.93・φ - 2.18・C
//  Vs = 3.52 - 4.91・φ - 1.89・C
func Han(φ, C float64) (Vp, Vs float64, err error) {
	if φ < 0 || φ > 1 || C < 0 || C > 1 {
		return 0, 0, chk.Err("porosity φ=%g and clay content C=%g must be in [0,1]", φ, C)
	}
	Vp = 5.59 - 6.93*φ - 2.18*C
	Vs = 3.52 - 4.91*φ - 1.89*C
	return
}

// Gardner computes bulk density from P-velocity with Gardner's relation
//  ρ = 1.741・Vp^0.25
func Gardner(Vp float64) (ρ float64, err error) {
	if Vp <= 0 {
		return 0, chk.Err("velocity Vp=%g must be positive", Vp)
	}
	return 1.741 * math.Pow(Vp, 0.25), nil
}

// CriticalPorosity computes the dry moduli of the Nur critical-porosity
// model: a linear trend from the mineral point at φ=0 to zero at φ=φc
//  Kdry = K0・(1 - φ/φc)    Gdry = G0・(1 - φ/φc)
// Porosities above φc are out of the model's domain.
func CriticalPorosity(K0, G0, φ, φc float64) (Kdry, Gdry float64, sts diag.Status, err error) {
	if K0 <= 0 || G0 <= 0 {
		err = chk.Err("mineral moduli must be positive: K0=%g G0=%g", K0, G0)
		return
	}
	if φc <= 0 || φc >= 1 {
		err = chk.Err("critical porosity φc=%g is outside (0,1)", φc)
		return
	}
	if φ < 0 || φ > φc {
		sts = diag.OutOfDomain
		return
	}
	Kdry = K0 * (1.0 - φ/φc)
	Gdry = G0 * (1.0 - φ/φc)
	return
}

// RaymerHuntGardner computes the P-velocity of a consolidated rock from
// the mineral and fluid velocities:
//  Vp = (1-φ)²・Vp0 + φ・Vpfl
// Valid for φ below about 0.37.
func RaymerHuntGardner(φ, Vp0, Vpfl float64) (Vp float64, sts diag.Status, err error) {
	if Vp0 <= 0 || Vpfl < 0 {
		err = chk.Err("velocities must be positive: Vp0=%g Vpfl=%g", Vp0, Vpfl)
		return
	}
	if φ < 0 || φ > 0.37 {
		sts = diag.OutOfDomain
		return
	}
	Vp = (1.0-φ)*(1.0-φ)*Vp0 + φ*Vpfl
	return
}
