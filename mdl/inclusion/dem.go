// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inclusion

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// DEM computes the effective moduli by the differential effective
// medium scheme: the inclusion phase is added in infinitesimal steps,
// each time re-homogenizing, which leads to the coupled system
//  (1-y)・dK*/dy = (Ki - K*)・P(K*,G*)
//  (1-y)・dG*/dy = (Gi - G*)・Q(K*,G*)
// integrated from y=0 (pure host, K*=Ks) to y=φ. Unlike the
// self-consistent scheme the host phase stays connected for any φ.
//  Input:
//   Ks,Gs -- host (mineral) moduli
//   Ki,Gi -- inclusion moduli (0,0 for dry pores)
//   α     -- inclusion aspect ratio in (0,1]
//   φ     -- inclusion volume fraction (0 ≤ φ < 1)
//  Output:
//   K,G -- effective moduli at φ
//   err -- invalid input or ODE failure
func DEM(Ks, Gs, Ki, Gi, α, φ float64) (K, G float64, err error) {

	// input
	if φ < 0 || φ >= 1 {
		return 0, 0, chk.Err("inclusion fraction φ=%g is outside [0,1)", φ)
	}
	if Ks <= 0 || Gs <= 0 {
		return 0, 0, chk.Err("host moduli must be positive: Ks=%g Gs=%g", Ks, Gs)
	}
	if Ki < 0 || Gi < 0 {
		return 0, 0, chk.Err("inclusion moduli must be non-negative: Ki=%g Gi=%g", Ki, Gi)
	}
	if φ == 0 {
		return Ks, Gs, nil
	}

	// rate function
	fcn := func(f []float64, dx, x float64, y []float64) (e error) {
		P, Q, e := PQ(y[0], y[1], Ki, Gi, α)
		if e != nil {
			return
		}
		f[0] = (Ki - y[0]) * P / (1.0 - x)
		f[1] = (Gi - y[1]) * Q / (1.0 - x)
		return
	}

	// ode solver
	var odesol ode.Solver
	odesol.Init("DoPri5", 2, fcn, nil, nil, nil)
	odesol.SetTol(1e-10, 1e-8)
	odesol.Distr = false

	// solve
	y := []float64{Ks, Gs}
	err = odesol.Solve(y, 0, φ, φ, false)
	K, G = y[0], y[1]
	return
}
