// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inclusion

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/befriko/rockphypy/diag"
	"github.com/befriko/rockphypy/mdl/bounds"
)

// PQ computes Berryman's polarization factors for a spheroidal
// inclusion with moduli (Ki,Gi) and aspect ratio α embedded in a
// background with moduli (Km,Gm). α=1 is a sphere; α<1 an oblate
// spheroid (crack-like as α→0).
func PQ(Km, Gm, Ki, Gi, α float64) (P, Q float64, err error) {

	// input
	if α <= 0 || α > 1 {
		return 0, 0, chk.Err("aspect ratio α=%g is outside (0,1]", α)
	}

	// sphere: closed form with the HS auxiliary term
	if α == 1 {
		z := bounds.Zeta(Km, Gm)
		P = (Km + 4.0*Gm/3.0) / (Ki + 4.0*Gm/3.0)
		if Gi == 0 && z == 0 {
			Q = 1 // fluid inclusion in fluid background
		} else {
			Q = (Gm + z) / (Gi + z)
		}
		return
	}

	// oblate spheroid (Berryman 1980; RPH section 4.11)
	α2 := α * α
	θ := α / math.Pow(1.0-α2, 1.5) * (math.Acos(α) - α*math.Sqrt(1.0-α2))
	fn := α2 * (3.0*θ - 2.0) / (1.0 - α2)

	A := Gi/Gm - 1.0
	B := (Ki/Km - Gi/Gm) / 3.0
	R := Gm / (Km + 4.0*Gm/3.0)

	F1 := 1.0 + A*(1.5*(fn+θ)-R*(1.5*fn+2.5*θ-4.0/3.0))
	F2 := 1.0 + A*(1.0+1.5*(fn+θ)-R*(1.5*fn+2.5*θ)) + B*(3.0-4.0*R) +
		A*(A+3.0*B)*(3.0-4.0*R)*(fn+θ-R*(fn-θ+2.0*θ*θ))/2.0
	F3 := 1.0 + A*(1.0-(fn+1.5*θ)+R*(fn+θ))
	F4 := 1.0 + A*(fn+3.0*θ-R*(fn-θ))/4.0
	F5 := A*(-fn+R*(fn+θ-4.0/3.0)) + B*θ*(3.0-4.0*R)
	F6 := 1.0 + A*(1.0+fn-R*(fn+θ)) + B*(1.0-θ)*(3.0-4.0*R)
	F7 := 2.0 + A*(3.0*fn+9.0*θ-R*(3.0*fn+5.0*θ))/4.0 + B*θ*(3.0-4.0*R)
	F8 := A*(1.0-2.0*R+fn*(R-1.0)/2.0+θ*(5.0*R-3.0)/2.0) + B*(1.0-θ)*(3.0-4.0*R)
	F9 := A*((R-1.0)*fn-R*θ) + B*θ*(3.0-4.0*R)

	P = F1 / F2
	Q = (2.0/F3 + 1.0/F4 + (F4*F5+F6*F7-F8*F9)/(F2*F4)) / 5.0
	return
}

// Berryman computes the effective moduli of an N-phase mixture with the
// self-consistent (coherent potential) approximation:
//  Σ fᵢ・(Kᵢ - K*)・Pᵢ(K*,G*) = 0
//  Σ fᵢ・(Gᵢ - G*)・Qᵢ(K*,G*) = 0
// Each phase carries its own spheroid aspect ratio. The damped
// fixed-point update and the convergence contract are the same as SC.
//  Input:
//   f     -- volume fractions (must sum to 1)
//   K,G   -- phase moduli
//   α     -- aspect ratio per phase, in (0,1]
//   tol   -- stop criterion; DefaultTol if ≤ 0
//   maxit -- iteration budget; DefaultMaxIt if ≤ 0
//  Output:
//   Keff,Geff -- effective moduli
//   sts       -- Ok, Clamped or NotConverged
//   err       -- invalid input
func Berryman(f, K, G, α []float64, tol float64, maxit int) (Keff, Geff float64, sts diag.Status, err error) {

	// input
	if err = bounds.CheckPhases(f, K, G); err != nil {
		return
	}
	if len(α) != len(f) {
		err = chk.Err("aspect ratio array has length %d instead of %d", len(α), len(f))
		return
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	if maxit <= 0 {
		maxit = DefaultMaxIt
	}

	// seed: VRH averages; Voigt values bound the physical range
	kv, _, kh := bounds.VRH(f, K)
	gv, _, gh := bounds.VRH(f, G)
	Keff, Geff = kh, gh

	// damped fixed point
	for it := 0; it < maxit; it++ {

		if Keff < tol && Geff < tol {
			return 0, 0, diag.Ok, nil
		}

		var sumKP, sumP, sumGQ, sumQ float64
		for i := range f {
			P, Q, e := PQ(Keff, Geff, K[i], G[i], α[i])
			if e != nil {
				err = e
				return
			}
			sumKP += f[i] * K[i] * P
			sumP += f[i] * P
			sumGQ += f[i] * G[i] * Q
			sumQ += f[i] * Q
		}
		Knew := sumKP / sumP
		Gnew := sumGQ / sumQ

		Knew = damping*Keff + (1.0-damping)*Knew
		Gnew = damping*Geff + (1.0-damping)*Gnew

		if Knew < 0 || Knew > kv || Gnew < 0 || Gnew > gv {
			Knew = math.Min(math.Max(Knew, 0), kv)
			Gnew = math.Min(math.Max(Gnew, 0), gv)
			sts = diag.Clamped
		}

		resid := math.Abs(Knew-Keff) + math.Abs(Gnew-Geff)
		Keff, Geff = Knew, Gnew
		if resid < tol {
			return
		}
	}
	sts = diag.NotConverged
	return
}
