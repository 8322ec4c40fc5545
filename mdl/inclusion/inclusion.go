// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inclusion implements effective-medium models for rocks with
// pores and cracks treated as inclusions: dilute (non-interacting)
// closed forms, self-consistent fixed-point schemes and the
// differential effective medium.
//  References:
//   [1] Berryman JG (1980) Long-wavelength propagation in composite
//       elastic media, J Acoust Soc Am, 68(6), 1809-1831
//   [2] O'Connell RJ and Budiansky B (1974) Seismic velocities in dry
//       and saturated cracked solids, J Geophys Res, 79(35), 5412-5426
//   [3] Mavko G, Mukerji T and Dvorkin J (2020) The Rock Physics
//       Handbook, Cambridge University Press
package inclusion

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/befriko/rockphypy/diag"
	"github.com/befriko/rockphypy/mdl/bounds"
)

// DefaultTol is the default stop criterion on the fixed-point residual
var DefaultTol = 1e-10

// DefaultMaxIt is the default iteration budget of the fixed-point schemes
var DefaultMaxIt = 100

// damping factor of the fixed-point update. 0.5 keeps the stiff-solid /
// vanishing-shear-fluid case from oscillating without slowing smooth cases
const damping = 0.5

// SC computes the effective moduli of a solid with randomly distributed
// spherical pores using the self-consistent approximation, in which each
// pore deforms as though embedded in the as-yet-unknown effective medium:
//  1/K* = 1/Ks + (1/K* + 3/(4G*))・φ
//  1/G* = 1/Gs + (15K* + 20G*)/(9K* + 8G*)・φ/G*
// The iteration is seeded with the Voigt-Reuss-Hill average of the
// solid-void pair and damped updates are applied until the change in
// both moduli falls below tol.
//  Input:
//   φ     -- porosity (0 ≤ φ < 1; moduli vanish near φ=0.5)
//   Ks,Gs -- solid (mineral) moduli
//   tol   -- stop criterion; DefaultTol if ≤ 0
//   maxit -- iteration budget; DefaultMaxIt if ≤ 0
//  Output:
//   K,G -- effective moduli
//   sts -- Ok, Clamped (iterate pulled back into the physical range) or
//          NotConverged (budget exhausted; best iterate returned)
//   err -- invalid input
func SC(φ, Ks, Gs, tol float64, maxit int) (K, G float64, sts diag.Status, err error) {

	// input
	if φ < 0 || φ >= 1 {
		err = chk.Err("porosity φ=%g is outside [0,1)", φ)
		return
	}
	if Ks <= 0 || Gs <= 0 {
		err = chk.Err("solid moduli must be positive: Ks=%g Gs=%g", Ks, Gs)
		return
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	if maxit <= 0 {
		maxit = DefaultMaxIt
	}
	if φ == 0 {
		return Ks, Gs, diag.Ok, nil
	}

	// seed: VRH of the solid-void pair
	f := []float64{1 - φ, φ}
	_, _, K = bounds.VRH(f, []float64{Ks, 0})
	_, _, G = bounds.VRH(f, []float64{Gs, 0})

	// damped fixed point
	for it := 0; it < maxit; it++ {

		// percolation: both moduli have vanished
		if K < tol && G < tol {
			return 0, 0, diag.Ok, nil
		}

		Knew := 1.0 / (1.0/Ks + (1.0/K+3.0/(4.0*G))*φ)
		Gnew := 1.0 / (1.0/Gs + (15.0*K+20.0*G)/(9.0*K+8.0*G)*φ/G)

		Knew = damping*K + (1.0-damping)*Knew
		Gnew = damping*G + (1.0-damping)*Gnew

		// clamp overshoots into the physical range [0, Voigt]
		kv, gv := (1.0-φ)*Ks, (1.0-φ)*Gs
		if Knew < 0 || Knew > kv || Gnew < 0 || Gnew > gv {
			Knew = math.Min(math.Max(Knew, 0), kv)
			Gnew = math.Min(math.Max(Gnew, 0), gv)
			sts = diag.Clamped
		}

		resid := math.Abs(Knew-K) + math.Abs(Gnew-G)
		K, G = Knew, Gnew
		if resid < tol {
			return
		}
	}
	sts = diag.NotConverged
	return
}

// SCBatch evaluates SC elementwise over a porosity array. Rows with
// out-of-range porosity are flagged OutOfDomain; non-converged rows
// carry the best iterate and their own flag; the batch never aborts.
func SCBatch(φ []float64, Ks, Gs, tol float64, maxit int) (K, G []float64, sts []diag.Status, err error) {
	if Ks <= 0 || Gs <= 0 {
		err = chk.Err("solid moduli must be positive: Ks=%g Gs=%g", Ks, Gs)
		return
	}
	n := len(φ)
	K, G, sts = make([]float64, n), make([]float64, n), make([]diag.Status, n)
	for i, p := range φ {
		if p < 0 || p >= 1 {
			sts[i] = diag.OutOfDomain
			continue
		}
		K[i], G[i], sts[i], _ = SC(p, Ks, Gs, tol, maxit)
	}
	return
}
