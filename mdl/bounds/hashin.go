// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bounds

import (
	"github.com/cpmech/gosl/chk"

	"github.com/befriko/rockphypy/diag"
)

// Zeta computes the Hashin-Shtrikman auxiliary shear term
//  ζ = G・(9K + 8G) / (6・(K + 2G))
// It vanishes when G = 0 and never divides by zero unless K is also
// zero, which callers treat as a degenerate phase.
func Zeta(K, G float64) float64 {
	if G == 0 {
		return 0
	}
	return G * (9.0*K + 8.0*G) / (6.0 * (K + 2.0*G))
}

// HS computes the two-phase Hashin-Shtrikman bound for bulk and shear
// moduli. The stiffer phase is taken as the reference medium for the
// upper bound and the softer one for the lower bound; the caller only
// selects upper or lower.
//  Input:
//   f1       -- volume fraction of phase 1 (phase 2 has 1-f1)
//   K1,G1    -- moduli of phase 1
//   K2,G2    -- moduli of phase 2
//   upper    -- true for HS+, false for HS-
//  Output:
//   K,G -- bound pair
//   sts -- Ok, or Degenerate when both phases have zero moduli
//   err -- invalid input (fraction outside [0,1], negative modulus)
func HS(f1, K1, G1, K2, G2 float64, upper bool) (K, G float64, sts diag.Status, err error) {

	// input
	if f1 < 0 || f1 > 1 {
		err = chk.Err("volume fraction f1=%g is outside [0,1]", f1)
		return
	}
	if K1 < 0 || G1 < 0 || K2 < 0 || G2 < 0 {
		err = chk.Err("negative modulus in phase set: K1=%g G1=%g K2=%g G2=%g", K1, G1, K2, G2)
		return
	}

	// degenerate pair: both phases void
	if K1 == 0 && G1 == 0 && K2 == 0 && G2 == 0 {
		sts = diag.Degenerate
		return
	}

	// identical phases collapse to the single value
	if K1 == K2 && G1 == G2 {
		return K1, G1, diag.Ok, nil
	}

	// reference phase: stiffest for the upper bound, softest for the
	// lower bound, ranked by K then G
	fa, Ka, Ga := f1, K1, G1
	fb, Kb, Gb := 1.0-f1, K2, G2
	stiffFirst := Ka > Kb || (Ka == Kb && Ga > Gb)
	if stiffFirst != upper {
		fa, Ka, Ga, fb, Kb, Gb = fb, Kb, Gb, fa, Ka, Ga
	}

	// a zero-fraction phase contributes nothing; bypass the functional
	// so an absent degenerate phase cannot produce a 0/0 term
	if fa == 0 {
		return Kb, Gb, diag.Ok, nil
	}
	if fb == 0 {
		return Ka, Ga, diag.Ok, nil
	}

	// bulk modulus
	if Kb == Ka {
		K = Ka
	} else {
		K = Ka + fb/(1.0/(Kb-Ka)+fa/(Ka+4.0*Ga/3.0))
	}

	// shear modulus
	za := Zeta(Ka, Ga)
	switch {
	case Gb == Ga:
		G = Ga
	case Ga == 0 && za == 0:
		// fluid reference medium: a dry/saturated suspension carries no
		// shear, hence the lower bound is exactly zero
		G = 0
	default:
		G = Ga + fb/(1.0/(Gb-Ga)+fa/(Ga+za))
	}
	return
}

// HSAverage computes the mean of the upper and lower Hashin-Shtrikman
// bounds, a common single-value estimate for mixed lithologies
func HSAverage(f1, K1, G1, K2, G2 float64) (K, G float64, err error) {
	Ku, Gu, _, err := HS(f1, K1, G1, K2, G2, true)
	if err != nil {
		return
	}
	Kl, Gl, _, err := HS(f1, K1, G1, K2, G2, false)
	if err != nil {
		return
	}
	K, G = 0.5*(Ku+Kl), 0.5*(Gu+Gl)
	return
}

// HSBatch evaluates the Hashin-Shtrikman bound elementwise over an
// array of phase-1 fractions, with fixed phase moduli. Rows with
// invalid fractions are flagged OutOfDomain and do not abort the batch.
func HSBatch(f1 []float64, K1, G1, K2, G2 float64, upper bool) (K, G []float64, sts []diag.Status, err error) {
	if K1 < 0 || G1 < 0 || K2 < 0 || G2 < 0 {
		err = chk.Err("negative modulus in phase set: K1=%g G1=%g K2=%g G2=%g", K1, G1, K2, G2)
		return
	}
	n := len(f1)
	K, G, sts = make([]float64, n), make([]float64, n), make([]diag.Status, n)
	for i, f := range f1 {
		if f < 0 || f > 1 {
			sts[i] = diag.OutOfDomain
			continue
		}
		K[i], G[i], sts[i], _ = HS(f, K1, G1, K2, G2, upper)
	}
	return
}
