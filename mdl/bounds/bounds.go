// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bounds implements elastic bounds for mineral/fluid mixtures:
// Voigt and Reuss averages, the Voigt-Reuss-Hill estimate and the
// Hashin-Shtrikman bounds.
//  References:
//   [1] Mavko G, Mukerji T and Dvorkin J (2020) The Rock Physics Handbook,
//       Cambridge University Press
package bounds

import (
	"github.com/cpmech/gosl/chk"
)

// SumTol is the tolerance for checking that volume fractions sum to one
var SumTol = 1e-8

// CheckPhases verifies the structural validity of a phase set:
// matching lengths, fractions non-negative and summing to one, and
// non-negative moduli. Violations abort the whole batch call.
func CheckPhases(f, K, G []float64) (err error) {
	if len(f) != len(K) || len(f) != len(G) {
		return chk.Err("phase set arrays have mismatched lengths: nf=%d nK=%d nG=%d", len(f), len(K), len(G))
	}
	if len(f) < 1 {
		return chk.Err("phase set must have at least one phase")
	}
	sum := 0.0
	for i, fi := range f {
		if fi < 0 {
			return chk.Err("volume fraction f[%d]=%g is negative", i, fi)
		}
		if K[i] < 0 || G[i] < 0 {
			return chk.Err("phase %d has negative modulus: K=%g G=%g", i, K[i], G[i])
		}
		sum += fi
	}
	if sum < 1.0-SumTol || sum > 1.0+SumTol {
		return chk.Err("volume fractions sum to %g instead of 1", sum)
	}
	return
}

// PoissonRatio computes ν from bulk and shear moduli
func PoissonRatio(K, G float64) float64 {
	return (3.0*K - 2.0*G) / (2.0 * (3.0*K + G))
}

// Voigt computes the arithmetic-mean (isostrain) upper bound of a
// modulus M over a phase set
func Voigt(f, M []float64) (res float64) {
	for i, fi := range f {
		res += fi * M[i]
	}
	return
}

// Reuss computes the harmonic-mean (isostress) lower bound of a modulus
// M over a phase set. A phase with zero modulus and nonzero fraction
// drives the bound to zero (suspension limit); phases with zero
// fraction do not contribute.
func Reuss(f, M []float64) (res float64) {
	sum := 0.0
	for i, fi := range f {
		if fi == 0 {
			continue
		}
		if M[i] == 0 {
			return 0
		}
		sum += fi / M[i]
	}
	if sum == 0 {
		return 0
	}
	return 1.0 / sum
}

// VRH computes the Voigt upper bound, the Reuss lower bound and the
// Voigt-Reuss-Hill average of a modulus M over a phase set
func VRH(f, M []float64) (voigt, reuss, hill float64) {
	voigt = Voigt(f, M)
	reuss = Reuss(f, M)
	hill = 0.5 * (voigt + reuss)
	return
}
