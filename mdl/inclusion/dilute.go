// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inclusion

import (
	"math"

	"github.com/befriko/rockphypy/mdl/bounds"
)

// SwissCheese computes the dilute (non-interacting) model for spherical
// pores embedded in an unbounded solid:
//  1/K* = (1/Ks)・[1 + (1 + 3Ks/(4Gs))・φ]
//  1/G* = (1/Gs)・[1 + (15Ks + 20Gs)/(9Ks + 8Gs)・φ]
// Valid for dilute pore concentrations only.
func SwissCheese(Ks, Gs, φ float64) (K, G float64) {
	K = Ks / (1.0 + (1.0+3.0*Ks/(4.0*Gs))*φ)
	G = Gs / (1.0 + (15.0*Ks+20.0*Gs)/(9.0*Ks+8.0*Gs)*φ)
	return
}

// DiluteCrack computes the non-interacting randomly oriented dry crack
// model for crack density ξ = 3φ_crack/(4πα):
//  1/K* = (1/Ks)・[1 + (16/9)・(1-νs²)/(1-2νs)・ξ]
//  1/G* = (1/Gs)・[1 + (32/45)・(1-νs)(5-νs)/(2-νs)・ξ]
func DiluteCrack(Ks, Gs, ξ float64) (K, G float64) {
	ν := bounds.PoissonRatio(Ks, Gs)
	K = Ks / (1.0 + 16.0/9.0*(1.0-ν*ν)/(1.0-2.0*ν)*ξ)
	G = Gs / (1.0 + 32.0/45.0*(1.0-ν)*(5.0-ν)/(2.0-ν)*ξ)
	return
}

// OConnellBudiansky computes the self-consistent moduli of a medium
// with randomly oriented dry penny-shaped cracks (aspect ratio → 0),
// using the first-order approximation ν* ≅ νs・(1 - 16ξ/9) for the
// effective Poisson ratio. Results are clamped at zero where the model
// predicts loss of coherence (large ξ).
func OConnellBudiansky(Ks, Gs, ξ float64) (K, G float64) {
	νs := bounds.PoissonRatio(Ks, Gs)
	ν := νs * (1.0 - 16.0/9.0*ξ)
	K = Ks * (1.0 - 16.0/9.0*(1.0-ν*ν)/(1.0-2.0*ν)*ξ)
	G = Gs * (1.0 - 32.0/45.0*(1.0-ν)*(5.0-ν)/(2.0-ν)*ξ)
	K = math.Max(K, 0)
	G = math.Max(G, 0)
	return
}
