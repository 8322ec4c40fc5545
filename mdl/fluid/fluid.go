// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements pore-fluid models: Gassmann fluid
// substitution, fluid mixing laws and the pressure/density profile of a
// fluid column
package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/befriko/rockphypy/mdl/bounds"
)

// Gassmann computes the saturated bulk modulus from the dry-rock one at
// low frequency:
//  Ksat = Kdry + (1 - Kdry/K0)² / (φ/Kfl + (1-φ)/K0 - Kdry/K0²)
// The shear modulus is unchanged by the fluid.
//  Input:
//   Kdry -- dry-rock bulk modulus [GPa]
//   K0   -- mineral bulk modulus [GPa]
//   Kfl  -- pore-fluid bulk modulus [GPa]; 0 means dry
//   φ    -- porosity
//  Output:
//   Ksat -- saturated bulk modulus [GPa]
//   err  -- invalid input
func Gassmann(Kdry, K0, Kfl, φ float64) (Ksat float64, err error) {
	if K0 <= 0 {
		return 0, chk.Err("mineral modulus K0=%g must be positive", K0)
	}
	if Kdry < 0 || Kdry > K0 {
		return 0, chk.Err("dry modulus Kdry=%g is outside [0,K0=%g]", Kdry, K0)
	}
	if Kfl < 0 {
		return 0, chk.Err("fluid modulus Kfl=%g must be non-negative", Kfl)
	}
	if φ < 0 || φ > 1 {
		return 0, chk.Err("porosity φ=%g is outside [0,1]", φ)
	}
	if φ == 0 || Kfl == 0 {
		return Kdry, nil
	}
	b := 1.0 - Kdry/K0
	Ksat = Kdry + b*b/(φ/Kfl+(1.0-φ)/K0-Kdry/(K0*K0))
	return
}

// GassmannDry inverts Gassmann: dry-rock bulk modulus from the
// saturated one
func GassmannDry(Ksat, K0, Kfl, φ float64) (Kdry float64, err error) {
	if K0 <= 0 {
		return 0, chk.Err("mineral modulus K0=%g must be positive", K0)
	}
	if Kfl < 0 {
		return 0, chk.Err("fluid modulus Kfl=%g must be non-negative", Kfl)
	}
	if φ < 0 || φ > 1 {
		return 0, chk.Err("porosity φ=%g is outside [0,1]", φ)
	}
	if φ == 0 || Kfl == 0 {
		return Ksat, nil
	}
	Kdry = (Ksat*(φ*K0/Kfl+1.0-φ) - K0) / (φ*K0/Kfl + Ksat/K0 - 1.0 - φ)
	return
}

// Wood computes the bulk modulus of a fluid suspension (Reuss average
// over the fluid phases)
func Wood(f, K []float64) (float64, error) {
	G := make([]float64, len(f))
	if err := bounds.CheckPhases(f, K, G); err != nil {
		return 0, err
	}
	return bounds.Reuss(f, K), nil
}

// VoigtMix computes the isostrain (upper-limit) modulus of a fluid mix,
// sometimes used for patchy saturation
func VoigtMix(f, K []float64) (float64, error) {
	G := make([]float64, len(f))
	if err := bounds.CheckPhases(f, K, G); err != nil {
		return 0, err
	}
	return bounds.Voigt(f, K), nil
}

// Brie computes the empirical modulus of a liquid-gas mixture
//  K = (Kl - Kg)・(1 - Sg)^e + Kg
// with e the Brie exponent (e=3 is the common choice)
func Brie(Kl, Kg, Sg, e float64) (float64, error) {
	if Sg < 0 || Sg > 1 {
		return 0, chk.Err("gas saturation Sg=%g is outside [0,1]", Sg)
	}
	return (Kl-Kg)*math.Pow(1.0-Sg, e) + Kg, nil
}

// Column implements a model to compute pressure (p) and intrinsic
// density (R) of a pore fluid along a column with gravity (g); it
// provides the pressure input of the pressure-dependent grain-pack
// models. The model is:
//   R(p) = R0 + C・(p - p0)   thus   dR/dp = C
type Column struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0
	P0  float64 // pressure corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Gas bool    // is gas instead of liquid?

	// additional data
	H    float64 // elevation where (R0,p0) is known
	Grav float64 // gravity acceleration (positive constant)
}

// Init initialises this structure
func (o *Column) Init(prms fun.Prms, H, grav float64) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "gas":
			o.Gas = p.V > 0
		}
	}
	o.H = H
	o.Grav = grav
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note:
//   Gas variable is used to return dry air properties instead of water
func (o Column) GetPrms(example bool) fun.Prms {
	if example {
		if o.Gas {
			return fun.Prms{ // dry air
				&fun.Prm{N: "R0", V: 0.0012}, // [Mg/m³]
				&fun.Prm{N: "P0", V: 0.0},    // [kPa]
				&fun.Prm{N: "C", V: 1.17e-5}, // [Mg/(m³・kPa)]
				&fun.Prm{N: "gas", V: 1},     // [-]
			}
		}
		return fun.Prms{ // water
			&fun.Prm{N: "R0", V: 1.0},    // [Mg/m³]
			&fun.Prm{N: "P0", V: 0.0},    // [kPa]
			&fun.Prm{N: "C", V: 4.53e-7}, // [Mg/(m³・kPa)]
			&fun.Prm{N: "gas", V: 0},     // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return fun.Prms{
		&fun.Prm{N: "R0", V: o.R0},
		&fun.Prm{N: "P0", V: o.P0},
		&fun.Prm{N: "C", V: o.C},
		&fun.Prm{N: "gas", V: gas},
	}
}

// Calc computes pressure and density at elevation z
func (o Column) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}
