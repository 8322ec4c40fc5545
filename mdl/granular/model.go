// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package granular

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/befriko/rockphypy/diag"
)

// Model defines the interface for dry grain-pack models
type Model interface {
	Init(prms fun.Prms) error                                 // initialises model
	GetPrms() fun.Prms                                        // gets (an example) of parameters
	CalcDry(φ float64) (K, G float64, sts diag.Status, err error) // computes dry moduli at porosity φ
}

// New returns a new grain-pack model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'granular' database", name)
	}
	return allocator(), nil
}

// allocators holds all available grain-pack models; modelname => allocator
var allocators = map[string]func() Model{}

// DryBatch evaluates a grain-pack model elementwise over a porosity
// array. Out-of-domain rows are flagged and the batch continues; only
// structural errors (bad model parameters) abort the call.
func DryBatch(m Model, φ []float64) (K, G []float64, sts []diag.Status, err error) {
	n := len(φ)
	K, G, sts = make([]float64, n), make([]float64, n), make([]diag.Status, n)
	for i, p := range φ {
		K[i], G[i], sts[i], err = m.CalcDry(p)
		if err != nil {
			return
		}
	}
	return
}

// packPrms holds the parameters shared by all grain-pack models
type packPrms struct {
	K0   float64 // grain bulk modulus [GPa]
	G0   float64 // grain shear modulus [GPa]
	φc   float64 // critical porosity
	n    float64 // coordination number; ≤ 0 means Murphy correlation at φc
	P    float64 // confining pressure [MPa]
	fr   float64 // reduced shear factor
	useμ bool    // n was left to the Murphy correlation
}

// set assigns one named parameter; unknown names are ignored so that
// composite models can share parameter sets
func (o *packPrms) set(p *fun.Prm) {
	switch p.N {
	case "K0":
		o.K0 = p.V
	case "G0":
		o.G0 = p.V
	case "phic":
		o.φc = p.V
	case "n":
		o.n = p.V
	case "P":
		o.P = p.V
	case "f":
		o.fr = p.V
	}
}

// finish derives the coordination number when not given
func (o *packPrms) finish() {
	o.useμ = o.n <= 0
	if o.useμ {
		o.n = CoordNumber(o.φc)
	}
}

// prms returns the current parameter set
func (o packPrms) prms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "K0", V: o.K0},
		&fun.Prm{N: "G0", V: o.G0},
		&fun.Prm{N: "phic", V: o.φc},
		&fun.Prm{N: "n", V: o.n},
		&fun.Prm{N: "P", V: o.P},
		&fun.Prm{N: "f", V: o.fr},
	}
}

// examplePrms returns quartz-pack example parameters
func examplePrms() packPrms {
	return packPrms{K0: 37, G0: 44, φc: 0.4, n: 8.6, P: 10, fr: 1}
}

// HertzMindlinMod wraps HertzMindlin as a registered model; φ is the
// pack porosity
type HertzMindlinMod struct {
	packPrms
}

// add model to factory
func init() {
	allocators["hertzmindlin"] = func() Model { return new(HertzMindlinMod) }
}

// Init initialises model
func (o *HertzMindlinMod) Init(prms fun.Prms) error {
	for _, p := range prms {
		o.set(p)
	}
	o.finish()
	return nil
}

// GetPrms gets (an example) of parameters
func (o HertzMindlinMod) GetPrms() fun.Prms {
	return examplePrms().prms()
}

// CalcDry computes dry moduli of the pack at porosity φ
func (o HertzMindlinMod) CalcDry(φ float64) (K, G float64, sts diag.Status, err error) {
	if φ <= 0 || φ >= 1 {
		sts = diag.OutOfDomain
		return
	}
	n := o.n
	if o.useμ {
		n = CoordNumber(φ)
	}
	K, G, err = HertzMindlin(o.K0, o.G0, φ, n, o.P, o.fr)
	return
}

// WaltonMod wraps Walton as a registered model; φ is the pack porosity
type WaltonMod struct {
	packPrms
}

// add model to factory
func init() {
	allocators["walton"] = func() Model { return new(WaltonMod) }
}

// Init initialises model
func (o *WaltonMod) Init(prms fun.Prms) error {
	for _, p := range prms {
		o.set(p)
	}
	o.finish()
	return nil
}

// GetPrms gets (an example) of parameters
func (o WaltonMod) GetPrms() fun.Prms {
	return examplePrms().prms()
}

// CalcDry computes dry moduli of the pack at porosity φ
func (o WaltonMod) CalcDry(φ float64) (K, G float64, sts diag.Status, err error) {
	if φ <= 0 || φ >= 1 {
		sts = diag.OutOfDomain
		return
	}
	n := o.n
	if o.useμ {
		n = CoordNumber(φ)
	}
	K, G, err = Walton(o.K0, o.G0, φ, n, o.P, o.fr)
	return
}

// SoftSandMod is the friable-sand (modified lower HS) model
type SoftSandMod struct {
	packPrms
}

// add model to factory
func init() {
	allocators["softsand"] = func() Model { return new(SoftSandMod) }
}

// Init initialises model
func (o *SoftSandMod) Init(prms fun.Prms) error {
	for _, p := range prms {
		o.set(p)
	}
	o.finish()
	return nil
}

// GetPrms gets (an example) of parameters
func (o SoftSandMod) GetPrms() fun.Prms {
	return examplePrms().prms()
}

// CalcDry computes dry moduli at porosity φ ≤ φc
func (o SoftSandMod) CalcDry(φ float64) (K, G float64, sts diag.Status, err error) {
	return SoftSand(o.K0, o.G0, φ, o.φc, o.n, o.P, o.fr)
}

// StiffSandMod is the stiff-sand (modified upper HS) model
type StiffSandMod struct {
	packPrms
}

// add model to factory
func init() {
	allocators["stiffsand"] = func() Model { return new(StiffSandMod) }
}

// Init initialises model
func (o *StiffSandMod) Init(prms fun.Prms) error {
	for _, p := range prms {
		o.set(p)
	}
	o.finish()
	return nil
}

// GetPrms gets (an example) of parameters
func (o StiffSandMod) GetPrms() fun.Prms {
	return examplePrms().prms()
}

// CalcDry computes dry moduli at porosity φ ≤ φc
func (o StiffSandMod) CalcDry(φ float64) (K, G float64, sts diag.Status, err error) {
	return StiffSand(o.K0, o.G0, φ, o.φc, o.n, o.P, o.fr)
}

// cemPrms extends packPrms with cement parameters
type cemPrms struct {
	packPrms
	Kc     float64 // cement bulk modulus [GPa]
	Gc     float64 // cement shear modulus [GPa]
	φb     float64 // cemented end-member porosity (constant cement)
	scheme int     // cement deposition scheme
}

// set assigns one named parameter
func (o *cemPrms) set(p *fun.Prm) {
	o.packPrms.set(p)
	switch p.N {
	case "Kc":
		o.Kc = p.V
	case "Gc":
		o.Gc = p.V
	case "phib":
		o.φb = p.V
	case "scheme":
		o.scheme = int(p.V)
	}
}

// prms returns the current parameter set
func (o cemPrms) prms() fun.Prms {
	return append(o.packPrms.prms(),
		&fun.Prm{N: "Kc", V: o.Kc},
		&fun.Prm{N: "Gc", V: o.Gc},
		&fun.Prm{N: "phib", V: o.φb},
		&fun.Prm{N: "scheme", V: float64(o.scheme)},
	)
}

// ContactCementMod is the Dvorkin-Nur contact-cement model
type ContactCementMod struct {
	cemPrms
}

// add model to factory
func init() {
	allocators["contactcement"] = func() Model { return new(ContactCementMod) }
}

// Init initialises model
func (o *ContactCementMod) Init(prms fun.Prms) error {
	for _, p := range prms {
		o.set(p)
	}
	o.finish()
	if o.scheme == 0 {
		o.scheme = SchemeUniform
	}
	return nil
}

// GetPrms gets (an example) of parameters: quartz grains with quartz cement
func (o ContactCementMod) GetPrms() fun.Prms {
	e := cemPrms{packPrms: examplePrms(), Kc: 37, Gc: 44, φb: 0.35, scheme: SchemeUniform}
	return e.prms()
}

// CalcDry computes dry moduli at porosity φ ≤ φc
func (o ContactCementMod) CalcDry(φ float64) (K, G float64, sts diag.Status, err error) {
	return ContactCement(o.K0, o.G0, o.Kc, o.Gc, φ, o.φc, o.n, o.scheme)
}

// ConstantCementMod is the constant-cement model: contact cement down
// to φb, then soft-sand interpolation to the mineral point
type ConstantCementMod struct {
	cemPrms
}

// add model to factory
func init() {
	allocators["constantcement"] = func() Model { return new(ConstantCementMod) }
}

// Init initialises model
func (o *ConstantCementMod) Init(prms fun.Prms) error {
	for _, p := range prms {
		o.set(p)
	}
	o.finish()
	if o.scheme == 0 {
		o.scheme = SchemeUniform
	}
	if o.φb <= 0 || o.φb > o.φc {
		return chk.Err("cemented end-member porosity phib=%g is outside (0,phic=%g]", o.φb, o.φc)
	}
	return nil
}

// GetPrms gets (an example) of parameters: quartz grains with quartz cement
func (o ConstantCementMod) GetPrms() fun.Prms {
	e := cemPrms{packPrms: examplePrms(), Kc: 37, Gc: 44, φb: 0.35, scheme: SchemeUniform}
	return e.prms()
}

// CalcDry computes dry moduli at porosity φ ≤ φb
func (o ConstantCementMod) CalcDry(φ float64) (K, G float64, sts diag.Status, err error) {
	return ConstantCement(o.K0, o.G0, o.Kc, o.Gc, φ, o.φb, o.φc, o.n, o.scheme)
}
