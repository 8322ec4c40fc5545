// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bounds

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"

	"github.com/befriko/rockphypy/diag"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_bounds01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds01. VRH for quartz-water mixture")

	// quartz grains with 30% water-filled porosity [GPa]
	K0, Kw := 37.0, 2.2
	φ := 0.3
	f := []float64{1.0 - φ, φ}
	K := []float64{K0, Kw}
	G := []float64{44.0, 0.0}

	err := CheckPhases(f, K, G)
	if err != nil {
		tst.Errorf("CheckPhases failed: %v\n", err)
		return
	}

	voigt, reuss, hill := VRH(f, K)
	io.Pforan("K: voigt=%v reuss=%v hill=%v\n", voigt, reuss, hill)
	chk.Scalar(tst, "Kvoigt", 1e-14, voigt, 0.7*37.0+0.3*2.2)
	chk.Scalar(tst, "Kreuss", 1e-14, reuss, 1.0/(0.7/37.0+0.3/2.2))
	chk.Scalar(tst, "Khill", 1e-14, hill, 0.5*(voigt+reuss))
	if hill < reuss || hill > voigt {
		tst.Errorf("VRH average %v outside [%v,%v]\n", hill, reuss, voigt)
	}

	// shear: fluid phase drives the Reuss bound to zero
	gv, gr, _ := VRH(f, G)
	io.Pforan("G: voigt=%v reuss=%v\n", gv, gr)
	chk.Scalar(tst, "Gvoigt", 1e-14, gv, 0.7*44.0)
	chk.Scalar(tst, "Greuss", 1e-14, gr, 0.0)
}

func Test_bounds02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds02. invalid phase sets are rejected")

	if err := CheckPhases([]float64{0.5, 0.4}, []float64{37, 2.2}, []float64{44, 0}); err == nil {
		tst.Errorf("fractions summing to 0.9 must be rejected\n")
		return
	}
	if err := CheckPhases([]float64{0.5, 0.5}, []float64{37, -1}, []float64{44, 0}); err == nil {
		tst.Errorf("negative modulus must be rejected\n")
		return
	}
	if err := CheckPhases([]float64{0.5, 0.5}, []float64{37}, []float64{44, 0}); err == nil {
		tst.Errorf("mismatched lengths must be rejected\n")
	}
}

func Test_hs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hs01. HS bounds bracket VRH for quartz-water")

	K0, G0 := 37.0, 44.0
	Kw, Gw := 2.2, 0.0
	φ := 0.3
	f1 := 1.0 - φ

	Ku, Gu, sts, err := HS(f1, K0, G0, Kw, Gw, true)
	if err != nil {
		tst.Errorf("HS upper failed: %v\n", err)
		return
	}
	if sts != diag.Ok {
		tst.Errorf("status = %v\n", sts)
		return
	}
	Kl, Gl, _, err := HS(f1, K0, G0, Kw, Gw, false)
	if err != nil {
		tst.Errorf("HS lower failed: %v\n", err)
		return
	}
	io.Pforan("K: HS- = %v  HS+ = %v\n", Kl, Ku)
	io.Pforan("G: HS- = %v  HS+ = %v\n", Gl, Gu)

	voigt, reuss, hill := VRH([]float64{f1, φ}, []float64{K0, Kw})
	if !(reuss <= Kl+1e-12 && Kl <= hill+1e-12 && hill <= Ku+1e-12 && Ku <= voigt+1e-12) {
		tst.Errorf("ordering violated: reuss=%v HS-=%v hill=%v HS+=%v voigt=%v\n", reuss, Kl, hill, Ku, voigt)
		return
	}

	// lower shear bound of a solid-fluid mixture is exactly zero
	chk.Scalar(tst, "Gl", 1e-14, Gl, 0.0)
	if Gu <= 0 || math.IsNaN(Gu) {
		tst.Errorf("upper shear bound Gu=%v must be finite and positive\n", Gu)
	}
}

func Test_hs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hs02. degenerate pairs")

	// identical phases collapse to the single value
	K, G, sts, err := HS(0.4, 37, 44, 37, 44, true)
	if err != nil {
		tst.Errorf("HS failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "K", 1e-15, K, 37)
	chk.Scalar(tst, "G", 1e-15, G, 44)
	if sts != diag.Ok {
		tst.Errorf("status = %v\n", sts)
		return
	}

	// both phases void: explicit limiting value, never NaN
	K, G, sts, err = HS(0.4, 0, 0, 0, 0, false)
	if err != nil {
		tst.Errorf("HS failed: %v\n", err)
		return
	}
	if sts != diag.Degenerate {
		tst.Errorf("status = %v, want degenerate\n", sts)
		return
	}
	chk.Scalar(tst, "K", 1e-15, K, 0)
	chk.Scalar(tst, "G", 1e-15, G, 0)

	// a zero-fraction void phase does not contaminate the lower bound
	K, G, sts, err = HS(1.0, 37, 44, 0, 0, false)
	if err != nil {
		tst.Errorf("HS failed: %v\n", err)
		return
	}
	if sts != diag.Ok || math.IsNaN(K) || math.IsNaN(G) {
		tst.Errorf("pure solid with absent void: K=%v G=%v sts=%v\n", K, G, sts)
		return
	}
	chk.Scalar(tst, "K pure", 1e-15, K, 37)
	chk.Scalar(tst, "G pure", 1e-15, G, 44)

	// and the average of both bounds stays finite
	Ka, Ga, err := HSAverage(1.0, 37, 44, 0, 0)
	if err != nil {
		tst.Errorf("HSAverage failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Ka pure", 1e-15, Ka, 37)
	chk.Scalar(tst, "Ga pure", 1e-15, Ga, 44)
}

func Test_hs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hs03. randomized bound ordering")

	// well-ordered pairs: phase 1 stiffer in both moduli
	rnd.Init(1234)
	for i := 0; i < 100; i++ {
		f1 := rnd.Float64(0, 1)
		K1, G1 := rnd.Float64(20, 80), rnd.Float64(15, 50)
		K2, G2 := rnd.Float64(1, K1), rnd.Float64(0.5, G1)
		Ku, Gu, _, err := HS(f1, K1, G1, K2, G2, true)
		if err != nil {
			tst.Errorf("HS upper failed: %v\n", err)
			return
		}
		Kl, Gl, _, err := HS(f1, K1, G1, K2, G2, false)
		if err != nil {
			tst.Errorf("HS lower failed: %v\n", err)
			return
		}
		f := []float64{f1, 1 - f1}
		kv, kr, _ := VRH(f, []float64{K1, K2})
		gv, gr, _ := VRH(f, []float64{G1, G2})
		if Kl < kr-1e-10 || Ku > kv+1e-10 || Kl > Ku+1e-12 {
			tst.Errorf("K ordering violated: reuss=%v HS-=%v HS+=%v voigt=%v\n", kr, Kl, Ku, kv)
			return
		}
		if Gl < gr-1e-10 || Gu > gv+1e-10 || Gl > Gu+1e-12 {
			tst.Errorf("G ordering violated: reuss=%v HS-=%v HS+=%v voigt=%v\n", gr, Gl, Gu, gv)
			return
		}
	}
}

func Test_hs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hs04. batch evaluation with bad rows")

	φ := utl.LinSpace(0, 0.6, 7)
	f1 := make([]float64, len(φ)+1)
	for i, p := range φ {
		f1[i] = 1.0 - p
	}
	f1[len(φ)] = 1.4 // invalid fraction

	K, G, sts, err := HSBatch(f1, 37, 44, 2.2, 0, true)
	if err != nil {
		tst.Errorf("HSBatch failed: %v\n", err)
		return
	}
	if diag.Count(sts, diag.OutOfDomain) != 1 || sts[len(φ)] != diag.OutOfDomain {
		tst.Errorf("invalid row not flagged: sts=%v\n", sts)
		return
	}
	for i := range φ {
		if sts[i] != diag.Ok || math.IsNaN(K[i]) || math.IsNaN(G[i]) {
			tst.Errorf("valid row %d contaminated: K=%v G=%v sts=%v\n", i, K[i], G[i], sts[i])
			return
		}
	}
	io.Pforan("K = %v\n", K)
}
