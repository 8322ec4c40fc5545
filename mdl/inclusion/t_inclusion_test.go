// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inclusion

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/befriko/rockphypy/diag"
	"github.com/befriko/rockphypy/mdl/bounds"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sc01. spherical-pore SC basics")

	Ks, Gs := 40.0, 30.0

	// zero porosity returns the mineral point exactly
	K, G, sts, err := SC(0, Ks, Gs, 0, 0)
	if err != nil {
		tst.Errorf("SC failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "K(0)", 1e-15, K, Ks)
	chk.Scalar(tst, "G(0)", 1e-15, G, Gs)
	if sts != diag.Ok {
		tst.Errorf("status = %v\n", sts)
		return
	}

	// dilute limit agrees with the non-interacting model
	φ := 0.01
	K, G, _, err = SC(φ, Ks, Gs, 0, 0)
	if err != nil {
		tst.Errorf("SC failed: %v\n", err)
		return
	}
	Kni, Gni := SwissCheese(Ks, Gs, φ)
	io.Pforan("φ=%v: SC K=%v G=%v  dilute K=%v G=%v\n", φ, K, G, Kni, Gni)
	chk.Scalar(tst, "K dilute", 0.01, K, Kni)
	chk.Scalar(tst, "G dilute", 0.01, G, Gni)
}

func Test_sc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sc02. SC sits inside the elastic bounds")

	Ks, Gs := 40.0, 30.0
	for _, φ := range utl.LinSpace(0.05, 0.4, 8) {
		K, G, sts, err := SC(φ, Ks, Gs, 0, 0)
		if err != nil {
			tst.Errorf("SC failed: %v\n", err)
			return
		}
		if sts == diag.NotConverged {
			tst.Errorf("φ=%v did not converge\n", φ)
			return
		}
		Ku, Gu, _, err := bounds.HS(1-φ, Ks, Gs, 0, 0, true)
		if err != nil {
			tst.Errorf("HS failed: %v\n", err)
			return
		}
		Kl, _, _, err := bounds.HS(1-φ, Ks, Gs, 0, 0, false)
		if err != nil {
			tst.Errorf("HS failed: %v\n", err)
			return
		}
		io.Pf("φ=%5.2f  HS-=%8.4f  SC=%8.4f  HS+=%8.4f\n", φ, Kl, K, Ku)
		if K < Kl-1e-10 || K > Ku+1e-10 {
			tst.Errorf("φ=%v: K=%v outside HS bounds [%v,%v]\n", φ, K, Kl, Ku)
			return
		}
		if G < 0 || G > Gu+1e-10 {
			tst.Errorf("φ=%v: G=%v outside [0,%v]\n", φ, G, Gu)
			return
		}
	}
}

func Test_sc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sc03. monotonicity and batch independence")

	Ks, Gs := 40.0, 30.0
	φ := utl.LinSpace(0, 0.45, 10)
	K, G, sts, err := SCBatch(φ, Ks, Gs, 0, 0)
	if err != nil {
		tst.Errorf("SCBatch failed: %v\n", err)
		return
	}
	for i := 1; i < len(φ); i++ {
		if K[i] > K[i-1]+1e-10 || G[i] > G[i-1]+1e-10 {
			tst.Errorf("moduli must not increase with porosity: K[%d]=%v > K[%d]=%v\n", i, K[i], i-1, K[i-1])
			return
		}
	}
	if !diag.AllOk(sts) {
		tst.Errorf("all rows should be Ok: %v\n", sts)
		return
	}

	// a row with invalid porosity is flagged, others still valid
	φbad := []float64{0.1, 1.2, 0.3}
	K, _, sts, err = SCBatch(φbad, Ks, Gs, 0, 0)
	if err != nil {
		tst.Errorf("SCBatch failed: %v\n", err)
		return
	}
	if sts[1] != diag.OutOfDomain {
		tst.Errorf("row 1 must be out of domain: %v\n", sts)
		return
	}
	if sts[0] != diag.Ok || sts[2] != diag.Ok || math.IsNaN(K[0]) || math.IsNaN(K[2]) {
		tst.Errorf("valid rows contaminated: K=%v sts=%v\n", K, sts)
	}
}

func Test_berryman01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("berryman01. degenerate mixture collapses exactly")

	f := []float64{0.25, 0.75}
	K := []float64{37.0, 37.0}
	G := []float64{44.0, 44.0}
	α := []float64{1.0, 1.0}
	Keff, Geff, sts, err := Berryman(f, K, G, α, 0, 0)
	if err != nil {
		tst.Errorf("Berryman failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Keff", 1e-14, Keff, 37.0)
	chk.Scalar(tst, "Geff", 1e-14, Geff, 44.0)
	if sts != diag.Ok {
		tst.Errorf("status = %v\n", sts)
	}
}

func Test_berryman02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("berryman02. quartz-water mixture within bounds")

	K0, G0 := 37.0, 44.0
	Kw, Gw := 2.2, 0.0
	for _, φ := range []float64{0.1, 0.2, 0.3} {
		f := []float64{1 - φ, φ}
		Keff, Geff, sts, err := Berryman(f, []float64{K0, Kw}, []float64{G0, Gw}, []float64{1, 1}, 0, 0)
		if err != nil {
			tst.Errorf("Berryman failed: %v\n", err)
			return
		}
		if sts == diag.NotConverged {
			tst.Errorf("φ=%v did not converge\n", φ)
			return
		}
		Ku, _, _, err := bounds.HS(1-φ, K0, G0, Kw, Gw, true)
		if err != nil {
			tst.Errorf("HS failed: %v\n", err)
			return
		}
		Kl, _, _, err := bounds.HS(1-φ, K0, G0, Kw, Gw, false)
		if err != nil {
			tst.Errorf("HS failed: %v\n", err)
			return
		}
		io.Pforan("φ=%v: HS-=%v K=%v HS+=%v G=%v\n", φ, Kl, Keff, Ku, Geff)
		if Keff < Kl-1e-9 || Keff > Ku+1e-9 {
			tst.Errorf("φ=%v: Keff=%v outside HS bounds [%v,%v]\n", φ, Keff, Kl, Ku)
			return
		}
		if Geff < 0 || Geff > G0 {
			tst.Errorf("φ=%v: Geff=%v unphysical\n", φ, Geff)
			return
		}
	}
}

func Test_berryman03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("berryman03. Keff non-increasing in soft-phase fraction")

	K0, G0 := 37.0, 44.0
	Kw, Gw := 2.2, 0.0
	prev := math.Inf(1)
	for _, φ := range utl.LinSpace(0.05, 0.45, 9) {
		f := []float64{1 - φ, φ}
		Keff, _, _, err := Berryman(f, []float64{K0, Kw}, []float64{G0, Gw}, []float64{1, 1}, 0, 0)
		if err != nil {
			tst.Errorf("Berryman failed: %v\n", err)
			return
		}
		if Keff > prev+1e-10 {
			tst.Errorf("Keff=%v increased while soft fraction grew\n", Keff)
			return
		}
		prev = Keff
	}
}

func Test_berryman04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("berryman04. spheroid factors reach the sphere limit")

	// the oblate-spheroid branch must join the sphere closed form
	// continuously at α→1, for fluid and for stiff inclusions alike
	cases := [][]float64{
		{37, 44, 2.2, 0}, // water inclusion in quartz
		{37, 44, 75, 31}, // stiff inclusion in quartz
	}
	for _, c := range cases {
		Km, Gm, Ki, Gi := c[0], c[1], c[2], c[3]
		Ps, Qs, err := PQ(Km, Gm, Ki, Gi, 1)
		if err != nil {
			tst.Errorf("PQ failed: %v\n", err)
			return
		}
		Po, Qo, err := PQ(Km, Gm, Ki, Gi, 0.999)
		if err != nil {
			tst.Errorf("PQ failed: %v\n", err)
			return
		}
		io.Pforan("Ki=%v Gi=%v: sphere P=%v Q=%v  α=0.999 P=%v Q=%v\n", Ki, Gi, Ps, Qs, Po, Qo)
		chk.Scalar(tst, "P", 1e-5, Po, Ps)
		chk.Scalar(tst, "Q", 1e-5, Qo, Qs)
	}
}

func Test_dilute01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dilute01. crack models agree at low crack density")

	Ks, Gs := 40.0, 30.0
	for _, ξ := range []float64{0.001, 0.005, 0.01} {
		Kob, Gob := OConnellBudiansky(Ks, Gs, ξ)
		Kdc, Gdc := DiluteCrack(Ks, Gs, ξ)
		io.Pf("ξ=%6.3f  OB K=%8.4f G=%8.4f   dilute K=%8.4f G=%8.4f\n", ξ, Kob, Gob, Kdc, Gdc)
		chk.Scalar(tst, "K", 0.05, Kob, Kdc)
		chk.Scalar(tst, "G", 0.05, Gob, Gdc)
	}
}
