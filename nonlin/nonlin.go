// Copyright 2016 The Rockphypy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nonlin implements scalar root finding for the implicit model
// equations. Two entry points are provided: Solve for a sign-changing
// bracket (guaranteed for continuous f) and Newton for an initial guess
// without a bracket. Both return the best iterate together with a
// convergence flag instead of failing, because elementwise batch calls
// must not abort on one bad row.
package nonlin

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// Result holds the outcome of a root search
type Result struct {
	Converged bool    // |f(x)| dropped below tolerance
	NumIter   int     // number of iterations used
	Residual  float64 // |f(x)| at the returned iterate
}

// Solve finds x in [lo,hi] with f(x)=0 given a sign-changing bracket.
// A secant step is tried first and replaced by bisection whenever it
// falls outside the current bracket, so the bracket always shrinks.
//  Input:
//   f     -- function to solve
//   lo,hi -- bracket with f(lo)*f(hi) <= 0
//   tol   -- tolerance on |f|
//   maxit -- iteration budget
//  Output:
//   x   -- root (or best iterate if not converged)
//   res -- convergence data
//   err -- invalid bracket
func Solve(f func(x float64) float64, lo, hi, tol float64, maxit int) (x float64, res Result, err error) {

	// endpoints
	fa, fb := f(lo), f(hi)
	if math.Abs(fa) < tol {
		return lo, Result{true, 0, math.Abs(fa)}, nil
	}
	if math.Abs(fb) < tol {
		return hi, Result{true, 0, math.Abs(fb)}, nil
	}
	if fa*fb > 0 {
		return lo, Result{false, 0, math.Abs(fa)}, chk.Err("invalid bracket: f(%g)=%g and f(%g)=%g have the same sign", lo, fa, hi, fb)
	}

	// iterations
	a, b := lo, hi
	x, res.Residual = a, math.Abs(fa)
	for it := 0; it < maxit; it++ {
		res.NumIter = it + 1

		// secant proposal; bisection if outside (a,b)
		x = b - fb*(b-a)/(fb-fa)
		if !(x > math.Min(a, b) && x < math.Max(a, b)) {
			x = 0.5 * (a + b)
		}
		fx := f(x)
		res.Residual = math.Abs(fx)
		if res.Residual < tol {
			res.Converged = true
			return
		}

		// update bracket
		if fa*fx < 0 {
			b, fb = x, fx
		} else {
			a, fa = x, fx
		}
		// collapsed bracket: the root is located to machine accuracy;
		// still report non-convergence if |f| stays above tolerance
		// (e.g. a jump discontinuity crossing zero)
		if math.Abs(b-a) < tol*1e-2 {
			res.Converged = res.Residual < tol
			return
		}
	}
	return
}

// Newton finds x with f(x)=0 from an initial guess, without a bracket.
// The slope is computed by central differences and steps are halved
// while they increase |f| (damping).
//  Input:
//   f     -- function to solve
//   x0    -- initial guess (physically motivated)
//   tol   -- tolerance on |f|
//   maxit -- iteration budget
//  Output:
//   x   -- root (or best iterate if not converged)
//   res -- convergence data
func Newton(f func(x float64) float64, x0, tol float64, maxit int) (x float64, res Result) {
	x = x0
	fx := f(x)
	res.Residual = math.Abs(fx)
	for it := 0; it < maxit; it++ {
		res.NumIter = it + 1
		if res.Residual < tol {
			res.Converged = true
			return
		}

		// slope; perturb x on flat spots
		h := 1e-6 * (1.0 + math.Abs(x))
		dfdx, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
			return f(t)
		}, x, h)
		if dfdx == 0 {
			x += h
			fx = f(x)
			res.Residual = math.Abs(fx)
			continue
		}

		// damped step
		Δx := -fx / dfdx
		xnew := x + Δx
		fnew := f(xnew)
		for nd := 0; nd < 20 && math.Abs(fnew) > res.Residual; nd++ {
			Δx *= 0.5
			xnew = x + Δx
			fnew = f(xnew)
		}
		x, fx = xnew, fnew
		res.Residual = math.Abs(fx)
	}
	res.Converged = res.Residual < tol
	return
}
