package solver

import "math"

// sodExact evaluates the exact Riemann solution for the classic Sod shock
// tube (left state rho=1,p=1,u=0; right state rho=0.125,p=0.1,u=0; membrane
// at x=0.5, gamma=1.4) at position x and time t>0. Adapted from
// sod_shock_tube/analytic_sod.go's SOD_calc/fzero/sod_func, generalized
// from a fixed sample-point table to a plain function of (x,t) so
// internal/solver's end-to-end test can sample it at the grid's own node
// coordinates, and rewritten to use math.Pow directly instead of pulling in
// the teacher's large linear-algebra utils package for one call.
func sodExact(x, t float64) (rho, p, u float64) {
	const (
		x0               = 0.5
		rhoL, pL, uL     = 1.0, 1.0, 0.0
		rhoR, pR, uR     = 0.125, 0.1, 0.0
		gamma            = 1.4
	)
	mu := math.Sqrt((gamma - 1) / (gamma + 1))
	cL := math.Sqrt(gamma * pL / rhoL)

	pPost := sodPressureRoot(rhoR, pR, gamma, mu)
	vPost := 2 * (math.Sqrt(gamma) / (gamma - 1)) * (1 - math.Pow(pPost/pL, (gamma-1)/(2*gamma)))
	rhoPost := rhoR * ((pPost/pR + mu*mu) / (1 + mu*mu*(pPost/pR)))
	vShock := vPost * (rhoPost / rhoR) / (rhoPost/rhoR - 1)
	rhoMiddle := rhoL * math.Pow(pPost/pL, 1/gamma)

	x1 := x0 - cL*t
	c2 := cL - 0.5*(gamma-1)*vPost
	x2 := x0 + t*(vPost-c2)
	x3 := x0 + vPost*t
	x4 := x0 + vShock*t

	switch {
	case x < x1:
		return rhoL, pL, uL
	case x <= x2:
		c := mu*mu*((x0-x)/t) + (1-mu*mu)*cL
		rho = rhoL * math.Pow(c/cL, 2/(gamma-1))
		p = pL * math.Pow(rho/rhoL, gamma)
		u = (1 - mu*mu) * (-(x0-x)/t + cL)
		return rho, p, u
	case x <= x3:
		return rhoMiddle, pPost, vPost
	case x <= x4:
		return rhoPost, pPost, vPost
	default:
		return rhoR, pR, uR
	}
}

// sodPressureRoot finds the post-shock pressure via the Sod shock tube's
// implicit pressure-ratio equation (the Rankine-Hugoniot shock relation
// combined with the expansion-fan Riemann invariant), the same
// fzero/sod_func Newton-secant iteration as the teacher's, rewritten as a
// closure over gamma/mu instead of fixed package-level constants. The
// teacher's sod_shock_tube/analytic_sod.go:103 squares (1-mu2) in this
// residual's square root term; that is not the correct relation (it fails
// its own shock's Rankine-Hugoniot jump check), so the term is taken to the
// first power here, matching the standard closed-form Sod solution.
func sodPressureRoot(rhoR, pR, gamma, mu float64) float64 {
	mu2 := mu * mu
	f := func(p float64) float64 {
		return (p-pR)*math.Sqrt((1-mu2)/(rhoR*(p+mu2*pR))) -
			2*(math.Sqrt(gamma)/(gamma-1))*(1-math.Pow(p, (gamma-1)/(2*gamma)))
	}

	const tol = 1e-8
	start := math.Pi
	startOld := start / 2
	res := f(startOld)
	for math.Abs(res) > tol {
		resNew := f(start)
		deriv := (start - startOld) / (resNew - res)
		startNew := math.Abs(start - 0.01*f(start)/deriv)
		startOld = start
		start = startNew
		res = resNew
	}
	return start
}
