package rk

// Predefined tableaus, ported from the Butcher coefficients of the classic
// explicit Runge-Kutta family: the non-adaptive 4th order method, and three
// embedded pairs (Fehlberg's 4(5), Dormand-Prince's 5(4), and Fehlberg's
// 7(8)) used for adaptive step control. A further 10(12) pair from the same
// Fehlberg paper is deliberately not ported: the reference implementation
// this was built from never enabled its error estimate (guarded behind an
// always-false condition) and carries an unresolved sign discrepancy in one
// of its coefficients, so there is no trustworthy adaptive behavior to
// reproduce.

func row(vs ...float64) []float64 { return vs }

func concatRows(rows ...[]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

// RK4 is the classic non-adaptive 4-stage, 4th order method.
var RK4 = NewTableau(4,
	concatRows(
		row(0.5),
		row(0, 0.5),
		row(0, 0, 1),
	),
	[]float64{1. / 6., 1. / 3., 1. / 3., 1. / 6.},
	[]float64{0, 0.5, 0.5, 1},
)

// Fehlberg45 is the Runge-Kutta-Fehlberg 4(5) embedded pair (Table III,
// "Low-order classical Runge-Kutta formulas with stepsize control").
var Fehlberg45 = NewExtendedTableau(
	NewTableau(6,
		concatRows(
			row(1./4.),
			row(3./32., 9./32.),
			row(1932./2197., -7200./2197., 7296./2197.),
			row(439./216., -8., 3680./513., -845./4104.),
			row(-8./27., 2., -3544./2565., 1859./4104., -11./40.),
		),
		[]float64{16. / 135., 0, 6656. / 12825., 28561. / 56430., -9. / 50., 2. / 55.},
		[]float64{0, 1. / 4., 3. / 8., 12. / 13., 1, 0.5},
	),
	[]float64{25. / 216., 0, 1408. / 2565., 2197. / 4104., -1. / 5., 0},
)

// DormandPrince54 is the Dormand-Prince 5(4) embedded pair, the default
// solver behind MATLAB's ode45 and Simulink.
var DormandPrince54 = NewExtendedTableau(
	NewTableau(7,
		concatRows(
			row(1./5.),
			row(3./40., 9./40.),
			row(44./45., -56./15., 32./9.),
			row(19372./6561., -25360./2187., 64448./6561., -212./729.),
			row(9017./3168., -355./33., 46732./5247., 49./176., -5103./18656.),
			row(35./384., 0, 500./1113., 125./192., -2187./6784., 11./84.),
		),
		[]float64{35. / 384., 0, 500. / 1113., 125. / 192., -2187. / 6784., 11. / 84., 0},
		[]float64{0, 1. / 5., 3. / 10., 4. / 5., 8. / 9., 1, 1},
	),
	[]float64{5179. / 57600., 0, 7571. / 16695., 393. / 640., -92097. / 339200., 187. / 2100., 1. / 40.},
)

// Fehlberg78 is the Runge-Kutta-Fehlberg 7(8) embedded pair (Table X,
// "Classical Fifth, Sixth, Seventh and Eighth Order Runge-Kutta Formulas
// with Stepsize Control", Erwin Fehlberg).
var Fehlberg78 = buildFehlberg78()

func buildFehlberg78() ExtendedTableau[float64] {
	a := concatRows(
		row(2./27.),
		row(1./36., 1./12.),
		row(1./24., 0, 1./8.),
		row(5./12., 0, -25./16., 25./16.),
		row(1./20., 0, 0, 1./4., 1./5.),
		row(-25./108., 0, 0, 125./108., -65./27., 125./54.),
		row(31./300., 0, 0, 0, 61./225., -2./9., 13./900.),
		row(2., 0, 0, -53./6., 704./45., -107./9., 67./90., 3.),
		row(-91./108., 0, 0, 23./108., -976./135., 311./54., -19./60., 17./6., -1./12.),
		row(2383./4100., 0, 0, -341./164., 4496./1025., -301./82., 2133./4100., 45./82., 45./164., 18./41.),
		row(3./205., 0, 0, 0, 0, -6./41., -3./205., -3./41., 3./41., 6./41., 0),
		row(-1777./4100., 0, 0, -341./164., 4496./1025., -289./82., 2193./4100., 51./82., 33./164., 12./41., 0, 1),
	)
	c := []float64{0, 2. / 27., 1. / 9., 1. / 6., 5. / 12., 1. / 2., 5. / 6., 1. / 6., 2. / 3., 1. / 3., 1, 0, 1}
	b := []float64{
		41. / 840., 0, 0, 0, 0,
		34. / 105., 9. / 35., 9. / 35., 9. / 280., 9. / 280.,
		41. / 840., 0, 0,
	}
	bErr := make([]float64, 13)
	copy(bErr, b)
	bErr[0] = 41. / 420.
	bErr[10] = 41. / 420.
	bErr[11] = -41. / 840.
	bErr[12] = -41. / 840.
	base := NewTableau(13, a, b, c)
	return NewExtendedTableau(base, bErr)
}
