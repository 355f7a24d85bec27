// core/integrate/rules.go
// Nested Gauss–Kronrod node/weight tables on the canonical interval [-1, 1].
// Values from the QUADPACK dqk15/dqk21 tables, rounded to double precision.
//
// Layout: xgk lists every Kronrod node in ascending order; wgk the Kronrod
// weights; wg the embedded Gauss weights, zero at Kronrod-only nodes (the
// even indices). Tables are package-level constants in all but name and are
// never mutated.

package integrate

// gkRule is one nested Gauss–Kronrod pair. The Kronrod sum gives the
// subinterval estimate; the embedded Gauss sum exists only to price the
// local error (see eval.go).
type gkRule struct {
	xgk []float64 // nodes, ascending
	wgk []float64 // Kronrod weights
	wg  []float64 // embedded Gauss weights, zero-padded
}

// 15-point Kronrod with embedded 7-point Gauss. Used after an
// infinite-bound substitution (see transform.go).
var gk15 = gkRule{
	xgk: []float64{
		-0.9914553711208126,
		-0.9491079123427585,
		-0.8648644233597691,
		-0.7415311855993944,
		-0.5860872354676911,
		-0.4058451513773972,
		-0.2077849550078985,
		0.0,
		0.2077849550078985,
		0.4058451513773972,
		0.5860872354676911,
		0.7415311855993944,
		0.8648644233597691,
		0.9491079123427585,
		0.9914553711208126,
	},
	wgk: []float64{
		0.022935322010529225,
		0.06309209262997855,
		0.10479001032225018,
		0.14065325971552592,
		0.1690047266392679,
		0.19035057806478541,
		0.20443294007529889,
		0.20948214108472783,
		0.20443294007529889,
		0.19035057806478541,
		0.1690047266392679,
		0.14065325971552592,
		0.10479001032225018,
		0.06309209262997855,
		0.022935322010529225,
	},
	wg: []float64{
		0.0,
		0.12948496616886969,
		0.0,
		0.27970539148927667,
		0.0,
		0.38183005050511894,
		0.0,
		0.41795918367346939,
		0.0,
		0.38183005050511894,
		0.0,
		0.27970539148927667,
		0.0,
		0.12948496616886969,
		0.0,
	},
}

// 21-point Kronrod with embedded 10-point Gauss. The finite-bounds rule.
var gk21 = gkRule{
	xgk: []float64{
		-0.9956571630258081,
		-0.9739065285171717,
		-0.9301574913557082,
		-0.8650633666889845,
		-0.7808177265864169,
		-0.6794095682990244,
		-0.5627571346686047,
		-0.4333953941292472,
		-0.2943928627014602,
		-0.1488743389816312,
		0.0,
		0.1488743389816312,
		0.2943928627014602,
		0.4333953941292472,
		0.5627571346686047,
		0.6794095682990244,
		0.7808177265864169,
		0.8650633666889845,
		0.9301574913557082,
		0.9739065285171717,
		0.9956571630258081,
	},
	wgk: []float64{
		0.011694638867371874,
		0.032558162307964727,
		0.054755896574351996,
		0.075039674810919953,
		0.093125454583697606,
		0.10938715880229764,
		0.12349197626206585,
		0.13470921731147333,
		0.14277593857706008,
		0.14773910490133849,
		0.14944555400291691,
		0.14773910490133849,
		0.14277593857706008,
		0.13470921731147333,
		0.12349197626206585,
		0.10938715880229764,
		0.093125454583697606,
		0.075039674810919953,
		0.054755896574351996,
		0.032558162307964727,
		0.011694638867371874,
	},
	wg: []float64{
		0.0,
		0.06667134430868814,
		0.0,
		0.14945134915058059,
		0.0,
		0.21908636251598204,
		0.0,
		0.26926671930999636,
		0.0,
		0.29552422471475287,
		0.0,
		0.29552422471475287,
		0.0,
		0.26926671930999636,
		0.0,
		0.21908636251598204,
		0.0,
		0.14945134915058059,
		0.0,
		0.06667134430868814,
		0.0,
	},
}
