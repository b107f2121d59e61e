package problems

import "math"

// catalog returns the builtin problems. Root references are quoted to the
// precision they are known at; solvers are expected to beat them.
func catalog() []Problem {
	sech2 := func(x float64) float64 {
		t := math.Tanh(x)
		return 1 - t*t
	}

	return []Problem{
		{
			Name:   "line",
			Desc:   "0.72x - 1",
			F:      func(x float64) float64 { return 0.72*x - 1 },
			Deriv:  func(x float64) float64 { return 0.72 },
			Deriv2: func(x float64) float64 { return 0 },
			Lo:     -5, Hi: 5,
			Degree: 4,
			Roots:  []float64{1 / 0.72},
		},
		{
			Name:   "quad",
			Desc:   "0.72x^2 - 1",
			F:      func(x float64) float64 { return 0.72*x*x - 1 },
			Deriv:  func(x float64) float64 { return 1.44 * x },
			Deriv2: func(x float64) float64 { return 1.44 },
			Lo:     -1, Hi: 5,
			Degree: 4,
			Roots:  []float64{math.Sqrt(1 / 0.72)},
		},
		{
			Name:   "cubic",
			Desc:   "x^3 - x + 0.5",
			F:      func(x float64) float64 { return x*x*x - x + 0.5 },
			Deriv:  func(x float64) float64 { return 3*x*x - 1 },
			Deriv2: func(x float64) float64 { return 6 * x },
			Lo:     -2, Hi: 2,
			Degree: 6,
			Roots:  []float64{-1.1914879},
		},
		{
			Name:   "xexp",
			Desc:   "x*e^x - 1",
			F:      func(x float64) float64 { return x*math.Exp(x) - 1 },
			Deriv:  func(x float64) float64 { return (x + 1) * math.Exp(x) },
			Deriv2: func(x float64) float64 { return (x + 2) * math.Exp(x) },
			Lo:     0, Hi: 2,
			Degree: 8,
			Roots:  []float64{0.5671432904097838}, // Omega constant W(1)
		},
		{
			Name:   "kepler",
			Desc:   "x - sin(x) - 1.2",
			F:      func(x float64) float64 { return x - math.Sin(x) - 1.2 },
			Deriv:  func(x float64) float64 { return 1 - math.Cos(x) },
			Deriv2: math.Sin,
			Lo:     0, Hi: 2 * math.Pi,
			Degree: 10,
			Roots:  []float64{2.0754},
		},
		{
			Name: "kepler_scaled",
			Desc: "(x/1e6) - sin(x/1e6) - 1.2, a badly scaled variant",
			F:    func(x float64) float64 { return x/1e6 - math.Sin(x/1e6) - 1.2 },
			Deriv: func(x float64) float64 {
				return (1 - math.Cos(x/1e6)) / 1e6
			},
			Deriv2: func(x float64) float64 { return math.Sin(x/1e6) / 1e12 },
			Lo:     0, Hi: 2e6 * math.Pi,
			Degree: 10,
			Roots:  []float64{2.0754e6},
		},
		{
			Name:   "flat11",
			Desc:   "-x^11 + 1e-10, nearly flat through its root",
			F:      func(x float64) float64 { return -math.Pow(x, 11) + 1e-10 },
			Deriv:  func(x float64) float64 { return -11 * math.Pow(x, 10) },
			Deriv2: func(x float64) float64 { return -110 * math.Pow(x, 9) },
			Lo:     -1, Hi: 1,
			Degree: 12,
			Roots:  []float64{0.1232847},
		},
		{
			Name: "wavy",
			Desc: "sin(20x) + 10*tanh(x) + 1",
			F: func(x float64) float64 {
				return math.Sin(20*x) + 10*math.Tanh(x) + 1
			},
			Deriv: func(x float64) float64 {
				return 20*math.Cos(20*x) + 10*sech2(x)
			},
			Deriv2: func(x float64) float64 {
				return -400*math.Sin(20*x) - 20*sech2(x)*math.Tanh(x)
			},
			Lo: -1, Hi: 1,
			Degree: 48,
			Roots:  []float64{-0.0347},
		},
		{
			Name:   "sine",
			Desc:   "sin(x)",
			F:      math.Sin,
			Deriv:  math.Cos,
			Deriv2: func(x float64) float64 { return -math.Sin(x) },
			Lo:     0, Hi: 2 * math.Pi,
			Degree: 40,
			Roots:  []float64{0, math.Pi, 2 * math.Pi},
		},
		{
			Name:   "parabola",
			Desc:   "(x-2)^2",
			F:      func(x float64) float64 { return (x - 2) * (x - 2) },
			Deriv:  func(x float64) float64 { return 2 * (x - 2) },
			Deriv2: func(x float64) float64 { return 2 },
			Lo:     0, Hi: 3,
			Degree: 4,
			MinAt:  2,
			HasMin: true,
		},
		{
			Name:   "expquad",
			Desc:   "e^x + x^2",
			F:      func(x float64) float64 { return math.Exp(x) + x*x },
			Deriv:  func(x float64) float64 { return math.Exp(x) + 2*x },
			Deriv2: func(x float64) float64 { return math.Exp(x) + 2 },
			Lo:     -2, Hi: 2,
			Degree: 16,
			MinAt:  -0.35173371124919584,
			HasMin: true,
		},
	}
}
