package cheb_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/univar/cheb"
	"github.com/san-kum/univar/solve"
)

func defaultPolicy() solve.Policy {
	return solve.Policy{Tolerance: 1e-12, MaxIterations: 200}
}

var _ = Describe("Series", func() {
	Describe("construction", func() {
		It("rejects a reversed domain", func() {
			_, err := cheb.New(math.Sin, 1, 0, 8)
			Expect(err).To(MatchError(solve.ErrDomain))
		})

		It("rejects an empty domain", func() {
			_, err := cheb.New(math.Sin, 1, 1, 8)
			Expect(err).To(MatchError(solve.ErrDomain))
		})

		It("rejects degree zero", func() {
			_, err := cheb.New(math.Sin, 0, 1, 0)
			Expect(err).To(MatchError(solve.ErrDomain))
		})

		It("rejects a function with non-finite samples", func() {
			f := func(x float64) float64 { return math.NaN() }
			_, err := cheb.New(f, 0, 1, 8)
			Expect(err).To(MatchError(solve.ErrDomain))
		})

		It("rejects a function with a pole on a sample node", func() {
			// The midpoint of the domain is always a sample node.
			f := func(x float64) float64 { return 1 / (x - 0.5) }
			_, err := cheb.New(f, 0, 1, 8)
			Expect(err).To(MatchError(solve.ErrDomain))
		})

		It("reports its domain", func() {
			s, err := cheb.New(math.Sin, 0, math.Pi, 16)
			Expect(err).ToNot(HaveOccurred())
			lo, hi := s.Domain()
			Expect(lo).To(Equal(0.0))
			Expect(hi).To(Equal(math.Pi))
		})

		It("trims noise coefficients of a low-degree polynomial", func() {
			f := func(x float64) float64 { return 3*x*x - 1 }
			s, err := cheb.New(f, -1, 1, 12)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Degree()).To(Equal(2))
		})
	})

	Describe("evaluation", func() {
		It("reproduces sin to near machine precision", func() {
			s, err := cheb.New(math.Sin, 0, math.Pi, 20)
			Expect(err).ToNot(HaveOccurred())

			Expect(s.Eval(math.Pi / 2)).To(BeNumerically("~", 1.0, 1e-12))
			for _, x := range []float64{0.1, 0.7, 1.9, 3.0} {
				Expect(s.Eval(x)).To(BeNumerically("~", math.Sin(x), 1e-12))
			}
		})

		It("reproduces exp on a shifted domain", func() {
			s, err := cheb.New(math.Exp, -1, 2, 24)
			Expect(err).ToNot(HaveOccurred())
			for _, x := range []float64{-0.9, 0, 0.5, 1.99} {
				Expect(s.Eval(x)).To(BeNumerically("~", math.Exp(x), 1e-11))
			}
		})

		It("is exact for a linear function", func() {
			f := func(x float64) float64 { return 2*x + 1 }
			s, err := cheb.New(f, -3, 5, 6)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Degree()).To(Equal(1))
			Expect(s.Eval(0.25)).To(BeNumerically("~", 1.5, 1e-13))
		})

		It("round-trips its own sample nodes", func() {
			lo, hi, n := 0.0, 2*math.Pi, 40
			s, err := cheb.New(math.Sin, lo, hi, n)
			Expect(err).ToNot(HaveOccurred())
			for k := 0; k <= n; k++ {
				x := lo + 0.5*(hi-lo)*(1+math.Cos(math.Pi*float64(k)/float64(n)))
				Expect(s.Eval(x)).To(BeNumerically("~", math.Sin(x), 1e-10))
			}
		})

		It("returns an independent coefficient copy", func() {
			s, err := cheb.New(math.Sin, 0, 1, 8)
			Expect(err).ToNot(HaveOccurred())
			c := s.Coeffs()
			c[0] = 1e9
			Expect(s.Coeffs()[0]).ToNot(Equal(1e9))
		})
	})

	Describe("root extraction", func() {
		It("finds all three roots of sin on [0, 2pi]", func() {
			s, err := cheb.New(math.Sin, 0, 2*math.Pi, 40)
			Expect(err).ToNot(HaveOccurred())

			rs, err := s.Roots(defaultPolicy())
			Expect(err).ToNot(HaveOccurred())
			Expect(rs).To(HaveLen(3))
			Expect(rs[0]).To(BeNumerically("~", 0, 1e-8))
			Expect(rs[1]).To(BeNumerically("~", math.Pi, 1e-8))
			Expect(rs[2]).To(BeNumerically("~", 2*math.Pi, 1e-8))
		})

		It("returns roots in ascending order", func() {
			f := func(x float64) float64 { return math.Sin(3 * x) }
			s, err := cheb.New(f, 0.1, 3, 32)
			Expect(err).ToNot(HaveOccurred())

			rs, err := s.Roots(defaultPolicy())
			Expect(err).ToNot(HaveOccurred())
			Expect(len(rs)).To(BeNumerically(">=", 2))
			for i := 1; i < len(rs); i++ {
				Expect(rs[i]).To(BeNumerically(">", rs[i-1]))
			}
			for _, r := range rs {
				Expect(s.Eval(r)).To(BeNumerically("~", 0, 1e-8))
			}
		})

		It("finds the single root of a quadratic", func() {
			f := func(x float64) float64 { return 0.72*x*x - 1 }
			s, err := cheb.New(f, -1, 5, 8)
			Expect(err).ToNot(HaveOccurred())

			rs, err := s.Roots(defaultPolicy())
			Expect(err).ToNot(HaveOccurred())
			Expect(rs).To(HaveLen(1))
			Expect(rs[0]).To(BeNumerically("~", math.Sqrt(1/0.72), 1e-9))
		})

		It("solves a linear series directly", func() {
			f := func(x float64) float64 { return 2*x - 1 }
			s, err := cheb.New(f, 0, 1, 4)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Degree()).To(Equal(1))

			rs, err := s.Roots(defaultPolicy())
			Expect(err).ToNot(HaveOccurred())
			Expect(rs).To(HaveLen(1))
			Expect(rs[0]).To(BeNumerically("~", 0.5, 1e-12))
		})

		It("returns nothing for a sign-definite function", func() {
			f := func(x float64) float64 { return x*x + 1 }
			s, err := cheb.New(f, -1, 1, 8)
			Expect(err).ToNot(HaveOccurred())

			rs, err := s.Roots(defaultPolicy())
			Expect(err).ToNot(HaveOccurred())
			Expect(rs).To(BeEmpty())
		})

		It("returns nothing for a constant series", func() {
			f := func(x float64) float64 { return 2.0 }
			s, err := cheb.New(f, 0, 1, 6)
			Expect(err).ToNot(HaveOccurred())

			rs, err := s.Roots(defaultPolicy())
			Expect(err).ToNot(HaveOccurred())
			Expect(rs).To(BeEmpty())
		})

		It("handles a linear series whose root is outside the domain", func() {
			f := func(x float64) float64 { return x - 10 }
			s, err := cheb.New(f, 0, 1, 4)
			Expect(err).ToNot(HaveOccurred())

			rs, err := s.Roots(defaultPolicy())
			Expect(err).ToNot(HaveOccurred())
			Expect(rs).To(BeEmpty())
		})

		It("separates clustered roots by subdividing", func() {
			f := func(x float64) float64 { return (x - 0.41) * (x - 0.47) * (x - 0.53) }
			s, err := cheb.New(f, 0, 1, 8)
			Expect(err).ToNot(HaveOccurred())

			rs, err := s.Roots(defaultPolicy())
			Expect(err).ToNot(HaveOccurred())
			Expect(rs).To(HaveLen(3))
			Expect(rs[0]).To(BeNumerically("~", 0.41, 1e-8))
			Expect(rs[1]).To(BeNumerically("~", 0.47, 1e-8))
			Expect(rs[2]).To(BeNumerically("~", 0.53, 1e-8))
		})

		It("rejects an invalid policy", func() {
			s, err := cheb.New(math.Sin, 0, 1, 8)
			Expect(err).ToNot(HaveOccurred())

			_, err = s.Roots(solve.Policy{Tolerance: 0, MaxIterations: 100})
			Expect(err).To(MatchError(solve.ErrDomain))
		})
	})
})
