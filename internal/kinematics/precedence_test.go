package kinematics

import (
	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Presence patterns that satisfy more than one formula must always
// resolve to the earliest branch; these specs pin the order down.
var _ = ginkgo.Describe("branch precedence", func() {
	ginkgo.Describe("equation of motion", func() {
		var rule *EquationOfMotion

		ginkgo.BeforeEach(func() {
			rule = NewEquationOfMotion()
		})

		ginkgo.It("prefers v = u + at over v² = u² + 2as when solving final velocity", func() {
			// u, a, t and s all known except v: both formula 1 and
			// formula 3 have exactly one absent among their four
			in := eqInput(eqValues{u: f(0), a: f(2), t: f(3), s: f(9)})
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaVUAT))
			Expect(res.Values[FinalVelocity]).To(BeNumerically("~", 6, 1e-9))
		})

		ginkgo.It("prefers v = u + at over s = ut + 0.5at² when solving acceleration", func() {
			in := eqInput(eqValues{u: f(0), v: f(6), t: f(3), s: f(9)})
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaVUAT))
			Expect(res.Values).To(HaveKey(Acceleration))
		})

		ginkgo.It("solves final velocity first when both it and distance are unknown", func() {
			// u, a, t known with v and s absent satisfies formula 1
			// (find v) and formula 2 (find s); formula 1 wins
			in := eqInput(eqValues{u: f(2), t: f(3), a: f(2)})
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaVUAT))
			Expect(res.Values[FinalVelocity]).To(BeNumerically("~", 8, 1e-9))
			Expect(res.Values).NotTo(HaveKey(Distance))
		})

		ginkgo.It("reaches s = ut + 0.5at² only when distance is the sole unknown", func() {
			in := eqInput(eqValues{v: f(8), u: f(2), t: f(3), a: f(2)})
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaSUT))
			Expect(res.Values[Distance]).To(BeNumerically("~", 15, 1e-9))
		})

		ginkgo.It("solves time first when both it and distance are unknown", func() {
			// v, u, a known with t and s absent: formula 1 (find t)
			// shadows formula 3 (find s)
			in := eqInput(eqValues{v: f(5), u: f(3), a: f(2)})
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaVUAT))
			Expect(res.Values[Time]).To(BeNumerically("~", 1, 1e-9))
			Expect(res.Values).NotTo(HaveKey(Distance))
		})

		ginkgo.It("falls through to v² = u² + 2as when time is also unknown", func() {
			in := eqInput(eqValues{u: f(3), a: f(2), s: f(4)})
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaV2U2))
			Expect(res.Values[FinalVelocity]).To(BeNumerically("~", 5, 1e-9))
		})

		ginkgo.It("rejects the negative square root instead of returning NaN", func() {
			in := eqInput(eqValues{u: f(3), a: f(-10), s: f(5)})
			_, err := rule.Solve(in)
			Expect(err).To(MatchError(ErrDomain))
		})
	})

	ginkgo.Describe("free fall", func() {
		var rule *FreeFall

		ginkgo.BeforeEach(func() {
			rule = NewFreeFall()
		})

		ginkgo.It("uses v = gt, not v² = 2gh, when time is known", func() {
			in := fallInput(nil, f(1000), f(2))
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaVGT))
			Expect(res.Values[FinalVelocity]).To(BeNumerically("~", 19.6, 1e-9))
		})

		ginkgo.It("uses v = gt, not h = 0.5gt², when solving time from velocity", func() {
			in := fallInput(f(19.6), f(1000), nil)
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaVGT))
			Expect(res.Values[Time]).To(BeNumerically("~", 2, 1e-9))
		})

		ginkgo.It("uses v² = 2gh when height is the unknown", func() {
			in := fallInput(f(19.6), nil, f(2))
			res, err := rule.Solve(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Formula).To(Equal(FormulaV2GH))
			Expect(res.Values[Height]).To(BeNumerically("~", 19.6, 1e-9))
		})
	})
})
