package statespace_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/poly"
	"github.com/san-kum/linsim/internal/statespace"
	"github.com/san-kum/linsim/internal/tf"
)

const tol = 1e-12

func rows(m *linalg.Matrix) [][]float64 {
	return m.RowsData()
}

func expectMatrix(m *linalg.Matrix, want [][]float64) {
	GinkgoHelper()
	Expect(m.Rows()).To(Equal(len(want)))
	for i := range want {
		Expect(m.Cols()).To(Equal(len(want[i])))
		for j := range want[i] {
			Expect(m.At(i, j)).To(BeNumerically("~", want[i][j], tol), "cell (%d,%d) of %v", i, j, rows(m))
		}
	}
}

var _ = Describe("Realize", func() {
	Context("second-order system 10/9 + 4/9 s over 1 - 2s + 3s^2", func() {
		var model *statespace.Model

		BeforeEach(func() {
			var err error
			model, err = statespace.Realize(tf.New([]float64{10.0 / 9, 4.0 / 9}, []float64{1, -2, 3}))
			Expect(err).NotTo(HaveOccurred())
		})

		It("builds the companion A matrix", func() {
			expectMatrix(model.A, [][]float64{
				{0, 1},
				{-1.0 / 3, 2.0 / 3},
			})
		})

		It("scales B by the leading denominator coefficient", func() {
			expectMatrix(model.B, [][]float64{{0}, {1.0 / 3}})
		})

		It("copies the numerator into C", func() {
			expectMatrix(model.C, [][]float64{{10.0 / 9, 4.0 / 9}})
		})

		It("leaves D zero", func() {
			expectMatrix(model.D, [][]float64{{0}})
		})

		It("reports consistent dimensions", func() {
			Expect(model.Order()).To(Equal(2))
			Expect(model.Inputs()).To(Equal(1))
			Expect(model.Outputs()).To(Equal(1))
			Expect(model.Validate()).To(Succeed())
		})
	})

	Context("first-order system 1/(1 + s)", func() {
		It("produces a 1x1 realization without a super-diagonal", func() {
			model, err := statespace.Realize(tf.New([]float64{1, 0}, []float64{1, 1}))
			Expect(err).NotTo(HaveOccurred())
			expectMatrix(model.A, [][]float64{{-1}})
			expectMatrix(model.B, [][]float64{{1}})
			expectMatrix(model.C, [][]float64{{1}})
			expectMatrix(model.D, [][]float64{{0}})
		})
	})

	Context("third-order system with a short numerator", func() {
		It("zero-pads C and fills the super-diagonal", func() {
			model, err := statespace.Realize(tf.New([]float64{5}, []float64{6, 11, 6, 2}))
			Expect(err).NotTo(HaveOccurred())
			expectMatrix(model.A, [][]float64{
				{0, 1, 0},
				{0, 0, 1},
				{-3, -5.5, -3},
			})
			expectMatrix(model.B, [][]float64{{0}, {0}, {0.5}})
			expectMatrix(model.C, [][]float64{{5, 0, 0}})
		})
	})

	Context("invalid transfer functions", func() {
		It("rejects a constant denominator", func() {
			_, err := statespace.Realize(tf.New([]float64{1}, []float64{2}))
			Expect(err).To(MatchError(statespace.ErrDegenerateDenominator))
		})

		It("rejects the zero denominator", func() {
			_, err := statespace.Realize(tf.New([]float64{1}, []float64{0, 0}))
			Expect(err).To(MatchError(statespace.ErrDegenerateDenominator))
		})

		It("rejects a biproper transfer function", func() {
			_, err := statespace.Realize(tf.New([]float64{1, 1}, []float64{2, 1}))
			Expect(err).To(MatchError(statespace.ErrNotStrictlyProper))
		})

		It("rejects an improper transfer function", func() {
			_, err := statespace.Realize(tf.New([]float64{1, 1, 1}, []float64{2, 1}))
			Expect(err).To(MatchError(statespace.ErrNotStrictlyProper))
		})

		It("wraps the polynomial division error for a zero leading coefficient", func() {
			Expect(statespace.ErrDivisionByZero).To(MatchError(poly.ErrDivisionByZero))
		})
	})

	It("realizes a linear ODE the same way as its transfer function", func() {
		g := tf.New([]float64{1, 2}, []float64{4, 3, 1})
		fromTF, err := statespace.Realize(g)
		Expect(err).NotTo(HaveOccurred())
		fromODE, err := statespace.RealizeODE(g.ODE())
		Expect(err).NotTo(HaveOccurred())
		Expect(fromODE.A.Equal(fromTF.A, 0)).To(BeTrue())
		Expect(fromODE.B.Equal(fromTF.B, 0)).To(BeTrue())
		Expect(fromODE.C.Equal(fromTF.C, 0)).To(BeTrue())
	})
})

var _ = Describe("Model.Output", func() {
	var model *statespace.Model

	BeforeEach(func() {
		var err error
		model, err = statespace.Realize(tf.New([]float64{10.0 / 9, 4.0 / 9}, []float64{1, -2, 3}))
		Expect(err).NotTo(HaveOccurred())
	})

	It("computes y = Cx + Du", func() {
		y, err := model.Output(linalg.Vector{9, 9}, linalg.Vector{1})
		Expect(err).NotTo(HaveOccurred())
		Expect(y).To(HaveLen(1))
		Expect(y[0]).To(BeNumerically("~", 14, tol))
	})

	It("includes a nonzero feedthrough", func() {
		model.D.Set(0, 0, 2)
		y, err := model.Output(linalg.Vector{0, 0}, linalg.Vector{3})
		Expect(err).NotTo(HaveOccurred())
		Expect(y[0]).To(BeNumerically("~", 6, tol))
	})

	It("rejects a state of the wrong length", func() {
		_, err := model.Output(linalg.Vector{1}, linalg.Vector{1})
		Expect(err).To(MatchError(statespace.ErrDimensionMismatch))
	})

	It("rejects an input of the wrong length", func() {
		_, err := model.Output(linalg.Vector{1, 1}, linalg.Vector{1, 2})
		Expect(err).To(MatchError(statespace.ErrDimensionMismatch))
	})

	It("maps a series of samples", func() {
		ys, err := model.OutputSeries(
			[]linalg.Vector{{0, 0}, {9, 0}},
			[]linalg.Vector{{1}, {1}},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(ys).To(HaveLen(2))
		Expect(ys[1][0]).To(BeNumerically("~", 10, tol))

		_, err = model.OutputSeries([]linalg.Vector{{0, 0}}, nil)
		Expect(err).To(MatchError(statespace.ErrDimensionMismatch))
	})
})
