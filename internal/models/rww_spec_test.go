package models

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurodyn/internal/neuro"
)

var _ = Describe("ReducedWongWang kernel", func() {
	var m *ReducedWongWang

	BeforeEach(func() {
		m = NewReducedWongWang()
	})

	Describe("coupling channel", func() {
		It("raises the derivative with increasing afferent input", func() {
			state, weak := singleNode(0.3, 0.0)
			_, strong := singleNode(0.3, 0.5)

			dWeak := m.Dfun(state, weak, neuro.Scalar(0)).At(0, 0, 0)
			dStrong := m.Dfun(state, strong, neuro.Scalar(0)).At(0, 0, 0)

			Expect(dStrong).To(BeNumerically(">", dWeak))
		})

		It("treats local coupling as the same current as network coupling", func() {
			state, coupled := singleNode(0.3, 0.2)
			_, uncoupled := singleNode(0.3, 0.0)

			viaNetwork := m.Dfun(state, coupled, neuro.Scalar(0)).At(0, 0, 0)
			viaLocal := m.Dfun(state, uncoupled, neuro.Scalar(0.2)).At(0, 0, 0)

			Expect(viaLocal).To(BeNumerically("~", viaNetwork, 1e-14))
		})
	})

	Describe("mode axis", func() {
		It("evaluates modes independently", func() {
			state := neuro.NewField(1, 2, 3)
			coupling := neuro.NewField(1, 2, 3)
			for n := 0; n < 2; n++ {
				for k := 0; k < 3; k++ {
					state.Set(0, n, k, 0.2+0.1*float64(k))
				}
			}

			out := m.Dfun(state, coupling, neuro.Scalar(0))

			for k := 0; k < 3; k++ {
				s1, c1 := singleNode(state.At(0, 0, k), 0)
				want := m.Dfun(s1, c1, neuro.Scalar(0)).At(0, 0, 0)
				Expect(out.At(0, 0, k)).To(Equal(want))
				Expect(out.At(0, 1, k)).To(Equal(want))
			}
		})
	})

	Describe("buffer reuse", func() {
		It("gives identical results through DfunInto and Dfun", func() {
			state := neuro.NewField(1, 4, 2)
			coupling := neuro.NewField(1, 4, 2)
			for i, data := 0, state.Data(); i < len(data); i++ {
				data[i] = 0.05 * float64(i)
			}

			fresh := m.Dfun(state, coupling, neuro.Scalar(0.01))

			reused := neuro.NewField(1, 4, 2)
			reused.Fill(99) // stale values must be fully overwritten
			Expect(m.DfunInto(reused, state, coupling, neuro.Scalar(0.01))).To(Succeed())

			Expect(reused.Data()).To(Equal(fresh.Data()))
		})
	})

	Describe("parallel evaluation", func() {
		It("matches the serial kernel over node partitions", func() {
			const nodes = 300
			state := neuro.NewField(1, nodes, 1)
			coupling := neuro.NewField(1, nodes, 1)
			for n := 0; n < nodes; n++ {
				state.Set(0, n, 0, float64(n)/nodes)
				coupling.Set(0, n, 0, 0.001*float64(n))
			}

			serial := neuro.NewField(1, nodes, 1)
			Expect(m.DfunInto(serial, state, coupling, neuro.Scalar(0))).To(Succeed())

			par := neuro.NewField(1, nodes, 1)
			Expect(neuro.DfunParallel(m, par, state, coupling, neuro.Scalar(0), 32)).To(Succeed())

			Expect(par.Data()).To(Equal(serial.Data()))
		})
	})
})
