package physics_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/oscillator/internal/dynamo"
	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/physics"
	"github.com/san-kum/oscillator/internal/sim"
)

func run(p physics.Params) *sim.Result {
	osc, err := physics.New(p)
	Expect(err).NotTo(HaveOccurred())

	res, err := sim.New(osc).Run(context.Background(), sim.UntilDone[*physics.DampedOscillator])
	Expect(err).NotTo(HaveOccurred())
	return res
}

func energies(c dynamo.Coefficients, snaps []dynamo.Snapshot) []float64 {
	out := make([]float64, len(snaps))
	for i, s := range snaps {
		out[i] = c.Energy(s.Position, s.Velocity)
	}
	return out
}

func maxDrift(e0 float64, es []float64) float64 {
	var worst float64
	for _, e := range es {
		worst = math.Max(worst, math.Abs(e-e0))
	}
	return worst
}

var _ = Describe("DampedOscillator", func() {
	methods := integrators.Methods()

	Describe("undamped motion", func() {
		for _, m := range methods {
			m := m
			It("reduces energy drift as the step shrinks with "+m.String(), func() {
				var drifts []float64
				for _, dt := range []float64{0.01, 0.005, 0.0025} {
					p := physics.Params{
						Mass: 1, InitialOffset: 1, Spring: 1,
						TimeStep: dt, TotalTime: 10, Method: m,
					}
					res := run(p)
					drifts = append(drifts, maxDrift(0.5, energies(p.Coefficients(), res.Snapshots)))
				}
				Expect(drifts[1]).To(BeNumerically("<", drifts[0]))
				Expect(drifts[2]).To(BeNumerically("<", drifts[1]))
				Expect(drifts[0]).To(BeNumerically("<", 1e-3))
			})
		}

		It("returns to the start after one period and the schemes agree", func() {
			var runs []*sim.Result
			for _, m := range methods {
				res := run(physics.Params{
					Mass: 1, InitialOffset: 1, Spring: 1,
					TimeStep: 0.001, TotalTime: 6.283185, Method: m,
				})
				Expect(res.Snapshots).To(HaveLen(6284))

				last, ok := res.Final()
				Expect(ok).To(BeTrue())
				Expect(last.Position.X).To(BeNumerically("~", math.Cos(2*math.Pi), 1e-3))
				runs = append(runs, res)
			}

			for i := 999; i < 6284; i += 1000 {
				for _, r := range runs[1:] {
					Expect(r.Snapshots[i].Position.X).To(BeNumerically("~", runs[0].Snapshots[i].Position.X, 1e-3))
				}
			}
		})

		It("keeps a particle with no spring at rest", func() {
			for _, m := range methods {
				res := run(physics.Params{
					Mass: 3, InitialOffset: 2,
					TimeStep: 0.01, TotalTime: 2, Method: m,
				})
				for _, s := range res.Snapshots {
					Expect(s.Position.X).To(Equal(2.0))
					Expect(s.Velocity.X).To(Equal(0.0))
				}
			}
		})
	})

	Describe("damped motion", func() {
		p := physics.Params{
			Mass: 2, InitialOffset: 0.5, Spring: 4, Damping: 1,
			TimeStep: 0.01, TotalTime: 10,
		}

		for _, m := range methods {
			m := m
			It("dissipates energy with "+m.String(), func() {
				pm := p
				pm.Method = m
				res := run(pm)
				Expect(res.Snapshots).To(HaveLen(1000))

				e0 := pm.Coefficients().Energy(pm.InitialState().Position, pm.InitialState().Velocity)
				Expect(e0).To(BeNumerically("~", 0.5625, 1e-15))

				es := energies(pm.Coefficients(), res.Snapshots)
				// the first steps carry the bootstrap transient
				for i := 5; i < len(es); i++ {
					Expect(es[i]).To(BeNumerically("<=", es[i-1]+1e-12), "step %d", i+1)
				}
				Expect(es[len(es)-1]).To(BeNumerically("<", e0))
			})
		}

		It("tracks the closed-form solution", func() {
			sol := physics.Analytic(p.Coefficients(), p.InitialOffset, p.InitialVelocity())
			Expect(sol.Regime()).To(Equal(physics.Underdamped))

			for _, m := range methods {
				pm := p
				pm.Method = m
				res := run(pm)
				for i, s := range res.Snapshots {
					Expect(s.Position.X).To(BeNumerically("~", sol.Position(res.Times[i]), 1e-2))
				}
			}
		})
	})

	DescribeTable("records ceil(T/dt) snapshots",
		func(total, dt float64, want int) {
			for _, m := range methods {
				res := run(physics.Params{
					Mass: 1, InitialOffset: 1, Spring: 1, Damping: 0.2,
					TimeStep: dt, TotalTime: total, Method: m,
				})
				Expect(res.Snapshots).To(HaveLen(want))
				Expect(res.Times[len(res.Times)-1]).To(BeNumerically(">=", total))
			}
		},
		Entry("exact multiple", 1.0, 0.1, 10),
		Entry("non-multiple", 1.0, 0.3, 4),
		Entry("single step", 0.1, 0.1, 1),
		Entry("fine step", 10.0, 0.01, 1000),
	)

	DescribeTable("rejects invalid parameters for every scheme",
		func(modify func(p *physics.Params)) {
			for _, m := range methods {
				p := physics.Params{
					Mass: 1, InitialOffset: 1, Spring: 1,
					TimeStep: 0.1, TotalTime: 1, Method: m,
				}
				modify(&p)
				_, err := physics.New(p)
				Expect(err).To(MatchError(dynamo.ErrParameterBounds))
			}
		},
		Entry("zero mass", func(p *physics.Params) { p.Mass = 0 }),
		Entry("negative step", func(p *physics.Params) { p.TimeStep = -1 }),
		Entry("short run", func(p *physics.Params) { p.TotalTime = 0.01 }),
		Entry("nan spring", func(p *physics.Params) { p.Spring = math.NaN() }),
	)
})
