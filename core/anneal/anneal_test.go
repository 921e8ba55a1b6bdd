package anneal

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pcrgen/core/cost"
	"pcrgen/core/layout"
	"pcrgen/core/oligo"
	"pcrgen/core/rules"
)

// countBase penalises every occurrence of one base; it can always reach 0.
type countBase struct{ b byte }

func (c countBase) Name() string    { return "count_" + string(c.b) }
func (c countBase) Weight() float64 { return 1 }
func (c countBase) Evaluate(t layout.Template, _ rules.Config) rules.Outcome {
	return rules.Outcome{Penalty: float64(strings.Count(t.Fwd(), string(c.b)))}
}

// constant never improves.
type constant struct{}

func (constant) Name() string    { return "constant" }
func (constant) Weight() float64 { return 1 }
func (constant) Evaluate(layout.Template, rules.Config) rules.Outcome {
	return rules.Outcome{Penalty: 1}
}

func evaluator(rs ...rules.Rule) *cost.Evaluator {
	ev, err := cost.NewEvaluator(rules.DefaultConfig(), rs)
	Expect(err).NotTo(HaveOccurred())
	return ev
}

func defaultEvaluator() *cost.Evaluator {
	cfg := rules.DefaultConfig()
	cfg.PrimerMelt = 54.6
	ev, err := cost.NewEvaluator(cfg, rules.Default(nil))
	Expect(err).NotTo(HaveOccurred())
	return ev
}

var _ = Describe("Annealer", func() {
	var (
		ctx     context.Context
		regions layout.Regions
		opts    Options
	)

	BeforeEach(func() {
		ctx = context.Background()
		regions = layout.MustDeriveRegions(75, 22, 25, 3)
		opts = DefaultOptions()
		opts.Seed = 42
	})

	Context("with the default rule set", func() {
		It("reproduces the same template for the same seed", func() {
			a, err := New(defaultEvaluator(), regions, opts)
			Expect(err).NotTo(HaveOccurred())

			first, err := a.Run(ctx, oligo.Sequence{})
			Expect(err).NotTo(HaveOccurred())
			second, err := a.Run(ctx, oligo.Sequence{})
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Template.Seq).To(Equal(first.Template.Seq))
			Expect(second.Report.Total).To(Equal(first.Report.Total))
			Expect(second.Status).To(Equal(first.Status))
			Expect(first.Iterations).To(BeNumerically("<=", 10000))
			Expect(first.Template.Seq.Len()).To(Equal(75))
		})

		It("never reports worse than the starting point", func() {
			ev := defaultEvaluator()
			start := oligo.Random(rand.New(rand.NewSource(3)), 75)
			tpl, err := layout.New(start, regions)
			Expect(err).NotTo(HaveOccurred())
			initial := ev.Evaluate(tpl).Total

			opts.MaxIterations = 500
			a, err := New(ev, regions, opts)
			Expect(err).NotTo(HaveOccurred())
			res, err := a.Run(ctx, start)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Report.Total).To(BeNumerically("<=", initial))
			Expect(ev.Evaluate(res.Template)).To(Equal(res.Report))
		})

		It("gives different templates for different seeds", func() {
			opts.MaxIterations = 200
			a, err := New(defaultEvaluator(), regions, opts)
			Expect(err).NotTo(HaveOccurred())
			opts.Seed = 43
			b, err := New(defaultEvaluator(), regions, opts)
			Expect(err).NotTo(HaveOccurred())

			ra, _ := a.Run(ctx, oligo.Sequence{})
			rb, _ := b.Run(ctx, oligo.Sequence{})
			Expect(ra.Template.Seq).NotTo(Equal(rb.Template.Seq))
		})
	})

	DescribeTable("terminates within the iteration budget",
		func(budget int) {
			opts.MaxIterations = budget
			a, err := New(defaultEvaluator(), regions, opts)
			Expect(err).NotTo(HaveOccurred())
			res, err := a.Run(ctx, oligo.Sequence{})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Iterations).To(BeNumerically("<=", budget))
			Expect(res.Status).To(BeElementOf(Converged, Exhausted))
			Expect(res.Report.Total).To(BeNumerically(">=", 0))
			if res.Status == Converged {
				Expect(res.Report.Total).To(BeZero())
			}
		},
		Entry("no budget", 0),
		Entry("one step", 1),
		Entry("short run", 250),
	)

	It("converges when the cost can reach zero", func() {
		small := layout.MustDeriveRegions(20, 5, 4, 1)
		opts.MaxIterations = 20000
		a, err := New(evaluator(countBase{'A'}), small, opts)
		Expect(err).NotTo(HaveOccurred())

		res, err := a.Run(ctx, oligo.Sequence{})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Status).To(Equal(Converged))
		Expect(res.Converged()).To(BeTrue())
		Expect(res.Report.Total).To(BeZero())
		Expect(res.Template.Fwd()).NotTo(ContainSubstring("A"))
		Expect(res.Iterations).To(BeNumerically("<", 20000))
	})

	It("stops at the target cost", func() {
		small := layout.MustDeriveRegions(20, 5, 4, 1)
		opts.TargetCost = 5
		a, err := New(evaluator(countBase{'A'}), small, opts)
		Expect(err).NotTo(HaveOccurred())

		res, err := a.Run(ctx, oligo.MustParse(strings.Repeat("A", 20)))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Status).To(Equal(Converged))
		Expect(res.Report.Total).To(BeNumerically("<=", 5))
	})

	It("converges immediately on a compliant start", func() {
		small := layout.MustDeriveRegions(20, 5, 4, 1)
		a, err := New(evaluator(countBase{'A'}), small, opts)
		Expect(err).NotTo(HaveOccurred())

		res, err := a.Run(ctx, oligo.MustParse(strings.Repeat("C", 20)))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Status).To(Equal(Converged))
		Expect(res.Iterations).To(BeZero())
	})

	It("gives up after the stall limit", func() {
		small := layout.MustDeriveRegions(20, 5, 4, 1)
		opts.StallLimit = 50
		a, err := New(evaluator(constant{}), small, opts)
		Expect(err).NotTo(HaveOccurred())

		res, err := a.Run(ctx, oligo.Sequence{})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Status).To(Equal(Exhausted))
		Expect(res.Stalled).To(BeTrue())
		Expect(res.Iterations).To(Equal(50))
		Expect(res.Accepted).To(Equal(50))
	})

	It("cools geometrically down to the floor", func() {
		small := layout.MustDeriveRegions(20, 5, 4, 1)
		opts.MaxIterations = 100
		opts.Cooling = 0.5
		opts.CoolEvery = 10
		opts.MinTemperature = 0.01
		a, err := New(evaluator(constant{}), small, opts)
		Expect(err).NotTo(HaveOccurred())

		res, err := a.Run(ctx, oligo.Sequence{})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Temperature).To(BeNumerically("~", 0.01, 1e-12))

		opts.MaxIterations = 20
		a, err = New(evaluator(constant{}), small, opts)
		Expect(err).NotTo(HaveOccurred())
		res, err = a.Run(ctx, oligo.Sequence{})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Temperature).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("returns the best so far when cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		a, err := New(defaultEvaluator(), regions, opts)
		Expect(err).NotTo(HaveOccurred())

		res, err := a.Run(cctx, oligo.Sequence{})
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(res.Status).To(Equal(Cancelled))
		Expect(res.Iterations).To(BeZero())
		Expect(res.Template.Seq.Len()).To(Equal(75))
	})

	It("rejects a start that does not fit the layout", func() {
		a, err := New(defaultEvaluator(), regions, opts)
		Expect(err).NotTo(HaveOccurred())
		_, err = a.Run(ctx, oligo.MustParse("ACGT"))
		var le *layout.LayoutError
		Expect(errors.As(err, &le)).To(BeTrue())
	})

	DescribeTable("rejects invalid options",
		func(mod func(*Options), field string) {
			mod(&opts)
			_, err := New(defaultEvaluator(), regions, opts)
			var ce *rules.ConfigError
			Expect(errors.As(err, &ce)).To(BeTrue())
			Expect(ce.Field).To(Equal(field))
		},
		Entry("negative budget", func(o *Options) { o.MaxIterations = -1 }, "max_iterations"),
		Entry("no mutations", func(o *Options) { o.Mutations = 0 }, "mutations"),
		Entry("zero temperature", func(o *Options) { o.InitialTemperature = 0 }, "initial_temperature"),
		Entry("heating schedule", func(o *Options) { o.Cooling = 1.5 }, "cooling"),
		Entry("cool_every 0", func(o *Options) { o.CoolEvery = 0 }, "cool_every"),
		Entry("negative target", func(o *Options) { o.TargetCost = -1 }, "target_cost"),
		Entry("negative stall", func(o *Options) { o.StallLimit = -1 }, "stall_limit"),
	)
})

var _ = Describe("accept", func() {
	rng := rand.New(rand.NewSource(1))

	It("always takes improvements and ties", func() {
		Expect(accept(5, 4, 0, rng)).To(BeTrue())
		Expect(accept(5, 5, 0, rng)).To(BeTrue())
	})

	It("never takes a worse candidate at zero temperature", func() {
		Expect(accept(4, 5, 0, rng)).To(BeFalse())
	})

	It("takes worse candidates at roughly exp(-Δ/T)", func() {
		hits := 0
		const n = 20000
		for i := 0; i < n; i++ {
			if accept(0, 1, 1, rng) {
				hits++
			}
		}
		Expect(float64(hits) / n).To(BeNumerically("~", 0.3679, 0.02))
	})
})

var _ = Describe("Status", func() {
	It("round-trips through text", func() {
		for _, s := range []Status{Initializing, Iterating, Converged, Exhausted, Cancelled} {
			b, err := s.MarshalText()
			Expect(err).NotTo(HaveOccurred())
			var back Status
			Expect(back.UnmarshalText(b)).To(Succeed())
			Expect(back).To(Equal(s))
		}
		var s Status
		Expect(s.UnmarshalText([]byte("bogus"))).NotTo(Succeed())
		Expect(Status(99).String()).To(Equal("status(99)"))
	})
})
