package chart

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/simpson/internal/dataset"
)

var _ = Describe("Renderers", func() {
	var fig *Figure

	BeforeEach(func() {
		var err error
		fig, err = Build(dataset.Published())
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("go-chart output",
		func(format, magic string) {
			r, err := NewGoChart(format)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(r.Render(&buf, fig)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(magic))
		},
		Entry("png", "png", "\x89PNG"),
		Entry("svg", "svg", "<svg"),
	)

	DescribeTable("gonum output",
		func(format, magic string) {
			r, err := NewGonum(format)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(r.Render(&buf, fig)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(magic))
		},
		Entry("png", "png", "\x89PNG"),
		Entry("svg", "svg", "<svg"),
		Entry("pdf", "pdf", "%PDF"),
	)

	It("maps the go-chart secondary series onto the secondary axis", func() {
		g, err := NewGoChart("png")
		Expect(err).NotTo(HaveOccurred())
		c, err := g.Chart(fig)
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Series).To(HaveLen(3))
		Expect(c.XAxis.Ticks).To(HaveLen(4))
		Expect(c.YAxis.Ticks).To(BeEmpty())
		Expect(c.YAxisSecondary.Ticks).To(BeEmpty())
		Expect(c.YAxisSecondary.Range).To(BeAssignableToTypeOf(&LogRange{}))

		ticks := c.YAxisSecondary.Range.(*LogRange).GetTicks(nil, gochart.Style{}, nil)
		Expect(ticks).To(HaveLen(6))
		Expect(ticks[0].Label).To(Equal("1e-5"))
		Expect(ticks[5].Value).To(Equal(1.0))
	})

	It("reports a log axis without positive values instead of panicking", func() {
		bad := *fig
		bad.Series = nil
		for _, s := range fig.Series {
			if s.Side == Secondary {
				s.Y = []float64{0, 0, 0, 0}
			}
			bad.Series = append(bad.Series, s)
		}

		g, err := NewGoChart("png")
		Expect(err).NotTo(HaveOccurred())
		var buf bytes.Buffer
		Expect(g.Render(&buf, &bad)).To(MatchError(ErrNonPositiveLog))
	})

	It("gives the gonum overlay plot a log scale", func() {
		g, err := NewGonum("svg")
		Expect(err).NotTo(HaveOccurred())
		p, sec, err := g.Plots(fig)
		Expect(err).NotTo(HaveOccurred())

		Expect(p.Legend.Top).To(BeTrue())
		Expect(p.Legend.Left).To(BeFalse())
		Expect(sec.Y.Min).To(Equal(1e-5))
		Expect(sec.Y.Max).To(Equal(1.0))
		Expect(sec.X.Min).To(Equal(p.X.Min))
	})

	It("draws plain terminal charts with every legend entry", func() {
		t := NewTerminal()
		t.Plain = true

		var buf bytes.Buffer
		Expect(t.Render(&buf, fig)).To(Succeed())
		out := buf.String()
		for _, label := range fig.LegendLabels() {
			Expect(out).To(ContainSubstring(label))
		}
		Expect(out).To(ContainSubstring("Error (log10)"))
		Expect(out).To(ContainSubstring("Interval (n)"))
		Expect(strings.Count(out, "32")).To(BeNumerically(">=", 2))
	})

	It("rejects unsupported formats and backends", func() {
		_, err := NewGoChart("pdf")
		Expect(err).To(MatchError(ErrFormat))
		_, err = NewGonum("bmp")
		Expect(err).To(MatchError(ErrFormat))
		_, err = NewRenderer("matplotlib", "png")
		Expect(err).To(HaveOccurred())
	})

	It("refuses to draw an empty figure", func() {
		var buf bytes.Buffer
		Expect(NewTerminal().Render(&buf, &Figure{})).To(MatchError(ErrEmptyFigure))
	})

	It("derives formats from file names", func() {
		Expect(FormatFromPath("out/chart.SVG")).To(Equal("svg"))
		Expect(FormatFromPath("chart")).To(Equal("png"))
	})
})

var _ = Describe("LogRange", func() {
	It("translates by decade", func() {
		r := &LogRange{Min: 1e-4, Max: 1, Domain: 400}
		Expect(r.Translate(1e-4)).To(Equal(0))
		Expect(r.Translate(1e-2)).To(BeNumerically("~", 200, 1))
		Expect(r.Translate(1)).To(Equal(400))
		Expect(r.Translate(0)).To(Equal(0))
		Expect(r.IsZero()).To(BeFalse())
		Expect((&LogRange{}).IsZero()).To(BeTrue())
	})
})

var _ = Describe("resample", func() {
	It("keeps x proportional to column position", func() {
		out := resample([]float64{0, 10}, []float64{0, 100}, 0, 10, 11)
		Expect(out).To(HaveLen(11))
		Expect(out[5]).To(BeNumerically("~", 50, 1e-9))
		Expect(out[10]).To(BeNumerically("~", 100, 1e-9))
	})
})
