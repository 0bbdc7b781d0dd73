package chart

import (
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/simpson/internal/dataset"
)

var _ = Describe("Build", func() {
	var fig *Figure

	BeforeEach(func() {
		var err error
		fig, err = Build(dataset.Published())
		Expect(err).NotTo(HaveOccurred())
	})

	It("plots one primary and two secondary series", func() {
		Expect(fig.Series).To(HaveLen(3))
		Expect(fig.On(Primary)).To(HaveLen(1))
		Expect(fig.On(Secondary)).To(HaveLen(2))
		Expect(fig.On(Primary)[0].Label).To(Equal("Simpson's Result"))
	})

	It("puts the secondary axis on a log scale", func() {
		Expect(fig.Y2.Scale).To(Equal(LogScale))
		Expect(fig.Y.Scale).To(Equal(LinearScale))
	})

	It("merges both legends into one upper-right legend", func() {
		Expect(fig.LegendLabels()).To(Equal([]string{"Simpson's Result", "Error Absolut", "Error Relatif (%)"}))
		Expect(fig.Legend.Position).To(Equal(UpperRight))
	})

	It("fixes x ticks to the interval counts", func() {
		Expect(fig.X.Ticks).To(Equal([]float64{4, 8, 16, 32}))
		Expect(fig.X.Label).To(Equal("Interval (n)"))
	})

	It("colors each axis like its series", func() {
		Expect(fig.Y.Color).To(Equal(Blue))
		Expect(fig.Y2.Color).To(Equal(Red))
		for _, s := range fig.On(Secondary) {
			Expect(s.Dashed).To(BeTrue())
			Expect(s.Marker).To(Equal(CircleMarker))
		}
		Expect(fig.On(Primary)[0].Dashed).To(BeFalse())
	})

	It("uses the fixed title and size", func() {
		Expect(fig.Title).To(Equal("Visualisasi Hasil Simpson dan Error"))
		Expect(fig.Width).To(Equal(8.0))
		Expect(fig.Height).To(Equal(5.0))
	})

	It("produces structurally identical figures on repeated calls", func() {
		again, err := Build(dataset.Published())
		Expect(err).NotTo(HaveOccurred())
		Expect(cmp.Diff(fig, again)).To(BeEmpty())
		Expect(again).NotTo(BeIdenticalTo(fig))
	})

	It("does not share slices with the source table", func() {
		tbl := dataset.Published()
		f, err := Build(tbl)
		Expect(err).NotTo(HaveOccurred())
		f.Series[0].Y[0] = 0
		Expect(tbl.Rows[0].Result).To(Equal(101.146996))
	})

	It("rejects tables that cannot be drawn on a log axis", func() {
		tbl := dataset.Published()
		tbl.Rows[3].AbsError = 0
		_, err := Build(tbl)
		Expect(err).To(MatchError(ErrNonPositiveLog))
	})

	It("rejects invalid tables", func() {
		tbl := dataset.Published()
		tbl.Rows[1].Intervals = 2
		_, err := Build(tbl)
		Expect(err).To(MatchError(dataset.ErrNotIncreasing))
	})
})

var _ = Describe("Figure", func() {
	It("reports ranges per side", func() {
		fig, err := Build(dataset.Published())
		Expect(err).NotTo(HaveOccurred())

		lo, hi := fig.Range(Secondary)
		Expect(lo).To(Equal(0.000023))
		Expect(hi).To(Equal(0.107472))

		xlo, xhi := fig.XRange()
		Expect(xlo).To(Equal(4.0))
		Expect(xhi).To(Equal(32.0))
	})

	It("computes enclosing decades", func() {
		Expect(decades(0.000023, 0.107472)).To(Equal([]float64{1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1}))
		Expect(decades(0, 1)).To(BeNil())
		Expect(formatDecade(1e-3)).To(Equal("1e-3"))
	})
})
