package gradient_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/InstituteforDiseaseModeling/vis-tools/internal/gradient"
)

// sampleLocs is the canonical grid used by the round-trip and involution
// properties.
var sampleLocs = []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

func expectSameSamples(a, b *gradient.Gradient) {
	GinkgoHelper()
	for _, loc := range sampleLocs {
		ca, cb := a.Sample(loc), b.Sample(loc)
		Expect(ca.R).To(BeNumerically("~", cb.R, 1e-9), "R at %v", loc)
		Expect(ca.G).To(BeNumerically("~", cb.G, 1e-9), "G at %v", loc)
		Expect(ca.B).To(BeNumerically("~", cb.B, 1e-9), "B at %v", loc)
		Expect(ca.A).To(BeNumerically("~", cb.A, 1e-9), "A at %v", loc)
	}
}

var _ = Describe("Parse", func() {
	It("parses stops and forces endpoint locations to 0 and 1", func() {
		g, err := gradient.Parse("green@0.1,orange@0.33,yellow@.66,red@0.9")
		Expect(err).NotTo(HaveOccurred())
		stops := g.Stops()
		Expect(stops).To(HaveLen(4))
		Expect(stops[0].Location).To(Equal(0.0))
		Expect(stops[3].Location).To(Equal(1.0))
		Expect(stops[1].Location).To(Equal(0.33))
	})

	It("accepts hex colors with and without alpha", func() {
		g, err := gradient.Parse("#ff0000@0,#0000ff80@1")
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Stops()[0].Color.R).To(BeNumerically("~", 1.0, 1e-9))
		Expect(g.Stops()[1].Color.A).To(BeNumerically("~", 128.0/255, 1e-9))
	})

	It("parses quantize and reverse modifiers", func() {
		g, err := gradient.Parse("black@0,white@1,q4,r")
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Steps()).To(Equal(4))
		Expect(g.Reversed()).To(BeTrue())
	})

	It("parses preset names with trailing modifiers", func() {
		g, err := gradient.Parse("heat,q5")
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Steps()).To(Equal(5))
		Expect(len(g.Stops())).To(BeNumerically(">=", 2))
	})

	DescribeTable("rejects malformed specs",
		func(spec string) {
			_, err := gradient.Parse(spec)
			Expect(err).To(HaveOccurred())
		},
		Entry("single stop", "red@0"),
		Entry("unknown color", "notacolor@0,red@1"),
		Entry("unknown preset", "nosuchpreset"),
		Entry("bad location", "red@zero,blue@1"),
		Entry("decreasing locations", "red@0,blue@0.8,green@0.5,white@1"),
		Entry("quantize below two", "red@0,blue@1,q1"),
		Entry("stop after modifier", "red@0,blue@1,r,green@0.5"),
		Entry("stray token", "red@0,blue@1,x"),
	)
})

var _ = Describe("Sample", func() {
	It("linearly interpolates every channel including alpha", func() {
		g, err := gradient.Parse("#000000ff@0,#ffffff00@1")
		Expect(err).NotTo(HaveOccurred())
		mid := g.Sample(0.5)
		Expect(mid.R).To(BeNumerically("~", 0.5, 1e-9))
		Expect(mid.G).To(BeNumerically("~", 0.5, 1e-9))
		Expect(mid.B).To(BeNumerically("~", 0.5, 1e-9))
		Expect(mid.A).To(BeNumerically("~", 0.5, 1e-9))
	})

	It("clamps out-of-range locations", func() {
		g, err := gradient.Parse("red@0,blue@1")
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Sample(-5)).To(Equal(g.Sample(0)))
		Expect(g.Sample(5)).To(Equal(g.Sample(1)))
	})

	It("honors interior stop positions", func() {
		g, err := gradient.Parse("black@0,white@0.25,black@1")
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Sample(0.25).R).To(BeNumerically("~", 1.0, 1e-9))
	})
})

var _ = Describe("Quantization", func() {
	const n = 5

	It("produces exactly N distinct colors at N evenly spaced interior points", func() {
		g, err := gradient.Parse("black@0,white@1,q5")
		Expect(err).NotTo(HaveOccurred())
		seen := map[string]bool{}
		for i := 0; i < n; i++ {
			loc := (float64(i) + 0.5) / n
			seen[g.Sample(loc).Hex()] = true
		}
		Expect(seen).To(HaveLen(n))
	})

	It("keeps a band's lower edge inside the band", func() {
		g, err := gradient.Parse("black@0,white@1,q5")
		Expect(err).NotTo(HaveOccurred())
		for band := 0; band < n; band++ {
			edge := float64(band) / n
			center := (float64(band) + 0.5) / n
			Expect(g.Sample(edge)).To(Equal(g.Sample(center)),
				"band %d edge leaked into neighbor", band)
		}
	})
})

var _ = Describe("Reverse", func() {
	It("is an involution", func() {
		g, err := gradient.Parse("green@0,orange@0.33,yellow@0.66,red@1")
		Expect(err).NotTo(HaveOccurred())
		orig, err := gradient.Parse("green@0,orange@0.33,yellow@0.66,red@1")
		Expect(err).NotTo(HaveOccurred())
		g.Reverse()
		g.Reverse()
		Expect(g.Reversed()).To(BeFalse())
		expectSameSamples(g, orig)
	})

	It("mirrors samples about the midpoint", func() {
		g, err := gradient.Parse("red@0,blue@1")
		Expect(err).NotTo(HaveOccurred())
		rev, err := gradient.Parse("red@0,blue@1,r")
		Expect(err).NotTo(HaveOccurred())
		for _, loc := range sampleLocs {
			a, b := g.Sample(loc), rev.Sample(1-loc)
			Expect(a.R).To(BeNumerically("~", b.R, 1e-9))
			Expect(a.B).To(BeNumerically("~", b.B, 1e-9))
		}
	})
})

var _ = Describe("Round-trip", func() {
	DescribeTable("String re-emits an equivalent spec",
		func(spec string) {
			g, err := gradient.Parse(spec)
			Expect(err).NotTo(HaveOccurred())
			back, err := gradient.Parse(g.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Steps()).To(Equal(g.Steps()))
			Expect(back.Reversed()).To(Equal(g.Reversed()))
			expectSameSamples(g, back)
		},
		Entry("simple", "red@0,blue@1"),
		Entry("interior stops", "green@0,orange@0.33,yellow@0.66,red@1"),
		Entry("quantized", "black@0,white@1,q7"),
		Entry("reversed", "red@0,yellow@0.4,blue@1,r"),
		Entry("quantized and reversed", "heat,q3,r"),
		Entry("alpha stops", "#11223344@0,#55667788@1"),
	)
})

var _ = Describe("Precompute", func() {
	It("matches direct sampling at table resolution", func() {
		direct, err := gradient.Parse("green@0,orange@0.33,yellow@0.66,red@1")
		Expect(err).NotTo(HaveOccurred())
		tabled, err := gradient.Parse("green@0,orange@0.33,yellow@0.66,red@1")
		Expect(err).NotTo(HaveOccurred())
		tabled.Precompute(0)
		for i := 0; i < gradient.DefaultResolution; i++ {
			loc := float64(i) / float64(gradient.DefaultResolution-1)
			Expect(tabled.Sample(loc)).To(Equal(direct.Sample(loc)), "at %v", loc)
		}
	})
})

var _ = Describe("Colors", func() {
	It("resolves SVG named colors", func() {
		c, err := gradient.ParseColor("cornflowerblue")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.B).To(BeNumerically(">", c.R))
	})

	It("round-trips hex emission", func() {
		c, err := gradient.ParseColor("#3b528b")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Hex()).To(Equal("#3b528b"))
	})
})
