package fdtd_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jwseo/fdtdlab/internal/fdtd"
	"github.com/jwseo/fdtdlab/internal/geom"
	"github.com/jwseo/fdtdlab/internal/grid"
	"github.com/jwseo/fdtdlab/internal/material"
	"github.com/jwseo/fdtdlab/internal/source"
)

var _ = Describe("Leapfrog stepping", func() {
	var (
		space *grid.Space
		eng   *fdtd.Engine
	)

	BeforeEach(func() {
		var err error
		space, err = grid.NewSpace(1, 1, 0, 8, 0.5)
		Expect(err).NotTo(HaveOccurred())

		tree := geom.NewTree([]geom.Object{
			geom.NewDefaultMedium(material.NewDielectric(1)),
		})
		eng, err = fdtd.New(space, tree, nil, fdtd.TMz)
		Expect(err).NotTo(HaveOccurred())
	})

	It("advances the clock by half a step per phase", func() {
		Expect(eng.Step(context.Background())).To(Succeed())
		clock := eng.Clock()
		Expect(clock.N).To(Equal(1.0))
		Expect(clock.T).To(BeNumerically("~", space.Dt, 1e-15))
	})

	It("keeps boundary samples frozen", func() {
		edge := grid.Index{4, 0, 1}
		Expect(eng.Excite(fdtd.Hx, edge, 3)).To(Succeed())
		Expect(eng.Run(context.Background(), 5)).To(Succeed())

		v, err := eng.Probe(fdtd.Hx, edge)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(3.0))
	})

	It("conserves a static uniform magnetic sheet", func() {
		// A spatially uniform hz is curl-free away from the walls, so
		// the interior electric update sees cancelling neighbors.
		hxGrid := eng.MaterialGridFor(fdtd.Hx)
		shape := hxGrid.Shape()
		for i := 1; i < shape[0]-1; i++ {
			for j := 1; j < shape[1]-1; j++ {
				Expect(eng.Excite(fdtd.Hx, grid.Index{i, j, 1}, 1)).To(Succeed())
			}
		}

		Expect(eng.Step(context.Background())).To(Succeed())

		center := grid.Index{4, 4, 0}
		v, err := eng.Probe(fdtd.Ez, center)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 0, 1e-15))
	})

	It("reports unhealthy when a sample goes non-finite", func() {
		Expect(eng.Healthy()).To(BeTrue())
		Expect(eng.Excite(fdtd.Ez, grid.Index{4, 4, 0}, math.NaN())).To(Succeed())
		Expect(eng.Healthy()).To(BeFalse())
	})

	It("drives a ring current around a hard source", func() {
		src := source.NewPoint(fdtd.Ez, grid.Coord{0, 0, 0}, source.Constant{Level: 1}, true)
		driven, err := fdtd.New(space, geom.NewTree([]geom.Object{
			geom.NewDefaultMedium(material.NewDielectric(1)),
		}), []fdtd.Source{src}, fdtd.TMz)
		Expect(err).NotTo(HaveOccurred())

		Expect(driven.Run(context.Background(), 3)).To(Succeed())

		idx := space.SpaceToEzIndex(grid.Coord{0, 0, 0})
		v, err := driven.Probe(fdtd.Ez, idx)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(1.0))
		Expect(driven.MaxAbs(fdtd.Hx)).To(BeNumerically(">", 0))
		Expect(driven.MaxAbs(fdtd.Hy)).To(BeNumerically(">", 0))
	})
})
