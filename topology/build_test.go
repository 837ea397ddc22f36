package topology_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/lattice"
	"github.com/katalvlaran/ringlattice/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// angleTol bounds float noise when comparing recomputed angles.
const angleTol = 1e-12

// buildFor runs generation, classification and Build for bound n.
func buildFor(t *testing.T, n int) (*distance.Classes, *topology.Topology) {
	t.Helper()
	pts, err := lattice.Generate(n)
	require.NoError(t, err)
	c, err := distance.Classify(pts, distance.DefaultTolerance)
	require.NoError(t, err)
	return c, topology.Build(c)
}

func TestBuild_Empty(t *testing.T) {
	top := topology.Build(nil)
	assert.Empty(t, top.Rings)
	assert.Empty(t, top.Regions)
	assert.Empty(t, top.Connections())

	_, top = buildFor(t, 1)
	assert.Empty(t, top.Rings)
	assert.Empty(t, top.Regions)
	assert.Empty(t, top.Boundaries)
	assert.Zero(t, top.ArcCount())
	assert.Zero(t, top.LineCount())
	assert.Zero(t, top.Graph().VertexCount())
}

// TestBuild_N3 checks the three-singleton scenario: one region, one chain.
func TestBuild_N3(t *testing.T) {
	_, top := buildFor(t, 3)

	assert.Empty(t, top.Rings)
	require.Len(t, top.Regions, 1)
	r := top.Regions[0]
	assert.Equal(t, 0.0, r.Low)
	assert.InDelta(t, math.Sqrt(13)+1, r.High, distance.DefaultTolerance)

	want := []lattice.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}}
	assert.Equal(t, want, r.Points)
	assert.Equal(t, []int{1, 2, 3}, r.Labels)
	require.Len(t, r.Lines, 2)
	assert.Equal(t, topology.Connection{Kind: topology.KindLine, From: want[0], To: want[1]}, r.Lines[0])
	assert.Equal(t, topology.Connection{Kind: topology.KindLine, From: want[1], To: want[2]}, r.Lines[1])
	assert.Equal(t, 1.0, r.Lines[0].Length())
	assert.Zero(t, top.ArcCount())

	idx, ok := top.RegionOf(lattice.Point{X: 3, Y: 1})
	assert.True(t, ok)
	assert.Zero(t, idx)
}

// TestBuild_N8 checks the first ring, √65 = |(7,4)| = |(8,1)|.
func TestBuild_N8(t *testing.T) {
	_, top := buildFor(t, 8)

	require.Len(t, top.Rings, 1)
	ring := top.Rings[0]
	assert.InDelta(t, math.Sqrt(65), ring.Key.Float(), distance.DefaultTolerance)
	// (8,1) has the smaller polar angle.
	assert.Equal(t, []lattice.Point{{X: 8, Y: 1}, {X: 7, Y: 4}}, ring.Points)

	require.Len(t, ring.Arcs, 2)
	a0, a1 := ring.Arcs[0], ring.Arcs[1]
	assert.Equal(t, topology.KindArc, a0.Kind)
	assert.Equal(t, lattice.Point{X: 8, Y: 1}, a0.From)
	assert.Equal(t, lattice.Point{X: 7, Y: 4}, a0.To)
	assert.Equal(t, a0.To, a1.From)
	assert.Equal(t, a0.From, a1.To)
	assert.Greater(t, a0.Sweep, 0.0)
	assert.InDelta(t, -a0.Sweep, a1.Sweep, angleTol)
	assert.InDelta(t, ring.Key.Float()*a0.Sweep, a0.Length(), angleTol)

	require.Len(t, top.Regions, 2)
	assert.Equal(t, roundAll([]float64{0, math.Sqrt(65), math.Sqrt(113) + 1}), roundAll(top.Boundaries))
	_, ok := top.RegionOf(lattice.Point{X: 7, Y: 4})
	assert.False(t, ok, "ring points belong to no region")
	idx, ok := top.RegionOf(lattice.Point{X: 8, Y: 7})
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

// TestBuild_ThreePointRing checks the √325 ring that appears at N=18.
func TestBuild_ThreePointRing(t *testing.T) {
	_, top := buildFor(t, 18)
	key := distance.Quantize(math.Sqrt(325), distance.DefaultTolerance)

	var ring *topology.Ring
	for i := range top.Rings {
		if top.Rings[i].Key == key {
			ring = &top.Rings[i]
		}
	}
	require.NotNil(t, ring)
	assert.Equal(t, []lattice.Point{{X: 18, Y: 1}, {X: 17, Y: 6}, {X: 15, Y: 10}}, ring.Points)
	require.Len(t, ring.Arcs, 3)
	// Closing arc returns to the first point.
	assert.Equal(t, ring.Points[0], ring.Arcs[2].To)
	assert.Equal(t, ring.Points[2], ring.Arcs[2].From)
	assert.Less(t, ring.Arcs[2].Sweep, 0.0)
}

// TestBuild_Invariants checks arc, region and chain properties over a range of bounds.
func TestBuild_Invariants(t *testing.T) {
	for n := 1; n <= 45; n++ {
		c, top := buildFor(t, n)
		checkInvariants(t, c, top)
	}
}

// Tolerances far above the lattice spacing merge distinct distances and
// can pull the largest key well below the largest raw distance.
func TestBuild_CoarseTolerance(t *testing.T) {
	cases := []struct {
		n   int
		tol float64
	}{
		{2, 6}, {3, 10}, {4, 3}, {6, 5}, {10, 7}, {20, 2.5}, {30, 40},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d,tol=%g", tc.n, tc.tol), func(t *testing.T) {
			pts, err := lattice.Generate(tc.n)
			require.NoError(t, err)
			c, err := distance.Classify(pts, tc.tol)
			require.NoError(t, err)
			checkInvariants(t, c, topology.Build(c))
		})
	}
}

func TestBuild_CoarseSingletonPlaced(t *testing.T) {
	pts, err := lattice.Generate(2)
	require.NoError(t, err)
	c, err := distance.Classify(pts, 6)
	require.NoError(t, err)
	top := topology.Build(c)

	// √5 rounds to key 0, while its raw distance lies beyond maxKey+1.
	require.Equal(t, []float64{0, 1}, top.Boundaries)
	require.Len(t, top.Regions, 1)
	assert.Equal(t, []lattice.Point{{X: 2, Y: 1}}, top.Regions[0].Points)
	idx, ok := top.RegionOf(lattice.Point{X: 2, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

// checkInvariants asserts the structural guarantees of any Build result.
func checkInvariants(t *testing.T, c *distance.Classes, top *topology.Topology) {
	t.Helper()

	placed := 0
	for _, ring := range top.Rings {
		k := len(ring.Points)
		require.GreaterOrEqual(t, k, 2)
		require.Len(t, ring.Arcs, k, "ring %v must close into %d arcs", ring.Key, k)
		for i, arc := range ring.Arcs {
			assert.LessOrEqual(t, math.Abs(arc.Sweep), math.Pi)
			assert.Equal(t, ring.Key, distance.Quantize(distance.Distance(arc.From), c.Tolerance))
			assert.Equal(t, ring.Key, distance.Quantize(distance.Distance(arc.To), c.Tolerance))
			assert.True(t, scalar.EqualWithinAbs(distance.Angle(arc.From), arc.StartAngle, angleTol))
			assert.True(t, scalar.EqualWithinAbs(distance.Angle(arc.To), arc.EndAngle, angleTol))
			assert.Equal(t, ring.Points[(i+1)%k], arc.To)
		}
		for i := 1; i < k; i++ {
			assert.LessOrEqual(t, ring.Angles[i-1], ring.Angles[i])
		}
		placed += k
	}

	wantLines := 0
	for i, r := range top.Regions {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, top.Boundaries[i], r.Low)
		assert.Equal(t, top.Boundaries[i+1], r.High)
		for j, p := range r.Points {
			assert.True(t, r.Contains(distance.Quantize(distance.Distance(p), c.Tolerance)), "%v outside region %d", p, i)
			assert.Equal(t, 1, c.Size(distance.Quantize(distance.Distance(p), c.Tolerance)))
			idx, ok := top.RegionOf(p)
			assert.True(t, ok)
			assert.Equal(t, i, idx)
			if j > 0 {
				assert.Less(t, r.Distances[j-1], r.Distances[j])
			}
		}
		for _, l := range r.Lines {
			assert.Equal(t, topology.KindLine, l.Kind)
			assert.True(t, r.Contains(distance.Quantize(distance.Distance(l.From), c.Tolerance)))
			assert.True(t, r.Contains(distance.Quantize(distance.Distance(l.To), c.Tolerance)))
		}
		if len(r.Points) >= 2 {
			wantLines += len(r.Points) - 1
			assert.Len(t, r.Labels, len(r.Points))
		} else {
			assert.Empty(t, r.Lines)
			assert.Nil(t, r.Labels)
		}
		placed += len(r.Points)
	}

	assert.Equal(t, c.Total(), placed, "every point in one ring or region")
	assert.Equal(t, wantLines, top.LineCount())
	assert.Len(t, top.Connections(), top.ArcCount()+top.LineCount())
	if c.Len() > 0 {
		assert.Len(t, top.Regions, len(top.Rings)+1)
	}
}

func TestSweepBetween(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		want       float64
	}{
		{"Forward", 0.1, 0.5, 0.4},
		{"Backward", 0.5, 0.1, -0.4},
		{"AcrossSeamForward", 2*math.Pi - 0.1, 0.1, 0.2},
		{"AcrossSeamBackward", 0.1, 2*math.Pi - 0.1, -0.2},
		{"HalfTurnUp", 0, math.Pi, math.Pi},
		{"HalfTurnDown", math.Pi, 0, math.Pi},
		{"Zero", 1, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := topology.SweepBetween(tc.start, tc.end)
			assert.InDelta(t, tc.want, got, angleTol)
			assert.Greater(t, got, -math.Pi)
			assert.LessOrEqual(t, got, math.Pi)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "arc", topology.KindArc.String())
	assert.Equal(t, "line", topology.KindLine.String())
	assert.Equal(t, "unknown", topology.Kind(7).String())
}

// roundAll quantizes values so boundary comparisons ignore float noise.
func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = math.Round(v*1e4) / 1e4
	}
	return out
}
