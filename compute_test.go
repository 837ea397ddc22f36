package ringlattice_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/ringlattice"
	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/lattice"
	"github.com/katalvlaran/ringlattice/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_Errors verifies both validation classes surface as ErrInvalidArgument.
func TestCompute_Errors(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		opts  []ringlattice.Option
		inner error
	}{
		{"ZeroBound", 0, nil, lattice.ErrInvalidArgument},
		{"NegativeBound", -4, nil, lattice.ErrInvalidArgument},
		{"ZeroTolerance", 5, []ringlattice.Option{ringlattice.WithTolerance(0)}, distance.ErrInvalidArgument},
		{"NegativeTolerance", 5, []ringlattice.Option{ringlattice.WithTolerance(-1)}, distance.ErrInvalidArgument},
		{"NaNTolerance", 5, []ringlattice.Option{ringlattice.WithTolerance(math.NaN())}, distance.ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ringlattice.Compute(tc.n, tc.opts...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ringlattice.ErrInvalidArgument)
			assert.ErrorIs(t, err, tc.inner)
		})
	}
}

func TestCompute_N1(t *testing.T) {
	res, err := ringlattice.Compute(1)
	require.NoError(t, err)
	assert.Empty(t, res.Points)
	assert.Empty(t, res.Keys)
	assert.Empty(t, res.Connections())
	assert.Empty(t, res.Regions())
	assert.Zero(t, res.Colors.Len())
	assert.Zero(t, res.MaxCoord())
}

// TestCompute_N3 checks the three-singleton scenario end to end.
func TestCompute_N3(t *testing.T) {
	res, err := ringlattice.Compute(3)
	require.NoError(t, err)

	assert.Equal(t, 3, res.N)
	assert.Equal(t, distance.DefaultTolerance, res.Tolerance)
	assert.Len(t, res.Points, 3)
	assert.Len(t, res.Keys, 3)
	assert.Empty(t, res.Topology.Rings)
	require.Len(t, res.Regions(), 1)
	assert.Zero(t, res.Topology.ArcCount())
	assert.Equal(t, 2, res.Topology.LineCount())
	assert.Zero(t, res.Colors.Len())
	assert.Equal(t, 3, res.MaxCoord())
}

func TestCompute_Options(t *testing.T) {
	res, err := ringlattice.Compute(15, ringlattice.WithPaletteSize(4))
	require.NoError(t, err)
	assert.Equal(t, palette.ModeContinuous, res.Colors.Mode)

	res, err = ringlattice.Compute(3, ringlattice.WithTolerance(100))
	require.NoError(t, err)
	require.Len(t, res.Keys, 1)
	require.Len(t, res.Topology.Rings, 1)
	assert.Len(t, res.Topology.Rings[0].Arcs, 3)
	assert.Equal(t, 1, res.Colors.Len())

	assert.Panics(t, func() { ringlattice.WithPaletteSize(0) })
	assert.Panics(t, func() { ringlattice.WithPaletteSize(palette.DiscreteSize + 1) })
}

// TestCompute_RingColors checks every ring has a color and colors are distinct.
func TestCompute_RingColors(t *testing.T) {
	res, err := ringlattice.Compute(18)
	require.NoError(t, err)
	require.Len(t, res.Topology.Rings, 16)

	seen := map[string]bool{}
	for _, ring := range res.Topology.Rings {
		c, ok := res.Colors.Color(ring.Key)
		require.True(t, ok)
		hex := palette.Hex(c)
		assert.False(t, seen[hex])
		seen[hex] = true
	}
}

func TestSummary_JSON(t *testing.T) {
	res, err := ringlattice.Compute(8)
	require.NoError(t, err)

	raw, err := json.Marshal(res.Summary())
	require.NoError(t, err)

	var back ringlattice.Summary
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, 8, back.N)
	assert.Len(t, back.Points, 28)
	assert.Len(t, back.Classes, 27)
	assert.Len(t, back.Connections, 2+24)
	require.Len(t, back.Regions, 2)
	assert.Len(t, back.Regions[0].Labels, 18)

	colored := 0
	for _, c := range back.Classes {
		if c.Color != "" {
			colored++
			assert.Equal(t, "#e6194b", c.Color)
			assert.Len(t, c.Points, 2)
		}
	}
	assert.Equal(t, 1, colored)
	assert.Equal(t, "arc", back.Connections[0].Kind)
	assert.Equal(t, "line", back.Connections[2].Kind)
	assert.Zero(t, back.Connections[2].Radius)
}
