package compute_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/compute"
	"github.com/katalvlaran/hmatrix/matrix"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
	"github.com/stretchr/testify/require"
)

func strs3(t *testing.T) []*strval.Value {
	t.Helper()
	words := []string{"abc", "abd", "xyz"}
	out := make([]*strval.Value, len(words))
	for i, w := range words {
		out[i] = strval.NewBytes([]byte(w), 0, "", i)
	}
	return out
}

// TestFill_TriangularScenario reproduces the worked triangular-fill
// example: Levenshtein over ["abc","abd","xyz"], checked cell-by-cell
// plus the symmetric-Get guarantee for an off-diagonal pair.
func TestFill_TriangularScenario(t *testing.T) {
	strs := strs3(t)

	m, err := matrix.New(3, []float64{0, 0, 0}, nil)
	require.NoError(t, err)
	require.NoError(t, m.Alloc())
	require.True(t, m.Triangular())

	lev := &measure.Levenshtein{}
	require.NoError(t, lev.Configure(measure.Config{}))

	require.NoError(t, compute.Fill(m, strs, lev.Compare, compute.WithWorkers(4)))

	cases := []struct{ x, y int; want float32 }{
		{0, 0, 0},
		{1, 0, 1},
		{1, 1, 0},
		{2, 0, 3},
		{2, 1, 3},
		{2, 2, 0},
	}
	for _, c := range cases {
		got, err := m.Get(c.x, c.y)
		require.NoError(t, err)
		require.Equalf(t, c.want, got, "Get(%d,%d)", c.x, c.y)
	}

	g01, err := m.Get(0, 1)
	require.NoError(t, err)
	g10, err := m.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, g01, g10)
}

// TestFill_RectangularSplitScenario narrows y to "1:3" then splits it
// "2:0", leaving a 3x1 non-triangular active rectangle over three
// cells, and checks every computed value.
func TestFill_RectangularSplitScenario(t *testing.T) {
	strs := strs3(t)

	y, err := matrix.ParseRange("1:3", 3)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 1, N: 3}, y)

	y, err = matrix.ParseSplit("2:0", y)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 1, N: 2}, y)

	x := matrix.Range{I: 0, N: 3}
	m, err := matrix.New(3, []float64{0, 0, 0}, nil, matrix.WithRanges(x, y))
	require.NoError(t, err)
	require.False(t, m.Triangular())
	require.NoError(t, m.Alloc())

	xl, yl, size := m.Dims()
	require.Equal(t, 3, xl)
	require.Equal(t, 1, yl)
	require.Equal(t, 3, size)

	lev := &measure.Levenshtein{}
	require.NoError(t, lev.Configure(measure.Config{}))

	var progressCalls int
	require.NoError(t, compute.Fill(m, strs, lev.Compare,
		compute.WithWorkers(1),
		compute.WithProgress(func(done, total uint64) { progressCalls++ }),
	))

	got0, err := m.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, float32(1), got0) // abc vs abd

	got1, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, float32(0), got1) // abd vs abd

	got2, err := m.Get(2, 1)
	require.NoError(t, err)
	require.Equal(t, float32(3), got2) // xyz vs abd
}

// TestFill_NotAllocated checks Fill's precondition error.
func TestFill_NotAllocated(t *testing.T) {
	strs := strs3(t)
	m, err := matrix.New(3, []float64{0, 0, 0}, nil)
	require.NoError(t, err)

	lev := &measure.Levenshtein{}
	require.NoError(t, lev.Configure(measure.Config{}))

	err = compute.Fill(m, strs, lev.Compare)
	require.Error(t, err)
}
