package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func labels(n int) []float64 {
	ls := make([]float64, n)
	for i := range ls {
		ls[i] = float64(i)
	}
	return ls
}

func TestTriangularSymmetricGet(t *testing.T) {
	m, err := matrix.New(3, labels(3), nil)
	require.NoError(t, err)
	require.NoError(t, m.Alloc())

	require.NoError(t, m.Set(1, 0, 5))
	v1, err := m.Get(1, 0)
	require.NoError(t, err)
	v2, err := m.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
	require.Equal(t, float32(5), v1)
}

func TestTriangularSize(t *testing.T) {
	m, err := matrix.New(4, labels(4), nil)
	require.NoError(t, err)
	_, _, size := m.Dims()
	require.Equal(t, 4*5/2, size) // k(k+1)/2, k=4
}

func TestRectangularSizeAndIndexBijective(t *testing.T) {
	m, err := matrix.New(5, labels(5), nil,
		matrix.WithRanges(matrix.Range{I: 0, N: 5}, matrix.Range{I: 1, N: 3}))
	require.NoError(t, err)
	require.NoError(t, m.Alloc())

	xl, yl, size := m.Dims()
	require.Equal(t, 5, xl)
	require.Equal(t, 2, yl)
	require.Equal(t, 10, size)

	seen := make(map[float32]bool)
	var next float32
	for X := 0; X < 5; X++ {
		for Y := 1; Y < 3; Y++ {
			next++
			require.NoError(t, m.Set(X, Y, next))
		}
	}
	for X := 0; X < 5; X++ {
		for Y := 1; Y < 3; Y++ {
			v, err := m.Get(X, Y)
			require.NoError(t, err)
			require.False(t, seen[v], "value %v written to two cells", v)
			seen[v] = true
		}
	}
	require.Len(t, seen, size)
}

func TestGetSetBeforeAllocFails(t *testing.T) {
	m, err := matrix.New(2, labels(2), nil)
	require.NoError(t, err)

	_, err = m.Get(0, 0)
	require.ErrorIs(t, err, matrix.ErrNotAllocated)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNotAllocated)
}

func TestOutOfRangeRejected(t *testing.T) {
	m, err := matrix.New(3, labels(3), nil)
	require.NoError(t, err)
	require.NoError(t, m.Alloc())

	_, err = m.Get(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestLabelsAndSrcsReflectFullCollection(t *testing.T) {
	src0 := "train"
	srcs := []*string{&src0, nil, nil}
	m, err := matrix.New(3, labels(3), srcs,
		matrix.WithRanges(matrix.Range{I: 1, N: 3}, matrix.Range{I: 1, N: 3}))
	require.NoError(t, err)

	require.Equal(t, float64(0), m.Label(0))
	require.Equal(t, "train", *m.Src(0))
	require.Nil(t, m.Src(1))
}
