package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestParseRangeFullColon(t *testing.T) {
	r, err := matrix.ParseRange(":", 10)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 0, N: 10}, r)
}

func TestParseRangeNegativeB(t *testing.T) {
	r, err := matrix.ParseRange(":-2", 10)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 0, N: 8}, r)

	r, err = matrix.ParseRange("3:-3", 10)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 3, N: 7}, r)
}

func TestParseRangeAWithNegativeOne(t *testing.T) {
	r, err := matrix.ParseRange("2:-1", 10)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 2, N: 9}, r)
}

func TestParseRangeMalformedResetsToFull(t *testing.T) {
	r, err := matrix.ParseRange("5:3", 10) // a >= b
	require.Error(t, err)
	require.Equal(t, matrix.Range{I: 0, N: 10}, r)

	r, err = matrix.ParseRange("notanint:5", 10)
	require.Error(t, err)
	require.Equal(t, matrix.Range{I: 0, N: 10}, r)
}

func TestParseSplitShardsIntoBlocks(t *testing.T) {
	y := matrix.Range{I: 1, N: 3} // height 2
	r, err := matrix.ParseSplit("2:0", y)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 1, N: 2}, r)

	r, err = matrix.ParseSplit("2:1", y)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 2, N: 3}, r)
}

func TestParseSplitLastBlockShorter(t *testing.T) {
	y := matrix.Range{I: 0, N: 5} // height 5, B=2 -> blockHeight=3
	r, err := matrix.ParseSplit("2:0", y)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 0, N: 3}, r)

	r, err = matrix.ParseSplit("2:1", y)
	require.NoError(t, err)
	require.Equal(t, matrix.Range{I: 3, N: 5}, r)
}

func TestParseSplitFatalOnBadB(t *testing.T) {
	y := matrix.Range{I: 0, N: 5}
	_, err := matrix.ParseSplit("0:0", y)
	require.Error(t, err)

	_, err = matrix.ParseSplit("6:0", y)
	require.Error(t, err)
}

func TestParseSplitFatalOnBadK(t *testing.T) {
	y := matrix.Range{I: 0, N: 5}
	_, err := matrix.ParseSplit("2:2", y)
	require.Error(t, err)

	_, err = matrix.ParseSplit("2:-1", y)
	require.Error(t, err)
}
