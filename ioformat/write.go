package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/hmatrix/matrix"
)

// WritePlain dumps m's active sub-rectangle as whitespace-separated
// rows, one row per Y in the active range, one column per X.
func WritePlain(w io.Writer, m *matrix.Matrix) error {
	x, y, _ := m.ActiveRanges()
	bw := bufio.NewWriter(w)

	for Y := y.I; Y < y.N; Y++ {
		for X := x.I; X < x.N; X++ {
			v, err := m.Get(X, Y)
			if err != nil {
				return fmt.Errorf("ioformat: WritePlain: %w", err)
			}
			if X > x.I {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%g", v); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteLibSVM writes m's active sub-rectangle in the de-facto libsvm
// precomputed-kernel-matrix format: one row per Y, "label 1:v1 2:v2
// ..." with 1-based column indices relative to the active x range.
func WriteLibSVM(w io.Writer, m *matrix.Matrix) error {
	x, y, _ := m.ActiveRanges()
	bw := bufio.NewWriter(w)

	for Y := y.I; Y < y.N; Y++ {
		if _, err := fmt.Fprintf(bw, "%g", m.Label(Y)); err != nil {
			return err
		}
		for X := x.I; X < x.N; X++ {
			v, err := m.Get(X, Y)
			if err != nil {
				return fmt.Errorf("ioformat: WriteLibSVM: %w", err)
			}
			if _, err := fmt.Fprintf(bw, " %d:%g", X-x.I+1, v); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
