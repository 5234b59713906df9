package matrix

import "fmt"

// Matrix is the active storage for pairwise scores over a sub-rectangle
// of an N-element collection, possibly triangular.
//
// Matrix exclusively owns values, labels, and srcs; it never reaches
// back into the string array it was built from. Get/Set on a
// triangular matrix always canonicalize to (min, max) before index
// arithmetic — this is centralized in one place (linearIndex) rather
// than duplicated across the Get and Set paths, so the two can never
// drift out of sync.
type Matrix struct {
	num int

	x, y       Range
	triangular bool

	size   int
	values []float32

	labels []float64
	srcs   []*string
}

// New constructs a Matrix over a collection of size num, capturing a
// copy of the full-collection labels and source tags: labels/srcs
// always reflect the full original collection regardless of how the
// active sub-rectangle is later narrowed. By default the active
// sub-rectangle is the full square (0, num)x(0, num), i.e. triangular;
// WithRanges overrides this.
//
// labels and srcs must each have length num (srcs entries may be nil).
// New does not allocate Values — call Alloc once the active ranges are
// final.
func New(num int, labels []float64, srcs []*string, opts ...Option) (*Matrix, error) {
	if num <= 0 {
		return nil, fmt.Errorf("matrix: New(num=%d): %w", num, ErrInvalidDimensions)
	}
	if len(labels) != num {
		return nil, fmt.Errorf("matrix: New: len(labels)=%d != num=%d: %w", len(labels), num, ErrInvalidDimensions)
	}
	if srcs != nil && len(srcs) != num {
		return nil, fmt.Errorf("matrix: New: len(srcs)=%d != num=%d: %w", len(srcs), num, ErrInvalidDimensions)
	}

	o := gatherOptions(opts...)

	m := &Matrix{
		num:    num,
		x:      Range{I: 0, N: num},
		y:      Range{I: 0, N: num},
		labels: append([]float64(nil), labels...),
	}
	if srcs != nil {
		m.srcs = append([]*string(nil), srcs...)
	} else {
		m.srcs = make([]*string, num)
	}

	if o.x != nil {
		m.x = *o.x
	}
	if o.y != nil {
		m.y = *o.y
	}
	m.triangular = m.x == m.y

	return m, nil
}

// SetRanges narrows the active sub-rectangle to x, y. Any previously
// allocated values are discarded; the caller must Alloc again before
// Get/Set.
func (m *Matrix) SetRanges(x, y Range) {
	m.x, m.y = x, y
	m.triangular = x == y
	m.values = nil
}

// ActiveRanges returns the current (x, y, triangular) state.
func (m *Matrix) ActiveRanges() (x, y Range, triangular bool) {
	return m.x, m.y, m.triangular
}

// Dims returns (xl, yl, size): the active sub-rectangle's width,
// height, and the number of stored cells.
func (m *Matrix) Dims() (xl, yl, size int) {
	return m.x.Len(), m.y.Len(), m.sizeFor(m.x, m.y, m.triangular)
}

// sizeFor computes the storage size for a given shape without
// mutating the receiver, per invariant:
//
//	triangular  => size = k(k+1)/2, k = xl
//	rectangular => size = xl * yl
func (m *Matrix) sizeFor(x, y Range, triangular bool) int {
	xl := x.Len()
	if triangular {
		k := xl
		return k * (k + 1) / 2
	}
	yl := y.Len()
	return xl * yl
}

// Alloc allocates and zeroes the values backing store for the current
// active sub-rectangle. It is required before any Get/Set/Fill.
// Calling Alloc again (e.g. after SetRanges) reallocates from scratch.
func (m *Matrix) Alloc() error {
	if m.triangular && m.x != m.y {
		return fmt.Errorf("matrix: Alloc: %w", ErrAsymmetricTriangular)
	}

	m.size = m.sizeFor(m.x, m.y, m.triangular)
	m.values = make([]float32, m.size)

	return nil
}

// Allocated reports whether Alloc has produced a values backing store.
func (m *Matrix) Allocated() bool {
	return m.values != nil
}

// Size returns the number of stored cells (0 before Alloc).
func (m *Matrix) Size() int {
	return m.size
}

// Label returns the label of the string at absolute index i in the
// original collection.
func (m *Matrix) Label(i int) float64 {
	return m.labels[i]
}

// Src returns the source tag of the string at absolute index i in the
// original collection, or nil if absent.
func (m *Matrix) Src(i int) *string {
	return m.srcs[i]
}

// linearIndex canonicalizes (X, Y) into the stored linear index for
// the current layout, centralizing the triangular (min,max) folding
// is as the subtlest invariant in this design.
func (m *Matrix) linearIndex(X, Y int) (int, error) {
	if X < m.x.I || X >= m.x.N || Y < m.y.I || Y >= m.y.N {
		return 0, fmt.Errorf("matrix: (%d,%d): %w", X, Y, ErrOutOfRange)
	}

	if !m.triangular {
		xl := m.x.Len()
		return (X - m.x.I) + (Y-m.y.I)*xl, nil
	}

	// Triangular precondition guarantees x == y; use a single k and a
	// single relative-coordinate space for both axes.
	k := m.x.Len()
	i, j := X-m.x.I, Y-m.y.I
	if i > j {
		i, j = j, i
	}

	return (j - i) + i*k - i*(i-1)/2, nil
}

// Get returns the score at (X, Y) within the active sub-rectangle.
// For a triangular matrix, Get is symmetric: Get(X,Y) == Get(Y,X),
// even though only the lower triangle (including the diagonal) is
// materialized.
func (m *Matrix) Get(X, Y int) (float32, error) {
	if !m.Allocated() {
		return 0, fmt.Errorf("matrix: Get: %w", ErrNotAllocated)
	}

	idx, err := m.linearIndex(X, Y)
	if err != nil {
		return 0, err
	}

	return m.values[idx], nil
}

// Set writes v at (X, Y). On a triangular matrix the caller need not
// pre-sort X and Y: an explicit write above the diagonal is silently
// canonicalized to the corresponding lower-triangle cell rather than
// rejected.
func (m *Matrix) Set(X, Y int, v float32) error {
	if !m.Allocated() {
		return fmt.Errorf("matrix: Set: %w", ErrNotAllocated)
	}

	idx, err := m.linearIndex(X, Y)
	if err != nil {
		return err
	}

	m.values[idx] = v

	return nil
}

// Num returns the size of the original collection this Matrix was
// built over.
func (m *Matrix) Num() int {
	return m.num
}

// Triangular reports whether the active sub-rectangle is triangular
// (x == y).
func (m *Matrix) Triangular() bool {
	return m.triangular
}
