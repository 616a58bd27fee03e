package bitmap

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/saxbitmap/errs"
	"github.com/arloliu/saxbitmap/internal/hash"
	"gonum.org/v1/gonum/mat"
)

// Bitmap is an immutable square matrix of normalized subword frequencies.
//
// The zero value is an empty bitmap with side 0.
type Bitmap struct {
	m    *mat.Dense
	side int
}

// NewBitmap creates a side×side bitmap from row-major cells. The cells are copied.
//
// Returns errs.ErrBitmapShapeMismatch if len(cells) != side*side.
func NewBitmap(side int, cells []float64) (Bitmap, error) {
	if side < 0 || len(cells) != side*side {
		return Bitmap{}, fmt.Errorf("%w: %d cells for side %d", errs.ErrBitmapShapeMismatch, len(cells), side)
	}
	if side == 0 {
		return Bitmap{}, nil
	}

	data := make([]float64, len(cells))
	copy(data, cells)

	return Bitmap{m: mat.NewDense(side, side, data), side: side}, nil
}

// Build normalizes table by its maximum value and lays the values out in a
// square matrix, iterating the sorted keys in row-major order.
//
// Returns:
//   - Bitmap: cells in [0, 1] for non-negative counts
//   - error: errs.ErrEmptyFrequencyTable for an empty table,
//     errs.ErrNonSquareBitmap if len(table) is not a perfect square
func Build(table FrequencyTable) (Bitmap, error) {
	if len(table) == 0 {
		return Bitmap{}, errs.ErrEmptyFrequencyTable
	}

	side, ok := IsPerfectSquare(len(table))
	if !ok {
		return Bitmap{}, fmt.Errorf("%w: %d entries", errs.ErrNonSquareBitmap, len(table))
	}

	normalized := table.Normalized()
	data := make([]float64, 0, len(table))
	for _, key := range table.Keys() {
		data = append(data, normalized[key])
	}

	return Bitmap{m: mat.NewDense(side, side, data), side: side}, nil
}

// Side returns the number of rows (and columns).
func (b Bitmap) Side() int {
	return b.side
}

// At returns the cell at row i, column j. It panics if the indices are out of range.
func (b Bitmap) At(i, j int) float64 {
	if b.m == nil {
		panic("bitmap: At on empty bitmap")
	}

	return b.m.At(i, j)
}

// Cells returns a row-major copy of the cells.
func (b Bitmap) Cells() []float64 {
	out := make([]float64, 0, b.side*b.side)
	if b.m == nil {
		return out
	}

	return append(out, b.m.RawMatrix().Data...)
}

// Rows returns a copy of the cells as a slice of rows.
func (b Bitmap) Rows() [][]float64 {
	rows := make([][]float64, b.side)
	for i := range rows {
		rows[i] = mat.Row(nil, i, b.m)
	}

	return rows
}

// Matrix returns a copy of the bitmap as a gonum matrix, or nil for an empty bitmap.
func (b Bitmap) Matrix() *mat.Dense {
	if b.m == nil {
		return nil
	}

	return mat.DenseCopyOf(b.m)
}

// Fingerprint returns the xxHash64 of the cell values, row-major.
//
// Bitmaps with equal cells have equal fingerprints, which makes it cheap to
// detect repeated lead or lag fingerprints downstream.
func (b Bitmap) Fingerprint() uint64 {
	if b.m == nil {
		return hash.Float64s(nil)
	}

	return hash.Float64s(b.m.RawMatrix().Data)
}

// Equal reports whether both bitmaps have the same side and identical cells.
func (b Bitmap) Equal(other Bitmap) bool {
	if b.side != other.side {
		return false
	}
	if b.m == nil || other.m == nil {
		return b.m == nil && other.m == nil
	}

	return mat.Equal(b.m, other.m)
}

// IsEmpty reports whether the bitmap has no cells.
func (b Bitmap) IsEmpty() bool {
	return b.side == 0
}

func (b Bitmap) String() string {
	if b.m == nil {
		return "Bitmap{}"
	}

	return fmt.Sprintf("Bitmap{side: %d}\n%.4f", b.side, mat.Formatted(b.m, mat.Squeeze()))
}

// MarshalJSON encodes the bitmap as an array of rows.
func (b Bitmap) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Rows())
}

// UnmarshalJSON decodes an array of equal-length rows forming a square matrix.
func (b *Bitmap) UnmarshalJSON(data []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}

	cells := make([]float64, 0, len(rows)*len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", errs.ErrBitmapShapeMismatch, i, len(row), len(rows))
		}
		cells = append(cells, row...)
	}

	decoded, err := NewBitmap(len(rows), cells)
	if err != nil {
		return err
	}
	*b = decoded

	return nil
}
