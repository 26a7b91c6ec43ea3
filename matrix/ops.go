package matrix

import "fmt"

// Operation tags used in wrapped errors.
const (
	opAdd              = "Add"
	opSub              = "Sub"
	opMul              = "Mul"
	opMatVec           = "MatVec"
	opVecMat           = "VecMat"
	opDot              = "Dot"
	opTranspose        = "Transpose"
	opTransposeInPlace = "TransposeInPlace"
	opRotateSquare90   = "RotateSquare90"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a+b.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	return addSub(opAdd, a, b, 1)
}

// Sub returns a-b.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	return addSub(opSub, a, b, -1)
}

// addSub computes a + sign*b elementwise.
func addSub(tag string, a, b *Dense, sign float64) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Mul returns the matrix product a·b.
// Loop order is i-k-j so the inner loop walks both b and out row-wise.
// Complexity: O(a.Rows*a.Cols*b.Cols).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var i, k, j int
	var aik float64
	for i = 0; i < a.r; i++ {
		rowOut := out.data[i*b.c : (i+1)*b.c]
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			rowB := b.data[k*b.c : (k+1)*b.c]
			for j = 0; j < b.c; j++ {
				rowOut[j] += aik * rowB[j]
			}
		}
	}

	return out, nil
}

// MatVec returns m·x where len(x) must equal m.Cols().
// Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var sum float64
	for i := 0; i < m.r; i++ {
		sum = 0
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// VecMat returns x·m where len(x) must equal m.Rows().
// Complexity: O(r*c).
func VecMat(x []float64, m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}

	y := make([]float64, m.c)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			y[j] += xi * v
		}
	}

	return y, nil
}

// Dot returns the inner product of two equal-length vectors.
func Dot(x, y []float64) (float64, error) {
	if err := ValidateVecLen(y, len(x)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	var sum float64
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// Transpose returns a new c×r matrix with out[j][i] = m[i][j].
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// TransposeInPlace swaps m[i][j] and m[j][i] above the diagonal.
// Complexity: O(n²) time, O(1) extra space.
func (m *Dense) TransposeInPlace() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opTransposeInPlace, err)
	}

	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
		}
	}

	return nil
}

// RotateSquare90 rotates m a quarter turn clockwise, in place.
// It moves four cells at a time, layer by layer from the border inwards.
// Complexity: O(n²) time, O(1) extra space.
func (m *Dense) RotateSquare90() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opRotateSquare90, err)
	}

	n := m.r
	d := m.data
	var layer, first, last, i, offset int
	var top float64
	for layer = 0; layer < n/2; layer++ {
		first = layer
		last = n - 1 - layer
		for i = first; i < last; i++ {
			offset = i - first
			top = d[first*n+i]
			// left -> top
			d[first*n+i] = d[(last-offset)*n+first]
			// bottom -> left
			d[(last-offset)*n+first] = d[last*n+last-offset]
			// right -> bottom
			d[last*n+last-offset] = d[i*n+last]
			// top -> right
			d[i*n+last] = top
		}
	}

	return nil
}
