package geometry

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation is a 3x3 rotation matrix stored row-major.
// It maps points of a volume's local frame into its mother's frame.
type Rotation [3][3]float64

// Identity returns the identity rotation.
func Identity() Rotation {
	return Rotation{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

var eulerAxes = map[rune]r3.Vec{
	'x': {X: 1},
	'y': {Y: 1},
	'z': {Z: 1},
}

// RotationFromEuler builds a rotation from a sequence of axes and angles in
// degrees. Lowercase axes ("xyz") are extrinsic rotations about the fixed
// frame, uppercase axes ("XYZ") are intrinsic rotations about the rotating
// frame. Mixing both is an error.
func RotationFromEuler(seq string, degrees ...float64) (Rotation, error) {
	if seq == "" || len(seq) > 3 {
		return Rotation{}, fmt.Errorf("euler sequence %q must have 1 to 3 axes", seq)
	}
	if len(seq) != len(degrees) {
		return Rotation{}, fmt.Errorf("euler sequence %q needs %d angles, got %d", seq, len(seq), len(degrees))
	}

	intrinsic := strings.ToUpper(seq) == seq
	if !intrinsic && strings.ToLower(seq) != seq {
		return Rotation{}, fmt.Errorf("euler sequence %q mixes intrinsic and extrinsic axes", seq)
	}

	axes := []rune(strings.ToLower(seq))
	angles := append([]float64(nil), degrees...)
	if intrinsic {
		// Intrinsic rotations equal the extrinsic ones applied in reverse order.
		for i, j := 0, len(axes)-1; i < j; i, j = i+1, j-1 {
			axes[i], axes[j] = axes[j], axes[i]
			angles[i], angles[j] = angles[j], angles[i]
		}
	}

	basis := [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	for i, axis := range axes {
		axisVec, ok := eulerAxes[unicode.ToLower(axis)]
		if !ok {
			return Rotation{}, fmt.Errorf("unknown euler axis %q", axis)
		}
		rot := r3.NewRotation(angles[i]*Deg, axisVec)
		for j := range basis {
			basis[j] = rot.Rotate(basis[j])
		}
	}

	var r Rotation
	for j, column := range basis {
		r[0][j], r[1][j], r[2][j] = column.X, column.Y, column.Z
	}
	return r, nil
}

// MustRotationFromEuler is RotationFromEuler for constant sequences.
func MustRotationFromEuler(seq string, degrees ...float64) Rotation {
	r, err := RotationFromEuler(seq, degrees...)
	if err != nil {
		panic(err)
	}
	return r
}

// Apply returns the matrix-vector product r·v.
func (r Rotation) Apply(v Vec3D) Vec3D {
	return fromR3(r3.NewMat(r.flat()).MulVec(v.r3()))
}

// ApplyRow returns the row-vector product v·r, which is rᵀ·v.
func (r Rotation) ApplyRow(v Vec3D) Vec3D {
	return fromR3(r3.NewMat(r.flat()).MulVecTrans(v.r3()))
}

// IsOrthonormal reports whether r·rᵀ equals the identity within tol.
// Reflections are orthonormal.
func (r Rotation) IsOrthonormal(tol float64) bool {
	m := mat.NewDense(3, 3, r.flat())
	var product mat.Dense
	product.Mul(m, m.T())
	return mat.EqualApprox(&product, mat.NewDiagDense(3, []float64{1, 1, 1}), tol)
}

// IsProper reports whether r is orthonormal with det(r) = +1 within tol,
// that is a rotation and not a reflection.
func (r Rotation) IsProper(tol float64) bool {
	if !r.IsOrthonormal(tol) {
		return false
	}
	return math.Abs(mat.Det(mat.NewDense(3, 3, r.flat()))-1) <= tol
}

func (r Rotation) flat() []float64 {
	return []float64{
		r[0][0], r[0][1], r[0][2],
		r[1][0], r[1][1], r[1][2],
		r[2][0], r[2][1], r[2][2],
	}
}
