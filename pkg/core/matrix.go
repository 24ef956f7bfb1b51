package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mat4 is a row-major 4x4 affine transform matrix
type Mat4 [4][4]float64

// Identity returns the identity matrix
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix that moves points by (x, y, z)
func Translation(x, y, z float64) Mat4 {
	m := Identity()
	m[0][3], m[1][3], m[2][3] = x, y, z
	return m
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) Mat4 {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return m
}

// RotationX returns a rotation of radians about the X axis
func RotationX(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotationY returns a rotation of radians about the Y axis
func RotationY(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotationZ returns a rotation of radians about the Z axis
func RotationZ(radians float64) Mat4 {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Shearing returns a matrix where each coordinate moves in proportion to
// the other two, e.g. xy moves x in proportion to y
func Shearing(xy, xz, yx, yz, zx, zy float64) Mat4 {
	m := Identity()
	m[0][1], m[0][2] = xy, xz
	m[1][0], m[1][2] = yx, yz
	m[2][0], m[2][1] = zx, zy
	return m
}

// Chain composes transforms so that the first one listed is applied first
func Chain(transforms ...Mat4) Mat4 {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// Multiply returns m * other
func (m Mat4) Multiply(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row][k] * other[k][col]
			}
			result[row][col] = sum
		}
	}
	return result
}

// MulPoint transforms a point, including translation
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return NewVec3(
		m[0][0]*p.X+m[0][1]*p.Y+m[0][2]*p.Z+m[0][3],
		m[1][0]*p.X+m[1][1]*p.Y+m[1][2]*p.Z+m[1][3],
		m[2][0]*p.X+m[2][1]*p.Y+m[2][2]*p.Z+m[2][3],
	)
}

// MulVector transforms a direction, ignoring translation
func (m Mat4) MulVector(v Vec3) Vec3 {
	return NewVec3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

// Transpose swaps rows and columns
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

func (m Mat4) dense() *mat.Dense {
	data := make([]float64, 0, 16)
	for row := 0; row < 4; row++ {
		data = append(data, m[row][:]...)
	}
	return mat.NewDense(4, 4, data)
}

// Inverse returns the inverse matrix, or false when m is singular.
// Singularity is judged by the condition number, so uniformly tiny or huge
// scales still invert.
func (m Mat4) Inverse() (Mat4, bool) {
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		// Exact singularity reports an infinite mat.Condition, near
		// singularity one above mat.ConditionTolerance
		var cond mat.Condition
		if errors.As(err, &cond) {
			return Mat4{}, false
		}
		panic(fmt.Sprintf("core: inverting matrix: %v", err))
	}

	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = inv.At(row, col)
		}
	}
	return result, true
}

// Equals reports whether every element agrees within tolerance
func (m Mat4) Equals(other Mat4, tolerance float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) > tolerance {
				return false
			}
		}
	}
	return true
}
