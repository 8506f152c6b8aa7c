package interop

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

// The x/image/math arrays are row major like linalg matrices, so element
// (r, c) of an N-column array sits at N*r + c.

func ToF64Vec2[T scalar.Float](v linalg.Vector2[T]) f64.Vec2 {
	return f64.Vec2{float64(v.X), float64(v.Y)}
}

func FromF64Vec2[T scalar.Float](v f64.Vec2) linalg.Vector2[T] {
	return linalg.NewVector2(T(v[0]), T(v[1]))
}

func ToF64Vec3[T scalar.Float](v linalg.Vector3[T]) f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func FromF64Vec3[T scalar.Float](v f64.Vec3) linalg.Vector3[T] {
	return linalg.NewVector3(T(v[0]), T(v[1]), T(v[2]))
}

func ToF64Vec4[T scalar.Float](v linalg.Vector4[T]) f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

func FromF64Vec4[T scalar.Float](v f64.Vec4) linalg.Vector4[T] {
	return linalg.NewVector4(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}

func ToF64Mat3[T scalar.Float](m linalg.Matrix3x3[T]) f64.Mat3 {
	var out f64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = float64(m.Ij[r][c])
		}
	}
	return out
}

func FromF64Mat3[T scalar.Float](m f64.Mat3) linalg.Matrix3x3[T] {
	s := make([]T, len(m))
	for i, v := range m {
		s[i] = T(v)
	}
	return linalg.Matrix3x3FromSlice(s)
}

func ToF64Mat4[T scalar.Float](m linalg.Matrix4x4[T]) f64.Mat4 {
	var out f64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = float64(m.Ij[r][c])
		}
	}
	return out
}

func FromF64Mat4[T scalar.Float](m f64.Mat4) linalg.Matrix4x4[T] {
	s := make([]T, len(m))
	for i, v := range m {
		s[i] = T(v)
	}
	return linalg.Matrix4x4FromSlice(s)
}

// ToAff3 drops the implicit [0 0 1] bottom row of a 2D transformation, the
// form x/image/draw expects.
func ToAff3[T scalar.Float](m linalg.TransformationMatrix3x3[T]) f64.Aff3 {
	return f64.Aff3{
		float64(m.Ij[0][0]), float64(m.Ij[0][1]), float64(m.Ij[0][2]),
		float64(m.Ij[1][0]), float64(m.Ij[1][1]), float64(m.Ij[1][2]),
	}
}

func FromAff3[T scalar.Float](a f64.Aff3) linalg.TransformationMatrix3x3[T] {
	return linalg.TransformationMatrix3x3[T]{Matrix3x3: linalg.NewMatrix3x3(
		T(a[0]), T(a[1]), T(a[2]),
		T(a[3]), T(a[4]), T(a[5]),
		0, 0, 1,
	)}
}

// ToAff4 drops the implicit [0 0 0 1] bottom row.
func ToAff4[T scalar.Float](m linalg.TransformationMatrix4x4[T]) f64.Aff4 {
	var out f64.Aff4
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = float64(m.Ij[r][c])
		}
	}
	return out
}

func FromAff4[T scalar.Float](a f64.Aff4) linalg.TransformationMatrix4x4[T] {
	m := linalg.Identity4x4[T]()
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			m.Ij[r][c] = T(a[4*r+c])
		}
	}
	return linalg.TransformationMatrix4x4[T]{Matrix4x4: m}
}

func ToF32Vec3[T scalar.Float](v linalg.Vector3[T]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func FromF32Vec3[T scalar.Float](v f32.Vec3) linalg.Vector3[T] {
	return linalg.NewVector3(T(v[0]), T(v[1]), T(v[2]))
}

func ToF32Vec4[T scalar.Float](v linalg.Vector4[T]) f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func FromF32Vec4[T scalar.Float](v f32.Vec4) linalg.Vector4[T] {
	return linalg.NewVector4(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}

func ToF32Mat4[T scalar.Float](m linalg.Matrix4x4[T]) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = float32(m.Ij[r][c])
		}
	}
	return out
}

func FromF32Mat4[T scalar.Float](m f32.Mat4) linalg.Matrix4x4[T] {
	s := make([]T, len(m))
	for i, v := range m {
		s[i] = T(v)
	}
	return linalg.Matrix4x4FromSlice(s)
}
