// Package interop converts the linalg value types to and from the vector
// and matrix types of other Go math libraries. Conversions copy; nothing is
// shared with the source value.
package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

func ToMgl64Vec2[T scalar.Float](v linalg.Vector2[T]) mgl64.Vec2 {
	return mgl64.Vec2{float64(v.X), float64(v.Y)}
}

func FromMgl64Vec2[T scalar.Float](v mgl64.Vec2) linalg.Vector2[T] {
	return linalg.NewVector2(T(v[0]), T(v[1]))
}

func ToMgl64Vec3[T scalar.Float](v linalg.Vector3[T]) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func FromMgl64Vec3[T scalar.Float](v mgl64.Vec3) linalg.Vector3[T] {
	return linalg.NewVector3(T(v[0]), T(v[1]), T(v[2]))
}

func ToMgl64Vec4[T scalar.Float](v linalg.Vector4[T]) mgl64.Vec4 {
	return mgl64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

func FromMgl64Vec4[T scalar.Float](v mgl64.Vec4) linalg.Vector4[T] {
	return linalg.NewVector4(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}

// ToMgl64Mat3 keeps element (r, c) at (r, c); mathgl stores columns first.
func ToMgl64Mat3[T scalar.Float](m linalg.Matrix3x3[T]) mgl64.Mat3 {
	var out mgl64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c*3+r] = float64(m.Ij[r][c])
		}
	}
	return out
}

func FromMgl64Mat3[T scalar.Float](m mgl64.Mat3) linalg.Matrix3x3[T] {
	var out linalg.Matrix3x3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Ij[r][c] = T(m.At(r, c))
		}
	}
	return out
}

func ToMgl64Mat4[T scalar.Float](m linalg.Matrix4x4[T]) mgl64.Mat4 {
	row := func(r int) mgl64.Vec4 { return ToMgl64Vec4(m.Row(r)) }
	return mgl64.Mat4FromRows(row(0), row(1), row(2), row(3))
}

func FromMgl64Mat4[T scalar.Float](m mgl64.Mat4) linalg.Matrix4x4[T] {
	var out linalg.Matrix4x4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Ij[r][c] = T(m.At(r, c))
		}
	}
	return out
}

func ToMgl64Quat[T scalar.Float](q linalg.Quaternion[T]) mgl64.Quat {
	return mgl64.Quat{W: float64(q.W), V: mgl64.Vec3{float64(q.X), float64(q.Y), float64(q.Z)}}
}

func FromMgl64Quat[T scalar.Float](q mgl64.Quat) linalg.Quaternion[T] {
	return linalg.NewQuaternion(T(q.V[0]), T(q.V[1]), T(q.V[2]), T(q.W))
}

func ToMgl32Vec3[T scalar.Float](v linalg.Vector3[T]) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func FromMgl32Vec3[T scalar.Float](v mgl32.Vec3) linalg.Vector3[T] {
	return linalg.NewVector3(T(v[0]), T(v[1]), T(v[2]))
}

func ToMgl32Mat4[T scalar.Float](m linalg.Matrix4x4[T]) mgl32.Mat4 {
	var out mgl32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = float32(m.Ij[r][c])
		}
	}
	return out
}

func FromMgl32Mat4[T scalar.Float](m mgl32.Mat4) linalg.Matrix4x4[T] {
	var out linalg.Matrix4x4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Ij[r][c] = T(m.At(r, c))
		}
	}
	return out
}

func ToMgl32Quat[T scalar.Float](q linalg.Quaternion[T]) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: mgl32.Vec3{float32(q.X), float32(q.Y), float32(q.Z)}}
}

func FromMgl32Quat[T scalar.Float](q mgl32.Quat) linalg.Quaternion[T] {
	return linalg.NewQuaternion(T(q.V[0]), T(q.V[1]), T(q.V[2]), T(q.W))
}
