package linalg

import (
	"geomq/src/math/scalar"
)

// TranslationMatrix4x4 is an identity with the offset in column 3.
type TranslationMatrix4x4[T scalar.Float] struct {
	Matrix4x4[T]
}

func NewTranslationMatrix4x4[T scalar.Float](x, y, z T) TranslationMatrix4x4[T] {
	m := Identity4x4[T]()
	m.Ij[0][3], m.Ij[1][3], m.Ij[2][3] = x, y, z
	return TranslationMatrix4x4[T]{Matrix4x4: m}
}

func TranslationMatrix4x4FromVector[T scalar.Float](t Vector3[T]) TranslationMatrix4x4[T] {
	return NewTranslationMatrix4x4(t.X, t.Y, t.Z)
}

// Mul adds the offsets.
func (m TranslationMatrix4x4[T]) Mul(o TranslationMatrix4x4[T]) TranslationMatrix4x4[T] {
	return TranslationMatrix4x4FromVector(m.Translation().Add(o.Translation()))
}

// Invert negates the offset; a translation is never singular.
func (m TranslationMatrix4x4[T]) Invert() TranslationMatrix4x4[T] {
	return TranslationMatrix4x4FromVector(m.Translation().Neg())
}

func (m TranslationMatrix4x4[T]) Translation() Vector3[T] {
	return Vector3[T]{X: m.Ij[0][3], Y: m.Ij[1][3], Z: m.Ij[2][3]}
}
