package linalg

import (
	"geomq/src/math/scalar"
)

// TransformationMatrix4x4 is an affine T·R·S composition: scale first, then
// rotation, then translation.
type TransformationMatrix4x4[T scalar.Float] struct {
	Matrix4x4[T]
}

func IdentityTransformation4x4[T scalar.Float]() TransformationMatrix4x4[T] {
	return TransformationMatrix4x4[T]{Matrix4x4: Identity4x4[T]()}
}

func NewTransformationMatrix4x4[T scalar.Float](translation Vector3[T], rotation Quaternion[T], scale Vector3[T]) TransformationMatrix4x4[T] {
	return TransformationMatrix4x4FromMatrices(
		TranslationMatrix4x4FromVector(translation),
		RotationMatrix3x3FromQuaternion(rotation),
		ScaleMatrix3x3FromVector(scale),
	)
}

func TransformationMatrix4x4FromMatrices[T scalar.Float](t TranslationMatrix4x4[T], r RotationMatrix3x3[T], s ScaleMatrix3x3[T]) TransformationMatrix4x4[T] {
	m := Matrix4x4FromMatrix3x3(r.Matrix3x3.Mul(s.Matrix3x3))
	off := t.Translation()
	m.Ij[0][3], m.Ij[1][3], m.Ij[2][3] = off.X, off.Y, off.Z
	return TransformationMatrix4x4[T]{Matrix4x4: m}
}

// Mul composes two transformations; o is applied first.
func (m TransformationMatrix4x4[T]) Mul(o TransformationMatrix4x4[T]) TransformationMatrix4x4[T] {
	return TransformationMatrix4x4[T]{Matrix4x4: m.Matrix4x4.Mul(o.Matrix4x4)}
}

func (m TransformationMatrix4x4[T]) Invert() (TransformationMatrix4x4[T], error) {
	inv, err := m.Matrix4x4.Invert()
	if err != nil {
		return TransformationMatrix4x4[T]{}, err
	}
	return TransformationMatrix4x4[T]{Matrix4x4: inv}, nil
}

func (m TransformationMatrix4x4[T]) Translation() Vector3[T] {
	return Vector3[T]{X: m.Ij[0][3], Y: m.Ij[1][3], Z: m.Ij[2][3]}
}

// Decompose splits m back into translation, rotation and positive scale
// factors. Any zero scale factor yields an identity rotation.
func (m TransformationMatrix4x4[T]) Decompose() (Vector3[T], Quaternion[T], Vector3[T]) {
	b := m.Matrix3x3()
	s := Vector3[T]{X: b.Column(0).Length(), Y: b.Column(1).Length(), Z: b.Column(2).Length()}
	if scalar.IsZero(s.X) || scalar.IsZero(s.Y) || scalar.IsZero(s.Z) {
		return m.Translation(), IdentityQuaternion[T](), s
	}
	for r := 0; r < 3; r++ {
		b.Ij[r][0] /= s.X
		b.Ij[r][1] /= s.Y
		b.Ij[r][2] /= s.Z
	}
	return m.Translation(), QuaternionFromRotationMatrix(b), s
}

// TransformationMatrix3x3 is the homogeneous 2D counterpart of
// TransformationMatrix4x4; it transforms Vector2 values.
type TransformationMatrix3x3[T scalar.Float] struct {
	Matrix3x3[T]
}

func IdentityTransformation3x3[T scalar.Float]() TransformationMatrix3x3[T] {
	return TransformationMatrix3x3[T]{Matrix3x3: Identity3x3[T]()}
}

// NewTransformationMatrix3x3 scales, then rotates counterclockwise, then translates.
func NewTransformationMatrix3x3[T scalar.Float](translation Vector2[T], rotation scalar.Angle[T], scale Vector2[T]) TransformationMatrix3x3[T] {
	s, c := scalar.Sin(rotation.Radians()), scalar.Cos(rotation.Radians())
	return TransformationMatrix3x3[T]{Matrix3x3: NewMatrix3x3(
		c*scale.X, -s*scale.Y, translation.X,
		s*scale.X, c*scale.Y, translation.Y,
		0, 0, 1,
	)}
}

func (m TransformationMatrix3x3[T]) Mul(o TransformationMatrix3x3[T]) TransformationMatrix3x3[T] {
	return TransformationMatrix3x3[T]{Matrix3x3: m.Matrix3x3.Mul(o.Matrix3x3)}
}

func (m TransformationMatrix3x3[T]) Invert() (TransformationMatrix3x3[T], error) {
	inv, err := m.Matrix3x3.Invert()
	if err != nil {
		return TransformationMatrix3x3[T]{}, err
	}
	return TransformationMatrix3x3[T]{Matrix3x3: inv}, nil
}

// TransformPoint applies the full transformation to a point (w=1).
func (m TransformationMatrix3x3[T]) TransformPoint(v Vector2[T]) Vector2[T] {
	return Vector2[T]{
		X: m.Ij[0][0]*v.X + m.Ij[0][1]*v.Y + m.Ij[0][2],
		Y: m.Ij[1][0]*v.X + m.Ij[1][1]*v.Y + m.Ij[1][2],
	}
}

// TransformDirection ignores the translation.
func (m TransformationMatrix3x3[T]) TransformDirection(v Vector2[T]) Vector2[T] {
	return Vector2[T]{
		X: m.Ij[0][0]*v.X + m.Ij[0][1]*v.Y,
		Y: m.Ij[1][0]*v.X + m.Ij[1][1]*v.Y,
	}
}

func (m TransformationMatrix3x3[T]) Translation() Vector2[T] {
	return Vector2[T]{X: m.Ij[0][2], Y: m.Ij[1][2]}
}
