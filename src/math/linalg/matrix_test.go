package linalg

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

var invertible4x4 = []Matrix4x4[float64]{
	Identity4x4[float64](),
	NewMatrix4x4(
		2.0, 0.0, 0.0, 0.0,
		0.0, 3.0, 0.0, 0.0,
		0.0, 0.0, 4.0, 0.0,
		0.0, 0.0, 0.0, 5.0,
	),
	NewMatrix4x4(
		1.0, 2.0, 3.0, 4.0,
		0.0, 1.0, 4.0, 2.0,
		5.0, 6.0, 0.0, 1.0,
		2.0, 1.0, 3.0, 0.0,
	),
	NewMatrix4x4(
		4.0, -1.0, 0.5, 3.0,
		2.0, 7.0, -3.0, 1.0,
		0.0, 2.5, 6.0, -2.0,
		1.0, 0.0, 1.0, 1.0,
	),
	NewTranslationMatrix4x4(1.0, -2.0, 3.0).Matrix4x4,
}

func toMgl4(m Matrix4x4[float64]) mgl64.Mat4 {
	return mgl64.Mat4FromRows(
		mgl64.Vec4{m.Ij[0][0], m.Ij[0][1], m.Ij[0][2], m.Ij[0][3]},
		mgl64.Vec4{m.Ij[1][0], m.Ij[1][1], m.Ij[1][2], m.Ij[1][3]},
		mgl64.Vec4{m.Ij[2][0], m.Ij[2][1], m.Ij[2][2], m.Ij[2][3]},
		mgl64.Vec4{m.Ij[3][0], m.Ij[3][1], m.Ij[3][2], m.Ij[3][3]},
	)
}

func TestMatrix4x4Determinant(t *testing.T) {
	for idx, m := range invertible4x4 {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			require.InDelta(t, toMgl4(m).Det(), m.Determinant(), 1e-9)
		})
	}

	require.Equal(t, 1.0, Identity4x4[float64]().Determinant())
	require.Equal(t, 120.0, invertible4x4[1].Determinant())
	require.Equal(t, 0.0, Matrix4x4Fill(3.0).Determinant())
}

func TestMatrix4x4Invert(t *testing.T) {
	for idx, m := range invertible4x4 {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			inv, err := m.Invert()
			require.NoError(t, err)
			require.True(t, m.Mul(inv).IsIdentity(), "%s", m.Mul(inv))
			require.True(t, inv.Mul(m).IsIdentity(), "%s", inv.Mul(m))

			oracle := toMgl4(m).Inv()
			for r := 0; r < 4; r++ {
				for c := 0; c < 4; c++ {
					require.InDelta(t, oracle.At(r, c), inv.Ij[r][c], 1e-9)
				}
			}
		})
	}
}

func TestMatrix4x4IdentityScenario(t *testing.T) {
	id := Identity4x4[float32]()
	require.Equal(t, float32(1), id.Determinant())
	require.True(t, id.IsIdentity())

	inv, err := id.Invert()
	require.NoError(t, err)
	require.True(t, inv.IsIdentity())
}

func TestMatrixInvertSingular(t *testing.T) {
	_, err := Matrix4x4Fill(2.0).Invert()
	require.ErrorIs(t, err, ErrMatrixNotInvertible)

	_, err = NewMatrix3x3(
		1.0, 2.0, 3.0,
		2.0, 4.0, 6.0,
		0.0, 1.0, 1.0,
	).Invert()
	require.ErrorIs(t, err, ErrMatrixNotInvertible)

	_, err = NewScaleMatrix3x3(1.0, 0.0, 2.0).Invert()
	require.ErrorIs(t, err, ErrMatrixNotInvertible)

	_, err = TransformationMatrix4x4[float64]{}.Invert()
	require.ErrorIs(t, err, ErrMatrixNotInvertible)
}

func TestMatrix3x3Invert(t *testing.T) {
	for idx, m := range []Matrix3x3[float64]{
		Identity3x3[float64](),
		NewMatrix3x3(2.0, 0.0, 1.0, 1.0, 3.0, 0.0, 0.0, 1.0, 4.0),
		NewMatrix3x3(0.0, 1.0, 0.0, -1.0, 0.0, 0.0, 0.0, 0.0, 1.0),
		NewMatrix3x3(1.0, 2.0, 3.0, 0.0, 1.0, 4.0, 5.0, 6.0, 0.0),
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			inv, err := m.Invert()
			require.NoError(t, err)
			require.True(t, m.Mul(inv).IsIdentity(), "%s", m.Mul(inv))
			require.True(t, inv.Mul(m).IsIdentity(), "%s", inv.Mul(m))
		})
	}

	// non-symmetric matrix with a known inverse
	inv, err := NewMatrix3x3(1.0, 2.0, 3.0, 0.0, 1.0, 4.0, 5.0, 6.0, 0.0).Invert()
	require.NoError(t, err)
	require.True(t, inv.Equal(NewMatrix3x3(-24.0, 18.0, 5.0, 20.0, -15.0, -4.0, -5.0, 4.0, 1.0)), "%s", inv)
}

func TestMatrixTransposeTwiceIsExact(t *testing.T) {
	for _, m := range invertible4x4 {
		require.Equal(t, m, m.Transpose().Transpose())
	}
	m3 := NewMatrix3x3(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9)
	require.Equal(t, m3, m3.Transpose().Transpose())
	require.Equal(t, m3.Row(0), m3.Transpose().Column(0))
}

func TestMatrixMulRowByColumn(t *testing.T) {
	a := NewMatrix3x3(1.0, 2.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0)
	b := NewMatrix3x3(1.0, 0.0, 0.0, 3.0, 1.0, 0.0, 0.0, 0.0, 1.0)
	require.Equal(t, NewMatrix3x3(7.0, 2.0, 0.0, 3.0, 1.0, 0.0, 0.0, 0.0, 1.0), a.Mul(b))
	require.Equal(t, NewMatrix3x3(1.0, 2.0, 0.0, 3.0, 7.0, 0.0, 0.0, 0.0, 1.0), b.Mul(a))
}

func TestMatrixScalarOperators(t *testing.T) {
	m := Matrix3x3Fill(2.0)
	require.Equal(t, Matrix3x3Fill(6.0), m.Scale(3))
	require.Equal(t, Matrix3x3Fill(1.0), m.Div(2))
	require.Equal(t, Matrix3x3Fill(4.0), m.Add(m))
	require.True(t, m.Sub(m).IsZero())
	require.Panics(t, func() { m.Div(0) })
	require.Panics(t, func() { Matrix4x4Fill(1.0).Div(1e-14) })
	require.Panics(t, func() { Matrix4x4FromSlice([]float64{1, 2, 3}) })
	require.Equal(t, Identity4x4[float64](), Matrix4x4FromSlice([]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}))
}

func TestMatrixString(t *testing.T) {
	require.Equal(t, "M3x3((1,0,0)(0,1,0)(0,0,1))", Identity3x3[float64]().String())
	require.Equal(t,
		"M4x4((1,2,3,4)(0,1,4,2)(5,6,0,1)(2,1,3,0))",
		invertible4x4[2].String())
}
