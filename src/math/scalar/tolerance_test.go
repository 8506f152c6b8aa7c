package scalar

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEpsilonPerPrecision(t *testing.T) {
	require.Equal(t, float32(1e-6), Epsilon[float32]())
	require.Equal(t, 1e-12, Epsilon[float64]())
}

func TestMaxValue(t *testing.T) {
	require.Equal(t, float32(math.MaxFloat32), MaxValue[float32]())
	require.Equal(t, math.MaxFloat64, MaxValue[float64]())
	require.False(t, math.IsInf(float64(MaxValue[float32]()), 1))
}

func TestIsNegligible(t *testing.T) {
	for idx, tc := range []struct {
		a, m float64
		want bool
	}{
		{0, 0, true},
		{1e-13, 0.5, true},
		{1e-11, 0.5, false},
		{1e-11, 1e3, true},
		{1e-8, 1e3, false},
		{-1e-10, -1e3, true},
	} {
		t.Run(fmt.Sprintf("%d/%v@%v", idx, tc.a, tc.m), func(t *testing.T) {
			require.Equal(t, tc.want, IsNegligible(tc.a, tc.m))
		})
	}
	require.True(t, IsNegligible(float32(1e-4), float32(1e3)))
	require.False(t, IsNegligible(float32(1e-2), float32(1e3)))
}

func TestAreEqual(t *testing.T) {
	for idx, tc := range []struct {
		a, b float64
		want bool
	}{
		{0, 0, true},
		{1, 1 + 1e-13, true},
		{1, 1 + 1e-11, false},
		{-3, -3, true},
		{1e-13, -1e-13, true},
		{2, 1, false},
	} {
		t.Run(fmt.Sprintf("%d/%v==%v", idx, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.want, AreEqual(tc.a, tc.b))
			require.Equal(t, !tc.want, AreNotEqual(tc.a, tc.b))
		})
	}
}

func TestAreEqualSinglePrecision(t *testing.T) {
	require.True(t, AreEqual(float32(1), float32(1.0000005)))
	require.False(t, AreEqual(float32(1), float32(1.00001)))
}

func TestSignPredicates(t *testing.T) {
	eps := Epsilon[float64]()

	require.True(t, IsZero(eps/2))
	require.False(t, IsZero(eps*2))
	require.True(t, IsNotZero(0.1))

	require.False(t, IsNegative(-eps/2))
	require.True(t, IsNegative(-eps*2))
	require.False(t, IsPositive(eps/2))
	require.True(t, IsPositive(eps*2))
}

func TestOrderingPredicates(t *testing.T) {
	eps := Epsilon[float64]()

	require.True(t, IsGreaterOrEquals(1.0, 1.0+eps/2))
	require.True(t, IsGreaterOrEquals(2.0, 1.0))
	require.False(t, IsGreaterOrEquals(1.0, 2.0))

	require.True(t, IsLessOrEquals(1.0+eps/2, 1.0))
	require.True(t, IsLessOrEquals(1.0, 2.0))
	require.False(t, IsLessOrEquals(2.0, 1.0))

	require.False(t, IsGreaterThan(1.0+eps/2, 1.0))
	require.True(t, IsGreaterThan(2.0, 1.0))
	require.False(t, IsLessThan(1.0, 1.0+eps/2))
	require.True(t, IsLessThan(1.0, 2.0))
}

func TestDivPanicsOnZero(t *testing.T) {
	require.Equal(t, 2.0, Div(4.0, 2.0))

	var err error
	func() {
		defer CheckError(&err)
		Div(1.0, 1e-14)
	}()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrPrecondition)
}

func TestAcosClamps(t *testing.T) {
	require.False(t, math.IsNaN(Acos(1.0000000001)))
	require.Equal(t, 0.0, Acos(1.0000000001))
	require.InDelta(t, math.Pi, Acos(-1.0000000001), 1e-12)
}

func TestFormat(t *testing.T) {
	require.Equal(t, "0.5", Format(0.5))
	require.Equal(t, "0.1", Format(float32(0.1)))
	require.Equal(t, "-3", Format(-3.0))
}
