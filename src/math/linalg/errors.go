package linalg

import (
	"errors"
	"fmt"

	"geomq/src/math/scalar"
)

// ErrMatrixNotInvertible is returned when inverting a matrix whose
// determinant is zero under the tolerance.
var ErrMatrixNotInvertible = errors.New("matrix not invertible")

func notInvertible[T scalar.Float](kind string, det T) error {
	scalar.Logger().Debug("singular matrix", "kind", kind, "determinant", float64(det))
	return fmt.Errorf("%s: %w (determinant %s)", kind, ErrMatrixNotInvertible, scalar.Format(det))
}
