package scalar

import (
	"strconv"
	"unsafe"
)

func formatFloat[T Float](v T) string {
	if unsafe.Sizeof(v) == 4 {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
