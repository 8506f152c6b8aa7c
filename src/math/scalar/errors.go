package scalar

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// ErrPrecondition is wrapped by every PreconditionError.
var ErrPrecondition = errors.New("precondition violated")

// PreconditionError is the panic value raised when an operation is called
// with arguments it cannot work with (division by zero, normalizing a zero
// vector, a plane from collinear points...).
type PreconditionError struct {
	Op     string
	Reason string
	Frame  string
}

func (e *PreconditionError) Error() string {
	if e.Frame == "" {
		return fmt.Sprintf("%s: %s: %s", ErrPrecondition, e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s on %s", ErrPrecondition, e.Op, e.Reason, e.Frame)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// Assert panics with a *PreconditionError when cond is false.
func Assert(cond bool, op, reason string) {
	if cond {
		return
	}
	err := &PreconditionError{Op: op, Reason: reason}
	if pc, _, _, ok := runtime.Caller(2); ok {
		err.Frame = newStackFrame(pc).String()
	}
	Logger().Error("precondition violated", "op", op, "reason", reason, "frame", err.Frame)
	panic(err)
}

// CheckError turns a precondition panic into an error. It must be deferred:
//
//	func area(q Quadrilateral) (a float64, err error) {
//		defer scalar.CheckError(&err)
//		...
//	}
//
// Panics of any other kind are re-raised.
func CheckError(err *error) {
	v := recover()
	if v == nil {
		return
	}
	if pe, ok := v.(*PreconditionError); ok {
		*err = pe
		return
	}
	panic(v)
}

// Must returns v, panicking if err is not nil.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

type stackFrame struct {
	function string
	file     string
	line     int
}

func newStackFrame(pc uintptr) stackFrame {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return stackFrame{function: "unknown"}
	}
	file, line := fn.FileLine(pc)
	return stackFrame{function: fn.Name(), file: filepath.Base(file), line: line}
}

func (f stackFrame) String() string {
	if f.file == "" {
		return f.function
	}
	return fmt.Sprintf("%s (%s:%d)", f.function, f.file, f.line)
}
