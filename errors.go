package sierpinski

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidParameter is wrapped by every error returned for bad generator
// input. Generation never starts when it is returned.
var ErrInvalidParameter = errors.New("invalid parameter")

// errParam returns an ErrInvalidParameter annotated with the calling function name and line number.
func errParam(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %w: %s", ErrInvalidParameter, msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %w: %s", fn.Name(), line, ErrInvalidParameter, msg)
}
