package tapeconfigs

import (
	"errors"
	"fmt"
)

var ErrInvalidFlag = errors.New("invalid flag value")

// ValidateFlags reports flag values no provider can use. Unset flags are
// zero and pass.
func ValidateFlags() error {
	var errs []error
	if *tapeSizeFlag < 0 {
		errs = append(errs, fmt.Errorf("%w: -size %d, want a positive cell count", ErrInvalidFlag, *tapeSizeFlag))
	}
	if *displayWidthFlag < 0 {
		errs = append(errs, fmt.Errorf("%w: -width %d, want 0 or more", ErrInvalidFlag, *displayWidthFlag))
	}
	if *jobsFlag < 0 {
		errs = append(errs, fmt.Errorf("%w: -jobs %d, want a positive count", ErrInvalidFlag, *jobsFlag))
	}
	return errors.Join(errs...)
}
