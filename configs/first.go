package configs

import (
	"errors"
)

// First decodes the first value found, trying paths in order. Missing values
// give the zero T; other errors panic.
func First[T any](loader Loader, paths ...string) T {
	var value T
	for _, path := range paths {
		err := loader.AssignFirst(path, &value)
		if err == nil {
			return value
		}
		if !errors.Is(err, ErrValueNotFound) {
			panic(err)
		}
	}
	return value
}
