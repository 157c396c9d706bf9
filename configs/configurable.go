package configs

// Configurable is a value type read from a fixed path in the config files.
type Configurable interface {
	ConfigExpr() string
}

// Get decodes the first value at T's path. The zero T is returned when no
// file sets it.
func Get[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
