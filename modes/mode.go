package modes

import "fmt"

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ReportsLeaks tells whether sessions should report cells still live after
// generation.
func (m Mode) ReportsLeaks() bool {
	return m == ModeDevelopment
}
