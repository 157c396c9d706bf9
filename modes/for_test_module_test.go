package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		got *testing.T,
		mode Mode,
	) {
		if got != t {
			t.Fatal("wrong t")
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if !mode.ReportsLeaks() {
			t.Fatal("should report leaks")
		}
	})
}
