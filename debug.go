package physics3d

import "fmt"

// debugAssertions gates assertf. Left false so invariant checks cost
// nothing in a normal build, mirroring the teacher's B2Assert/B2DEBUG
// pattern (CommonB2Settings.go) without paying for it by default.
const debugAssertions = false

// assertf panics with a formatted message if cond is false and
// debugAssertions is enabled. A no-op otherwise.
func assertf(cond bool, format string, args ...interface{}) {
	if !debugAssertions {
		return
	}
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
