//go:build skyhopdebug

package jumper

import "fmt"

// assertf panics when cond is false. Only compiled into debug builds.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("jumper: invariant violated: "+format, args...))
	}
}
