// Package face holds the panic-based assertion convention this module
// uses in place of error returns for programmer-error conditions.
package face

import "fmt"

// Throwf panics with a formatted message. Used throughout for invariant
// violations that indicate a caller misuse rather than a runtime condition
// the caller could reasonably recover from.
func Throwf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
