//go:build !debug

package geom2d

// logDebugf is a no-op outside a `-tags debug` build.
func logDebugf(format string, v ...interface{}) {}
