//go:build debug

package geom2d

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[geom2d DEBUG] ", log.LstdFlags)

// logDebugf logs a debug message. It is only linked in when the repo is
// built with `-tags debug`; the non-debug build uses the no-op counterpart
// in debug_off.go so ordinary builds never pay for this formatting.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

func init() {
	logDebugf("debug logging enabled")
}
