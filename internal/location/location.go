// Package location tags error and log messages with the call site that
// produced them.
package location

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Here returns the package name, file name, and line number of the caller
// skip frames up the stack (skip=0 is the function that calls Here).
func Here(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")
	pkgFunc := parts[len(parts)-1]
	pkgName := strings.Split(pkgFunc, ".")[0]

	_, fileName := filepath.Split(file)

	return fmt.Sprintf("%s/%s:%d", pkgName, fileName, line)
}
