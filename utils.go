package main

import (
	"fmt"
	"os"
	"path/filepath"
)

var osSeparator = string(os.PathSeparator)

func StandardiseDirPath(cwd string) string {
	if string(cwd[len(cwd)-1]) == osSeparator {
		return cwd
	} else {
		return cwd + osSeparator
	}
}

func ResolveAbsoluteCwd(cwd string) string {
	if filepath.IsAbs(cwd) {
		return StandardiseDirPath(cwd)
	} else {
		binaryExecDir, _ := os.Getwd()
		return StandardiseDirPath(filepath.Join(binaryExecDir, cwd))
	}
}

// logWarning reports a non-fatal condition on stderr. Warnings never change
// the exit code; failures that should stop the run return errors instead.
func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
