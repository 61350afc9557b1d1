// Package main provides the reqtrace binary entry point.
// Reqtrace manages traceability between requirements and specifications
// for regulated software projects: cross-reference validation, circular
// dependency detection, traceability matrix export, and unit-test
// coverage analysis against a test-run log.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/c360studio/reqtrace/commands"
)

const Version = "0.1.0"

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := commands.Root(Version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
