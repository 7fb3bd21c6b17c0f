// Command rgc is a demo/inspection CLI for the render-graph compiler: it
// builds one of the bundled fixtures, compiles it, and prints the
// resulting schedule and resource aliasing.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
