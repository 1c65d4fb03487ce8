// Command deck runs a slide deck in a window, validates deck configs, and
// prints the default configuration.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
