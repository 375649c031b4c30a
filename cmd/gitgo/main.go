// Command gitgo is a thin CLI wrapper around the gitcore library: it
// decodes flags and arguments and calls into the library. It doesn't
// implement DOT graph rendering, ls-tree's column formatting, or
// anything else beyond the simplest presentation of the library's
// output.
package main

import (
	"fmt"
	"os"

	"github.com/colinmarc/gitcore/internal/env"
)

func main() {
	root := newRootCmd(env.NewFromOs())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
