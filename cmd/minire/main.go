// Command minire parses patterns and prints their syntax trees.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Run(os.Args[1:]); err != nil {
		fmt.Fprintf(osStderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
