// Command hdrpixtool inspects and transforms images through the hdrpix
// pipeline from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hdrpixtool:", err)
		os.Exit(1)
	}
}
