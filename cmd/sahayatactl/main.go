// Command sahayatactl queries and seeds a scheme catalog from the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}
