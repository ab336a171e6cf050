// Command distmap prepares dense distance matrices for variogram-matched
// surrogate sampling and ships the resulting artifacts to object storage.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
