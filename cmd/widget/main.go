package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCmd(os.Stdout, os.Stdin).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
