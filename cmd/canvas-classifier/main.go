// Package main is the entry point for canvas-classifier.
package main

import (
	"os"

	"github.com/donaldgifford/canvas-classifier/cmd/canvas-classifier/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
