// Package main is the entry point for the balloons CLI.
package main

import (
	"os"

	"github.com/f3rmion/balloons/cmd/balloons/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
