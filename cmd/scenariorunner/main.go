package main

import (
	"github.com/adest/scenariorunner/pkg/lib"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		lib.Exit(err)
	}
}
