package main

import (
	"os"

	"github.com/skillpath/skillpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
