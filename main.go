package main

import (
	"os"

	"github.com/abhisek/mindmorph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
