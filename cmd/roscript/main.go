package main

import (
	"os"

	"github.com/RaresPSCR/ROScript/cmd/roscript/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
