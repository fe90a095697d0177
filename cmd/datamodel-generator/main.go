package main

import (
	"os"

	"datamodel-generator/cmd/datamodel-generator/commands"
)

// Version is the current version of datamodel-generator.
const Version = "v0.1.0"

func main() {
	commands.SetVersion(Version)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
