package main

import (
	"os"

	"activityhub/cmd/activityhub/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
