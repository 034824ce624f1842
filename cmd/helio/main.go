package main

import (
	"os"

	"github.com/cleantech-forge/helio/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
