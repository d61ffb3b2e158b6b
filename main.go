package main

import (
	"os"

	"github.com/mgarcia/palabra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
