package main

import (
	"os"

	"github.com/verdanthealth/trackrules/cmd/trackrules/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
