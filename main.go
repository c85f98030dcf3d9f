package main

import (
	"os"

	"github.com/heliosam/clickup-setup/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
