package main

import (
	"os"

	"cashflowstory/cmd/cashflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
