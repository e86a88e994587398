package main

import (
	"os"

	"github.com/rrwood/hive-schedule-mgr/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
