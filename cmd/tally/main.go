package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tally-dev/tally/internal/commands"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := commands.NewRootCommand(log).Execute(); err != nil {
		os.Exit(1)
	}
}
