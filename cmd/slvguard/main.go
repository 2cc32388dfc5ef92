package main

import (
	"github.com/sirupsen/logrus"
	"os"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
