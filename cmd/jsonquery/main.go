// Command jsonquery reads a JSON operation document and prints the GraphQL text it describes.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := newRootCommand(viper.New(), logger)
	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("could not compile document")
		os.Exit(1)
	}
}
