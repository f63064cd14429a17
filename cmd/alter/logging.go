// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package main

import (
	"fmt"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// initLogging routes log output to stderr with the nested formatter.
// The tool is one-shot, so there is no log file and no rotation.
func initLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		TimestampFormat: "2006-01-02 15:04:05",
		NoColors:        !isatty.IsTerminal(os.Stderr.Fd()),
	})
	return nil
}
