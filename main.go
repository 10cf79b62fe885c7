package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	snipApp "gitlab.com/youtopia.earth/ops/snip-please/app"
	"gitlab.com/youtopia.earth/ops/snip-please/errors"
)

var Version string

func main() {
	app := snipApp.NewApp(Version)
	cobra.OnInitialize(app.OnInitialize)

	RootCmd := app.InitCmd()

	if err := RootCmd.Execute(); err != nil {
		if err.Error() != "" {
			logrus.Error(err)
		}
		os.Exit(errors.ExitCode(err))
	}
}
