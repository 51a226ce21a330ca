package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

var verboseMode bool

func newApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "lalrdoc"
	app.Usage = "reference documentation for grammar definitions"
	app.Version = fmt.Sprintf("%s (commit %s, built %s on %s)", info.Version, info.GitCommit, info.BuildDate, info.BuildOS)

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose",
			Usage:       "verbose logging",
			Destination: &verboseMode,
		},
	}
	app.Before = func(c *cli.Context) error {
		if verboseMode {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	app.Commands = []cli.Command{mdbookCommand, treeCommand}
	return app
}

func Main(info VersionTags) {
	if err := newApp(info).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
