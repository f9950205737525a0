package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

// BuildVersion: Binary compiled GIT version
var BuildVersion string

var conf *Config

func main() {
	app := cli.NewApp()
	app.Name = "floatconv"
	app.Usage = "convert between decimal text and IEEE 754 binary32/binary64"
	app.Version = BuildVersion
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "config file",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level, overrides the config file",
		},
	}
	app.Before = initConfig
	app.Commands = []cli.Command{
		parseCommand,
		formatCommand,
		roundtripCommand,
		tablesCommand,
	}
	err := app.Run(os.Args)
	if err != nil {
		logrus.Errorf("failed to run application: %v", err)
		os.Exit(1)
	}
}

func initConfig(c *cli.Context) error {
	var err error
	conf, err = loadConfig(viper.New(), c.String("config"))
	if err != nil {
		return err
	}
	if lvl := c.String("log-level"); lvl != "" {
		conf.LogLevel = lvl
	}

	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}
