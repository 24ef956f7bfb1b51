package cmd

import (
	"os"

	"github.com/df07/go-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Fatal logs err and exits with a non-zero status.
func Fatal(err error) {
	logger.Error(err.Error())
	os.Exit(1)
}
