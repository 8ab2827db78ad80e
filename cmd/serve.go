package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-aobench/web/server"
)

// Serve renders frames on demand over HTTP.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	return server.NewServer(ctx.String("addr")).Start()
}
