package main

import (
	"context"
	"log"
	"os"

	"github.com/tjsl-project/tjslctl/internal/buildinfo"
	"github.com/tjsl-project/tjslctl/internal/client/cli"
	"github.com/tjsl-project/tjslctl/internal/client/config"
	"github.com/tjsl-project/tjslctl/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
