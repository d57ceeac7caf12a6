package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/skillfit/internal/buildinfo"
	"github.com/dmitrijs2005/skillfit/internal/client/cli"
	"github.com/dmitrijs2005/skillfit/internal/client/config"
	"github.com/dmitrijs2005/skillfit/internal/filex"
	"github.com/dmitrijs2005/skillfit/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()

	if err := filex.EnsureParentDir(cfg.LogFile); err != nil {
		log.Fatalf("%v", err)
	}
	logger, err := logging.NewZap(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
