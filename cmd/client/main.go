package main

import (
	"context"
	"log"
	"os"

	"github.com/lotterich/cli/internal/buildinfo"
	"github.com/lotterich/cli/internal/client/cli"
	"github.com/lotterich/cli/internal/client/config"
	"github.com/lotterich/cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
