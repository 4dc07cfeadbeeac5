package main

import (
	"context"
	"log"
	"os"

	"profilectl/internal/buildinfo"
	"profilectl/internal/client/cli"
	"profilectl/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
