package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const ctxKey = "ctx"

func main() {
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.NewApp()
	app.Name = "roboat"
	app.Usage = "Command line access to the Roblox economy, users and catalog APIs"
	app.Version = "1.0.0"
	app.Metadata = map[string]interface{}{ctxKey: c}
	configure(app)
	err := app.Run(os.Args)
	if err != nil {
		stop()
		log.WithError(err).Fatal("failed to run app")
	}
}

func configure(app *cli.App) {
	app.Flags = RegisterClientFlags(app.Flags)
	app.Flags = RegisterOutputFlags(app.Flags)
	app.Before = configureLogging
	app.Commands = []cli.Command{
		makeWhoamiCMD(),
		makeRobuxCMD(),
		makeResellersCMD(),
		makeSalesCMD(),
		makeSellCMD(),
		makeUnsellCMD(),
		makeBuyCMD(),
		makeItemsCMD(),
	}
}
