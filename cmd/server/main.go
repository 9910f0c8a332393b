// File: cmd/server/main.go
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "united-real-estate",
		Usage:  "Real-estate listings API and dashboard",
		Action: serve,
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}
