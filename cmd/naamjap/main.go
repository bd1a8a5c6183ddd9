package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/caffeinepub/naamjap-voice/app"
	"github.com/caffeinepub/naamjap-voice/config"
	"github.com/caffeinepub/naamjap-voice/internal/logutil"
)

func run(args []string) error {
	config.InitializePaths()

	logutil.Init(config.LogFilePath())

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
