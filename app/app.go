// Package app defines the command-line interface.
package app

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/caffeinepub/naamjap-voice/config"
)

const (
	envNoColor        = "NO_COLOR"
	envNaamjapNoColor = "NAAMJAP_NO_COLOR"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the naamjap app instance.
func Get() *cli.App {
	naamjapApp := &cli.App{
		Name: "naamjap",
		Usage: `
		Naamjap is a voice-driven practice tracker for the command-line. Pick a
		phrase, chant it aloud, and repetitions are counted from live speech,
		tracked across days, and optionally mirrored to a remote store.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Track your progress with daily, weekly, and monthly breakdowns and your current streak",
				Action: statsAction,
				Flags:  []cli.Flag{periodFlag, startFlag, endFlag, noColorFlag},
			},
			{
				Name:   "list",
				Usage:  "List practice sessions within a time range",
				Action: listAction,
				Flags:  []cli.Flag{periodFlag, startFlag, endFlag, noColorFlag},
			},
			{
				Name:   "sync",
				Usage:  "Merge the remote session log into the local one and push back what it was missing",
				Action: syncAction,
			},
			{
				Name:   "phrases",
				Usage:  "List the built-in phrase catalog",
				Action: phrasesAction,
				Flags:  []cli.Flag{noColorFlag},
			},
			{
				Name:   "remind",
				Usage:  "Configure morning/evening reminders and watch for them",
				Action: remindAction,
				Flags:  []cli.Flag{morningFlag, eveningFlag},
			},
			{
				Name:      "theme",
				Usage:     "Set the display theme (light or dark)",
				Action:    themeAction,
				ArgsUsage: "light|dark",
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			phraseFlag,
			pickFlag,
			targetFlag,
			soundFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: practiceAction,
		Before: beforeAction,
	}

	return naamjapApp
}

func beforeAction(ctx *cli.Context) error {
	// Disable colour output if NO_COLOR or NAAMJAP_NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envNaamjapNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
