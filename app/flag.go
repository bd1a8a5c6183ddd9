package app

import "github.com/urfave/cli/v2"

var (
	phraseFlag = &cli.StringFlag{
		Name:    "phrase",
		Aliases: []string{"p"},
		Usage:   "The phrase to practice. Defaults to the last used phrase",
	}

	pickFlag = &cli.BoolFlag{
		Name:  "pick",
		Usage: "Pick the practice phrase interactively from the catalog",
	}

	targetFlag = &cli.UintFlag{
		Name:    "target",
		Aliases: []string{"t"},
		Usage:   "Daily repetition target (default: 108)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Ambient sound to play during the session. Default options: soft-flute, temple-bells, meditation-sound. Disable sound by setting to 'off'",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is saved",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	periodFlag = &cli.StringFlag{
		Name:  "period",
		Usage: "Specify a time period for the report. Accepted values: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Specify a start date in the format: YYYY-MM-DD [HH:MM:SS PM]",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Specify an end date in the format: YYYY-MM-DD [HH:MM:SS PM]",
	}

	morningFlag = &cli.StringFlag{
		Name:  "morning",
		Usage: "Set the morning reminder time (HH:MM). Use 'off' to disable",
	}

	eveningFlag = &cli.StringFlag{
		Name:  "evening",
		Usage: "Set the evening reminder time (HH:MM). Use 'off' to disable",
	}
)
