package app

import (
	"fmt"
	"os"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/internal/ui"
)

const noSessionsMsg = "No sessions found for the specified time range"

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(sessions []models.Session) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		duration := ""
		if sess.Duration > 0 {
			//nolint:gomnd // limit to first 2 units
			duration = durafmt.Parse(sess.Duration).LimitFirstN(2).String()
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format("Jan 02, 2006 03:04 PM"),
			ui.Cyan(sess.Phrase),
			ui.Green(fmt.Sprintf("%d", sess.Count)),
			duration,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "START DATE", "PHRASE", "COUNT", "DURATION"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)
}

// listSessions prints out a table of all the sessions that were created
// within the specified time range.
func listSessions(sessions []models.Session) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(sessions)

	return nil
}
