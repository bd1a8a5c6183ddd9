package config

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var (
	statsOnce sync.Once
	statsCfg  *StatsConfig
)

// StatsConfig represents the stats reporting configuration.
type StatsConfig struct {
	Stdout    io.Writer
	StartTime time.Time
	EndTime   time.Time
	PathToDB  string
}

// Stats initializes and returns the stats configuration from command-line
// arguments.
func Stats(ctx *cli.Context) *StatsConfig {
	statsOnce.Do(func() {
		filter, err := setFilterConfig(ctx)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		statsCfg = &StatsConfig{
			StartTime: filter.StartTime,
			EndTime:   filter.EndTime,
			PathToDB:  dbFilePath,
			Stdout:    os.Stdout,
		}
	})

	return statsCfg
}
