package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/caffeinepub/naamjap-voice/cloud"
	"github.com/caffeinepub/naamjap-voice/config"
	"github.com/caffeinepub/naamjap-voice/internal/phrase"
	"github.com/caffeinepub/naamjap-voice/internal/ui"
	"github.com/caffeinepub/naamjap-voice/ledger"
	"github.com/caffeinepub/naamjap-voice/practice"
	"github.com/caffeinepub/naamjap-voice/reminder"
	"github.com/caffeinepub/naamjap-voice/remote"
	"github.com/caffeinepub/naamjap-voice/stats"
	"github.com/caffeinepub/naamjap-voice/store"
)

var errSyncNotConfigured = errors.New(
	"cloud sync is not configured: set sync.base_url in the config file",
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig() (*config.Config, error) {
	return config.New(config.WithViperConfig(config.ConfigFilePath()))
}

// applyTheme reads the persisted display theme. A storage failure falls
// back to the light theme.
func applyTheme(db store.DB) {
	theme, err := db.GetTheme()
	if err != nil {
		slog.Warn("unable to read theme", slog.Any("error", err))
		return
	}

	ui.DarkTheme = theme == "dark"
}

// loadLedger rebuilds the in-memory ledger from persisted sessions. A
// storage failure is logged and yields an empty ledger rather than a
// blocking error.
func loadLedger(db store.DB) *ledger.Ledger {
	sessions, err := db.GetAllSessions()
	if err != nil {
		slog.Warn(
			"unable to load sessions, starting empty",
			slog.Any("error", err),
		)
	}

	return ledger.New(sessions)
}

func pickPhrase() (string, error) {
	var selected string

	opts := make([]huh.Option[string], 0, len(phrase.Catalog))

	for _, v := range phrase.Catalog {
		opts = append(
			opts,
			huh.NewOption(
				fmt.Sprintf("%s — %s", v.Name, v.Description),
				v.Name,
			),
		)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a phrase to practice").
				Options(opts...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

func practiceAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	applyTheme(db)

	state, err := db.GetState()
	if err != nil {
		slog.Warn(
			"unable to load state, using defaults",
			slog.Any("error", err),
		)
	}

	led := loadLedger(db)

	selectedPhrase := firstNonEmptyString(
		ctx.String("phrase"),
		state.SelectedPhrase,
		cfg.Practice.DefaultPhrase,
	)

	if ctx.Bool("pick") {
		selectedPhrase, err = pickPhrase()
		if err != nil {
			return err
		}
	}

	target := cfg.Practice.DailyTarget
	if state.DailyTarget > 0 {
		target = state.DailyTarget
	}

	if ctx.Uint("target") > 0 {
		target = int(ctx.Uint("target"))
	}

	audio := cfg.Audio

	if sound := ctx.String("sound"); sound != "" {
		if sound == "off" {
			audio.Autoplay = false
		} else {
			audio.Track = sound
			audio.Autoplay = true
		}
	}

	var syncer *cloud.Syncer

	if cfg.Sync.BaseURL != "" {
		syncer = cloud.NewSyncer(
			remote.NewClient(cfg.Sync.BaseURL, cfg.Sync.Token),
		)
	}

	opts := practice.Opts{
		Phrase:           selectedPhrase,
		DailyTarget:      target,
		SessionCmd:       firstNonEmptyString(ctx.String("session-cmd"), cfg.Practice.SessionCmd),
		RecognizerCmd:    cfg.Practice.RecognizerCmd,
		Audio:            audio,
		ShowNotification: !ctx.Bool("disable-notification"),
	}

	err = practice.Run(practice.NewModel(opts, led, db, syncer))
	if err != nil {
		return err
	}

	slog.InfoContext(ctx.Context, "exiting naamjap")

	return nil
}

func statsAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	applyTheme(db)

	stats.Init(db, config.Stats(ctx))

	return stats.Show()
}

func listAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	applyTheme(db)

	conf := config.Filter(ctx)

	sessions, err := db.GetSessions(conf.StartTime, conf.EndTime)
	if err != nil {
		return err
	}

	return listSessions(sessions)
}

func syncAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Sync.BaseURL == "" {
		return errSyncNotConfigured
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	led := loadLedger(db)

	syncer := cloud.NewSyncer(
		remote.NewClient(cfg.Sync.BaseURL, cfg.Sync.Token),
	)

	pulled, pushed, err := syncer.SyncOnLogin(ctx.Context, led)
	if err != nil {
		return fmt.Errorf("sync failed, local log is unchanged: %w", err)
	}

	if err := db.SaveSessions(led.Sessions()); err != nil {
		return err
	}

	state, err := db.GetState()
	if err != nil {
		state = store.DefaultState()
	}

	state.DailyTotals = led.DailyTotals()

	if err := db.SaveState(state); err != nil {
		slog.Warn("unable to persist state", slog.Any("error", err))
	}

	pterm.Success.Printfln(
		"Sync complete: pulled %d, pushed %d, %d sessions total",
		pulled,
		pushed,
		led.Len(),
	)

	return nil
}

func phrasesAction(_ *cli.Context) error {
	byName := make(map[string]phrase.Info, len(phrase.Catalog))

	for _, v := range phrase.Catalog {
		byName[v.Name] = v
	}

	tableBody := [][]string{{"PHRASE", "LANGUAGE", "DESCRIPTION"}}

	for _, name := range phrase.Names() {
		info := byName[name]

		tableBody = append(tableBody, []string{
			ui.Green(info.Name),
			info.Language,
			info.Description,
		})
	}

	ui.PrintTable(tableBody, os.Stdout)

	return nil
}

func remindAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	settings, err := db.GetReminders()
	if err != nil {
		slog.Warn(
			"unable to load reminder settings, using defaults",
			slog.Any("error", err),
		)
	}

	if err := updateReminder(
		&settings.MorningEnabled,
		&settings.MorningTime,
		ctx.String("morning"),
	); err != nil {
		return err
	}

	if err := updateReminder(
		&settings.EveningEnabled,
		&settings.EveningTime,
		ctx.String("evening"),
	); err != nil {
		return err
	}

	if err := db.SaveReminders(settings); err != nil {
		return err
	}

	if !settings.MorningEnabled && !settings.EveningEnabled {
		pterm.Info.Println("No reminders enabled")
		return nil
	}

	pterm.Info.Println("Watching for reminders. Press Ctrl-C to stop")

	watchCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	reminder.Watch(watchCtx, settings, func(alert reminder.Alert) {
		pterm.Info.Println(alert.Message)

		if err := beeep.Notify("Naamjap reminder", alert.Message, ""); err != nil {
			slog.Warn("unable to notify", slog.Any("error", err))
		}
	})

	return nil
}

func updateReminder(enabled *bool, at *string, value string) error {
	if value == "" {
		return nil
	}

	if value == "off" {
		*enabled = false
		return nil
	}

	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("invalid reminder time %q, expected HH:MM", value)
	}

	*enabled = true
	*at = value

	return nil
}

func themeAction(ctx *cli.Context) error {
	theme := ctx.Args().First()

	if theme != "light" && theme != "dark" {
		return fmt.Errorf("unknown theme %q, expected light or dark", theme)
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	if err := db.SaveTheme(theme); err != nil {
		return err
	}

	pterm.Success.Printfln("Theme set to %s", theme)

	return nil
}

func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "notepad"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
