// Package practice operates the live voice-counting practice session.
package practice

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"

	"github.com/caffeinepub/naamjap-voice/cloud"
	"github.com/caffeinepub/naamjap-voice/config"
	"github.com/caffeinepub/naamjap-voice/internal/counter"
	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/ledger"
	"github.com/caffeinepub/naamjap-voice/speech"
	"github.com/caffeinepub/naamjap-voice/store"
)

const saveTimeout = 10 * time.Second

// Opts configures one practice session.
type Opts struct {
	Phrase           string
	SessionCmd       string
	RecognizerCmd    string
	Audio            config.AudioConfig
	DailyTarget      int
	ShowNotification bool
}

// Model is the bubbletea model for a practice session.
type Model struct {
	opts      Opts
	counter   *counter.Counter
	led       *ledger.Ledger
	db        store.DB
	syncer    *cloud.Syncer
	rec       *speech.Recognizer
	sound     *soundPlayer
	progress  progress.Model
	startTime time.Time
	elapsed   time.Duration
	speechErr string
	supported bool
	soundOn   bool
	quitting  bool
}

// NewModel assembles a practice session. The syncer may be nil when cloud
// sync is not configured.
func NewModel(
	opts Opts,
	led *ledger.Ledger,
	db store.DB,
	syncer *cloud.Syncer,
) *Model {
	m := &Model{
		opts:      opts,
		counter:   &counter.Counter{},
		led:       led,
		db:        db,
		syncer:    syncer,
		progress:  progress.New(progress.WithDefaultGradient()),
		startTime: time.Now(),
		supported: speech.Probe(opts.RecognizerCmd) == speech.Supported,
	}

	if m.supported {
		m.rec = speech.NewRecognizer(opts.RecognizerCmd)
	} else {
		m.speechErr = "speech recognition is unavailable, use the manual counter"
	}

	return m
}

// Run starts the practice session UI and blocks until the user saves.
func Run(m *Model) error {
	_, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	if m.counter.Count() == 0 {
		pterm.Info.Println("Nothing counted, session discarded")
		return nil
	}

	pterm.Success.Printfln(
		"Session saved: %d repetitions of %q",
		m.counter.Count(),
		m.opts.Phrase,
	)

	return nil
}

// save turns the counted repetitions into a ledger session, persists it,
// and mirrors it to the remote store on a best-effort basis. A zero count
// is not worth recording.
func (m *Model) save() {
	if m.counter.Count() == 0 {
		return
	}

	sess := models.Session{
		StartTime: m.startTime,
		Phrase:    m.opts.Phrase,
		Count:     m.counter.Count(),
		Duration:  time.Since(m.startTime),
	}

	m.led.Append(sess)

	if err := m.db.SaveSession(sess); err != nil {
		// local persistence failure must not abort the session; the
		// in-memory ledger still has the result for this run
		pterm.Error.Printfln("failed to persist session: %v", err)
	}

	m.persistState()

	if m.syncer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		m.syncer.MirrorSession(ctx, sess)
	}

	if m.opts.ShowNotification {
		_ = beeep.Notify(
			"Practice complete",
			fmt.Sprintf("%d repetitions of %s", sess.Count, sess.Phrase),
			"",
		)
	}

	m.runSessionCmd()
}

func (m *Model) persistState() {
	state, err := m.db.GetState()
	if err != nil {
		state = store.DefaultState()
	}

	state.SelectedPhrase = m.opts.Phrase
	state.DailyTarget = m.opts.DailyTarget
	state.DailyTotals = m.led.DailyTotals()

	if err := m.db.SaveState(state); err != nil {
		pterm.Error.Printfln("failed to persist state: %v", err)
	}
}

// runSessionCmd executes the arbitrary command configured to run after
// each session.
func (m *Model) runSessionCmd() {
	if m.opts.SessionCmd == "" {
		return
	}

	args, err := shellquote.Split(m.opts.SessionCmd)
	if err != nil {
		pterm.Error.Printfln("unable to parse session command: %v", err)
		return
	}

	if len(args) == 0 {
		return
	}

	cmd := exec.Command(args[0], args[1:]...)

	if err := cmd.Run(); err != nil {
		pterm.Error.Printfln("session command failed: %v", err)
	}
}
