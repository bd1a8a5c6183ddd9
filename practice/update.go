package practice

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/caffeinepub/naamjap-voice/speech"
)

type segmentMsg speech.Segment

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) waitForSegment() tea.Cmd {
	if m.rec == nil {
		return nil
	}

	return func() tea.Msg {
		seg, ok := <-m.rec.Segments()
		if !ok {
			return nil
		}

		return segmentMsg(seg)
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}

	if m.rec != nil {
		if err := m.rec.Start(context.Background()); err != nil {
			m.speechErr = err.Error()
		} else {
			cmds = append(cmds, m.waitForSegment())
		}
	}

	if m.opts.Audio.Autoplay {
		m.startSound()
	}

	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case segmentMsg:
		slog.Debug(spew.Sdump(msg))

		// counting is only reachable while the recognizer is listening,
		// and interim hypotheses are never counted
		if m.rec != nil && m.rec.State() == speech.Listening && msg.Final {
			m.counter.ProcessSegment(speech.Segment(msg).Text, m.opts.Phrase)
		}

		return m, m.waitForSegment()

	case tickMsg:
		m.elapsed = time.Since(m.startTime)

		if m.rec != nil && m.rec.State() == speech.Failed &&
			m.speechErr == "" {
			m.speechErr = m.rec.Err().Error()
		}

		return m, tick()

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 8

		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true

		if m.rec != nil {
			m.rec.Stop()
		}

		m.stopSound()
		m.save()

		return m, tea.Quit

	case " ", "enter":
		m.counter.ManualIncrement()

	case "r":
		m.counter.Reset()

	case "s":
		m.toggleSound()
	}

	return m, nil
}
