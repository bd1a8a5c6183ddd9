// Package speech wraps an external speech recognizer subprocess and
// delivers its transcript as a stream of segments. The recognizer command
// prints one segment per line on stdout: plain lines are finalized
// segments, and lines prefixed with '?' are interim hypotheses that must
// never be counted.
package speech

import (
	"bufio"
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"
)

// Capability is the result of probing for speech support at startup.
type Capability int

const (
	Unsupported Capability = iota
	Supported
)

// Probe checks whether the configured recognizer command can run at all.
// An empty command or a missing binary means speech capture is unsupported
// and the app falls back to manual counting; it is not a runtime error.
func Probe(command string) Capability {
	args, err := shellquote.Split(command)
	if err != nil || len(args) == 0 {
		return Unsupported
	}

	if _, err := exec.LookPath(args[0]); err != nil {
		return Unsupported
	}

	return Supported
}

// State is the recognizer lifecycle state.
type State int

const (
	Idle State = iota
	Listening
	Failed
)

func (s State) String() string {
	switch s {
	case Listening:
		return "listening"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

// Segment is one transcript delivery. Only final segments may be counted.
type Segment struct {
	Text  string
	Final bool
}

var errAlreadyListening = errors.New("recognizer is already listening")

// Recognizer runs the external recognizer command and forwards transcript
// segments on a channel. Transitions are Idle -> Listening on Start,
// Listening -> Idle on Stop, and Listening -> Failed when the subprocess
// dies on its own.
type Recognizer struct {
	cmd      *exec.Cmd
	err      error
	segments chan Segment
	done     chan struct{}
	command  string
	state    State
	stopping bool
	mu       sync.Mutex
}

func NewRecognizer(command string) *Recognizer {
	return &Recognizer{
		command:  command,
		segments: make(chan Segment, 16),
	}
}

// Segments is the transcript delivery channel.
func (r *Recognizer) Segments() <-chan Segment {
	return r.segments
}

func (r *Recognizer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Err returns the failure that moved the recognizer into the Failed state.
func (r *Recognizer) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err
}

// Start launches the recognizer subprocess and begins streaming segments.
func (r *Recognizer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Listening {
		return errAlreadyListening
	}

	args, err := shellquote.Split(r.command)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return errors.New("no recognizer command configured")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	r.cmd = cmd
	r.state = Listening
	r.stopping = false
	r.err = nil
	r.done = make(chan struct{})

	go r.stream(cmd, bufio.NewScanner(stdout), r.done)

	return nil
}

// Stop terminates the subprocess and returns the recognizer to Idle.
func (r *Recognizer) Stop() {
	r.mu.Lock()

	cmd := r.cmd
	r.state = Idle

	if !r.stopping {
		r.stopping = true

		if r.done != nil {
			close(r.done)
		}
	}

	r.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}

// stream forwards transcript lines until the subprocess exits. Sends race
// against done so a consumer that stopped reading cannot strand the
// goroutine before it reaps the process.
func (r *Recognizer) stream(
	cmd *exec.Cmd,
	scanner *bufio.Scanner,
	done <-chan struct{},
) {
scan:
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		seg := Segment{Text: line, Final: true}

		if strings.HasPrefix(line, "?") {
			seg.Text = strings.TrimSpace(strings.TrimPrefix(line, "?"))
			seg.Final = false
		}

		select {
		case r.segments <- seg:
		case <-done:
			break scan
		}
	}

	waitErr := cmd.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopping {
		// user-initiated stop: stay Idle
		return
	}

	r.state = Failed

	switch {
	case scanner.Err() != nil:
		r.err = scanner.Err()
	case waitErr != nil:
		r.err = waitErr
	default:
		r.err = errors.New("recognizer exited unexpectedly")
	}
}
