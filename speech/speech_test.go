package speech_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/caffeinepub/naamjap-voice/speech"
)

func requireShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("recognizer tests need a POSIX shell")
	}
}

func TestProbe(t *testing.T) {
	cases := []struct {
		name    string
		command string
		want    speech.Capability
	}{
		{
			name:    "empty command",
			command: "",
			want:    speech.Unsupported,
		},
		{
			name:    "whitespace only",
			command: "   ",
			want:    speech.Unsupported,
		},
		{
			name:    "unbalanced quoting",
			command: `recognize "unterminated`,
			want:    speech.Unsupported,
		},
		{
			name:    "missing binary",
			command: "definitely-not-a-real-recognizer --listen",
			want:    speech.Unsupported,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := speech.Probe(tc.command); got != tc.want {
				t.Fatalf("Probe(%q) = %v, want %v", tc.command, got, tc.want)
			}
		})
	}
}

func TestProbeFindsRealBinary(t *testing.T) {
	requireShell(t)

	if got := speech.Probe("sh -c 'exit 0'"); got != speech.Supported {
		t.Fatalf("Probe(sh) = %v, want Supported", got)
	}
}

func TestRecognizerStreamsSegments(t *testing.T) {
	requireShell(t)

	rec := speech.NewRecognizer(
		`sh -c 'printf "? om na\nom namah shivaya\n"'`,
	)

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	want := []speech.Segment{
		{Text: "om na", Final: false},
		{Text: "om namah shivaya", Final: true},
	}

	for i, w := range want {
		select {
		case got := <-rec.Segments():
			if got != w {
				t.Fatalf("segment %d = %+v, want %+v", i, got, w)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for segment %d", i)
		}
	}

	// the subprocess exiting on its own is a failure, not a clean stop
	waitForState(t, rec, speech.Failed)

	if rec.Err() == nil {
		t.Fatal("want a recorded failure cause")
	}
}

func TestRecognizerStopReturnsToIdle(t *testing.T) {
	requireShell(t)

	rec := speech.NewRecognizer("sleep 60")

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if got := rec.State(); got != speech.Listening {
		t.Fatalf("state after Start = %v, want Listening", got)
	}

	rec.Stop()

	// give the exit handler time to run; Idle must survive it
	time.Sleep(200 * time.Millisecond)

	if got := rec.State(); got != speech.Idle {
		t.Fatalf("state after Stop = %v, want Idle", got)
	}
}

func TestStopUnblocksUnreadStream(t *testing.T) {
	requireShell(t)

	baseline := runtime.NumGoroutine()

	// emits far more lines than the segment buffer holds, then lingers
	rec := speech.NewRecognizer(
		`sh -c 'i=0; while [ "$i" -lt 64 ]; do echo "segment $i"; i=$((i+1)); done; sleep 60'`,
	)

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// let the subprocess fill the buffer while nobody reads
	time.Sleep(200 * time.Millisecond)

	rec.Stop()

	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= baseline {
			return
		}

		time.Sleep(20 * time.Millisecond)
	}

	t.Fatalf(
		"stream goroutine still running after Stop (%d goroutines, baseline %d)",
		runtime.NumGoroutine(),
		baseline,
	)
}

func TestStartWhileListening(t *testing.T) {
	requireShell(t)

	rec := speech.NewRecognizer("sleep 60")

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	defer rec.Stop()

	if err := rec.Start(context.Background()); err == nil {
		t.Fatal("second Start must fail while listening")
	}
}

func TestStartWithoutCommand(t *testing.T) {
	rec := speech.NewRecognizer("")

	if err := rec.Start(context.Background()); err == nil {
		t.Fatal("Start with no command must fail")
	}
}

func TestStateString(t *testing.T) {
	cases := map[speech.State]string{
		speech.Idle:      "idle",
		speech.Listening: "listening",
		speech.Failed:    "error",
	}

	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}

func waitForState(t *testing.T, rec *speech.Recognizer, want speech.State) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		if rec.State() == want {
			return
		}

		time.Sleep(20 * time.Millisecond)
	}

	t.Fatalf("state = %v, want %v", rec.State(), want)
}
