package reminder_test

import (
	"testing"
	"time"

	"github.com/caffeinepub/naamjap-voice/reminder"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 30, 0, time.UTC)
}

func TestCheck(t *testing.T) {
	enabled := reminder.Settings{
		MorningTime:    "06:00",
		EveningTime:    "18:30",
		MorningEnabled: true,
		EveningEnabled: true,
	}

	cases := []struct {
		name     string
		settings reminder.Settings
		now      time.Time
		wantKind string
	}{
		{
			name:     "morning minute fires morning",
			settings: enabled,
			now:      at(6, 0),
			wantKind: "morning",
		},
		{
			name:     "evening minute fires evening",
			settings: enabled,
			now:      at(18, 30),
			wantKind: "evening",
		},
		{
			name:     "minute before is silent",
			settings: enabled,
			now:      at(5, 59),
		},
		{
			name:     "minute after is silent",
			settings: enabled,
			now:      at(6, 1),
		},
		{
			name: "disabled reminder never fires",
			settings: reminder.Settings{
				MorningTime: "06:00",
				EveningTime: "18:30",
			},
			now: at(6, 0),
		},
		{
			name:     "defaults are disabled",
			settings: reminder.DefaultSettings(),
			now:      at(6, 0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alert := reminder.Check(tc.settings, tc.now)

			if tc.wantKind == "" {
				if alert != nil {
					t.Fatalf("got alert %+v, want none", alert)
				}

				return
			}

			if alert == nil {
				t.Fatalf("got no alert, want kind %q", tc.wantKind)
			}

			if alert.Kind != tc.wantKind {
				t.Fatalf("Kind = %q, want %q", alert.Kind, tc.wantKind)
			}

			if alert.Message == "" {
				t.Fatal("alert has no message")
			}
		})
	}
}

func TestCheckMorningWinsWhenTimesCollide(t *testing.T) {
	settings := reminder.Settings{
		MorningTime:    "12:00",
		EveningTime:    "12:00",
		MorningEnabled: true,
		EveningEnabled: true,
	}

	alert := reminder.Check(settings, at(12, 0))
	if alert == nil || alert.Kind != "morning" {
		t.Fatalf("got %+v, want the morning alert", alert)
	}
}
