// Package reminder schedules morning and evening practice reminders.
package reminder

import (
	"context"
	"fmt"
	"time"
)

// Settings holds the persisted reminder configuration. Times are wall-clock
// values in "HH:MM" form.
type Settings struct {
	MorningTime    string `json:"morning_time"`
	EveningTime    string `json:"evening_time"`
	MorningEnabled bool   `json:"morning_enabled"`
	EveningEnabled bool   `json:"evening_enabled"`
}

// DefaultSettings returns the reminder configuration used when nothing has
// been persisted yet.
func DefaultSettings() Settings {
	return Settings{
		MorningEnabled: false,
		MorningTime:    "06:00",
		EveningEnabled: false,
		EveningTime:    "18:00",
	}
}

// Alert is a reminder that is due now.
type Alert struct {
	Kind    string
	Message string
}

// Check reports the reminder due at the given instant, if any. A reminder
// fires only in the exact minute it is configured for; the caller is
// expected to poll once per minute.
func Check(settings Settings, now time.Time) *Alert {
	current := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())

	if settings.MorningEnabled && current == settings.MorningTime {
		return &Alert{
			Kind:    "morning",
			Message: "Time for your morning practice",
		}
	}

	if settings.EveningEnabled && current == settings.EveningTime {
		return &Alert{
			Kind:    "evening",
			Message: "Time for your evening practice",
		}
	}

	return nil
}

// Watch polls the wall clock once per minute and invokes notify for each
// reminder that comes due. It blocks until the context is cancelled.
func Watch(ctx context.Context, settings Settings, notify func(Alert)) {
	if alert := Check(settings, time.Now()); alert != nil {
		notify(*alert)
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if alert := Check(settings, now); alert != nil {
				notify(*alert)
			}
		}
	}
}
