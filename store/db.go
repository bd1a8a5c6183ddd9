package store

import (
	"time"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/reminder"
)

// DB is the local persistence interface.
type DB interface {
	// GetSessions returns saved sessions whose start time falls within the
	// given bounds. A zero start time means no lower bound.
	GetSessions(startTime, endTime time.Time) ([]models.Session, error)
	// GetAllSessions returns every saved session, sorted by start time.
	GetAllSessions() ([]models.Session, error)
	// SaveSession persists a completed practice session. Saving the same
	// session twice overwrites it in place since the identity triple is the
	// storage key.
	SaveSession(sess models.Session) error
	// SaveSessions persists a batch of sessions, e.g. after a merge.
	SaveSessions(sessions []models.Session) error
	// GetState retrieves the persisted app state, or the defaults if none
	// has been saved yet.
	GetState() (*State, error)
	// SaveState persists the app state.
	SaveState(state *State) error
	// GetReminders retrieves the reminder settings.
	GetReminders() (reminder.Settings, error)
	// SaveReminders persists the reminder settings.
	SaveReminders(settings reminder.Settings) error
	// GetTheme retrieves the display theme ("light" or "dark").
	GetTheme() (string, error)
	// SaveTheme persists the display theme.
	SaveTheme(theme string) error
	// Close ends the database connection.
	Close() error
}
