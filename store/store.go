// Package store connects to the data store and manages sessions and
// app state.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/caffeinepub/naamjap-voice/internal/models"
	"github.com/caffeinepub/naamjap-voice/reminder"
)

const (
	sessionsBucket = "sessions"
	settingsBucket = "settings"
)

const (
	stateKey     = "state"
	remindersKey = "reminders"
	themeKey     = "theme"
)

var errAlreadyRunning = errors.New(
	"is naamjap already running? Only one instance can be active at a time",
)

// State is the persisted app state blob. Sessions live in their own bucket
// keyed by identity; everything else the app needs across runs is here.
// The daily totals are a cache and are always recomputable from sessions.
type State struct {
	SelectedPhrase string              `json:"selected_phrase"`
	AudioTrack     string              `json:"audio_track"`
	DailyTotals    []models.DailyTotal `json:"daily_totals"`
	DailyTarget    int                 `json:"daily_target"`
	AudioVolume    float64             `json:"audio_volume"`
	AudioAutoplay  bool                `json:"audio_autoplay"`
}

// DefaultState returns the state used on first run or when the persisted
// blob cannot be read.
func DefaultState() *State {
	return &State{
		SelectedPhrase: "Radhe Radhe",
		DailyTarget:    108,
		AudioTrack:     "soft-flute",
		AudioVolume:    0.5,
		AudioAutoplay:  false,
	}
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient opens (or creates) the database and ensures the buckets exist.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err = tx.CreateBucketIfNotExists([]byte(sessionsBucket)); err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		dbPath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// a held file lock surfaces as a timeout on open
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

func (c *Client) SaveSession(sess models.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionsBucket)).
			Put([]byte(sess.Key()), value)
	})
}

func (c *Client) SaveSessions(sessions []models.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionsBucket))

		for i := range sessions {
			sess := sessions[i]

			value, err := json.Marshal(sess)
			if err != nil {
				return err
			}

			if err := b.Put([]byte(sess.Key()), value); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) GetAllSessions() ([]models.Session, error) {
	return c.GetSessions(time.Time{}, time.Time{})
}

// GetSessions returns sessions whose start time falls within the bounds.
// Zero bounds are open ends. The session set is small enough that a full
// scan beats maintaining a time-ordered index next to the identity keys.
func (c *Client) GetSessions(
	startTime, endTime time.Time,
) ([]models.Session, error) {
	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionsBucket)).
			ForEach(func(_, v []byte) error {
				var sess models.Session

				if err := json.Unmarshal(v, &sess); err != nil {
					return err
				}

				if !startTime.IsZero() && sess.StartTime.Before(startTime) {
					return nil
				}

				if !endTime.IsZero() && sess.StartTime.After(endTime) {
					return nil
				}

				sessions = append(sessions, sess)

				return nil
			})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	return sessions, nil
}

func (c *Client) GetState() (*State, error) {
	state := DefaultState()

	err := c.getSetting(stateKey, state)
	if err != nil {
		return DefaultState(), err
	}

	return state, nil
}

func (c *Client) SaveState(state *State) error {
	return c.putSetting(stateKey, state)
}

func (c *Client) GetReminders() (reminder.Settings, error) {
	settings := reminder.DefaultSettings()

	err := c.getSetting(remindersKey, &settings)
	if err != nil {
		return reminder.DefaultSettings(), err
	}

	return settings, nil
}

func (c *Client) SaveReminders(settings reminder.Settings) error {
	return c.putSetting(remindersKey, settings)
}

func (c *Client) GetTheme() (string, error) {
	var theme string

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(settingsBucket)).Get([]byte(themeKey))
		theme = string(v)

		return nil
	})
	if err != nil {
		return "", err
	}

	if theme != "dark" {
		theme = "light"
	}

	return theme, nil
}

func (c *Client) SaveTheme(theme string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).
			Put([]byte(themeKey), []byte(theme))
	})
}

func (c *Client) getSetting(key string, dst any) error {
	return c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(settingsBucket)).Get([]byte(key))
		if len(v) == 0 {
			// nothing persisted yet: keep the defaults in dst
			return nil
		}

		return json.Unmarshal(v, dst)
	})
}

func (c *Client) putSetting(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(key), b)
	})
}
