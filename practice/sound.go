package practice

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"

	"github.com/caffeinepub/naamjap-voice/config"
)

var errInvalidSoundFormat = errors.New(
	"sound file must be in mp3, ogg, flac, or wav format",
)

type soundPlayer struct {
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
}

// prepSoundStream returns an audio stream for the specified ambient track,
// looked up in the app's data directory.
func prepSoundStream(track string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	path := filepath.Join(xdg.DataHome, config.Dir(), "static", track)

	f, err := os.Open(path)
	if err != nil {
		return nil, format, err
	}

	ext := filepath.Ext(track)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, format, errInvalidSoundFormat
	}

	if err != nil {
		return nil, format, err
	}

	return stream, format, nil
}

func newSoundPlayer(cfg config.AudioConfig) (*soundPlayer, error) {
	track := cfg.Track
	if filepath.Ext(track) == "" {
		track += ".mp3"
	}

	stream, format, err := prepSoundStream(track)
	if err != nil {
		return nil, err
	}

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Second/10),
	)
	if err != nil {
		return nil, err
	}

	volume := &effects.Volume{
		Streamer: beep.Loop(-1, stream),
		Base:     2,
		Volume:   volumeGain(cfg.Volume),
		Silent:   cfg.Volume <= 0,
	}

	ctrl := &beep.Ctrl{Streamer: volume}

	speaker.Play(ctrl)

	return &soundPlayer{stream: stream, ctrl: ctrl}, nil
}

// volumeGain maps a 0..1 volume setting to a logarithmic gain, with 1.0
// meaning unity.
func volumeGain(v float64) float64 {
	if v <= 0 {
		return 0
	}

	return math.Log2(v)
}

func (s *soundPlayer) setPaused(paused bool) {
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
}

func (s *soundPlayer) close() {
	s.setPaused(true)
	_ = s.stream.Close()
}

func (m *Model) startSound() {
	if m.sound == nil {
		sp, err := newSoundPlayer(m.opts.Audio)
		if err != nil {
			slog.Warn("ambient sound unavailable", slog.Any("error", err))
			return
		}

		m.sound = sp
	}

	m.sound.setPaused(false)
	m.soundOn = true
}

func (m *Model) stopSound() {
	if m.sound == nil {
		return
	}

	m.sound.close()
	m.sound = nil
	m.soundOn = false
}

func (m *Model) toggleSound() {
	if m.soundOn {
		if m.sound != nil {
			m.sound.setPaused(true)
		}

		m.soundOn = false

		return
	}

	m.startSound()
}
