// Package audio plays music and sound effects through a single mixer.
// Sounds load from WAV files when present and fall back to synthesized
// streamers, so audio always works and never aborts the game.
package audio

import (
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"chosenoffset.com/mazeshooter/internal/assets"
)

const sampleRate = beep.SampleRate(48000)

// Track selects which music loop is playing.
type Track int

// Music tracks.
const (
	TrackNone Track = iota
	TrackMenu
	TrackGame
)

// Manager owns the speaker and mixer. Safe for use from the single game
// goroutine; the mutex guards against the speaker's own goroutine.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool

	music      *beep.Ctrl
	track      Track
	menuMusic  func() beep.Streamer
	gameMusic  func() beep.Streamer
	shootSound func() beep.Streamer
}

// NewManager creates a manager. Synthesized sounds are installed up front;
// LoadSounds may replace them with file-backed ones.
func NewManager(enabled bool) *Manager {
	return &Manager{
		mixer:      &beep.Mixer{},
		enabled:    enabled,
		menuMusic:  func() beep.Streamer { return NewPadLoop(sampleRate) },
		gameMusic:  func() beep.Streamer { return NewPulseLoop(sampleRate) },
		shootSound: func() beep.Streamer { return beep.Take(sampleRate.N(time.Millisecond*250), NewShotBurst(sampleRate)) },
	}
}

// Initialize opens the speaker. Failure leaves the manager in silent mode
// and is returned so the caller can log it; every Play call stays a no-op.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// LoadSounds replaces synthesized sounds with file-backed ones where the
// asset scan found files. Decode failures keep the synthesized fallback.
// Returns the paths that failed to load.
func (m *Manager) LoadSounds(set *assets.Set) []string {
	var failed []string

	if set.ShootSound != "" {
		if s, err := loadWAV(set.ShootSound); err == nil {
			m.setShoot(s)
		} else {
			failed = append(failed, set.ShootSound)
		}
	}
	if set.MenuMusic != "" {
		if s, err := loadWAVLoop(set.MenuMusic); err == nil {
			m.setMenuMusic(s)
		} else {
			failed = append(failed, set.MenuMusic)
		}
	}
	if set.GameMusic != "" {
		if s, err := loadWAVLoop(set.GameMusic); err == nil {
			m.setGameMusic(s)
		} else {
			failed = append(failed, set.GameMusic)
		}
	}

	return failed
}

func (m *Manager) setShoot(f func() beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shootSound = f
}

func (m *Manager) setMenuMusic(f func() beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menuMusic = f
}

func (m *Manager) setGameMusic(f func() beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gameMusic = f
}

// PlayTrack switches the looping music. Selecting the already-playing track
// is a no-op so state re-entry does not restart the loop.
func (m *Manager) PlayTrack(t Track) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.track == t {
		return
	}

	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
		m.music.Streamer = nil
	}
	speaker.Unlock()

	m.track = t
	var src func() beep.Streamer
	switch t {
	case TrackMenu:
		src = m.menuMusic
	case TrackGame:
		src = m.gameMusic
	default:
		m.music = nil
		return
	}

	ctrl := &beep.Ctrl{Streamer: src(), Paused: false}
	m.music = ctrl
	m.mixer.Add(ctrl)
}

// PlayShoot plays the gunshot effect once.
func (m *Manager) PlayShoot() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Add(m.shootSound())
}

// Cleanup silences everything. The speaker itself has no close; clearing
// the mixer is enough to stop output.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()
	m.track = TrackNone
	m.initialized = false
}

// loadWAV decodes a WAV file fully into memory and returns a factory for
// one-shot playback streamers.
func loadWAV(path string) (func() beep.Streamer, error) {
	buffer, err := bufferWAV(path)
	if err != nil {
		return nil, err
	}
	return func() beep.Streamer {
		return buffer.Streamer(0, buffer.Len())
	}, nil
}

// loadWAVLoop is like loadWAV but the returned streamers loop forever.
func loadWAVLoop(path string) (func() beep.Streamer, error) {
	buffer, err := bufferWAV(path)
	if err != nil {
		return nil, err
	}
	return func() beep.Streamer {
		return beep.Loop(-1, buffer.Streamer(0, buffer.Len()))
	}, nil
}

func bufferWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	if format.SampleRate == sampleRate {
		buffer.Append(streamer)
	} else {
		buffer.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	}
	return buffer, nil
}
