// Package audio synthesizes the game's effect sounds and owns the
// speaker. Audio is optional: when the speaker cannot initialize the
// game keeps running silent
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Manager plays fire-and-forget effect sounds through one mixer
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	log         *zap.SugaredLogger
	muted       bool
	initialized bool
}

// NewManager creates a silent manager; call Initialize to open the speaker
func NewManager(muted bool, log *zap.SugaredLogger) *Manager {
	return &Manager{mixer: &beep.Mixer{}, muted: muted, log: log}
}

// Initialize opens the speaker and attaches the mixer
// Failure is logged and leaves the manager silent
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.muted {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.log.Warnw("audio unavailable, continuing silent", "error", err)
		return
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.log.Infow("audio initialized", "sample_rate", int(sampleRate))
}

// Cleanup drops all playing sounds
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// Muted reports whether audio was muted by configuration
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// PlayJump plays the takeoff blip
func (m *Manager) PlayJump() {
	m.play(CreateJumpSound(sampleRate))
}

// PlayCrash plays the obstacle contact thud
func (m *Manager) PlayCrash() {
	m.play(CreateCrashSound(sampleRate))
}

// PlayChirp plays the score milestone chime
func (m *Manager) PlayChirp() {
	m.play(CreateChirpSound(sampleRate))
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	m.mixer.Add(s)
}
