// Package engine drives the run lifecycle: the session state machine
// that owns menu/playing/game-over transitions and the frame loop that
// advances gameplay and rendering
package engine

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// SessionState is the lifecycle phase of a run
type SessionState uint8

const (
	StateIdle SessionState = iota
	StatePlaying
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a lifecycle operation is
// called from a state that does not allow it
var ErrInvalidTransition = errors.New("invalid session transition")

// Stage rebuilds scene content on behalf of the session
type Stage interface {
	// RebuildPlayer replaces only the player actor
	RebuildPlayer(characterID string)
	// RebuildAll tears the scene down and rebuilds the baseline
	RebuildAll(characterID string)
}

// Roster answers character id lookups
type Roster interface {
	Has(id string) bool
}

// StateListener observes session transitions
type StateListener interface {
	SessionStateChanged(prev, next SessionState)
}

// StateListenerFunc adapts a function to StateListener
type StateListenerFunc func(prev, next SessionState)

func (f StateListenerFunc) SessionStateChanged(prev, next SessionState) {
	f(prev, next)
}

// Session is the run lifecycle state machine
// All mutations are validated against the transition table, so a
// rejected call leaves the session exactly as it was
type Session struct {
	mu        sync.Mutex
	state     SessionState
	character string
	stage     Stage
	roster    Roster
	listeners []StateListener
	log       *zap.SugaredLogger
}

// NewSession creates an idle session with the given starting character
func NewSession(stage Stage, roster Roster, defaultCharacter string, log *zap.SugaredLogger) *Session {
	return &Session{
		state:     StateIdle,
		character: defaultCharacter,
		stage:     stage,
		roster:    roster,
		log:       log,
	}
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to SessionState) bool {
	validTransitions := map[SessionState][]SessionState{
		StateIdle:     {StatePlaying},
		StatePlaying:  {StateGameOver},
		StateGameOver: {StatePlaying},
	}

	for _, state := range validTransitions[from] {
		if state == to {
			return true
		}
	}
	return false
}

// Start begins a run from the menu
// Only the player actor is rebuilt; the rest of the scene stands
func (s *Session) Start(characterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("start from %s: %w", s.state, ErrInvalidTransition)
	}
	s.adoptCharacter(characterID)
	s.stage.RebuildPlayer(s.character)
	s.transition(StatePlaying)
	return nil
}

// Replay begins a fresh run after a game over
// The whole scene is torn down and rebuilt to its baseline
func (s *Session) Replay(characterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateGameOver {
		return fmt.Errorf("replay from %s: %w", s.state, ErrInvalidTransition)
	}
	s.adoptCharacter(characterID)
	s.stage.RebuildAll(s.character)
	s.transition(StatePlaying)
	return nil
}

// NotifyTerminal moves a playing session to game over
// Calls outside Playing, including repeats, are ignored
func (s *Session) NotifyTerminal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return
	}
	s.transition(StateGameOver)
}

// SelectCharacter records the character for the next rebuild
// Allowed in any state; unknown ids keep the current selection
func (s *Session) SelectCharacter(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adoptCharacter(id)
}

// State returns the current lifecycle state
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Character returns the selected character id
func (s *Session) Character() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.character
}

// AddListener registers a transition observer
// Listeners run on the goroutine driving the transition and must not
// call back into the session
func (s *Session) AddListener(l StateListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Session) transition(next SessionState) {
	prev := s.state
	s.state = next
	s.log.Infow("session transition",
		"from", prev.String(),
		"to", next.String(),
		"character", s.character,
	)
	for _, l := range s.listeners {
		l.SessionStateChanged(prev, next)
	}
}

// adoptCharacter keeps the current selection when id is empty or
// not in the roster
func (s *Session) adoptCharacter(id string) {
	if id == "" || id == s.character {
		return
	}
	if !s.roster.Has(id) {
		s.log.Debugw("unknown character ignored", "id", id, "current", s.character)
		return
	}
	s.character = id
}
