package game

import (
	"testing"

	"github.com/Tokenzrey/dinosaurus/constants"
)

var baselineNames = []string{"sun", "ground", "sky", "world", "player", "background"}

func TestStageBaselineActors(t *testing.T) {
	s := NewStage(DefaultRoster(), 1)
	s.BuildBaseline("rex")

	if s.Scene().Len() != len(baselineNames) {
		t.Fatalf("Expected %d baseline actors, got %d", len(baselineNames), s.Scene().Len())
	}
	for _, name := range baselineNames {
		if s.Scene().Find(name) == nil {
			t.Errorf("Expected baseline actor %q", name)
		}
	}
	if s.Scene().Light() == nil {
		t.Error("Expected the sun to carry the scene light")
	}
	if s.Player().Spec().ID != "rex" {
		t.Errorf("Expected player rex, got %q", s.Player().Spec().ID)
	}
	if s.World() == nil || s.Background() == nil {
		t.Error("Expected world and background collaborators")
	}
}

func TestStageBaselineUnknownCharacter(t *testing.T) {
	s := NewStage(DefaultRoster(), 1)
	s.BuildBaseline("bogus")

	if s.Player().Spec().ID != "rex" {
		t.Errorf("Expected fallback to first character, got %q", s.Player().Spec().ID)
	}
}

func TestStageRebuildPlayerOnly(t *testing.T) {
	s := NewStage(DefaultRoster(), 1)
	s.BuildBaseline("rex")

	oldWorld := s.World()
	oldBackground := s.Background()
	oldActor := s.Player().Actor()

	s.RebuildPlayer("trike")

	if s.Player().Spec().ID != "trike" {
		t.Errorf("Expected player trike, got %q", s.Player().Spec().ID)
	}
	if s.World() != oldWorld {
		t.Error("Expected the world to survive a player rebuild")
	}
	if s.Background() != oldBackground {
		t.Error("Expected the background to survive a player rebuild")
	}
	if !oldActor.Disposed() {
		t.Error("Expected the old player actor to be disposed")
	}
	if s.Scene().Len() != len(baselineNames) {
		t.Errorf("Expected %d actors after rebuild, got %d", len(baselineNames), s.Scene().Len())
	}
	if s.Scene().Find("player") == oldActor {
		t.Error("Expected a fresh player actor in the scene")
	}
}

func TestStageRebuildPlayerRebindsCollision(t *testing.T) {
	s := NewStage(DefaultRoster(), 1)
	s.BuildBaseline("rex")
	s.RebuildPlayer("raptor")

	injectObstacle(s.World(), obstacleCactus, constants.PlayerLaneX)
	s.World().Update(0.001)
	if !s.Player().Terminal() {
		t.Error("Expected the rebuilt player to be bound to collision")
	}
}

func TestStageRebuildPlayerUnknownKeepsCharacter(t *testing.T) {
	s := NewStage(DefaultRoster(), 1)
	s.BuildBaseline("raptor")

	s.RebuildPlayer("bogus")
	if s.Player().Spec().ID != "raptor" {
		t.Errorf("Expected character kept on unknown id, got %q", s.Player().Spec().ID)
	}
}

func TestStageRebuildAllFreshScene(t *testing.T) {
	s := NewStage(DefaultRoster(), 1)
	s.BuildBaseline("rex")

	// Let the first run accumulate state worth tearing down
	for i := 0; i < 100; i++ {
		s.World().Update(0.05)
	}
	oldWorld := s.World()
	oldGround := s.Scene().Find("ground")
	oldPlayerActor := s.Player().Actor()

	s.RebuildAll("raptor")

	if s.Scene().Len() != len(baselineNames) {
		t.Fatalf("Expected %d actors after replay rebuild, got %d", len(baselineNames), s.Scene().Len())
	}
	if !oldGround.Disposed() || !oldPlayerActor.Disposed() {
		t.Error("Expected prior actors disposed by the teardown")
	}
	if s.World() == oldWorld {
		t.Error("Expected a fresh world after replay rebuild")
	}
	if s.World().Score() != 0 {
		t.Errorf("Expected score reset, got %d", s.World().Score())
	}
	if s.Player().Spec().ID != "raptor" {
		t.Errorf("Expected player raptor, got %q", s.Player().Spec().ID)
	}
	if s.Player().Terminal() {
		t.Error("Expected the rebuilt player to be alive")
	}
}

func TestStageCameraAndSceneStable(t *testing.T) {
	s := NewStage(DefaultRoster(), 1)
	s.BuildBaseline("rex")

	sc, cam := s.Scene(), s.Camera()
	s.RebuildAll("trike")
	if s.Scene() != sc {
		t.Error("Expected the scene pointer to be stable across rebuilds")
	}
	if s.Camera() != cam {
		t.Error("Expected the camera to be stable across rebuilds")
	}
}
