package game

import (
	"testing"

	"github.com/Tokenzrey/dinosaurus/constants"
)

func TestPlayerJumpAndLand(t *testing.T) {
	p := NewPlayer(DefaultRoster().First())

	if p.Airborne() {
		t.Fatal("Expected player to start grounded")
	}
	if !p.Jump() {
		t.Fatal("Expected grounded jump to start")
	}
	if p.Jump() {
		t.Error("Expected airborne jump to be refused")
	}

	apex := 0.0
	landed := false
	for i := 0; i < 200; i++ {
		p.Update(0.01)
		if p.Y() > apex {
			apex = p.Y()
		}
		if !p.Airborne() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("Expected player to land within two seconds")
	}
	if apex < 1.4 {
		t.Errorf("Expected jump apex above 1.4, got %v", apex)
	}
	if p.Y() != constants.GroundY {
		t.Errorf("Expected player back on the ground, got y=%v", p.Y())
	}
	if p.vy != 0 {
		t.Errorf("Expected vertical speed cleared on landing, got %v", p.vy)
	}
}

func TestPlayerDuckTimer(t *testing.T) {
	p := NewPlayer(DefaultRoster().First())

	standing := p.Bounds()
	p.Duck()
	if !p.Ducking() {
		t.Fatal("Expected player to duck")
	}
	ducked := p.Bounds()
	if ducked.Max.Y >= standing.Max.Y {
		t.Errorf("Expected ducked bounds lower than %v, got %v", standing.Max.Y, ducked.Max.Y)
	}

	p.Update(0.2)
	if !p.Ducking() {
		t.Error("Expected duck to persist at 0.2s")
	}
	p.Update(0.3)
	if p.Ducking() {
		t.Error("Expected duck to expire after 0.5s")
	}
}

func TestPlayerJumpCancelsDuck(t *testing.T) {
	p := NewPlayer(DefaultRoster().First())

	p.Duck()
	if !p.Jump() {
		t.Fatal("Expected jump to start from a duck")
	}
	if p.Ducking() {
		t.Error("Expected duck cancelled by jump")
	}
	if !p.Airborne() {
		t.Error("Expected player airborne after jump")
	}
}

func TestPlayerAirSlam(t *testing.T) {
	p := NewPlayer(DefaultRoster().First())

	p.Jump()
	p.Update(0.1)
	p.Duck()
	if p.vy > -constants.JumpImpulse {
		t.Errorf("Expected slam velocity at most %v, got %v", -constants.JumpImpulse, p.vy)
	}
	if p.Ducking() {
		t.Error("Expected no crouch while airborne")
	}
}

func TestPlayerBoundsFollowHeight(t *testing.T) {
	p := NewPlayer(DefaultRoster().First())

	p.Jump()
	p.Update(0.1)
	b := p.Bounds()
	if b.Min.Y != p.Y() {
		t.Errorf("Expected bounds base at %v, got %v", p.Y(), b.Min.Y)
	}
	if b.Max.Y <= b.Min.Y {
		t.Errorf("Expected positive bounds height, got %v..%v", b.Min.Y, b.Max.Y)
	}
}

func TestPlayerTerminalLatch(t *testing.T) {
	p := NewPlayer(DefaultRoster().First())

	if p.Terminal() {
		t.Fatal("Expected fresh player to be alive")
	}
	p.MarkTerminal()
	if !p.Terminal() {
		t.Fatal("Expected terminal flag set")
	}
	p.Update(0.05)
	if !p.Terminal() {
		t.Error("Expected terminal flag to stay latched across updates")
	}
}

func TestPlayerScaleAffectsBounds(t *testing.T) {
	roster := DefaultRoster()
	raptor, _ := roster.Get("raptor")
	trike, _ := roster.Get("trike")

	small := NewPlayer(raptor).Bounds()
	large := NewPlayer(trike).Bounds()
	if small.Max.Y >= large.Max.Y {
		t.Errorf("Expected raptor shorter than trike, got %v vs %v", small.Max.Y, large.Max.Y)
	}
}
