package systems

import (
	"testing"

	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
)

func TestGetActionEdges(t *testing.T) {
	tests := []struct {
		name         string
		curr, prev   bool
		pressed      bool
		justPressed  bool
		justReleased bool
	}{
		{"idle", false, false, false, false, false},
		{"tap", true, false, true, true, false},
		{"held", true, true, true, false, false},
		{"release", false, true, false, false, true},
	}

	for _, tt := range tests {
		input := &components.InputData{}
		input.Current[cfg.ActionJump] = tt.curr
		input.Previous[cfg.ActionJump] = tt.prev

		got := GetAction(input, cfg.ActionJump)
		if got.Pressed != tt.pressed || got.JustPressed != tt.justPressed || got.JustReleased != tt.justReleased {
			t.Errorf("%s: got %+v, want pressed=%v justPressed=%v justReleased=%v",
				tt.name, got, tt.pressed, tt.justPressed, tt.justReleased)
		}
	}
}

func TestUpdateInputSwapsBuffers(t *testing.T) {
	e := newTestECS()
	input := getOrCreateInput(e)
	input.Current[cfg.ActionSlide] = true

	// Headless, so no real key is down: the new current frame reads empty
	// and last frame's press shows up as a release edge.
	UpdateInput(e)

	if !input.Previous[cfg.ActionSlide] {
		t.Error("Previous frame lost the slide press")
	}
	if input.Current[cfg.ActionSlide] {
		t.Error("Current frame kept a stale press")
	}
	if got := GetAction(input, cfg.ActionSlide); !got.JustReleased {
		t.Errorf("Expected a release edge, got %+v", got)
	}

	UpdateInput(e)
	if input.Previous[cfg.ActionSlide] {
		t.Error("Release edge lasted more than one frame")
	}
}

func TestInputSingleton(t *testing.T) {
	e := newTestECS()
	first := getOrCreateInput(e)
	second := getOrCreateInput(e)
	if first != second {
		t.Error("Expected one shared input state")
	}
	if n := countEntities(e, components.Input.Each); n != 1 {
		t.Errorf("Expected 1 input entity, got %d", n)
	}
}

func TestQuitToMenuRequested(t *testing.T) {
	e := newTestECS()
	if QuitToMenuRequested(e) {
		t.Error("Quit requested with no input")
	}

	tapAction(e, cfg.ActionQuitToMenu)
	if !QuitToMenuRequested(e) {
		t.Error("Expected quit on a fresh press")
	}

	holdAction(e, cfg.ActionQuitToMenu)
	if QuitToMenuRequested(e) {
		t.Error("A held key must not re-trigger quit")
	}
}

func TestEveryActionHasKeyBinding(t *testing.T) {
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		binding, ok := cfg.Input.Bindings[id]
		if !ok || len(binding.Keys) == 0 {
			t.Errorf("Action %d has no keyboard binding", id)
		}
	}
}
