package input

import (
	"errors"
	"testing"
)

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionCursorUp},
		{"h", ActionCursorLeft},
		{"enter", ActionRoute},
		{"mouse_left", ActionRoute},
		{"shift_mouse_left", ActionMovePlayer},
		{"mouse_right", ActionToggleObstacle},
		{"r", ActionRegenerate},
		{"escape", ActionQuit},
		{"x", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ev := NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: tt.code})
			if got := MapToIntent(ev).Action; got != tt.want {
				t.Errorf("MapToIntent(%q) = %v, want %v", tt.code, ActionName(got), ActionName(tt.want))
			}
		})
	}
}

func saveBindings(t *testing.T) {
	t.Helper()
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	t.Cleanup(func() { bindings = saved })
}

func TestSetSingleBinding(t *testing.T) {
	saveBindings(t)

	if !SetSingleBinding(ActionWander, "p") {
		t.Fatal("SetSingleBinding(Wander, p) = false, want true")
	}

	if got := MapToIntent(DebouncedInput{Code: "p"}).Action; got != ActionWander {
		t.Errorf("new binding = %v, want Wander", ActionName(got))
	}
	if got := MapToIntent(DebouncedInput{Code: "w"}).Action; got != ActionNone {
		t.Errorf("old binding = %v, want None", ActionName(got))
	}

	if SetSingleBinding(ActionQuit, "mouse_left") {
		t.Error("SetSingleBinding(Quit, mouse_left) = true, want false")
	}
	if got := MapToIntent(DebouncedInput{Code: "mouse_left"}).Action; got != ActionRoute {
		t.Errorf("reserved binding = %v, want Route", ActionName(got))
	}
	if got := MapToIntent(DebouncedInput{Code: "escape"}).Action; got != ActionQuit {
		t.Errorf("reserved escape = %v, want Quit", ActionName(got))
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionZoomIn]
	if len(codes) != 2 || codes[0] != "=" || codes[1] != "numpad_add" {
		t.Errorf("ZoomIn codes = %v, want [= numpad_add]", codes)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
		ok   bool
	}{
		{"wander", ActionWander, true},
		{"Move Player", ActionMovePlayer, true},
		{"toggle-obstacle", ActionToggleObstacle, true},
		{"cursor_up", ActionCursorUp, true},
		{"none", ActionNone, false},
		{"fly", ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAction(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseAction(%q) = %v, %v, want %v, %v", tt.name, ActionName(got), ok, ActionName(tt.want), tt.ok)
			}
		})
	}
}

func TestApplyBinding(t *testing.T) {
	saveBindings(t)

	if err := ApplyBinding("move-player = P"); err != nil {
		t.Fatalf("ApplyBinding() error = %v", err)
	}
	if got := MapToIntent(DebouncedInput{Code: "p"}).Action; got != ActionMovePlayer {
		t.Errorf("p = %v, want Move Player", ActionName(got))
	}
	if got := MapToIntent(DebouncedInput{Code: "m"}).Action; got != ActionNone {
		t.Errorf("m = %v, want None", ActionName(got))
	}
	if codes := GetBindingsByAction()[ActionMovePlayer]; len(codes) != 2 || codes[0] != "p" || codes[1] != "shift_mouse_left" {
		t.Errorf("Move Player codes = %v, want [p shift_mouse_left]", codes)
	}

	tests := []struct {
		spec string
		want error
	}{
		{"wander", ErrBadBinding},
		{"wander=", ErrBadBinding},
		{"fly=f", ErrUnknownAction},
		{"quit=escape", ErrReservedCode},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if err := ApplyBinding(tt.spec); !errors.Is(err, tt.want) {
				t.Errorf("ApplyBinding(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}
