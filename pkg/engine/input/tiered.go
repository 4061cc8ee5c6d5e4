// Package input turns device events into high-level intents. Devices emit
// RawInput codes, bindings map codes to actions, and consumers only ever see
// Intents.
package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrBadBinding    = errors.New("binding must look like action=key")
	ErrUnknownAction = errors.New("unknown action")
	ErrReservedCode  = errors.New("code is reserved")
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high-level intent in the arena viewer.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement (terminal browser)
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight

	// Path queries
	ActionRoute          // Plan a route from the player to the pointed cell
	ActionWander         // Plan a random patrol route from the player
	ActionClearRoute     // Drop the planned route
	ActionMovePlayer     // Move the player's runtime position to the pointed cell
	ActionToggleObstacle // Add or remove a runtime obstacle on the pointed cell

	// Meta / UI
	ActionRegenerate
	ActionDumpMap
	ActionScreenshot
	ActionZoomIn
	ActionZoomOut
	ActionQuit

	actionCount
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "r", "mouse_left", "f8").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Ebiten's just-pressed helpers already debounce, so this is a thin wrapper.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reserved codes can never be rebound
var reserved = map[string]bool{
	"arrow_up":         true,
	"arrow_down":       true,
	"arrow_left":       true,
	"arrow_right":      true,
	"mouse_left":       true,
	"shift_mouse_left": true,
	"mouse_right":      true,
	"escape":           true,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Cursor (arrows, Vim)
	"arrow_up":    ActionCursorUp,
	"k":           ActionCursorUp,
	"arrow_down":  ActionCursorDown,
	"j":           ActionCursorDown,
	"arrow_left":  ActionCursorLeft,
	"h":           ActionCursorLeft,
	"arrow_right": ActionCursorRight,
	"l":           ActionCursorRight,

	"mouse_left":       ActionRoute,
	"shift_mouse_left": ActionMovePlayer,
	"mouse_right":      ActionToggleObstacle,

	"enter": ActionRoute,
	"m":     ActionMovePlayer,
	"o":     ActionToggleObstacle,

	"w": ActionWander,
	"c": ActionClearRoute,
	"r": ActionRegenerate,

	"f8":  ActionDumpMap,
	"f12": ActionScreenshot,

	// Zoom (fixed bindings)
	"=":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,

	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionCursorUp:
		return "Cursor Up"
	case ActionCursorDown:
		return "Cursor Down"
	case ActionCursorLeft:
		return "Cursor Left"
	case ActionCursorRight:
		return "Cursor Right"
	case ActionRoute:
		return "Route"
	case ActionWander:
		return "Wander"
	case ActionClearRoute:
		return "Clear Route"
	case ActionMovePlayer:
		return "Move Player"
	case ActionToggleObstacle:
		return "Toggle Obstacle"
	case ActionRegenerate:
		return "Regenerate"
	case ActionDumpMap:
		return "Dump Map"
	case ActionScreenshot:
		return "Screenshot"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction looks an action up by its ActionName, ignoring case, spaces,
// dashes and underscores, so "move-player" finds Move Player
func ParseAction(name string) (Action, bool) {
	key := normaliseActionName(name)
	for a := ActionNone + 1; a < actionCount; a++ {
		if normaliseActionName(ActionName(a)) == key {
			return a, true
		}
	}
	return ActionNone, false
}

func normaliseActionName(name string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes are neither removed nor reassigned; it reports whether
// code was bound.
func SetSingleBinding(action Action, code string) bool {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code == "" || reserved[code] {
		return false
	}
	bindings[code] = action
	return true
}

// ApplyBinding parses an "action=key" spec, e.g. "wander=p", and binds key as
// the only code of that action
func ApplyBinding(spec string) error {
	name, code, ok := strings.Cut(spec, "=")
	name, code = strings.TrimSpace(name), strings.TrimSpace(code)
	if !ok || name == "" || code == "" {
		return fmt.Errorf("%w: %q", ErrBadBinding, spec)
	}
	action, ok := ParseAction(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	if !SetSingleBinding(action, strings.ToLower(code)) {
		return fmt.Errorf("%w: %q", ErrReservedCode, code)
	}
	return nil
}
