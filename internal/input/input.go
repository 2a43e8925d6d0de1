// Package input maps typed key characters to camera and model actions.
package input

import (
	"fmt"
	"strings"
)

//go:generate enumgen

// Action is what a key press asks the scene to do.
type Action int32 //enums:enum -transform snake -accept-lower

const (
	None Action = iota
	Forward
	Backward
	YawLeft
	YawRight
	PitchUp
	PitchDown
	SpinLeft
	SpinRight
	BirdsEye
	MainView
	ToggleView
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveIn
	MoveOut
)

// ParseAction accepts the snake_case action names, case-insensitively.
func ParseAction(name string) (Action, error) {
	var a Action
	if err := a.SetString(strings.TrimSpace(name)); err != nil {
		return None, fmt.Errorf("unknown action %q: %w", name, err)
	}
	return a, nil
}

// Keymap binds key characters to actions.
type Keymap map[rune]Action

// Lookup returns the action bound to r.
func (k Keymap) Lookup(r rune) (Action, bool) {
	a, ok := k[r]
	return a, ok && a != None
}

// Bind binds r to a; binding None removes r.
func (k Keymap) Bind(r rune, a Action) {
	if a == None {
		delete(k, r)
		return
	}
	k[r] = a
}

// Override applies key-name/action-name pairs on top of k. Each key must be a
// single character.
func (k Keymap) Override(bindings map[string]string) error {
	for key, name := range bindings {
		runes := []rune(key)
		if len(runes) != 1 {
			return fmt.Errorf("key %q: want a single character", key)
		}
		a, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		k.Bind(runes[0], a)
	}
	return nil
}

// Clone returns an independent copy of k.
func (k Keymap) Clone() Keymap {
	out := make(Keymap, len(k))
	for r, a := range k {
		out[r] = a
	}
	return out
}

// FirstPerson is the walk/look/spin layout of the lighting labs.
func FirstPerson() Keymap {
	return Keymap{
		'w': Forward,
		's': Backward,
		'a': YawLeft,
		'd': YawRight,
		'r': PitchUp,
		'f': PitchDown,
		'c': SpinLeft,
		'v': SpinRight,
	}
}

// Coursework adds the birds-eye and main view jumps to FirstPerson.
func Coursework() Keymap {
	k := FirstPerson()
	k['b'] = BirdsEye
	k['m'] = MainView
	k['t'] = ToggleView
	return k
}

// Translate is the axis-aligned layout of the camera lab.
func Translate() Keymap {
	return Keymap{
		'a': MoveLeft,
		'd': MoveRight,
		'w': MoveUp,
		's': MoveDown,
		'z': MoveIn,
		'x': MoveOut,
	}
}
