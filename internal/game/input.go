package game

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Direction indexes a ButtonGroup. For the camera group Up is forward and
// Down is back.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Group selects one of the two independent control groups.
type Group int

const (
	BallGroup Group = iota
	CameraGroup
)

// Button tracks one action: presses seen this frame and whether it is held.
type Button struct {
	Downs   uint8
	Pressed bool
}

type ButtonGroup [4]Button

// Axis combines held buttons into a unit (or zero) direction: X is right
// minus left, Y is up minus down. Opposing buttons cancel.
func (b *ButtonGroup) Axis() rl.Vector2 {
	var move rl.Vector2
	if b[Left].Pressed && !b[Right].Pressed {
		move.X = -1
	}
	if !b[Left].Pressed && b[Right].Pressed {
		move.X = 1
	}
	if b[Down].Pressed && !b[Up].Pressed {
		move.Y = -1
	}
	if !b[Down].Pressed && b[Up].Pressed {
		move.Y = 1
	}
	if move.X != 0 || move.Y != 0 {
		move = rl.Vector2Normalize(move)
	}
	return move
}

func (b *ButtonGroup) endFrame() {
	for i := range b {
		b[i].Downs = 0
	}
}

// KeyEvent is a raw key transition from the window.
type KeyEvent struct {
	Key  int32
	Down bool
}

type Binding struct {
	Group     Group
	Direction Direction
}

type Bindings map[int32]Binding

func DefaultBindings() Bindings {
	return Bindings{
		rl.KeyLeft:  {BallGroup, Left},
		rl.KeyRight: {BallGroup, Right},
		rl.KeyUp:    {BallGroup, Up},
		rl.KeyDown:  {BallGroup, Down},
		rl.KeyA:     {CameraGroup, Left},
		rl.KeyD:     {CameraGroup, Right},
		rl.KeyW:     {CameraGroup, Up},
		rl.KeyS:     {CameraGroup, Down},
	}
}

// Input is the per-frame button table for both control groups.
type Input struct {
	Ball     ButtonGroup
	Camera   ButtonGroup
	bindings Bindings
}

func NewInput(bindings Bindings) *Input {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Input{bindings: bindings}
}

// HandleKey applies ev and reports whether the key is bound.
func (in *Input) HandleKey(ev KeyEvent) bool {
	bind, ok := in.bindings[ev.Key]
	if !ok {
		return false
	}

	group := &in.Ball
	if bind.Group == CameraGroup {
		group = &in.Camera
	}
	btn := &group[bind.Direction]

	if ev.Down {
		if btn.Downs < ^uint8(0) {
			btn.Downs++
		}
		btn.Pressed = true
	} else {
		btn.Pressed = false
	}
	return true
}

// Keys returns every bound key in ascending order, for hosts that poll.
func (in *Input) Keys() []int32 {
	keys := make([]int32, 0, len(in.bindings))
	for k := range in.bindings {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// EndFrame clears the press counters. Held state is kept.
func (in *Input) EndFrame() {
	in.Ball.endFrame()
	in.Camera.endFrame()
}
