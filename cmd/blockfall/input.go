package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/session"
)

// repeatKey turns a held key into a stream of actions: one on press, then one
// every rate seconds once the key has been held for delay seconds.
type repeatKey struct {
	key    ebiten.Key
	action session.Action
	delay  float64
	rate   float64
	held   float64
}

func (r *repeatKey) poll(cmds *session.Commands, dt float64) {
	switch {
	case inpututil.IsKeyJustPressed(r.key):
		r.held = 0
		cmds.Push(r.action)
	case ebiten.IsKeyPressed(r.key):
		r.held += dt
		for r.held > r.delay {
			r.held -= r.rate
			cmds.Push(r.action)
		}
	default:
		r.held = 0
	}
}

type pressKey struct {
	key    ebiten.Key
	action session.Action
}

// keyboard maps the keys to session actions.
type keyboard struct {
	repeating []*repeatKey
	pressed   []pressKey
}

func newKeyboard(cfg session.Config) *keyboard {
	return &keyboard{
		repeating: []*repeatKey{
			{key: ebiten.KeyArrowLeft, action: session.ActionMoveLeft, delay: cfg.RepeatDelay, rate: cfg.RepeatRate},
			{key: ebiten.KeyArrowRight, action: session.ActionMoveRight, delay: cfg.RepeatDelay, rate: cfg.RepeatRate},
			// Soft drop repeats at its own pace with no initial delay.
			{key: ebiten.KeyArrowDown, action: session.ActionSoftDrop, delay: cfg.SoftDropInterval, rate: cfg.SoftDropInterval},
		},
		pressed: []pressKey{
			{ebiten.KeyArrowUp, session.ActionRotateClockwise},
			{ebiten.KeyX, session.ActionRotateClockwise},
			{ebiten.KeyZ, session.ActionRotateCounterClockwise},
			{ebiten.KeySpace, session.ActionHardDrop},
			{ebiten.KeyC, session.ActionTogglePause},
			{ebiten.KeyR, session.ActionRestart},
		},
	}
}

func (k *keyboard) poll(cmds *session.Commands, dt float64) {
	for _, r := range k.repeating {
		r.poll(cmds, dt)
	}
	for _, p := range k.pressed {
		if inpututil.IsKeyJustPressed(p.key) {
			cmds.Push(p.action)
		}
	}
}
