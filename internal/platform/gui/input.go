package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockfall/internal/core"
)

// pressBindings are discrete actions: one action per key-down event.
var pressBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyRight, ebiten.KeyD},
	core.ActionRotate:  {ebiten.KeyUp, ebiten.KeyW},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionBack:    {ebiten.KeyEscape},
	core.ActionConfirm: {ebiten.KeySpace},
}

// holdBindings are level-triggered: the action is set every frame the key is down.
var holdBindings = map[core.Action][]ebiten.Key{
	core.ActionSoftDrop: {ebiten.KeyDown, ebiten.KeyS},
}

// pollInput reads the keyboard into frame.
func pollInput(frame *core.InputFrame) {
	for action, keys := range pressBindings {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(action)
			}
		}
	}
	for action, keys := range holdBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				frame.Set(action)
			}
		}
	}
}
