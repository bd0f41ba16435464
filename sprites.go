package main

import (
	"github.com/milk9111/brawler/assets"
	"github.com/milk9111/brawler/component"
)

const (
	playerFrameW = 64
	playerFrameH = 64
)

type sheetEntry struct {
	row      int
	frames   int
	duration float64
	loop     component.LoopPolicy
}

// playerSheetLayout maps animation names to rows of the player sheet.
var playerSheetLayout = map[string]sheetEntry{
	"idle":          {row: 0, frames: 4, duration: 0.18, loop: component.LoopForever},
	"walk":          {row: 1, frames: 6, duration: 0.12, loop: component.LoopForever},
	"to_run":        {row: 2, frames: 3, duration: 0.07, loop: component.LoopNone},
	"run":           {row: 3, frames: 6, duration: 0.09, loop: component.LoopForever},
	"break_run":     {row: 4, frames: 3, duration: 0.08, loop: component.LoopNone},
	"jump":          {row: 5, frames: 3, duration: 0.1, loop: component.LoopCount},
	"fall":          {row: 6, frames: 2, duration: 0.12, loop: component.LoopForever},
	"land":          {row: 7, frames: 3, duration: 0.07, loop: component.LoopNone},
	"dash":          {row: 8, frames: 4, duration: 0.06, loop: component.LoopForever},
	"light_attack":  {row: 9, frames: 5, duration: 0.08, loop: component.LoopNone},
	"combo_attack":  {row: 10, frames: 6, duration: 0.08, loop: component.LoopNone},
	"cast":          {row: 11, frames: 4, duration: 0.12, loop: component.LoopForever},
	"ultimate":      {row: 12, frames: 6, duration: 0.08, loop: component.LoopNone},
}

// spriteSet holds one sprite per animation name.
type spriteSet struct {
	sprites map[string]*component.Sprite
}

func newSpriteSet() *spriteSet {
	set := &spriteSet{sprites: map[string]*component.Sprite{}}
	sheet := assets.PlayerSheet
	for name, e := range playerSheetLayout {
		set.sprites[name] = component.NewSheetSprite(name, sheet, playerFrameW, playerFrameH, e.row, e.frames, e.duration, e.loop)
	}
	return set
}

func (s *spriteSet) Sprite(name string) *component.Sprite {
	return s.sprites[name]
}
